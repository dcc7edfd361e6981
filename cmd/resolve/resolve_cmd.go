package resolve

import (
	"fmt"
	"strings"

	"github.com/LegacyCodeHQ/soundcook/cmd/internal/project"
	"github.com/LegacyCodeHQ/soundcook/cmd/resolve/formatters"
	"github.com/LegacyCodeHQ/soundcook/cooker"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

type resolveOptions struct {
	project         project.Flags
	format          string
	label           string
	group           uint32
	bank            uint32
	loading         string
	generateURL     bool
	copyToClipboard bool
}

// NewCommand returns a new resolve command instance.
func NewCommand() *cobra.Command {
	opts := &resolveOptions{
		format:  formatters.OutputFormatJSON.String(),
		loading: cooker.LoadOnReference.String(),
	}

	cmd := &cobra.Command{
		Use:   "resolve <kind> [name|short-id|guid]",
		Short: "Print what an asset needs at runtime",
		Long: `Resolve one asset of the project and print its cooked data: the sound banks,
media and external sources it needs in every language.

Kinds: ` + kindNames(),
		Example: `  soundcook resolve event Play_Footsteps
  soundcook resolve event Play_Footsteps -f dot -u
  soundcook resolve switch Grass --group 1
  soundcook resolve media 2 --bank 1001
  soundcook resolve initbank`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args, opts)
		},
	}

	opts.project.Register(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, fmt.Sprintf("Output format (%s)", formatters.SupportedFormats()))
	cmd.Flags().StringVar(&opts.label, "label", "", "Title of dot and mermaid graphs")
	cmd.Flags().Uint32Var(&opts.group, "group", 0, "Switch or state group short id")
	cmd.Flags().Uint32Var(&opts.bank, "bank", 0, "Sound bank short id holding the media")
	cmd.Flags().StringVar(&opts.loading, "switch-loading", opts.loading, "Switch container loading of events: LoadOnReference or AlwaysLoad")
	cmd.Flags().BoolVarP(&opts.generateURL, "url", "u", false, "Generate visualization URL (supported formats: dot, mermaid)")
	cmd.Flags().BoolVarP(&opts.copyToClipboard, "clipboard", "b", false, "Automatically copy output to clipboard")

	return cmd
}

func runResolve(cmd *cobra.Command, args []string, opts *resolveOptions) error {
	kind := strings.ToLower(args[0])
	resolve, ok := resolvers[kind]
	if !ok {
		return fmt.Errorf("unknown kind: %s (valid options: %s)", args[0], kindNames())
	}
	if len(args) < 2 && kind != "initbank" {
		return fmt.Errorf("%s needs a name, short id or guid", kind)
	}

	formatter, err := NewFormatter(opts.format)
	if err != nil {
		return err
	}

	req := request{group: opts.group, bank: opts.bank}
	if len(args) == 2 {
		req.info = cooker.ParseAssetInfo(args[1])
	}
	if err := req.loading.UnmarshalText([]byte(opts.loading)); err != nil {
		return err
	}

	p, err := project.Open(cmd.Context(), cmd, &opts.project)
	if err != nil {
		return err
	}

	asset, err := resolve(p.Cooker, req)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", kind, err)
	}

	output, err := formatter.Format(asset, formatters.RenderOptions{Label: opts.label})
	if err != nil {
		return fmt.Errorf("failed to format %s: %w", kind, err)
	}

	if opts.generateURL {
		if urlStr, ok := formatter.GenerateURL(output); ok {
			fmt.Fprintln(cmd.OutOrStdout(), urlStr)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: URL generation is not supported for %s format\n\n", opts.format)
			fmt.Fprintln(cmd.OutOrStdout(), output)
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), output)
	}

	if opts.copyToClipboard {
		if err := clipboard.WriteAll(output); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\n✅ Content copied to your clipboard.")
	}

	return nil
}
