package cook

import (
	"errors"
	"fmt"

	"github.com/LegacyCodeHQ/soundcook/cmd/internal/project"
	"github.com/LegacyCodeHQ/soundcook/cooker"
	"github.com/LegacyCodeHQ/soundcook/stage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

type cookOptions struct {
	project     project.Flags
	events      []string
	sandbox     string
	prefix      string
	loading     string
	metricsFile string
}

// NewCommand returns a new cook command instance.
func NewCommand() *cobra.Command {
	opts := &cookOptions{loading: cooker.LoadOnReference.String()}

	cmd := &cobra.Command{
		Use:   "cook",
		Short: "Stage the sound banks and media the project needs",
		Long: `Resolve the init bank and every event, aux bus and shareset of the project,
then copy the sound banks, loose media and external sources they need into
the sandbox directory.

With --event, only the named events are cooked next to the init bank.`,
		Example: `  soundcook cook
  soundcook cook -e Play_Footsteps,Play_Music -o Staged
  soundcook cook --metrics-file soundcook.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCook(cmd, opts)
		},
	}

	opts.project.Register(cmd)
	cmd.Flags().StringSliceVarP(&opts.events, "event", "e", nil, "Events to cook by name, short id or guid (comma-separated, default: all)")
	cmd.Flags().StringVarP(&opts.sandbox, "sandbox", "o", "", "Sandbox directory (default: from config)")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "Directory inside the sandbox (default: from config)")
	cmd.Flags().StringVar(&opts.loading, "switch-loading", opts.loading, "Switch container loading of the selected events: LoadOnReference or AlwaysLoad")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "Write staging metrics in Prometheus text format to this file")

	return cmd
}

func runCook(cmd *cobra.Command, opts *cookOptions) error {
	p, err := project.Open(cmd.Context(), cmd, &opts.project)
	if err != nil {
		return err
	}

	root := p.Config.Sandbox
	if cmd.Flags().Changed("sandbox") {
		root = opts.sandbox
	}
	prefix := p.Config.StagePrefix
	if cmd.Flags().Changed("prefix") {
		prefix = opts.prefix
	}

	var loading cooker.SwitchContainerLoading
	if err := loading.UnmarshalText([]byte(opts.loading)); err != nil {
		return err
	}
	var selection cooker.Selection
	for _, event := range opts.events {
		selection.Events = append(selection.Events, cooker.EventInfo{
			AssetInfo:              cooker.ParseAssetInfo(event),
			SwitchContainerLoading: loading,
		})
	}

	reg := prometheus.NewRegistry()
	sandbox := stage.New(root,
		stage.WithPrefix(prefix),
		stage.WithLogger(p.Logger),
		stage.WithMetrics(stage.NewMetrics(reg)))

	summary, cookErr := p.Cooker.CookAll(cmd.Context(), sandbox, selection)

	fmt.Fprintf(cmd.OutOrStdout(), "Cooked %d events, %d aux buses and %d sharesets into %s (%d files staged)\n",
		summary.Events, summary.AuxBuses, summary.Sharesets, sandbox.Destination(""), len(sandbox.Staged()))
	if summary.Failed > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%d assets failed\n", summary.Failed)
	}

	if opts.metricsFile != "" {
		if err := prometheus.WriteToTextfile(opts.metricsFile, reg); err != nil {
			return errors.Join(cookErr, fmt.Errorf("failed to write metrics: %w", err))
		}
	}

	return cookErr
}
