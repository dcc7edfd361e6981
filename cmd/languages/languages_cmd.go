package languages

import (
	"fmt"

	"github.com/LegacyCodeHQ/soundcook/cmd/internal/project"
	"github.com/spf13/cobra"
)

// NewCommand returns a new languages command instance.
func NewCommand() *cobra.Command {
	var flags project.Flags

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List the languages of the project",
		Long: `List every language the project generates sound banks for, with its id and
whether the runtime must load it.

Examples:
  soundcook languages
  soundcook languages -m GeneratedSoundBanks -p Mac`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLanguages(cmd, &flags)
		},
	}

	flags.Register(cmd)
	return cmd
}

func runLanguages(cmd *cobra.Command, flags *project.Flags) error {
	p, err := project.Open(cmd.Context(), cmd, flags)
	if err != nil {
		return err
	}

	lock := p.DB.ReadLock()
	languages := lock.Languages()
	lock.Unlock()

	for _, language := range languages {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%d, %s)\n", language.Name, language.ID, language.Requirement); err != nil {
			return err
		}
	}

	return nil
}
