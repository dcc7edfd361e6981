package cmd

import (
	"os"

	"github.com/LegacyCodeHQ/soundcook/cmd/cook"
	"github.com/LegacyCodeHQ/soundcook/cmd/languages"
	"github.com/LegacyCodeHQ/soundcook/cmd/resolve"
	"github.com/LegacyCodeHQ/soundcook/cmd/watch"
	"github.com/spf13/cobra"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCommand()

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "soundcook",
		Short: "Cook Wwise sound bank metadata into a staged build",
		Long: `Soundcook reads the sound bank metadata generated for a platform, works out
which sound banks, media and external sources every event, aux bus and
shareset needs, and stages those files into a sandbox for packaging.

Settings are read from ./soundcook.yaml when present and can be overridden
with flags on every command.

Use 'soundcook --help' to see all available commands, or 'soundcook <command> --help'
for detailed information about a specific command.`,
		Version:       version,
		SilenceUsage: true,
		Annotations:  map[string]string{"buildDate": buildDate, "commit": commit},
	}

	cmd.AddCommand(cook.NewCommand(), resolve.NewCommand(), watch.NewCommand(), languages.NewCommand())

	// Customize version template to show additional build info
	cmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)
	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
