package watch

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/LegacyCodeHQ/soundcook/cmd/internal/project"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

type watchOptions struct {
	project project.Flags
	sandbox string
	prefix  string
	port    int
}

// NewCommand returns a new watch command instance.
func NewCommand() *cobra.Command {
	opts := &watchOptions{
		port: 4900,
	}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-cook the project whenever its metadata changes",
		Long: `Watch the generated metadata of a platform, rebuild the project database when
it changes and cook the project again into the sandbox.

Cook reports are streamed at localhost and staging metrics are served at
/metrics. Use --port 0 to disable the server.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts)
		},
	}

	opts.project.Register(cmd)
	cmd.Flags().StringVarP(&opts.sandbox, "sandbox", "o", "", "Sandbox directory (default: from config)")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "Directory inside the sandbox (default: from config)")
	cmd.Flags().IntVarP(&opts.port, "port", "P", opts.port, "HTTP server port")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *watchOptions) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	p, err := project.Open(ctx, cmd, &opts.project)
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

	reg := prometheus.NewRegistry()
	b := newBroker()
	r := newRecooker(p, root, prefix, reg, b, cmd.OutOrStdout())

	if opts.port > 0 {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", opts.port))
		if err != nil {
			return fmt.Errorf("failed to listen on port %d: %w", opts.port, err)
		}
		srv := newServer(b, reg, opts.port)
		go srv.Serve(ln)
		defer srv.Close()
		fmt.Fprintf(cmd.OutOrStdout(), "Serving at http://localhost:%d\n", opts.port)
	}

	r.cook(ctx, false)

	dir := filepath.Join(p.DB.Dir(), p.DB.Platform())
	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s\n", dir)
	fmt.Fprintf(cmd.OutOrStdout(), "Press Ctrl+C to stop\n")

	return watchAndRecook(ctx, dir, r)
}
