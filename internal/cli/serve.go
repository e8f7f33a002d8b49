package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/splitpane/internal/server"
)

// serveCommand runs the HTTP API until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout engine over HTTP",
		Long: `Serve the layout engine over HTTP.

Endpoints:
  POST /v1/clamp             {constraints, size}
  POST /v1/layout/default    {constraints}
  POST /v1/layout/normalize  {layout, constraints}
  POST /v1/layout/adjust     {delta, layout, constraints, pivot, trigger}
  POST /v1/layout/ranges     {layout, constraints}
  GET  /healthz
  GET  /version

The listen address comes from server.addr in the config file, the
SPLITPANE_SERVER_ADDR environment variable or --addr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config.Server
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			return server.New(cfg, loggerFromContext(cmd.Context())).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: server.addr)")

	return cmd
}
