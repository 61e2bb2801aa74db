package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/paraflow/internal/server"
)

// serveCommand runs the HTTP API until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the flowchart HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = c.Config.Server.Addr
			}

			runner, err := c.newRunner(ctx, false)
			if err != nil {
				return err
			}
			defer runner.Close()

			opts := server.Options{
				Addr:         addr,
				ReadTimeout:  c.Config.Server.ReadTimeout.Duration,
				WriteTimeout: c.Config.Server.WriteTimeout.Duration,
				MaxBodyBytes: c.Config.Server.MaxBodyBytes,
				Runner:       runner,
				Defaults:     c.Config.PipelineOptions(""),
				Logger:       c.Logger,
			}
			describer, err := c.newDescriber(runner.Cache)
			if err != nil {
				return err
			}
			if describer != nil {
				opts.Describer = describer
			} else {
				c.Logger.Warn("no LLM configured; /api/describe will return 503")
			}

			return server.New(opts).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}
