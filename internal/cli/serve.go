package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/internal/server"
	"github.com/katalvlaran/gridpath/search"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var noMetrics bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the search engine over HTTP",
		Long: `Serve the search engine over HTTP.

POST /api/v1/solve accepts {"algorithm", "layout"} or
{"algorithm", "rows", "start", "end", "barriers"} and answers with the
outcome, the path and the marked board.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if noMetrics {
				cfg.Server.Metrics = false
			}

			if c.Logger.GetLevel() > log.DebugLevel {
				gin.SetMode(gin.ReleaseMode)
			}

			err := server.New(cfg, loggerFromContext(cmd.Context())).Run(cmd.Context())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noMetrics, "no-metrics", false, "disable the /metrics endpoint")

	return cmd
}

func (c *CLI) algorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available search strategies",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, a := range search.Algorithms() {
				line := a.String()
				if a == c.Config.Algorithm {
					line += " " + StyleDim.Render("(default)")
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
		},
	}
}
