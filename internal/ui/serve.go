package ui

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/edulearn/internal/logger"
	"github.com/javiermolinar/edulearn/internal/server"
	"github.com/javiermolinar/edulearn/internal/tui/view"
)

func (a *App) serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the local course store over HTTP",
		Long: `Run a local course-listing service backed by the SQLite course store.

  GET /api/courses   JSON array of courses in stored order
  GET /health        liveness check

Load courses first with "edulearn seed".`,
		Example: `  edulearn serve
  edulearn serve --addr=127.0.0.1:8080`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.config.Server.Addr = addr
			}
			if err := a.ensureStore(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			n, err := a.store.CountCourses(ctx)
			if err != nil {
				return err
			}

			log := logger.New(cmd.ErrOrStderr(), a.debug)
			fmt.Fprintf(cmd.OutOrStdout(), "Serving %s on http://%s%s\n",
				view.FormatCount(n), a.config.Server.Addr, server.CoursesPath)

			return server.Serve(ctx, a.config.Server.Addr, a.store, log)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")

	return cmd
}
