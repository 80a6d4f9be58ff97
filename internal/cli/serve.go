// internal/cli/serve.go
package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"phishscan/internal/adapters/httpapi"
	"phishscan/internal/core/usecases"
	"phishscan/internal/platform/config"
)

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the classifier over HTTP",
		Long: `Serve the classifier over HTTP.

  POST /predict   form field "name" holds the URL; ?explain=true adds details
  GET  /healthz   liveness
  GET  /readyz    readiness, 503 while shutting down
  GET  /metrics   Prometheus metrics (--metrics)
  GET  /          static files from --static-dir

SIGINT or SIGTERM drains in-flight requests before exiting.`,
		Example: `  phishscan serve
  phishscan serve --addr 127.0.0.1:9000 --static-dir ./web
  curl -d name=http://192.168.1.1/login localhost:8000/predict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.logger.Info("phishscan starting",
				"version", a.build.Version,
				"commit", a.build.Commit,
				"addr", a.cfg.Server.Addr,
				"static_dir", a.cfg.Server.StaticDir,
				"metrics", a.cfg.Server.Metrics,
			)

			srv := httpapi.NewServer(a.cfg.Server, usecases.NewClassifyService(a.logger), a.logger)
			if err := srv.Run(ctx); err != nil {
				return err
			}
			a.logger.Info("phishscan stopped")
			return nil
		},
	}
	config.BindServeFlags(cmd.Flags())
	return cmd
}
