package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/arbor/internal/config"
	"github.com/vango-dev/arbor/internal/preview"
	"github.com/vango-dev/arbor/pkg/manifest"
)

func serveCmd(g *globals) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "serve <manifest>",
		Short: "Serve a live preview of a manifest",
		Long: `Serve a manifest as a live page.

Stores can be changed with POST /stores/{name}; connected browsers
update immediately. With --serve-watch the manifest is reloaded when
the file changes.

Examples:
  arbor serve page.yaml
  arbor serve page.yaml --serve-addr=:8080 --serve-watch
  curl -X POST -d 5 localhost:4000/stores/count`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.load(cmd)
			if err != nil {
				return err
			}

			srv, err := preview.NewServer(preview.Config{
				ManifestPath:   args[0],
				Loader:         manifest.NewLoader(manifest.WithLogger(logger)),
				Title:          title,
				Addr:           cfg.Serve.Addr,
				MetricsPath:    cfg.Serve.MetricsPath,
				Watch:          cfg.Serve.Watch,
				MarkerComments: cfg.Render.MarkerComments,
				Target:         cfg.Render.Target,
				Logger:         logger,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Page title")
	cmd.Flags().String("serve-addr", config.DefaultAddr, "Address to listen on")
	cmd.Flags().Bool("serve-watch", false, "Reload the manifest when it changes")
	cmd.Flags().String("serve-metrics-path", config.DefaultMetricsPath, "Path of the metrics endpoint")
	cmd.Flags().Bool("render-marker-comments", false, "Render region markers as comments")

	return cmd
}
