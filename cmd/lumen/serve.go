package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lumenui/lumen/examples/counter"
	"github.com/lumenui/lumen/internal/config"
	"github.com/lumenui/lumen/pkg/history"
	"github.com/lumenui/lumen/pkg/runtime"
	"github.com/lumenui/lumen/pkg/surface"
	"github.com/lumenui/lumen/pkg/web"
)

func serveCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo counter application",
		Long: `Start the HTTP server and host the counter demo. Every
WebSocket connection gets its own runtime process.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			slog.SetDefault(logger)

			metrics := runtime.NewMetrics(runtime.WithNamespace(cfg.Metrics.Namespace))
			interval := time.Duration(cfg.Loop.FrameIntervalMS) * time.Millisecond

			factory := func(doc surface.Document) (runtime.Runner, error) {
				opts := []runtime.Option{
					runtime.WithLogger(logger),
					runtime.WithMetrics(metrics),
					runtime.WithScheduler(runtime.NewIntervalScheduler(interval)),
				}
				if cfg.History.Capacity > 0 {
					opts = append(opts, runtime.WithHistory(history.NewLog(cfg.History.Capacity)))
				}
				return runtime.New(doc, counter.Component(), opts...)
			}

			srv, err := web.New(cfg, factory, web.WithLogger(logger))
			if err != nil {
				return err
			}

			printBanner()
			success("serving on http://%s:%d", cfg.Server.Host, cfg.Server.Port)
			info("frame interval %s, metrics %v", interval, cfg.Metrics.Enabled)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Start(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides lumen.json)")
	cmd.Flags().StringVar(&host, "host", "", "Host to bind to (overrides lumen.json)")

	return cmd
}
