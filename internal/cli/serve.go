package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/algoviz/internal/api"
	"github.com/katalvlaran/algoviz/internal/config"
	"github.com/katalvlaran/algoviz/internal/metrics"
	"github.com/katalvlaran/algoviz/internal/telemetry"
)

// NewServeCmd starts the HTTP API. Settings come from config.Default, then
// ALGOVIZ_* variables, then flags.
func NewServeCmd(lookupEnv func(string) (string, bool)) *cobra.Command {
	cfg := config.Default()
	envErr := cfg.FromEnv(lookupEnv)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the algorithm API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if envErr != nil {
				return envErr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, err := telemetry.NewLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			ln, err := net.Listen("tcp", cfg.Addr)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return Serve(ctx, cfg, logger, ln)
		},
	}
	cfg.BindFlags(cmd.Flags())

	return cmd
}

// Serve runs the API on ln until ctx is done, then shuts down within
// cfg.ShutdownTimeout. It owns ln.
func Serve(ctx context.Context, cfg config.Config, logger *logrus.Logger, ln net.Listener) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	handler := api.NewHandler(api.Config{
		Logger:         logger,
		Metrics:        metrics.New(reg),
		Gatherer:       reg,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	server := &http.Server{
		Handler:           handler.Routes(),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.WithField("addr", ln.Addr().String()).Info("listening")
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")

	return nil
}
