package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tp-labs/pulsedash/pkg/cli/config"
	controller "github.com/tp-labs/pulsedash/pkg/controller/http"
	"github.com/tp-labs/pulsedash/pkg/repository"
	"github.com/tp-labs/pulsedash/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		datasetCfg config.Dataset
	)

	flags := joinFlags(
		serverCfg.Flags(),
		datasetCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting pulsedash server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("dataset", datasetCfg),
			)

			// Generate the dataset once; it is immutable for the
			// process lifetime
			gen, err := datasetCfg.Configure()
			if err != nil {
				return err
			}
			info, records := gen.Dataset()
			repo := repository.NewMemory(info, records)
			defer repo.Close()

			logger.Info("Sample dataset generated",
				slog.String("datasetID", info.ID.String()),
				slog.Int("records", info.RecordCount),
			)

			// Create use cases
			metricsUC := usecase.NewMetrics(repo)
			chartUC := usecase.NewChart(metricsUC)

			// Create HTTP server
			server, err := controller.NewServer(ctx, serverCfg.Addr, metricsUC, chartUC, repo)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
