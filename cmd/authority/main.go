// Command authority is the reference remote authority: the HTTP JSON API the
// parceltrack clients talk to, backed by PostgreSQL.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"parceltrack/cmd"
	"parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/pkg/logs"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var envFile string

	root := &cobra.Command{
		Use:           "authority",
		Short:         "Reference remote authority for parceltrack clients",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, _ []string) error {
			configs, err := cmd.LoadAuthorityConfig(envFile)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, configs)
		},
	}
	root.PersistentFlags().StringVarP(&envFile, "config", "c", "", "env file to load (default .env when present)")

	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, configs cmd.AuthorityConfig) error {
	logger, err := logs.New(os.Stdout, logs.Options{Level: configs.LogLevel, Pretty: configs.LogPretty})
	if err != nil {
		return err
	}

	gormDB, err := postgres.Open(configs.DB().DSN(), configs.DBDebug, logger)
	if err != nil {
		return err
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		return err
	}
	if err = app.Bootstrap(ctx); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := app.CreateRouter(ctx)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("authority listening", "port", configs.HTTPPort)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("shutting down")
	return e.Shutdown(shutdownCtx)
}
