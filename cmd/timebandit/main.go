package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"timebandit/internal/api"
	"timebandit/internal/config"
	"timebandit/internal/db"
	"timebandit/internal/otel"
	"timebandit/internal/store"
	"timebandit/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           version.Name,
		Short:         "Session-authenticated task and time-tracking API",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newMigrateCommand())
	return cmd
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(ctx)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			pool, err := db.Open(ctx, cfg.DBDSN)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer pool.Close()

			if err := db.Migrate(ctx, pool); err != nil {
				return fmt.Errorf("migrate database: %w", err)
			}

			log.Info().Msg("migrations applied")
			return nil
		},
	}
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(ctx)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			cleanup, err := otel.Init(ctx, version.Name, cfg.OTLPEndpoint)
			if err != nil {
				return fmt.Errorf("init otel: %w", err)
			}
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := cleanup(shutdownCtx); err != nil {
					log.Error().Err(err).Msg("shutdown otel")
				}
			}()

			pool, err := db.Open(ctx, cfg.DBDSN)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer pool.Close()

			if err := db.Migrate(ctx, pool); err != nil {
				return fmt.Errorf("migrate database: %w", err)
			}

			var bus *nats.Conn
			if cfg.NATSURL != "" {
				bus, err = nats.Connect(cfg.NATSURL, nats.Name(version.Name))
				if err != nil {
					return fmt.Errorf("connect nats: %w", err)
				}
				defer bus.Close()
			}

			app, err := api.New(store.New(pool), bus, api.Config{
				AllowedOrigins: cfg.AllowedOrigins,
				CookieSecure:   cfg.CookieSecure,
			})
			if err != nil {
				return fmt.Errorf("init api: %w", err)
			}

			handler := app.Routes()
			if cfg.OTLPEndpoint != "" {
				handler = otelhttp.NewHandler(handler, version.Name)
			}

			srv := &http.Server{
				Addr:              cfg.Addr,
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info().Str("addr", cfg.Addr).Msg("starting timebandit api")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return fmt.Errorf("http server: %w", err)
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("shutdown server")
			}
			return nil
		},
	}
}
