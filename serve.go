package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/carson-networks/fintrack/api"
	"github.com/carson-networks/fintrack/internal/auth"
	"github.com/carson-networks/fintrack/internal/handlers/v1/upload"
	"github.com/carson-networks/fintrack/internal/telemetry"
)

const (
	serviceName      = "fintrack"
	migrationsSource = "file://migrations"
)

var serveMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "apply database migrations before serving")
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	env, logger, err := loadEnv()
	if err != nil {
		return err
	}
	logger.Info("fintrack starting")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, env.OTLPEndpoint, serviceName)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.WithError(err).Warn("Telemetry.Shutdown")
		}
	}()

	a, err := newApp(env, logger, serveMigrate)
	if err != nil {
		return err
	}
	defer a.Close()

	rest := api.Rest{
		Logger:      logger,
		Port:        env.HTTPPort,
		Service:     a.service,
		DB:          a.store.DB,
		Auth:        auth.NewTokenVerifier(env.SecretKey),
		CORSOrigins: env.CORSOrigins,
		Upload: upload.Options{
			MaxUploadBytes:   env.MaxUploadBytes,
			UploadsPerMinute: env.UploadsPerMinute,
		},
	}
	return rest.Serve(ctx)
}
