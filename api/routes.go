package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/fintrack/internal/auth"
	"github.com/carson-networks/fintrack/internal/handlers/v1/status"
	"github.com/carson-networks/fintrack/internal/handlers/v1/transaction"
	"github.com/carson-networks/fintrack/internal/handlers/v1/upload"
	"github.com/carson-networks/fintrack/internal/logging"
	"github.com/carson-networks/fintrack/internal/service"
)

const shutdownTimeout = 30 * time.Second

type Rest struct {
	Logger      *logrus.Logger
	Port        string
	Service     *service.Service
	DB          status.Pinger
	Auth        *auth.TokenVerifier
	CORSOrigins []string
	Upload      upload.Options
}

// Router builds the chi router with the raw and Huma routes mounted.
func (r *Rest) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	statusHandler := status.NewHandler(r.DB)
	uploadHandler := upload.NewHandler(r.Service.Ingest, r.Auth, r.Upload)

	router.Get("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	// Streams multipart bodies, so it bypasses Huma's request decoding.
	router.Post("/v1/upload-csv", logging.LoggingWrapper("UploadCSV", r.Logger, uploadHandler.Handler))

	router.Group(func(group chi.Router) {
		group.Use(logging.HumaLogData("Api", r.Logger))
		api := humachi.New(group, huma.DefaultConfig("Fintrack API", "1.0.0"))

		transaction.NewListHistoryHandler(r.Service.Transaction, r.Auth).Register(api)
		transaction.NewSummaryHandler(r.Service.Transaction, r.Auth).Register(api)
		transaction.NewDeleteTransactionHandler(r.Service.Transaction, r.Auth).Register(api)
	})

	return router
}

// Serve blocks until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(5) * time.Minute,
		WriteTimeout:      time.Duration(5) * time.Minute,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
