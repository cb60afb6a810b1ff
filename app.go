package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/fintrack/internal/classifier"
	"github.com/carson-networks/fintrack/internal/config"
	"github.com/carson-networks/fintrack/internal/ingest"
	"github.com/carson-networks/fintrack/internal/logging"
	"github.com/carson-networks/fintrack/internal/operator"
	"github.com/carson-networks/fintrack/internal/service"
	"github.com/carson-networks/fintrack/internal/storage"
)

// app is the storage, worker pool and service graph shared by serve and import.
type app struct {
	env       *config.Config
	logger    *logrus.Logger
	store     *storage.Storage
	delegator *operator.OperatorDelegator
	service   *service.Service
}

func loadEnv() (*config.Config, *logrus.Logger, error) {
	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, nil, fmt.Errorf("config.ProcessEnvironmentVariables: %w", err)
	}
	return env, logging.SetupLogging(env.LogLevel), nil
}

func newApp(env *config.Config, logger *logrus.Logger, migrate bool) (*app, error) {
	store, err := storage.NewStorage(env)
	if err != nil {
		return nil, err
	}
	if migrate {
		if err := storage.Migrate(store.DB, migrationsSource); err != nil {
			_ = store.Close()
			return nil, err
		}
	}

	model, err := classifier.LoadOrTrain(env.ClassifierModelPath, logger)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	categorizer := classifier.NewAdapter(model, classifier.AdapterOptions{
		Timeout: env.ClassifierTimeout,
		Log:     logger,
	})

	delegator := operator.NewOperatorDelegator(store, env.IngestWorkers)
	delegator.Start()

	pipeline := ingest.NewPipeline(service.NewBatchInserter(delegator), categorizer, logger, ingest.Options{
		BatchSize:    env.IngestBatchSize,
		MaxBatchSize: env.IngestMaxBatchSize,
		ChunkSize:    env.IngestChunkSize,
		PreviewSize:  env.IngestPreviewSize,
		SpoolDir:     env.SpoolDir,
	})

	return &app{
		env:       env,
		logger:    logger,
		store:     store,
		delegator: delegator,
		service:   service.NewService(store.Reader.Transactions, delegator, pipeline),
	}, nil
}

func (a *app) Close() {
	a.delegator.Stop()
	if err := a.store.Close(); err != nil {
		a.logger.WithError(err).Warn("Storage.Close")
	}
}
