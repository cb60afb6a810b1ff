package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/fintrack/internal/config"
	"github.com/carson-networks/fintrack/internal/logging"
	"github.com/carson-networks/fintrack/internal/storage"
)

func main() {
	source := flag.String("source", "file://migrations", "migration source URL")
	flag.Parse()

	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}
	logger := logging.SetupLogging(env.LogLevel)

	store, err := storage.NewStorage(env)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer store.Close()

	if err := storage.Migrate(store.DB, *source); err != nil {
		logger.WithError(err).Fatal("storage.Migrate")
	}
}
