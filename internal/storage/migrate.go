package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
)

// Migrate applies every pending migration found at sourceURL (e.g. "file://migrations").
func Migrate(db *sql.DB, sourceURL string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("postgres.WithInstance: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrate.NewWithDatabaseInstance: %w", err)
	}

	preMigrationVersion, _, err := m.Version()
	if err != nil && errors.Is(err, migrate.ErrNilVersion) {
		preMigrationVersion = 0
	} else if err != nil {
		return fmt.Errorf("m.Version.preMigrationVersion: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("m.Up: %w", err)
	}

	postMigrationVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("m.Version.postMigrationVersion: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"preMigrationVersion":  preMigrationVersion,
		"postMigrationVersion": postMigrationVersion,
	}).Info("Migration status")

	return nil
}
