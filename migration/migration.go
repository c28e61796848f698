package migration

import (
	"database/sql"
	"embed"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed sql/*.sql
var migrationFS embed.FS

// Up applies every pending migration from the embedded sql directory.
func Up(logger *logrus.Logger, db *sql.DB, databaseName string) {
	source, err := iofs.New(migrationFS, "sql")
	if err != nil {
		logger.WithError(err).Fatal("an error occurred while reading migration source")
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		logger.WithError(err).Fatal("an error occurred while initializing migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", source, databaseName, driver)
	if err != nil {
		logger.WithError(err).Fatal("an error occurred while initializing migration")
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		logger.WithError(err).Fatal("an error occurred while running migration")
	}
}
