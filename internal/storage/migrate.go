package storage

import (
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

func runMigrations(dir, databaseName string, driver database.Driver, closeAfter bool) error {
	source, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return err
	}

	migrator, err := migrate.NewWithInstance("iofs", source, databaseName, driver)
	if err != nil {
		return err
	}
	if closeAfter {
		defer migrator.Close()
	}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
