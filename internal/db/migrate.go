package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"ads-board/db/migrations"
)

// Migrate applies the embedded migrations for dialect (migrations.Postgres
// or migrations.SQLite) to the database at addr, up to migrations.Version.
// addr is a golang-migrate database URL.
func Migrate(dialect, addr string) error {
	driver, err := iofs.New(migrations.FS, dialect)
	if err != nil {
		return err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		return err
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return errors.New("database is in dirty state")
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// SQLiteURL turns a database file path into a golang-migrate URL.
func SQLiteURL(path string) string {
	return fmt.Sprintf("sqlite://%s", path)
}
