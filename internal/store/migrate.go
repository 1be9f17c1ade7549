package store

import (
	"database/sql"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations opens the database at dbPath, applies all up migrations
// found at migrationsPath, and closes the handle again.
func RunMigrations(dbPath, migrationsPath string) error {
	db, err := Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	return RunMigrationsWithDB(db, migrationsPath)
}

// RunMigrationsWithDB applies migrations through an existing handle. Only
// the migration source is closed afterwards; the caller's db stays open.
func RunMigrationsWithDB(db *sql.DB, migrationsPath string) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return err
	}
	src, err := (&file.File{}).Open(fmt.Sprintf("file://%s", migrationsPath))
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("file", src, "sqlite3", driver)
	if err != nil {
		_ = src.Close()
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		_ = src.Close()
		return err
	}
	return src.Close()
}
