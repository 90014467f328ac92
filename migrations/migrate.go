// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations holds the database schema as embedded goose migrations,
// one directory per SQL dialect.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Supported driver names. They match the names the drivers register with
// database/sql.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// Migrate applies every pending migration of the dialect that belongs to
// driver.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dialect, dir, err := dialectFor(driver)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migration error opening %s migrations: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func dialectFor(driver string) (goose.Dialect, string, error) {
	switch driver {
	case DriverPostgres:
		return goose.DialectPostgres, "postgres", nil
	case DriverSQLite:
		return goose.DialectSQLite3, "sqlite", nil
	default:
		return "", "", fmt.Errorf("unsupported driver %q", driver)
	}
}
