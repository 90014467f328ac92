// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-report-keeper/internal/config"
	"github.com/MKhiriev/go-report-keeper/internal/logger"
)

// sqliteParams are appended to every SQLite DSN so each new connection
// enforces foreign keys and waits for locks instead of failing at once.
var sqliteParams = []string{"_foreign_keys=1", "_busy_timeout=5000"}

func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBDirIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	conn, err := sql.Open(config.DriverSQLite, sqliteDSN(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// SQLite allows a single writer; one connection also keeps an
	// in-memory database alive for the lifetime of the pool.
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return newDB(conn, config.DriverSQLite, NewSQLiteErrorClassifier(), log), nil
}

func sqliteDSN(dsn string) string {
	params := make([]string, 0, len(sqliteParams))
	for _, p := range sqliteParams {
		name, _, _ := strings.Cut(p, "=")
		if !strings.Contains(dsn, name+"=") {
			params = append(params, p)
		}
	}
	if len(params) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}

func createLocalDBDirIfNotExists(dsn string) error {
	path, _, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	if path == "" || strings.Contains(path, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating DB directory: %w", err)
	}

	return nil
}
