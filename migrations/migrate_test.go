// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the DB itself, every query fails

	err = Migrate(context.Background(), db, DriverPostgres)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(context.Background(), db, DriverPostgres)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnknownDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(context.Background(), db, "mysql")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open(DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db, DriverSQLite))
	// second run is a no-op
	require.NoError(t, Migrate(ctx, db, DriverSQLite))

	for _, table := range []string{"users", "reports", "orphaned_artifacts"} {
		var name string
		err := db.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s must exist", table)
	}

	_, err = db.ExecContext(ctx, `INSERT INTO users (email, password_hash, role, created_at, updated_at)
		VALUES ('a@b.c', 'x', 'USER', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO reports (user_id, name, type, artifact_location, status, report_date, created_at, updated_at)
		VALUES (1, 'r', 'pdf', 'loc', 'ARCHIVED', '2024-01-01', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`)
	assert.Error(t, err, "unknown status must violate the check constraint")
}
