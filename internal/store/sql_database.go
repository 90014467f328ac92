// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-report-keeper/internal/config"
	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/MKhiriev/go-report-keeper/migrations"
)

// ErrorClassificator decides how a failed database call is handled.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}

// DB is a database/sql handle bound to one SQL dialect.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	retryDelays        []time.Duration
	logger             *logger.Logger
}

// defaultRetryDelays are the pauses between attempts of a retryable call.
var defaultRetryDelays = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond, 500 * time.Millisecond}

// NewConnect opens the database described by cfg with the driver it names.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func newDB(conn *sql.DB, driver string, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if driver == config.DriverPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		retryDelays:        defaultRetryDelays,
		logger:             log,
	}
}

// Migrate brings the schema up to date.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.driver)
}

// Driver returns the database/sql driver name of the connection.
func (db *DB) Driver() string {
	return db.driver
}

// withRetry runs fn again after each pause in db.retryDelays for as long as
// the error is classified as retryable. Only idempotent calls may use it.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	err := fn()
	for _, delay := range db.retryDelays {
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*DB.withRetry").
			Dur("delay", delay).
			Msg("retryable database error, trying again")

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", err, ctx.Err())
		case <-time.After(delay):
		}

		err = fn()
	}

	return err
}

func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsUniqueViolation(err)
}
