// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrReportNotFound is returned when no report row has the requested id
	// (or, for owner-scoped statements, the id and owner pair).
	ErrReportNotFound = errors.New("report was not found")

	// ErrStatusConflict is returned by the conditional status update when the
	// stored status no longer equals the expected one, meaning another request
	// changed the report first.
	ErrStatusConflict = errors.New("report status was changed concurrently")

	// ErrOrphanNotFound is returned when an orphaned artifact record is gone.
	ErrOrphanNotFound = errors.New("orphaned artifact was not found")

	// ErrArtifactNotFound is returned by artifact storages when nothing is
	// stored under a location.
	ErrArtifactNotFound = errors.New("artifact was not found")

	// ErrInvalidArtifactLocation is returned for locations that point outside
	// of the storage root.
	ErrInvalidArtifactLocation = errors.New("invalid artifact location")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned by NewConnect for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
