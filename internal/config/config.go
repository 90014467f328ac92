// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// report-keeper server. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, password hashing cost, version and log level.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database and artifact store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and upload limits for the
	// HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings used by the Go API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the background worker schedule.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost used for new password hashes.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server ("host:port").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadSize is the largest accepted report upload in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the connection string. PostgreSQL URLs select the pgx driver,
	// anything else is opened with SQLite unless Driver says otherwise.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Driver forces the database driver: "pgx" or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Files holds the artifact store settings.
type Files struct {
	// Backend is "local" or "s3".
	// Env: STORAGE_FILES_BACKEND
	Backend string `env:"BACKEND"`

	// UploadDir is the root directory of the local backend.
	// Env: STORAGE_FILES_UPLOAD_DIR
	UploadDir string `env:"UPLOAD_DIR"`

	// S3 holds the object storage settings of the s3 backend.
	S3 S3 `envPrefix:"S3_"`
}

// S3 holds connection settings for an S3-compatible object store.
type S3 struct {
	Endpoint  string `env:"ENDPOINT" json:"endpoint"`
	AccessKey string `env:"ACCESS_KEY" json:"access_key"`
	SecretKey string `env:"SECRET_KEY" json:"secret_key"`
	Bucket    string `env:"BUCKET" json:"bucket"`
	Region    string `env:"REGION" json:"region"`
	UseSSL    bool   `env:"USE_SSL" json:"use_ssl"`
}

// Adapter holds settings for the HTTP client used by cmd/client.
type Adapter struct {
	// HTTPAddress is the base address of the server API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outgoing request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// OrphanCleanupInterval is the period of the orphaned artifact sweep.
	// Zero disables the worker.
	// Env: WORKERS_ORPHAN_CLEANUP_INTERVAL
	OrphanCleanupInterval time.Duration `env:"ORPHAN_CLEANUP_INTERVAL"`

	// OrphanCleanupBatch caps the number of artifacts handled per sweep.
	// Env: WORKERS_ORPHAN_CLEANUP_BATCH
	OrphanCleanupBatch uint64 `env:"ORPHAN_CLEANUP_BATCH"`
}

// Supported values of [Files.Backend] and [DB.Driver].
const (
	FilesBackendLocal = "local"
	FilesBackendS3    = "s3"

	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(osArgs()).
		withJSON().
		build()
}
