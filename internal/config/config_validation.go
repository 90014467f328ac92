// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] can be used to
// start the server and fills the database driver when it is implied by the
// DSN.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and duration are required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: neither http nor grpc address is set", ErrInvalidServerConfigs)
	}
	if cfg.Server.MaxUploadSize <= 0 {
		return fmt.Errorf("%w: max upload size must be positive", ErrInvalidServerConfigs)
	}

	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	if cfg.Workers.OrphanCleanupInterval < 0 {
		return fmt.Errorf("%w: negative orphan cleanup interval", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (s *Storage) validate() error {
	if s.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if s.DB.Driver == "" {
		s.DB.Driver = DriverFromDSN(s.DB.DSN)
	}
	if s.DB.Driver != DriverPostgres && s.DB.Driver != DriverSQLite {
		return fmt.Errorf("%w: unsupported database driver %q", ErrInvalidStorageConfigs, s.DB.Driver)
	}

	switch s.Files.Backend {
	case FilesBackendLocal:
		if s.Files.UploadDir == "" {
			return fmt.Errorf("%w: upload dir is required for local backend", ErrInvalidStorageConfigs)
		}
	case FilesBackendS3:
		if s.Files.S3.Endpoint == "" || s.Files.S3.Bucket == "" {
			return fmt.Errorf("%w: s3 endpoint and bucket are required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unsupported files backend %q", ErrInvalidStorageConfigs, s.Files.Backend)
	}

	return nil
}

// validate checks the settings the API client cannot work without.
func (a Adapter) validate() error {
	if a.HTTPAddress == "" || a.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

// DriverFromDSN picks a database driver for dsn: PostgreSQL URLs and
// keyword/value strings map to pgx, everything else to SQLite.
func DriverFromDSN(dsn string) string {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	switch {
	case strings.HasPrefix(lower, "postgres://"),
		strings.HasPrefix(lower, "postgresql://"),
		strings.Contains(lower, "host=") && strings.Contains(lower, "dbname="):
		return DriverPostgres
	default:
		return DriverSQLite
	}
}
