// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-report-keeper/internal/config"
	"github.com/MKhiriev/go-report-keeper/internal/logger"
)

// Storages groups every repository and the artifact storage so they can be
// handed to the service layer as one value.
type Storages struct {
	DB               *DB
	UserRepository   UserRepository
	ReportRepository ReportRepository
	OrphanRepository OrphanRepository
	ArtifactStorage  ArtifactStorage
}

// NewStorages initialises the storage layer:
//  1. opens the database named by cfg.DB and pings it;
//  2. runs pending schema migrations;
//  3. builds the artifact storage selected by cfg.Files.Backend.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	artifacts, err := NewArtifactStorage(ctx, cfg.Files, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		DB:               db,
		UserRepository:   NewUserRepository(db, logger),
		ReportRepository: NewReportRepository(db, logger),
		OrphanRepository: NewOrphanRepository(db, logger),
		ArtifactStorage:  artifacts,
	}, nil
}

// NewArtifactStorage returns the artifact storage of the configured backend.
func NewArtifactStorage(ctx context.Context, cfg config.Files, logger *logger.Logger) (ArtifactStorage, error) {
	switch cfg.Backend {
	case config.FilesBackendS3:
		return NewS3ArtifactStorage(ctx, cfg.S3, logger)
	case config.FilesBackendLocal, "":
		return NewFileArtifactStorage(cfg.UploadDir, logger)
	default:
		return nil, fmt.Errorf("unsupported files backend %q", cfg.Backend)
	}
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
