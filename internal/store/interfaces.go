// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-report-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID filled in.
	// A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns ErrNoUserWasFound when nobody uses email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ReportRepository persists report metadata.
type ReportRepository interface {
	// CreateReport inserts report and returns it with ID filled in.
	CreateReport(ctx context.Context, report models.Report) (models.Report, error)
	// GetReportByID looks a report up by id regardless of its owner.
	// Returns ErrReportNotFound when no row has that id.
	GetReportByID(ctx context.Context, reportID int64) (models.Report, error)
	// ListReports returns the owner's reports newest first.
	ListReports(ctx context.Context, filter models.ReportFilter) ([]models.Report, error)
	// CountReportsByStatus returns the owner's report count per status.
	CountReportsByStatus(ctx context.Context, userID int64) (models.ReportStats, error)
	// UpdateReportStatus writes report.Status, report.Summary (when not nil) and
	// report.UpdatedAt, but only while the stored status equals expected.
	// Returns ErrStatusConflict when the stored status differs and
	// ErrReportNotFound when the row is gone.
	UpdateReportStatus(ctx context.Context, report models.Report, expected models.ReportStatus) error
	// DeleteReport removes the owner's report row.
	DeleteReport(ctx context.Context, reportID, userID int64) error
}

// OrphanRepository keeps artifacts whose deletion failed so they can be
// removed later.
type OrphanRepository interface {
	SaveOrphan(ctx context.Context, orphan models.OrphanedArtifact) error
	ListOrphans(ctx context.Context, limit uint64) ([]models.OrphanedArtifact, error)
	DeleteOrphan(ctx context.Context, id int64) error
	IncrementOrphanAttempts(ctx context.Context, id int64, reason string) error
}

// ArtifactStorage keeps the raw bytes of uploaded reports.
type ArtifactStorage interface {
	// Store writes content and returns an opaque location. Nothing is visible
	// under the location unless the whole content was written.
	Store(ctx context.Context, userID int64, originalName string, content io.Reader) (string, error)
	// Open returns the content stored under location or ErrArtifactNotFound.
	Open(ctx context.Context, location string) (io.ReadCloser, error)
	// Delete removes the artifact. A missing artifact is not an error.
	Delete(ctx context.Context, location string) error
}
