// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"io"
	"time"
)

// Report is an uploaded file tracked through the processing workflow.
// It belongs to exactly one user for its whole lifetime.
type Report struct {
	// ID is assigned by the database on creation.
	ID int64 `json:"id"`

	// UserID is the owner. It never changes after creation.
	UserID int64 `json:"user_id"`

	// Name and Type are descriptive strings supplied at upload time.
	Name string `json:"name"`
	Type string `json:"type"`

	// ArtifactLocation is the opaque handle returned by the artifact store.
	ArtifactLocation string `json:"artifact_location"`

	Status ReportStatus `json:"status"`

	// Summary is only ever written together with a status update.
	Summary *string `json:"summary"`

	ReportDate Date `json:"report_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Report model.
func (r Report) TableName() string {
	return "reports"
}

// CreateReportRequest carries everything needed to create a report.
// Content is consumed exactly once by the artifact store.
type CreateReportRequest struct {
	UserID     int64
	Name       string
	Type       string
	ReportDate Date

	// FileName is the client-side file name; only its extension is kept.
	FileName string
	Content  io.Reader
}

// UpdateStatusRequest moves a report to a new status.
// A nil Summary leaves the stored summary untouched.
type UpdateStatusRequest struct {
	ReportID int64        `json:"-"`
	UserID   int64        `json:"-"`
	Status   ReportStatus `json:"status"`
	Summary  *string      `json:"summary,omitempty"`
}

// ReportFilter narrows a report listing. UserID is mandatory, the rest is
// optional: a nil Status means every status and a zero Limit means no limit.
type ReportFilter struct {
	UserID int64
	Status *ReportStatus
	Limit  uint64
	Offset uint64
}

// ReportStats holds the number of reports a user has in each status.
// Statuses without reports are present with a zero count.
type ReportStats map[ReportStatus]int64

// Artifact is an open handle on the bytes behind a report.
// The caller must close Content.
type Artifact struct {
	Report  Report
	Content io.ReadCloser
}

// OrphanedArtifact is an artifact whose report row is gone but whose bytes
// could not be removed. The cleanup worker retries the deletion.
type OrphanedArtifact struct {
	ID        int64     `json:"id"`
	Location  string    `json:"location"`
	Reason    string    `json:"reason"`
	Attempts  int       `json:"attempts"`
	CreatedAt time.Time `json:"created_at"`
}
