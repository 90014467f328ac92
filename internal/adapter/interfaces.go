// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the Go client of the report-keeper HTTP API.
//
// [ReportAdapter] hides the transport from callers such as cmd/client.
// Non-2xx answers are mapped to the sentinel errors of errors.go so callers
// can branch with [errors.Is] (e.g. [ErrNotFound] for 404, [ErrForbidden]
// for 403). The message carried by the server envelope is kept in the
// wrapped error text.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-report-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ReportAdapter talks to the report-keeper server on behalf of one user.
//
// Register and Login store the returned access token inside the adapter;
// every report call afterwards is authenticated with it.
type ReportAdapter interface {
	// SetToken replaces the bearer token used by authenticated calls.
	SetToken(token string)
	// Token returns the current bearer token, empty when logged out.
	Token() string

	// Register creates an account and logs it in.
	Register(ctx context.Context, user models.User) (models.AuthResponse, error)
	// Login exchanges credentials for an access token.
	Login(ctx context.Context, user models.User) (models.AuthResponse, error)

	// ListReports returns the caller's reports matching filter.
	// filter.UserID is ignored: the server takes it from the token.
	ListReports(ctx context.Context, filter models.ReportFilter) ([]models.Report, error)
	// GetReport returns one report by id.
	GetReport(ctx context.Context, reportID int64) (models.Report, error)
	// UploadReport sends req.Content as a multipart upload.
	UploadReport(ctx context.Context, req models.CreateReportRequest) (models.Report, error)
	// UpdateReportStatus moves a report to req.Status.
	UpdateReportStatus(ctx context.Context, req models.UpdateStatusRequest) (models.Report, error)
	// DeleteReport removes a report and its file.
	DeleteReport(ctx context.Context, reportID int64) error
	// DownloadReport streams the report file into dst and returns the
	// number of bytes written.
	DownloadReport(ctx context.Context, reportID int64, dst io.Writer) (int64, error)
	// ReportStats returns the caller's report count per status.
	ReportStats(ctx context.Context) (models.ReportStats, error)

	// Version returns the server build information.
	Version(ctx context.Context) (models.AppInfo, error)
}
