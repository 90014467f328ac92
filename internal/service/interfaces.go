// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-report-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ReportService is the report lifecycle. Every operation takes the caller
// id explicitly and only ever touches the caller's own reports.
type ReportService interface {
	CreateReport(ctx context.Context, req models.CreateReportRequest) (models.Report, error)

	ListReports(ctx context.Context, filter models.ReportFilter) ([]models.Report, error)
	ReportStats(ctx context.Context, userID int64) (models.ReportStats, error)
	GetReport(ctx context.Context, reportID, userID int64) (models.Report, error)
	OpenReportArtifact(ctx context.Context, reportID, userID int64) (models.Artifact, error)

	UpdateReportStatus(ctx context.Context, req models.UpdateStatusRequest) (models.Report, error)
	DeleteReport(ctx context.Context, reportID, userID int64) error
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}
