// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-report-keeper/internal/metrics"
	"github.com/MKhiriev/go-report-keeper/models"
)

// Operation names used as the "operation" metric label.
const (
	opCreate       = "create"
	opList         = "list"
	opStats        = "stats"
	opGet          = "get"
	opOpenArtifact = "open_artifact"
	opUpdateStatus = "update_status"
	opDelete       = "delete"
)

// ReportMetricsService counts every call of the wrapped ReportService by
// outcome.
type ReportMetricsService struct {
	inner   ReportService
	metrics *metrics.Metrics
}

func NewReportMetricsService(m *metrics.Metrics) ReportServiceWrapper {
	return &ReportMetricsService{metrics: m}
}

func (s *ReportMetricsService) CreateReport(ctx context.Context, req models.CreateReportRequest) (models.Report, error) {
	report, err := s.inner.CreateReport(ctx, req)
	s.record(opCreate, err)
	if err == nil {
		s.metrics.RecordReportCreated()
	}
	return report, err
}

func (s *ReportMetricsService) ListReports(ctx context.Context, filter models.ReportFilter) ([]models.Report, error) {
	reports, err := s.inner.ListReports(ctx, filter)
	s.record(opList, err)
	return reports, err
}

func (s *ReportMetricsService) ReportStats(ctx context.Context, userID int64) (models.ReportStats, error) {
	stats, err := s.inner.ReportStats(ctx, userID)
	s.record(opStats, err)
	return stats, err
}

func (s *ReportMetricsService) GetReport(ctx context.Context, reportID, userID int64) (models.Report, error) {
	report, err := s.inner.GetReport(ctx, reportID, userID)
	s.record(opGet, err)
	return report, err
}

func (s *ReportMetricsService) OpenReportArtifact(ctx context.Context, reportID, userID int64) (models.Artifact, error) {
	artifact, err := s.inner.OpenReportArtifact(ctx, reportID, userID)
	s.record(opOpenArtifact, err)
	return artifact, err
}

func (s *ReportMetricsService) UpdateReportStatus(ctx context.Context, req models.UpdateStatusRequest) (models.Report, error) {
	report, err := s.inner.UpdateReportStatus(ctx, req)
	s.record(opUpdateStatus, err)
	return report, err
}

func (s *ReportMetricsService) DeleteReport(ctx context.Context, reportID, userID int64) error {
	err := s.inner.DeleteReport(ctx, reportID, userID)
	s.record(opDelete, err)
	return err
}

func (s *ReportMetricsService) Wrap(wrapped ReportService) ReportService {
	s.inner = wrapped
	return s
}

func (s *ReportMetricsService) record(operation string, err error) {
	s.metrics.RecordOperation(operation, ErrorKind(err))
}

// ErrorKind names the class of err for metrics and logs: one of "success",
// "not_found", "unauthorized", "invalid_transition", "storage_failure",
// "validation_failure" or "internal".
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, ErrReportNotFound):
		return "not_found"
	case errors.Is(err, ErrUnauthorizedAccessToDifferentUserData):
		return "unauthorized"
	case errors.Is(err, ErrInvalidStatusTransition):
		return "invalid_transition"
	case errors.Is(err, ErrArtifactStorageFailure):
		return "storage_failure"
	case errors.Is(err, ErrInvalidDataProvided):
		return "validation_failure"
	default:
		return "internal"
	}
}
