// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/MKhiriev/go-report-keeper/internal/metrics"
	"github.com/MKhiriev/go-report-keeper/internal/store"
	"github.com/MKhiriev/go-report-keeper/models"
)

// maxStatusUpdateAttempts bounds the re-read loop of UpdateReportStatus.
// The workflow has two edges, so a report can change under a caller at most
// twice.
const maxStatusUpdateAttempts = 3

type reportService struct {
	reports   store.ReportRepository
	orphans   store.OrphanRepository
	artifacts store.ArtifactStorage

	metrics *metrics.Metrics
	now     func() time.Time

	logger *logger.Logger
}

// NewReportService returns the core report lifecycle without validation or
// metrics decorators. metrics may be nil.
func NewReportService(storages *store.Storages, metrics *metrics.Metrics, logger *logger.Logger) ReportService {
	return &reportService{
		reports:   storages.ReportRepository,
		orphans:   storages.OrphanRepository,
		artifacts: storages.ArtifactStorage,
		metrics:   metrics,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
	}
}

// CreateReport stores the content first and inserts the row only once the
// bytes are safely written, so a row never points at missing content.
func (s *reportService) CreateReport(ctx context.Context, req models.CreateReportRequest) (models.Report, error) {
	log := logger.FromContext(ctx)

	location, err := s.artifacts.Store(ctx, req.UserID, req.FileName, req.Content)
	if err != nil {
		log.Err(err).Str("func", "reportService.CreateReport").Int64("user_id", req.UserID).Msg("error storing artifact")
		return models.Report{}, fmt.Errorf("%w: %w", ErrArtifactStorageFailure, err)
	}

	now := s.now()
	report := models.Report{
		UserID:           req.UserID,
		Name:             req.Name,
		Type:             req.Type,
		ArtifactLocation: location,
		Status:           models.StatusUploaded,
		ReportDate:       req.ReportDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.reports.CreateReport(ctx, report)
	if err != nil {
		log.Err(err).Str("func", "reportService.CreateReport").Int64("user_id", req.UserID).Msg("error saving report, removing artifact")
		s.removeArtifact(ctx, location)
		return models.Report{}, fmt.Errorf("report creation failed: %w", err)
	}

	log.Info().Int64("report_id", created.ID).Int64("user_id", created.UserID).Msg("report created")
	return created, nil
}

func (s *reportService) ListReports(ctx context.Context, filter models.ReportFilter) ([]models.Report, error) {
	reports, err := s.reports.ListReports(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "reportService.ListReports").Int64("user_id", filter.UserID).Msg("error listing reports")
		return nil, fmt.Errorf("report listing failed: %w", err)
	}

	return reports, nil
}

func (s *reportService) ReportStats(ctx context.Context, userID int64) (models.ReportStats, error) {
	stats, err := s.reports.CountReportsByStatus(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "reportService.ReportStats").Int64("user_id", userID).Msg("error counting reports")
		return nil, fmt.Errorf("report stats failed: %w", err)
	}

	return stats, nil
}

func (s *reportService) GetReport(ctx context.Context, reportID, userID int64) (models.Report, error) {
	return s.locate(ctx, reportID, userID)
}

// OpenReportArtifact returns the report together with an open reader over
// its content. The caller closes Artifact.Content.
func (s *reportService) OpenReportArtifact(ctx context.Context, reportID, userID int64) (models.Artifact, error) {
	report, err := s.locate(ctx, reportID, userID)
	if err != nil {
		return models.Artifact{}, err
	}

	content, err := s.artifacts.Open(ctx, report.ArtifactLocation)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "reportService.OpenReportArtifact").Int64("report_id", reportID).Msg("error opening artifact")
		return models.Artifact{}, fmt.Errorf("%w: %w", ErrArtifactStorageFailure, err)
	}

	return models.Artifact{Report: report, Content: content}, nil
}

// UpdateReportStatus applies one transition of the workflow. The write is
// conditional on the status the transition was validated against; when
// another caller got there first the report is read again and the
// transition re-validated against the new status.
func (s *reportService) UpdateReportStatus(ctx context.Context, req models.UpdateStatusRequest) (models.Report, error) {
	log := logger.FromContext(ctx)

	for attempt := 1; ; attempt++ {
		report, err := s.locate(ctx, req.ReportID, req.UserID)
		if err != nil {
			return models.Report{}, err
		}

		current := report.Status
		if !models.IsValidTransition(current, req.Status) {
			log.Warn().Str("func", "reportService.UpdateReportStatus").
				Int64("report_id", report.ID).
				Str("from", current.String()).
				Str("to", req.Status.String()).
				Msg("invalid status transition")
			return models.Report{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, current, req.Status)
		}

		report.Status = req.Status
		if req.Summary != nil {
			report.Summary = req.Summary
		}
		report.UpdatedAt = s.now()

		err = s.reports.UpdateReportStatus(ctx, report, current)
		switch {
		case err == nil:
			s.metrics.RecordStatusTransition(current.String(), report.Status.String())
			log.Info().Int64("report_id", report.ID).Str("from", current.String()).Str("to", report.Status.String()).Msg("report status updated")
			return report, nil
		case errors.Is(err, store.ErrStatusConflict) && attempt < maxStatusUpdateAttempts:
			log.Debug().Str("func", "reportService.UpdateReportStatus").Int64("report_id", report.ID).Int("attempt", attempt).Msg("status changed concurrently, re-reading report")
		case errors.Is(err, store.ErrStatusConflict):
			log.Warn().Str("func", "reportService.UpdateReportStatus").Int64("report_id", report.ID).Msg("status keeps changing concurrently")
			return models.Report{}, fmt.Errorf("%w: status changed concurrently", ErrInvalidStatusTransition)
		case errors.Is(err, store.ErrReportNotFound):
			return models.Report{}, ErrReportNotFound
		default:
			log.Err(err).Str("func", "reportService.UpdateReportStatus").Int64("report_id", report.ID).Msg("error updating report status")
			return models.Report{}, fmt.Errorf("status update failed: %w", err)
		}
	}
}

// DeleteReport removes the row first; once it is gone the report is deleted
// as far as the caller is concerned. Removing the artifact afterwards is best
// effort: a failure is recorded for the orphan cleaner and never returned.
func (s *reportService) DeleteReport(ctx context.Context, reportID, userID int64) error {
	log := logger.FromContext(ctx)

	report, err := s.locate(ctx, reportID, userID)
	if err != nil {
		return err
	}

	if err = s.reports.DeleteReport(ctx, report.ID, userID); err != nil {
		if errors.Is(err, store.ErrReportNotFound) {
			return ErrReportNotFound
		}
		log.Err(err).Str("func", "reportService.DeleteReport").Int64("report_id", reportID).Msg("error deleting report")
		return fmt.Errorf("report deletion failed: %w", err)
	}

	s.removeArtifact(ctx, report.ArtifactLocation)

	log.Info().Int64("report_id", reportID).Int64("user_id", userID).Msg("report deleted")
	return nil
}

// locate finds a report and checks the caller owns it.
func (s *reportService) locate(ctx context.Context, reportID, userID int64) (models.Report, error) {
	report, err := s.reports.GetReportByID(ctx, reportID)
	if errors.Is(err, store.ErrReportNotFound) {
		return models.Report{}, ErrReportNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "reportService.locate").Int64("report_id", reportID).Msg("error getting report")
		return models.Report{}, fmt.Errorf("report lookup failed: %w", err)
	}

	if err = assertOwnership(report, userID); err != nil {
		logger.FromContext(ctx).Warn().Str("func", "reportService.locate").
			Int64("report_id", reportID).
			Int64("caller_id", userID).
			Msg("access to another user's report denied")
		return models.Report{}, err
	}

	return report, nil
}

// removeArtifact deletes an artifact that no row references anymore. It
// runs even if ctx was cancelled, since the row change already happened.
func (s *reportService) removeArtifact(ctx context.Context, location string) {
	log := logger.FromContext(ctx)
	ctx = context.WithoutCancel(ctx)

	err := s.artifacts.Delete(ctx, location)
	if err == nil {
		return
	}

	log.Err(err).Str("func", "reportService.removeArtifact").Str("location", location).Msg("error deleting artifact, recording orphan")
	s.metrics.RecordArtifactDeleteFailure()

	if s.orphans == nil {
		return
	}

	orphan := models.OrphanedArtifact{
		Location:  location,
		Reason:    err.Error(),
		CreatedAt: s.now(),
	}
	if err = s.orphans.SaveOrphan(ctx, orphan); err != nil {
		log.Err(err).Str("func", "reportService.removeArtifact").Str("location", location).Msg("error recording orphaned artifact")
	}
}
