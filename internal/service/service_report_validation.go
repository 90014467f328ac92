// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-report-keeper/internal/validators"
	"github.com/MKhiriev/go-report-keeper/models"
)

// ReportValidationService rejects malformed requests with
// ErrInvalidDataProvided before they reach the wrapped ReportService.
type ReportValidationService struct {
	inner     ReportService
	validator validators.Validator
}

func NewReportValidationService() ReportServiceWrapper {
	return &ReportValidationService{
		validator: validators.NewReportValidator(),
	}
}

func (v *ReportValidationService) CreateReport(ctx context.Context, req models.CreateReportRequest) (models.Report, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Report{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateReport(ctx, req)
}

func (v *ReportValidationService) ListReports(ctx context.Context, filter models.ReportFilter) ([]models.Report, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ListReports(ctx, filter)
}

func (v *ReportValidationService) ReportStats(ctx context.Context, userID int64) (models.ReportStats, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}

	return v.inner.ReportStats(ctx, userID)
}

func (v *ReportValidationService) GetReport(ctx context.Context, reportID, userID int64) (models.Report, error) {
	if err := validateIDs(reportID, userID); err != nil {
		return models.Report{}, err
	}

	return v.inner.GetReport(ctx, reportID, userID)
}

func (v *ReportValidationService) OpenReportArtifact(ctx context.Context, reportID, userID int64) (models.Artifact, error) {
	if err := validateIDs(reportID, userID); err != nil {
		return models.Artifact{}, err
	}

	return v.inner.OpenReportArtifact(ctx, reportID, userID)
}

func (v *ReportValidationService) UpdateReportStatus(ctx context.Context, req models.UpdateStatusRequest) (models.Report, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Report{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateReportStatus(ctx, req)
}

func (v *ReportValidationService) DeleteReport(ctx context.Context, reportID, userID int64) error {
	if err := validateIDs(reportID, userID); err != nil {
		return err
	}

	return v.inner.DeleteReport(ctx, reportID, userID)
}

func (v *ReportValidationService) Wrap(wrapped ReportService) ReportService {
	v.inner = wrapped
	return v
}

func validateIDs(reportID, userID int64) error {
	if reportID <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidReportID)
	}
	if userID <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}
	return nil
}
