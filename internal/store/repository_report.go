// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/MKhiriev/go-report-keeper/models"
)

// reportRepository is the SQL implementation of [ReportRepository]. It works
// against the "reports" table of either supported dialect.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database interactions are traced with the
// request's fields.
type reportRepository struct {
	*DB
	logger *logger.Logger
}

// NewReportRepository constructs a [ReportRepository] backed by db.
func NewReportRepository(db *DB, logger *logger.Logger) ReportRepository {
	logger.Debug().Msg("creating report repository")
	return &reportRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateReport inserts report and returns it with the generated id.
// The insert is not retried: a retry after an ambiguous failure could
// produce a second row.
func (r *reportRepository) CreateReport(ctx context.Context, report models.Report) (models.Report, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateReportQuery(r.builder, report)
	if err != nil {
		log.Err(err).
			Str("func", "reportRepository.CreateReport").
			Int64("user_id", report.UserID).
			Msg("failed to create query")
		return models.Report{}, err
	}

	if err = r.QueryRowContext(ctx, query, args...).Scan(&report.ID); err != nil {
		log.Err(err).
			Str("func", "reportRepository.CreateReport").
			Int64("user_id", report.UserID).
			Msg("failed to insert report")
		return models.Report{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return report, nil
}

// GetReportByID looks the report up by id only; ownership is checked by the
// caller so that a missing row and a foreign row stay distinguishable.
func (r *reportRepository) GetReportByID(ctx context.Context, reportID int64) (models.Report, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetReportByIDQuery(r.builder, reportID)
	if err != nil {
		log.Err(err).
			Str("func", "reportRepository.GetReportByID").
			Int64("report_id", reportID).
			Msg("failed to create query")
		return models.Report{}, err
	}

	var report models.Report
	err = r.withRetry(ctx, func() error {
		return scanReport(r.QueryRowContext(ctx, query, args...), &report)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Report{}, ErrReportNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "reportRepository.GetReportByID").
			Int64("report_id", reportID).
			Msg("failed to get report")
		return models.Report{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return report, nil
}

// ListReports returns the reports matching filter, newest first. An empty
// result is an empty, non-nil slice.
func (r *reportRepository) ListReports(ctx context.Context, filter models.ReportFilter) ([]models.Report, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListReportsQuery(r.builder, filter)
	if err != nil {
		log.Err(err).
			Str("func", "reportRepository.ListReports").
			Int64("user_id", filter.UserID).
			Msg("failed to create query")
		return nil, err
	}

	var reports []models.Report
	err = r.withRetry(ctx, func() error {
		var listErr error
		reports, listErr = r.queryReports(ctx, query, args...)
		return listErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "reportRepository.ListReports").
			Int64("user_id", filter.UserID).
			Msg("failed to list reports")
		return nil, err
	}

	return reports, nil
}

func (r *reportRepository) queryReports(ctx context.Context, query string, args ...any) ([]models.Report, error) {
	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reports := make([]models.Report, 0, 16)
	for rows.Next() {
		var report models.Report
		if err := scanReport(rows, &report); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reports, nil
}

// CountReportsByStatus returns how many reports the user has in each status.
// Statuses without reports are reported as zero.
func (r *reportRepository) CountReportsByStatus(ctx context.Context, userID int64) (models.ReportStats, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountReportsByStatusQuery(r.builder, userID)
	if err != nil {
		log.Err(err).
			Str("func", "reportRepository.CountReportsByStatus").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, err
	}

	var stats models.ReportStats
	err = r.withRetry(ctx, func() error {
		var countErr error
		stats, countErr = r.queryStats(ctx, query, args...)
		return countErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "reportRepository.CountReportsByStatus").
			Int64("user_id", userID).
			Msg("failed to count reports")
		return nil, err
	}

	return stats, nil
}

func (r *reportRepository) queryStats(ctx context.Context, query string, args ...any) (models.ReportStats, error) {
	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	stats := make(models.ReportStats, len(models.AllReportStatuses()))
	for _, status := range models.AllReportStatuses() {
		stats[status] = 0
	}

	for rows.Next() {
		var (
			status models.ReportStatus
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		stats[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return stats, nil
}

// UpdateReportStatus is a compare-and-swap on the status column. When no row
// matches, the report is read again to tell a lost race (ErrStatusConflict)
// from a vanished row (ErrReportNotFound).
func (r *reportRepository) UpdateReportStatus(ctx context.Context, report models.Report, expected models.ReportStatus) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateReportStatusQuery(r.builder, report, expected)
	if err != nil {
		log.Err(err).
			Str("func", "reportRepository.UpdateReportStatus").
			Int64("report_id", report.ID).
			Msg("failed to create query")
		return err
	}

	var affected int64
	err = r.withRetry(ctx, func() error {
		result, execErr := r.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "reportRepository.UpdateReportStatus").
			Int64("report_id", report.ID).
			Msg("failed to update report status")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected > 0 {
		return nil
	}

	current, err := r.GetReportByID(ctx, report.ID)
	if err != nil {
		return err
	}
	if current.UserID != report.UserID {
		return ErrReportNotFound
	}

	log.Info().
		Str("func", "reportRepository.UpdateReportStatus").
		Int64("report_id", report.ID).
		Str("expected", expected.String()).
		Str("actual", current.Status.String()).
		Msg("report status changed concurrently")
	return ErrStatusConflict
}

// DeleteReport removes the row of the owner's report. Deleting an already
// deleted report yields ErrReportNotFound.
func (r *reportRepository) DeleteReport(ctx context.Context, reportID, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteReportQuery(r.builder, reportID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "reportRepository.DeleteReport").
			Int64("report_id", reportID).
			Msg("failed to create query")
		return err
	}

	var affected int64
	err = r.withRetry(ctx, func() error {
		result, execErr := r.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "reportRepository.DeleteReport").
			Int64("report_id", reportID).
			Int64("user_id", userID).
			Msg("failed to delete report")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrReportNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner, report *models.Report) error {
	return row.Scan(
		&report.ID,
		&report.UserID,
		&report.Name,
		&report.Type,
		&report.ArtifactLocation,
		&report.Status,
		&report.Summary,
		&report.ReportDate,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
}
