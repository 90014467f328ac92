// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-report-keeper/models"
)

const (
	usersTable   = "users"
	reportsTable = "reports"
	orphansTable = "orphaned_artifacts"
)

var (
	userColumns = []string{"user_id", "email", "password_hash", "role", "created_at", "updated_at"}

	reportColumns = []string{
		"id",
		"user_id",
		"name",
		"type",
		"artifact_location",
		"status",
		"summary",
		"report_date",
		"created_at",
		"updated_at",
	}

	orphanColumns = []string{"id", "location", "reason", "attempts", "created_at"}
)

func buildQuery(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return buildQuery(b.
		Insert(usersTable).
		Columns("email", "password_hash", "role", "created_at", "updated_at").
		Values(user.Email, user.PasswordHash, user.Role, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING user_id"))
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return buildQuery(b.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}))
}

// ── reports ───────────────────────────────────────────────────────────────────

func buildCreateReportQuery(b sq.StatementBuilderType, report models.Report) (string, []any, error) {
	return buildQuery(b.
		Insert(reportsTable).
		Columns(reportColumns[1:]...).
		Values(
			report.UserID,
			report.Name,
			report.Type,
			report.ArtifactLocation,
			report.Status,
			report.Summary,
			report.ReportDate,
			report.CreatedAt,
			report.UpdatedAt,
		).
		Suffix("RETURNING id"))
}

func buildGetReportByIDQuery(b sq.StatementBuilderType, reportID int64) (string, []any, error) {
	return buildQuery(b.
		Select(reportColumns...).
		From(reportsTable).
		Where(sq.Eq{"id": reportID}))
}

// buildListReportsQuery selects the owner's reports, newest first. The id
// breaks ties between reports created within the same clock tick.
func buildListReportsQuery(b sq.StatementBuilderType, filter models.ReportFilter) (string, []any, error) {
	query := b.
		Select(reportColumns...).
		From(reportsTable).
		Where(sq.Eq{"user_id": filter.UserID}).
		OrderBy("created_at DESC", "id DESC")

	if filter.Status != nil {
		query = query.Where(sq.Eq{"status": *filter.Status})
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	return buildQuery(query)
}

func buildCountReportsByStatusQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return buildQuery(b.
		Select("status", "COUNT(*)").
		From(reportsTable).
		Where(sq.Eq{"user_id": userID}).
		GroupBy("status"))
}

// buildUpdateReportStatusQuery only matches while the stored status still
// equals expected. The summary is left untouched when report.Summary is nil.
func buildUpdateReportStatusQuery(b sq.StatementBuilderType, report models.Report, expected models.ReportStatus) (string, []any, error) {
	query := b.
		Update(reportsTable).
		Set("status", report.Status).
		Set("updated_at", report.UpdatedAt)

	if report.Summary != nil {
		query = query.Set("summary", *report.Summary)
	}

	return buildQuery(query.Where(sq.Eq{
		"id":      report.ID,
		"user_id": report.UserID,
		"status":  expected,
	}))
}

func buildDeleteReportQuery(b sq.StatementBuilderType, reportID, userID int64) (string, []any, error) {
	return buildQuery(b.
		Delete(reportsTable).
		Where(sq.Eq{"id": reportID, "user_id": userID}))
}

// ── orphaned artifacts ────────────────────────────────────────────────────────

func buildSaveOrphanQuery(b sq.StatementBuilderType, orphan models.OrphanedArtifact) (string, []any, error) {
	return buildQuery(b.
		Insert(orphansTable).
		Columns("location", "reason", "attempts", "created_at").
		Values(orphan.Location, orphan.Reason, orphan.Attempts, orphan.CreatedAt))
}

func buildListOrphansQuery(b sq.StatementBuilderType, limit uint64) (string, []any, error) {
	query := b.
		Select(orphanColumns...).
		From(orphansTable).
		OrderBy("attempts ASC", "id ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	return buildQuery(query)
}

func buildDeleteOrphanQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return buildQuery(b.
		Delete(orphansTable).
		Where(sq.Eq{"id": id}))
}

func buildIncrementOrphanAttemptsQuery(b sq.StatementBuilderType, id int64, reason string) (string, []any, error) {
	return buildQuery(b.
		Update(orphansTable).
		Set("attempts", sq.Expr("attempts + 1")).
		Set("reason", reason).
		Where(sq.Eq{"id": id}))
}
