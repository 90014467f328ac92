// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-report-keeper/models"
)

var (
	pgBuilder     = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func ptr[T any](v T) *T { return &v }

func Test_buildCreateUserQuery(t *testing.T) {
	now := time.Now()
	user := models.User{Email: "a@b.c", PasswordHash: "hash", Role: models.RoleUser, CreatedAt: now, UpdatedAt: now}

	query, args, err := buildCreateUserQuery(pgBuilder, user)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into users")
	assert.Contains(t, q, "returning user_id")
	assert.Contains(t, query, "$5")
	assert.Equal(t, []any{"a@b.c", "hash", models.RoleUser, now, now}, args)
}

func Test_buildFindUserByEmailQuery(t *testing.T) {
	query, args, err := buildFindUserByEmailQuery(sqliteBuilder, "a@b.c")
	require.NoError(t, err)

	q := strings.ToLower(query)
	for _, col := range userColumns {
		assert.Contains(t, q, col)
	}
	assert.Contains(t, q, "where email = ?")
	assert.Equal(t, []any{"a@b.c"}, args)
}

func Test_buildCreateReportQuery(t *testing.T) {
	report := models.Report{
		UserID:           7,
		Name:             "q1",
		Type:             "pdf",
		ArtifactLocation: "7/x.pdf",
		Status:           models.StatusUploaded,
		ReportDate:       models.NewDate(2024, time.January, 15),
	}

	query, args, err := buildCreateReportQuery(pgBuilder, report)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into reports")
	assert.Contains(t, q, "returning id")
	assert.NotContains(t, q, "(id,", "id is generated by the database")
	assert.Contains(t, query, "$9")
	require.Len(t, args, 9)
	assert.Equal(t, int64(7), args[0])
	assert.Equal(t, models.StatusUploaded, args[4])
}

func Test_buildGetReportByIDQuery(t *testing.T) {
	query, args, err := buildGetReportByIDQuery(pgBuilder, 42)
	require.NoError(t, err)

	q := strings.ToLower(query)
	for _, col := range reportColumns {
		assert.Contains(t, q, col)
	}
	assert.Contains(t, q, "from reports")
	assert.Contains(t, q, "where id = $1")
	assert.NotContains(t, q, "user_id =", "lookup is by id only")
	assert.Equal(t, []any{int64(42)}, args)
}

func Test_buildListReportsQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     models.ReportFilter
		wantParts  []string
		avoidParts []string
		wantArgs   []any
	}{
		{
			name:       "owner only",
			filter:     models.ReportFilter{UserID: 3},
			wantParts:  []string{"where user_id = ?", "order by created_at desc, id desc"},
			avoidParts: []string{"status = ?", "limit", "offset"},
			wantArgs:   []any{int64(3)},
		},
		{
			name:      "status and paging",
			filter:    models.ReportFilter{UserID: 3, Status: ptr(models.StatusProcessing), Limit: 10, Offset: 20},
			wantParts: []string{"user_id = ?", "status = ?", "limit 10", "offset 20"},
			wantArgs:  []any{int64(3), "PROCESSING"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListReportsQuery(sqliteBuilder, tt.filter)
			require.NoError(t, err)

			q := strings.ToLower(query)
			for _, part := range tt.wantParts {
				assert.Contains(t, q, part)
			}
			for _, part := range tt.avoidParts {
				assert.NotContains(t, q, part)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildCountReportsByStatusQuery(t *testing.T) {
	query, args, err := buildCountReportsByStatusQuery(pgBuilder, 5)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "count(*)")
	assert.Contains(t, q, "group by status")
	assert.Equal(t, []any{int64(5)}, args)
}

func Test_buildUpdateReportStatusQuery(t *testing.T) {
	now := time.Now()
	report := models.Report{ID: 1, UserID: 2, Status: models.StatusProcessing, UpdatedAt: now}

	t.Run("without summary", func(t *testing.T) {
		query, args, err := buildUpdateReportStatusQuery(pgBuilder, report, models.StatusUploaded)
		require.NoError(t, err)

		q := strings.ToLower(query)
		assert.Contains(t, q, "update reports set status = $1, updated_at = $2")
		assert.NotContains(t, q, "summary")
		assert.Contains(t, q, "id = $3")
		assert.Contains(t, q, "status = $4")
		assert.Contains(t, q, "user_id = $5")
		// where values go through driver.Valuer, set values are kept as is
		assert.Equal(t, []any{models.StatusProcessing, now, int64(1), "UPLOADED", int64(2)}, args)
	})

	t.Run("with summary", func(t *testing.T) {
		withSummary := report
		withSummary.Summary = ptr("done")

		query, args, err := buildUpdateReportStatusQuery(pgBuilder, withSummary, models.StatusUploaded)
		require.NoError(t, err)

		assert.Contains(t, strings.ToLower(query), "summary = $3")
		assert.Len(t, args, 6)
		assert.Equal(t, "done", args[2])
	})
}

func Test_buildDeleteReportQuery(t *testing.T) {
	query, args, err := buildDeleteReportQuery(pgBuilder, 9, 4)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "delete from reports")
	assert.Contains(t, q, "id = $1")
	assert.Contains(t, q, "user_id = $2")
	assert.Equal(t, []any{int64(9), int64(4)}, args)
}

func Test_buildOrphanQueries(t *testing.T) {
	query, args, err := buildListOrphansQuery(sqliteBuilder, 25)
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(query), "order by attempts asc, id asc limit 25")
	assert.Empty(t, args)

	query, args, err = buildIncrementOrphanAttemptsQuery(pgBuilder, 3, "still failing")
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(query), "attempts = attempts + 1")
	assert.Equal(t, []any{"still failing", int64(3)}, args)

	query, args, err = buildDeleteOrphanQuery(pgBuilder, 3)
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(query), "delete from orphaned_artifacts where id = $1")
	assert.Equal(t, []any{int64(3)}, args)
}
