// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/MKhiriev/go-report-keeper/models"
)

// orphanRepository is the SQL implementation of [OrphanRepository] over the
// "orphaned_artifacts" table.
type orphanRepository struct {
	*DB
	logger *logger.Logger
}

func NewOrphanRepository(db *DB, logger *logger.Logger) OrphanRepository {
	logger.Debug().Msg("creating orphaned artifact repository")
	return &orphanRepository{
		DB:     db,
		logger: logger,
	}
}

func (o *orphanRepository) SaveOrphan(ctx context.Context, orphan models.OrphanedArtifact) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveOrphanQuery(o.builder, orphan)
	if err != nil {
		log.Err(err).Str("func", "orphanRepository.SaveOrphan").Msg("failed to create query")
		return err
	}

	if _, err = o.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "orphanRepository.SaveOrphan").
			Str("location", orphan.Location).
			Msg("failed to save orphaned artifact")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListOrphans returns up to limit records, least retried first and then
// oldest first. A zero limit returns every record.
func (o *orphanRepository) ListOrphans(ctx context.Context, limit uint64) ([]models.OrphanedArtifact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListOrphansQuery(o.builder, limit)
	if err != nil {
		log.Err(err).Str("func", "orphanRepository.ListOrphans").Msg("failed to create query")
		return nil, err
	}

	var orphans []models.OrphanedArtifact
	err = o.withRetry(ctx, func() error {
		var listErr error
		orphans, listErr = o.queryOrphans(ctx, query, args...)
		return listErr
	})
	if err != nil {
		log.Err(err).Str("func", "orphanRepository.ListOrphans").Msg("failed to list orphaned artifacts")
		return nil, err
	}

	return orphans, nil
}

func (o *orphanRepository) queryOrphans(ctx context.Context, query string, args ...any) ([]models.OrphanedArtifact, error) {
	rows, err := o.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	orphans := make([]models.OrphanedArtifact, 0, 16)
	for rows.Next() {
		var orphan models.OrphanedArtifact
		if err := rows.Scan(&orphan.ID, &orphan.Location, &orphan.Reason, &orphan.Attempts, &orphan.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		orphans = append(orphans, orphan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return orphans, nil
}

func (o *orphanRepository) DeleteOrphan(ctx context.Context, id int64) error {
	query, args, err := buildDeleteOrphanQuery(o.builder, id)
	if err != nil {
		return err
	}

	return o.execAffectingOne(ctx, "orphanRepository.DeleteOrphan", id, query, args)
}

func (o *orphanRepository) IncrementOrphanAttempts(ctx context.Context, id int64, reason string) error {
	query, args, err := buildIncrementOrphanAttemptsQuery(o.builder, id, reason)
	if err != nil {
		return err
	}

	return o.execAffectingOne(ctx, "orphanRepository.IncrementOrphanAttempts", id, query, args)
}

func (o *orphanRepository) execAffectingOne(ctx context.Context, funcName string, id int64, query string, args []any) error {
	var affected int64
	err := o.withRetry(ctx, func() error {
		result, execErr := o.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", funcName).
			Int64("orphan_id", id).
			Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrOrphanNotFound
	}

	return nil
}
