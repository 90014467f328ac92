// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-report-keeper/internal/config"
	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/MKhiriev/go-report-keeper/internal/metrics"
	"github.com/MKhiriev/go-report-keeper/internal/store"
)

// orphanAlertAttempts is the attempt count from which a failing deletion is
// logged as an error instead of a warning.
const orphanAlertAttempts = 10

// OrphanCleaner periodically retries the deletion of artifacts whose report
// rows are already gone. A row of the orphan table is removed once its
// artifact is; a failed attempt only bumps the attempt counter.
type OrphanCleaner struct {
	orphans   store.OrphanRepository
	artifacts store.ArtifactStorage

	interval time.Duration
	batch    uint64

	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewOrphanCleaner(storages *store.Storages, cfg config.Workers, m *metrics.Metrics, logger *logger.Logger) *OrphanCleaner {
	return &OrphanCleaner{
		orphans:   storages.OrphanRepository,
		artifacts: storages.ArtifactStorage,
		interval:  cfg.OrphanCleanupInterval,
		batch:     cfg.OrphanCleanupBatch,
		metrics:   m,
		logger:    logger,
	}
}

// Run sweeps once right away and then every interval until ctx is done.
// A non-positive interval disables the cleaner.
func (c *OrphanCleaner) Run(ctx context.Context) {
	if c.interval <= 0 {
		c.logger.Info().Msg("orphan cleaner disabled")
		return
	}

	c.logger.Info().Dur("interval", c.interval).Uint64("batch", c.batch).Msg("orphan cleaner started")

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		if _, err := c.Sweep(ctx); err != nil {
			c.logger.Err(err).Str("func", "OrphanCleaner.Run").Msg("orphan sweep failed")
		}

		select {
		case <-ctx.Done():
			c.logger.Info().Msg("orphan cleaner stopped")
			return
		case <-ticker.C:
		}
	}
}

// Sweep handles one batch of orphans and returns how many artifacts were
// removed.
func (c *OrphanCleaner) Sweep(ctx context.Context) (int, error) {
	orphans, err := c.orphans.ListOrphans(ctx, c.batch)
	if err != nil {
		return 0, fmt.Errorf("list orphans: %w", err)
	}

	deleted := 0
	for _, orphan := range orphans {
		if ctx.Err() != nil {
			return deleted, ctx.Err()
		}

		if err = c.artifacts.Delete(ctx, orphan.Location); err != nil {
			c.metrics.RecordOrphanCleanup(metrics.CleanupFailed)
			attempts := orphan.Attempts + 1
			event := c.logger.Warn()
			if attempts >= orphanAlertAttempts {
				event = c.logger.Error()
			}
			event.Err(err).
				Int64("orphan_id", orphan.ID).
				Str("location", orphan.Location).
				Int("attempts", attempts).
				Msg("orphaned artifact still not deletable")
			if err = c.orphans.IncrementOrphanAttempts(ctx, orphan.ID, err.Error()); err != nil {
				c.logger.Err(err).Str("func", "OrphanCleaner.Sweep").Int64("orphan_id", orphan.ID).Msg("error updating orphan")
			}
			continue
		}

		if err = c.orphans.DeleteOrphan(ctx, orphan.ID); err != nil {
			c.logger.Err(err).Str("func", "OrphanCleaner.Sweep").Int64("orphan_id", orphan.ID).Msg("error removing orphan row")
			continue
		}

		c.metrics.RecordOrphanCleanup(metrics.CleanupDeleted)
		deleted++
	}

	if deleted > 0 {
		c.logger.Info().Int("deleted", deleted).Int("batch", len(orphans)).Msg("orphaned artifacts removed")
	}
	return deleted, nil
}
