package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/epqs-catalog/internal/logger"
	"github.com/MKhiriev/epqs-catalog/models"
)

type usageRepository struct {
	db *DB
}

func NewUsageRepository(db *DB) UsageRepository {
	db.logger.Debug().Msg("creating usage repository")
	return &usageRepository{db: db}
}

// LogToolUsage appends one usage event. An unknown user or tool is reported
// as [ErrReferenceViolation].
func (r *usageRepository) LogToolUsage(ctx context.Context, event models.UsageEvent) error {
	const op = "usageRepository.LogToolUsage"
	log := logger.FromContext(ctx)

	query, args, err := buildLogToolUsageQuery(r.db.builder, event)
	if err != nil {
		log.Err(err).Str("func", op).Msg("failed to create query")
		return newStorageError(op, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	return r.db.withTx(ctx, op, func(tx *sql.Tx) error {
		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			log.Err(execErr).
				Str("func", op).
				Int64("user_id", event.UserID).
				Int64("tool_id", event.ToolID).
				Msg("failed to insert usage event")
			return r.db.wrapError(op, ErrExecutingQuery, execErr)
		}
		return nil
	})
}

// GetUsageStatistics returns one row per active tool, most used first.
func (r *usageRepository) GetUsageStatistics(ctx context.Context, userID *int64) ([]models.ToolStatistics, error) {
	const op = "usageRepository.GetUsageStatistics"
	log := logger.FromContext(ctx)

	query, args, err := buildUsageStatisticsQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", op).Msg("failed to create query")
		return nil, newStorageError(op, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", op).Msg("failed to execute query for usage statistics")
		return nil, r.db.wrapError(op, ErrExecutingQuery, err)
	}
	defer rows.Close()

	stats := make([]models.ToolStatistics, 0, len(defaultCatalog))
	for rows.Next() {
		var (
			item models.ToolStatistics
			avg  sql.NullFloat64
		)
		if err := rows.Scan(&item.Name, &item.UsageCount, &avg); err != nil {
			log.Err(err).Str("func", op).Msg("failed to scan statistics row")
			return nil, r.db.wrapError(op, ErrScanningRow, err)
		}
		if avg.Valid {
			item.AvgDuration = &avg.Float64
		}

		stats = append(stats, item)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", op).Msg("error iterating over statistics rows")
		return nil, r.db.wrapError(op, ErrScanningRows, err)
	}

	return stats, nil
}
