package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/epqs-catalog/internal/logger"
	"github.com/MKhiriev/epqs-catalog/migrations"
	"github.com/MKhiriev/epqs-catalog/models"
)

// migrateFunc applies schema migrations for a dialect.
type migrateFunc func(ctx context.Context, db *sql.DB, dialect string) error

type toolRepository struct {
	db      *DB
	migrate migrateFunc
}

func NewToolRepository(db *DB) ToolRepository {
	db.logger.Debug().Msg("creating tool repository")
	return &toolRepository{
		db:      db,
		migrate: migrations.Migrate,
	}
}

// ListTools returns every active tool ordered by name ascending.
func (r *toolRepository) ListTools(ctx context.Context) ([]models.Tool, error) {
	const op = "toolRepository.ListTools"
	log := logger.FromContext(ctx)

	query, args, err := buildListToolsQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", op).Msg("failed to create query")
		return nil, newStorageError(op, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", op).Msg("failed to execute query for listing tools")
		return nil, r.db.wrapError(op, ErrExecutingQuery, err)
	}
	defer rows.Close()

	tools := make([]models.Tool, 0, len(defaultCatalog))
	for rows.Next() {
		var (
			tool                            models.Tool
			description, category, filePath sql.NullString
		)
		if err := rows.Scan(&tool.ID, &tool.Name, &description, &category, &filePath); err != nil {
			log.Err(err).Str("func", op).Msg("failed to scan tool row")
			return nil, r.db.wrapError(op, ErrScanningRow, err)
		}
		tool.Description = description.String
		tool.Category = category.String
		tool.FilePath = filePath.String
		tool.IsActive = true

		tools = append(tools, tool)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", op).Msg("error iterating over tool rows")
		return nil, r.db.wrapError(op, ErrScanningRows, err)
	}

	return tools, nil
}

// InitializeSchema applies pending migrations and seeds the default catalog
// in one transaction. Existing tools are left untouched.
func (r *toolRepository) InitializeSchema(ctx context.Context) error {
	const op = "toolRepository.InitializeSchema"
	log := logger.FromContext(ctx)

	if err := r.migrate(ctx, r.db.DB, r.db.dialect); err != nil {
		log.Err(err).Str("func", op).Str("dialect", r.db.dialect).Msg("failed to apply migrations")
		return r.db.wrapError(op, ErrMigratingSchema, err)
	}

	query, args, err := buildSeedToolsQuery(r.db.builder, defaultCatalog)
	if err != nil {
		log.Err(err).Str("func", op).Msg("failed to create query")
		return newStorageError(op, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	err = r.db.withTx(ctx, op, func(tx *sql.Tx) error {
		res, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			log.Err(execErr).Str("func", op).Msg("failed to seed tools")
			return r.db.wrapError(op, ErrExecutingQuery, execErr)
		}
		if inserted, raErr := res.RowsAffected(); raErr == nil {
			log.Info().Str("func", op).Int64("inserted", inserted).Msg("tool catalog seeded")
		}
		return nil
	})
	if err != nil {
		return err
	}

	return nil
}
