package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/epqs-catalog/internal/config"
	"github.com/MKhiriev/epqs-catalog/internal/logger"
)

// DB wraps a connection pool with its dialect: the SQL placeholder format,
// the driver error classifier and the migration dialect.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case config.DriverSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// wrapError builds the [StorageError] for a failed step of op. base is the
// low-level sentinel of the step; the driver classification, when known, is
// put in front of it.
func (db *DB) wrapError(op string, base, err error) error {
	if db.errorClassificator != nil {
		if kind := db.errorClassificator.Classify(err); kind != nil {
			return newStorageError(op, fmt.Errorf("%w: %w: %w", kind, base, err))
		}
	}
	return newStorageError(op, fmt.Errorf("%w: %w", base, err))
}

// withTx runs fn in a transaction. The transaction is rolled back when fn
// fails and committed otherwise. Errors returned by fn are passed through.
func (db *DB) withTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", op).Msg("failed to begin transaction")
		return db.wrapError(op, ErrBeginningTransaction, err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Err(rbErr).Str("func", op).Msg("failed to rollback transaction")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", op).Msg("failed to commit transaction")
		return db.wrapError(op, ErrCommitingTransaction, err)
	}

	return nil
}
