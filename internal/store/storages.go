package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/epqs-catalog/internal/config"
	"github.com/MKhiriev/epqs-catalog/internal/logger"
	"github.com/MKhiriev/epqs-catalog/models"
)

// sqlStorage is the [Storage] backed by a relational database.
type sqlStorage struct {
	UserRepository
	ToolRepository
	UsageRepository

	db *DB
}

func newSQLStorage(db *DB) *sqlStorage {
	return &sqlStorage{
		UserRepository:  NewUserRepository(db),
		ToolRepository:  NewToolRepository(db),
		UsageRepository: NewUsageRepository(db),
		db:              db,
	}
}

func (s *sqlStorage) Mode() models.StorageMode {
	return models.StorageConnected
}

func (s *sqlStorage) Close() error {
	return s.db.Close()
}

// NewStorage picks the storage variant once at startup:
//
//  1. Empty DSN: fallback dataset.
//  2. DSN present: connect with the configured driver. If the database cannot
//     be opened or pinged the error is logged and the fallback dataset is used
//     without the fallback login: the admin credential exists only when no
//     real store is configured.
//
// A connected store is returned as is; the schema is created on demand by
// InitializeSchema.
func NewStorage(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (Storage, error) {
	dbCfg := cfg.Storage.DB
	if dbCfg.DSN == "" {
		log.Warn().Str("func", "NewStorage").Msg("no database configured, serving fallback dataset")
		return NewFallbackStorage(cfg.App, log)
	}

	db, err := connect(ctx, dbCfg, log)
	if err != nil {
		log.Err(err).Str("func", "NewStorage").Str("driver", dbCfg.Driver).
			Msg("database unreachable, serving fallback dataset")
		appCfg := cfg.App
		appCfg.FallbackLogin = false
		return NewFallbackStorage(appCfg, log)
	}

	return newSQLStorage(db), nil
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = config.InferDriver(cfg.DSN)
	}

	switch driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
