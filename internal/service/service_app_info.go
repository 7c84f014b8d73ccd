package service

import (
	"context"

	"github.com/MKhiriev/epqs-catalog/internal/config"
	"github.com/MKhiriev/epqs-catalog/internal/logger"
	"github.com/MKhiriev/epqs-catalog/internal/store"
	"github.com/MKhiriev/epqs-catalog/models"
)

type appInfoService struct {
	appVersion string
	storage    store.Storage

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, storage store.Storage, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		storage:    storage,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// GetStorageMode reports the storage variant chosen at startup.
func (s *appInfoService) GetStorageMode(ctx context.Context) models.StorageMode {
	return s.storage.Mode()
}
