package service

import (
	"fmt"

	"github.com/MKhiriev/epqs-catalog/internal/config"
	"github.com/MKhiriev/epqs-catalog/internal/logger"
	"github.com/MKhiriev/epqs-catalog/internal/store"
	"github.com/MKhiriev/epqs-catalog/internal/validators"
)

type Services struct {
	AuthService    AuthService
	ToolService    ToolService
	UsageService   UsageService
	AppInfoService AppInfoService
}

func NewServices(storage store.Storage, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	appInfoService, err := NewAppInfoService(cfg.App, storage, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storage, validator, cfg.App, logger),
		ToolService:    NewToolService(storage, logger),
		UsageService:   NewUsageService(storage, validator, logger),
		AppInfoService: appInfoService,
	}, nil
}
