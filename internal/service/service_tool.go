package service

import (
	"context"

	"github.com/MKhiriev/epqs-catalog/internal/logger"
	"github.com/MKhiriev/epqs-catalog/internal/store"
	"github.com/MKhiriev/epqs-catalog/models"
)

type toolService struct {
	toolRepository store.ToolRepository
	logger         *logger.Logger
}

func NewToolService(toolRepository store.ToolRepository, logger *logger.Logger) ToolService {
	return &toolService{
		toolRepository: toolRepository,
		logger:         logger,
	}
}

func (s *toolService) ListTools(ctx context.Context) ([]models.Tool, error) {
	tools, err := s.toolRepository.ListTools(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing tools failed")
		return nil, mapStorageError(err, "listing tools failed")
	}

	return tools, nil
}

// InitializeStorage creates the schema and seeds the tool catalog.
// Running it again is harmless.
func (s *toolService) InitializeStorage(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := s.toolRepository.InitializeSchema(ctx); err != nil {
		log.Err(err).Msg("storage initialization failed")
		return mapStorageError(err, "storage initialization failed")
	}

	log.Info().Msg("storage initialized")
	return nil
}
