package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/epqs-catalog/internal/logger"
	"github.com/MKhiriev/epqs-catalog/internal/store"
	"github.com/MKhiriev/epqs-catalog/internal/validators"
	"github.com/MKhiriev/epqs-catalog/models"
)

type usageService struct {
	usageRepository store.UsageRepository
	validator       validators.Validator
	logger          *logger.Logger
}

func NewUsageService(usageRepository store.UsageRepository, validator validators.Validator, logger *logger.Logger) UsageService {
	return &usageService{
		usageRepository: usageRepository,
		validator:       validator,
		logger:          logger,
	}
}

// LogUsage records one usage event of the logged-in user.
//
// The user is checked before anything else: an event without a user is
// rejected with ErrNotAuthenticated and nothing is persisted.
func (s *usageService) LogUsage(ctx context.Context, event models.UsageEvent) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, event, validators.FieldUserID); err != nil {
		log.Debug().Err(err).Msg("usage event without user")
		return fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}

	if err := s.validator.Validate(ctx, event); err != nil {
		log.Debug().Err(err).Int64("user_id", event.UserID).Msg("invalid usage event")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.usageRepository.LogToolUsage(ctx, event); err != nil {
		log.Err(err).
			Int64("user_id", event.UserID).
			Int64("tool_id", event.ToolID).
			Msg("logging tool usage failed")
		return mapStorageError(err, "logging tool usage failed")
	}

	return nil
}

func (s *usageService) Statistics(ctx context.Context, userID *int64) ([]models.ToolStatistics, error) {
	stats, err := s.usageRepository.GetUsageStatistics(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("collecting usage statistics failed")
		return nil, mapStorageError(err, "collecting usage statistics failed")
	}

	return stats, nil
}
