package store

import (
	"context"
	"time"

	"github.com/MKhiriev/epqs-catalog/internal/config"
	"github.com/MKhiriev/epqs-catalog/internal/logger"
	"github.com/MKhiriev/epqs-catalog/internal/utils"
	"github.com/MKhiriev/epqs-catalog/models"
)

const (
	fallbackAdminUsername = "admin"
	fallbackAdminEmail    = "admin@epqs.com"
	fallbackAdminPassword = "admin"
)

var fallbackTools = []models.Tool{
	{ID: 1, Name: "5 Porquês", Category: "Qualidade", FilePath: "5_porques.html", IsActive: true},
	{ID: 2, Name: "5S", Category: "Organização", FilePath: "5s.html", IsActive: true},
	{ID: 3, Name: "FMEA", Category: "Qualidade", FilePath: "fmea.html", IsActive: true},
	{ID: 4, Name: "Ishikawa", Category: "Qualidade", FilePath: "ishikawa.html", IsActive: true},
	{ID: 5, Name: "Pareto", Category: "Estatística", FilePath: "pareto.html", IsActive: true},
}

var fallbackStatistics = []models.ToolStatistics{
	{Name: "5 Porquês", UsageCount: 5, AvgDuration: floatPtr(300)},
	{Name: "FMEA", UsageCount: 3, AvgDuration: floatPtr(600)},
	{Name: "Ishikawa", UsageCount: 2, AvgDuration: floatPtr(450)},
}

// fallbackStorage serves a fixed dataset while no database is reachable.
// Writes that need persistence fail with [ErrStorageUnavailable]; usage
// events are accepted and dropped.
type fallbackStorage struct {
	admin  *models.User
	logger *logger.Logger
}

// NewFallbackStorage returns the fixed-dataset [Storage]. When
// cfg.FallbackLogin is set the development account admin/admin can sign in;
// its password is hashed with the configured pepper.
func NewFallbackStorage(cfg config.App, log *logger.Logger) (Storage, error) {
	s := &fallbackStorage{logger: log}
	if !cfg.FallbackLogin {
		return s, nil
	}

	hash, salt, err := utils.NewPasswordHasher(cfg.PasswordHashKey).Hash(fallbackAdminPassword)
	if err != nil {
		return nil, err
	}
	s.admin = &models.User{
		ID:           1,
		Username:     fallbackAdminUsername,
		Email:        fallbackAdminEmail,
		PasswordHash: hash,
		PasswordSalt: salt,
		CreatedAt:    time.Now(),
		IsActive:     true,
	}

	return s, nil
}

func (s *fallbackStorage) FindUserByUsername(ctx context.Context, username string) (models.User, bool, error) {
	if s.admin == nil {
		return models.User{}, false, newStorageError("fallbackStorage.FindUserByUsername", ErrStorageUnavailable)
	}
	if username != s.admin.Username {
		return models.User{}, false, nil
	}
	return *s.admin, true, nil
}

func (s *fallbackStorage) CreateUser(ctx context.Context, user models.User) (int64, error) {
	return 0, newStorageError("fallbackStorage.CreateUser", ErrStorageUnavailable)
}

func (s *fallbackStorage) TouchLastLogin(ctx context.Context, userID int64) error {
	return newStorageError("fallbackStorage.TouchLastLogin", ErrStorageUnavailable)
}

func (s *fallbackStorage) ListTools(ctx context.Context) ([]models.Tool, error) {
	tools := make([]models.Tool, len(fallbackTools))
	copy(tools, fallbackTools)
	return tools, nil
}

func (s *fallbackStorage) InitializeSchema(ctx context.Context) error {
	return newStorageError("fallbackStorage.InitializeSchema", ErrStorageUnavailable)
}

func (s *fallbackStorage) LogToolUsage(ctx context.Context, event models.UsageEvent) error {
	logger.FromContext(ctx).Debug().
		Str("func", "fallbackStorage.LogToolUsage").
		Int64("user_id", event.UserID).
		Int64("tool_id", event.ToolID).
		Msg("usage event dropped in fallback mode")
	return nil
}

// GetUsageStatistics returns the fixed rows whatever the user.
func (s *fallbackStorage) GetUsageStatistics(ctx context.Context, userID *int64) ([]models.ToolStatistics, error) {
	stats := make([]models.ToolStatistics, len(fallbackStatistics))
	for i, item := range fallbackStatistics {
		stats[i] = models.ToolStatistics{
			Name:        item.Name,
			UsageCount:  item.UsageCount,
			AvgDuration: floatPtr(*item.AvgDuration),
		}
	}
	return stats, nil
}

func (s *fallbackStorage) Mode() models.StorageMode {
	return models.StorageFallback
}

func (s *fallbackStorage) Close() error {
	return nil
}

func floatPtr(v float64) *float64 {
	return &v
}
