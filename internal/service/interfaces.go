package service

import (
	"context"

	"github.com/MKhiriev/epqs-catalog/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (int64, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateSession(ctx context.Context, user models.User) (models.Session, error)
	ParseSession(ctx context.Context, token string) (models.Session, error)
}

type ToolService interface {
	ListTools(ctx context.Context) ([]models.Tool, error)
	InitializeStorage(ctx context.Context) error
}

type UsageService interface {
	LogUsage(ctx context.Context, event models.UsageEvent) error
	// Statistics aggregates usage per tool, for one user when userID is set.
	Statistics(ctx context.Context, userID *int64) ([]models.ToolStatistics, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetStorageMode(ctx context.Context) models.StorageMode
}
