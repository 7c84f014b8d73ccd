package store

import (
	"context"

	"github.com/MKhiriev/epqs-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// FindUserByUsername looks a user up by username. A missing user is
	// reported as found=false with a nil error.
	FindUserByUsername(ctx context.Context, username string) (user models.User, found bool, err error)
	// CreateUser inserts a new user and returns its id.
	CreateUser(ctx context.Context, user models.User) (int64, error)
	// TouchLastLogin records the current time as the user's last login.
	TouchLastLogin(ctx context.Context, userID int64) error
}

// ToolRepository serves the tool catalog.
type ToolRepository interface {
	// ListTools returns the active tools ordered by name.
	ListTools(ctx context.Context) ([]models.Tool, error)
	// InitializeSchema creates missing tables and seeds the catalog.
	// It is idempotent.
	InitializeSchema(ctx context.Context) error
}

// UsageRepository records and aggregates tool usage.
type UsageRepository interface {
	LogToolUsage(ctx context.Context, event models.UsageEvent) error
	// GetUsageStatistics aggregates usage per active tool, for one user when
	// userID is not nil and for everyone otherwise.
	GetUsageStatistics(ctx context.Context, userID *int64) ([]models.ToolStatistics, error)
}

// Storage is the data access layer of the catalog. The variant is chosen
// once at startup by [NewStorage].
type Storage interface {
	UserRepository
	ToolRepository
	UsageRepository

	// Mode reports whether real storage is connected.
	Mode() models.StorageMode
	Close() error
}

// ErrorClassificator maps a driver error to one of the classification
// sentinels ([ErrConstraintViolation], [ErrReferenceViolation],
// [ErrStorageUnavailable]) or nil when the error is not recognised.
type ErrorClassificator interface {
	Classify(err error) error
}
