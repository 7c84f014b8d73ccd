// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the catalog REST API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/epqs-catalog/models"
)

// CatalogAdapter talks to a catalog server. Implementations keep the session
// token returned by Login and attach it to later requests.
type CatalogAdapter interface {
	// SetToken stores the session token attached to subsequent requests.
	SetToken(token string)

	// Token returns the stored session token, empty before a login.
	Token() string

	Health(ctx context.Context) (models.HealthResponse, error)
	Version(ctx context.Context) (string, error)

	// Register creates an account and returns its id. It does not log in.
	Register(ctx context.Context, request models.RegisterRequest) (int64, error)

	// Login authenticates and stores the issued session token.
	Login(ctx context.Context, request models.LoginRequest) (models.UserSummary, error)

	// Logout asks the server to drop the session cookie and forgets the
	// stored token.
	Logout(ctx context.Context) error

	ListTools(ctx context.Context) ([]models.Tool, error)

	// LogUsage records a tool usage. It needs a session token.
	LogUsage(ctx context.Context, request models.LogUsageRequest) error

	// Statistics returns usage statistics, scoped to the logged-in user when
	// a token is stored.
	Statistics(ctx context.Context) ([]models.ToolStatistics, error)
}
