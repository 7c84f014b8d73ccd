// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied before any other source.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultSessionIssuer   = "epqs-catalog"
	DefaultSessionDuration = 24 * time.Hour
	DefaultVersion         = "1.0.0"
	DefaultLogLevel        = "debug"
)

// Supported storage drivers. The values double as goose dialect names.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionIssuer:   DefaultSessionIssuer,
			SessionDuration: DefaultSessionDuration,
			LogLevel:        DefaultLogLevel,
			Version:         DefaultVersion,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			AllowedOrigins: []string{"*"},
		},
	}
}
