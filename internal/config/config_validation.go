// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

const generatedSignKeyLen = 32

// resolve fills values derived from other fields: the storage driver is
// inferred from the DSN and a missing session key is replaced by a random
// per-process one.
func (cfg *StructuredConfig) resolve() error {
	if cfg.Storage.DB.DSN != "" && cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = InferDriver(cfg.Storage.DB.DSN)
	}

	if cfg.App.SessionSignKey == "" {
		key := make([]byte, generatedSignKeyLen)
		if _, err := rand.Read(key); err != nil {
			return fmt.Errorf("error generating session sign key: %w", err)
		}
		cfg.App.SessionSignKey = hex.EncodeToString(key)
		cfg.App.SessionSignKeyGenerated = true
	}

	return nil
}

// validate checks that the merged [StructuredConfig] can be used at startup.
// A missing DSN is valid: the server then runs in fallback mode.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	switch cfg.Storage.DB.Driver {
	case "", DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.App.SessionDuration <= 0 || cfg.App.SessionIssuer == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

// InferDriver guesses the storage driver from a DSN. URL-style and
// key/value PostgreSQL DSNs map to [DriverPostgres]; "file:" DSNs, ":memory:"
// and *.db / *.sqlite paths map to [DriverSQLite].
func InferDriver(dsn string) string {
	lower := strings.ToLower(dsn)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DriverPostgres
	case strings.HasPrefix(lower, "file:"), strings.HasPrefix(lower, ":memory:"),
		strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"):
		return DriverSQLite
	default:
		return DriverPostgres
	}
}
