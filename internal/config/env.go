package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv builds a T from environment variables. Fields are mapped through
// their `env` and `envPrefix` tags; unset variables leave zero values, so the
// result can be merged over the defaults.
func parseEnv[T any]() (*T, error) {
	cfg, err := env.ParseAs[T]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
