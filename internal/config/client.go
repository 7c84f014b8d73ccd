package config

import (
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Client defaults.
const (
	DefaultClientServerAddress  = "http://localhost:8080"
	DefaultClientRequestTimeout = 15 * time.Second
	DefaultClientLogLevel       = "warn"
)

// ClientConfig configures the catalog command-line client.
type ClientConfig struct {
	// ServerAddress is the base URL of the catalog server.
	// Env: EPQS_SERVER_ADDRESS
	ServerAddress string `env:"EPQS_SERVER_ADDRESS"`

	// RequestTimeout bounds every request to the server.
	// Env: EPQS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"EPQS_REQUEST_TIMEOUT"`

	// Token is a session token printed by a previous login.
	// Env: EPQS_TOKEN
	Token string `env:"EPQS_TOKEN"`

	// Env: EPQS_LOG_LEVEL
	LogLevel string `env:"EPQS_LOG_LEVEL"`
}

// GetClientConfig merges defaults, environment variables and the leading
// flags of args, in that order. The arguments left after the flags are
// returned as the command to run.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg, err := parseEnv[ClientConfig]()
	if err != nil {
		return nil, nil, err
	}

	flagCfg, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg := &ClientConfig{
		ServerAddress:  DefaultClientServerAddress,
		RequestTimeout: DefaultClientRequestTimeout,
		LogLevel:       DefaultClientLogLevel,
	}
	for _, src := range []*ClientConfig{envCfg, flagCfg} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if cfg.ServerAddress == "" || cfg.RequestTimeout <= 0 {
		return nil, nil, ErrInvalidClientConfigs
	}

	return cfg, rest, nil
}

// parseClientFlags parses the client flags:
//
//	-s server base URL
//	-timeout request timeout (e.g., "10s")
//	-token session token
//	-log-level log level
func parseClientFlags(args []string) (*ClientConfig, []string, error) {
	fs := flag.NewFlagSet("epqs-client", flag.ContinueOnError)

	cfg := &ClientConfig{}
	fs.StringVar(&cfg.ServerAddress, "s", "", "Catalog server base URL")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&cfg.Token, "token", "", "Session token")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, fs.Args(), nil
}
