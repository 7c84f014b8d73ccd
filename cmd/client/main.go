package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/MKhiriev/epqs-catalog/internal/adapter"
	"github.com/MKhiriev/epqs-catalog/internal/config"
	"github.com/MKhiriev/epqs-catalog/internal/logger"
	"github.com/MKhiriev/epqs-catalog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errUsage = errors.New("usage")

const usage = `usage: epqs-client [flags] <command> [args]

commands:
  health                               server health
  version                              server version
  tools                                list active tools
  stats                                usage statistics
  register <username> <email> <pass>   create an account
  login <username> <pass>              log in and print the session token
  logout                               end the session
  log-usage <toolId> [duration]        record a tool usage (needs -token)
  build-info                           client build information

flags:
  -s          server base URL (EPQS_SERVER_ADDRESS)
  -timeout    request timeout (EPQS_REQUEST_TIMEOUT)
  -token      session token (EPQS_TOKEN)
  -log-level  log level (EPQS_LOG_LEVEL)
`

func main() {
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	log := logger.NewLogger("epqs-client")
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	catalog, err := adapter.NewHTTPCatalogAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create catalog adapter")
	}

	out, err := run(context.Background(), catalog, args)
	if errors.Is(err, errUsage) {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err = printJSON(out); err != nil {
		log.Fatal().Err(err).Msg("print result")
	}
}

// run executes one command and returns the value to print.
func run(ctx context.Context, catalog adapter.CatalogAdapter, args []string) (any, error) {
	if len(args) == 0 {
		return nil, errUsage
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "health":
		return catalog.Health(ctx)
	case "version":
		v, err := catalog.Version(ctx)
		return map[string]string{"version": v}, err
	case "tools":
		return catalog.ListTools(ctx)
	case "stats":
		return catalog.Statistics(ctx)
	case "register":
		if len(args) != 3 {
			return nil, errUsage
		}
		id, err := catalog.Register(ctx, models.RegisterRequest{Username: args[0], Email: args[1], Password: args[2]})
		return map[string]int64{"userId": id}, err
	case "login":
		if len(args) != 2 {
			return nil, errUsage
		}
		user, err := catalog.Login(ctx, models.LoginRequest{Username: args[0], Password: args[1]})
		if err != nil {
			return nil, err
		}
		return struct {
			User  models.UserSummary `json:"user"`
			Token string             `json:"token"`
		}{user, catalog.Token()}, nil
	case "logout":
		if err := catalog.Logout(ctx); err != nil {
			return nil, err
		}
		return map[string]string{"status": "logged out"}, nil
	case "log-usage":
		req, err := parseLogUsageArgs(args)
		if err != nil {
			return nil, err
		}
		if err = catalog.LogUsage(ctx, req); err != nil {
			return nil, err
		}
		return map[string]string{"status": "logged"}, nil
	case "build-info":
		info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
		return map[string]string{
			"version": info.BuildVersion(),
			"date":    info.BuildDate(),
			"commit":  info.BuildCommit(),
		}, nil
	default:
		return nil, errUsage
	}
}

func parseLogUsageArgs(args []string) (models.LogUsageRequest, error) {
	if len(args) < 1 || len(args) > 2 {
		return models.LogUsageRequest{}, errUsage
	}

	toolID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return models.LogUsageRequest{}, fmt.Errorf("invalid tool id %q: %w", args[0], err)
	}

	req := models.LogUsageRequest{ToolID: toolID}
	if len(args) == 2 {
		duration, err := strconv.Atoi(args[1])
		if err != nil {
			return models.LogUsageRequest{}, fmt.Errorf("invalid duration %q: %w", args[1], err)
		}
		req.SessionDuration = &duration
	}

	return req, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}
