package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/epqs-catalog/internal/config"
	"github.com/MKhiriev/epqs-catalog/internal/logger"
	"github.com/MKhiriev/epqs-catalog/internal/utils"
	"github.com/MKhiriev/epqs-catalog/models"
	"github.com/go-resty/resty/v2"
)

type httpCatalogAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPCatalogAdapter constructs the REST implementation of
// [CatalogAdapter]. The base URL is taken from cfg.ServerAddress; a missing
// scheme defaults to http. A token in cfg is stored right away.
func NewHTTPCatalogAdapter(cfg config.ClientConfig, logger *logger.Logger) (CatalogAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Str("trace_id", resp.Header().Get("X-Trace-ID")).
			Dur("duration", resp.Time()).
			Msg("catalog response")
		return nil
	})

	a := &httpCatalogAdapter{client: client, logger: logger}
	a.SetToken(cfg.Token)
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCatalogAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpCatalogAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpCatalogAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/api/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}

func (h *httpCatalogAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpCatalogAdapter) Register(ctx context.Context, request models.RegisterRequest) (int64, error) {
	var registered models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&registered).
		Post("/api/register")
	if err != nil {
		return 0, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return registered.UserID, nil
}

// Login takes the session token from the Authorization response header.
func (h *httpCatalogAdapter) Login(ctx context.Context, request models.LoginRequest) (models.UserSummary, error) {
	var login models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&login).
		Post("/api/login")
	if err != nil {
		return models.UserSummary{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserSummary{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.UserSummary{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return login.User, nil
}

func (h *httpCatalogAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpCatalogAdapter) ListTools(ctx context.Context) ([]models.Tool, error) {
	var tools models.ToolsResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&tools).
		Get("/api/tools")
	if err != nil {
		return nil, fmt.Errorf("list tools request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return tools.Tools, nil
}

func (h *httpCatalogAdapter) LogUsage(ctx context.Context, request models.LogUsageRequest) error {
	if h.Token() == "" {
		return ErrNoToken
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/log-usage")
	if err != nil {
		return fmt.Errorf("log usage request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpCatalogAdapter) Statistics(ctx context.Context) ([]models.ToolStatistics, error) {
	var stats models.StatisticsResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&stats).
		Get("/api/statistics")
	if err != nil {
		return nil, fmt.Errorf("statistics request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return stats.Statistics, nil
}

func (h *httpCatalogAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

