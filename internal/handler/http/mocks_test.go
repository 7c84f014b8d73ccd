package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/epqs-catalog/internal/config"
	"github.com/MKhiriev/epqs-catalog/internal/logger"
	"github.com/MKhiriev/epqs-catalog/internal/service"
	"github.com/MKhiriev/epqs-catalog/internal/utils"
	"github.com/MKhiriev/epqs-catalog/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn  func(ctx context.Context, request models.RegisterRequest) (int64, error)
	loginFn         func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createSessionFn func(ctx context.Context, user models.User) (models.Session, error)
	parseSessionFn  func(ctx context.Context, token string) (models.Session, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (int64, error) {
	return m.registerUserFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) CreateSession(ctx context.Context, user models.User) (models.Session, error) {
	return m.createSessionFn(ctx, user)
}

func (m *mockAuthService) ParseSession(ctx context.Context, token string) (models.Session, error) {
	if m.parseSessionFn == nil {
		return models.Session{}, service.ErrSessionIsExpiredOrInvalid
	}
	return m.parseSessionFn(ctx, token)
}

type mockToolService struct {
	listToolsFn         func(ctx context.Context) ([]models.Tool, error)
	initializeStorageFn func(ctx context.Context) error
}

func (m *mockToolService) ListTools(ctx context.Context) ([]models.Tool, error) {
	return m.listToolsFn(ctx)
}

func (m *mockToolService) InitializeStorage(ctx context.Context) error {
	return m.initializeStorageFn(ctx)
}

type mockUsageService struct {
	logUsageFn   func(ctx context.Context, event models.UsageEvent) error
	statisticsFn func(ctx context.Context, userID *int64) ([]models.ToolStatistics, error)
}

func (m *mockUsageService) LogUsage(ctx context.Context, event models.UsageEvent) error {
	return m.logUsageFn(ctx, event)
}

func (m *mockUsageService) Statistics(ctx context.Context, userID *int64) ([]models.ToolStatistics, error) {
	return m.statisticsFn(ctx, userID)
}

type mockAppInfoService struct {
	version string
	mode    models.StorageMode
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetStorageMode(_ context.Context) models.StorageMode {
	if m.mode == "" {
		return models.StorageConnected
	}
	return m.mode
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestServices fills every service not set in svcs with a mock that
// fails the test when called.
func newTestServices(t *testing.T, svcs service.Services) *service.Services {
	t.Helper()

	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	if svcs.ToolService == nil {
		svcs.ToolService = &mockToolService{
			listToolsFn: func(context.Context) ([]models.Tool, error) {
				t.Fatal("unexpected ListTools call")
				return nil, nil
			},
			initializeStorageFn: func(context.Context) error {
				t.Fatal("unexpected InitializeStorage call")
				return nil
			},
		}
	}
	if svcs.UsageService == nil {
		svcs.UsageService = &mockUsageService{
			logUsageFn: func(context.Context, models.UsageEvent) error {
				t.Fatal("unexpected LogUsage call")
				return nil
			},
			statisticsFn: func(context.Context, *int64) ([]models.ToolStatistics, error) {
				t.Fatal("unexpected Statistics call")
				return nil, nil
			},
		}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}

	return &svcs
}

func testServerConfig() config.Server {
	return config.Server{AllowedOrigins: []string{"*"}}
}

func newTestHandlerWith(t *testing.T, svcs service.Services) *Handler {
	t.Helper()
	return NewHandler(newTestServices(t, svcs), testServerConfig(), logger.Nop())
}

// newTestHandler builds a Handler for middleware tests.
func newTestHandler() *Handler {
	return &Handler{
		services: &service.Services{AuthService: &mockAuthService{}},
		cfg:      testServerConfig(),
		logger:   logger.Nop(),
	}
}

func jsonBody(t *testing.T, v any) *strings.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(b))
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

// withTestSession returns r carrying a session of userID, as the session
// middleware would attach it.
func withTestSession(r *http.Request, userID int64) *http.Request {
	return r.WithContext(utils.WithSession(r.Context(), models.Session{UserID: userID, Username: "alice"}))
}
