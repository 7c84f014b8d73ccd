package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/epqs-catalog/internal/config"
	"github.com/MKhiriev/epqs-catalog/internal/logger"
	"github.com/MKhiriev/epqs-catalog/internal/service"
	"github.com/MKhiriev/epqs-catalog/internal/store"
	"github.com/MKhiriev/epqs-catalog/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioConfig(dsn string) *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			PasswordHashKey: "pepper",
			SessionSignKey:  "scenario-sign-key",
			SessionIssuer:   "epqs-test",
			SessionDuration: time.Hour,
			FallbackLogin:   true,
			Version:         "1.0.0",
		},
		Storage: config.Storage{DB: config.DB{DSN: dsn, Driver: config.DriverSQLite}},
		Server: config.Server{
			RequestTimeout: 5 * time.Second,
			AllowedOrigins: []string{"*"},
		},
	}
}

// newScenarioRouter wires the real services on top of the storage selected
// for dsn. An empty dsn selects the fallback dataset.
func newScenarioRouter(t *testing.T, dsn string) *chi.Mux {
	t.Helper()

	cfg := scenarioConfig(dsn)
	storage, err := store.NewStorage(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storage.Close() })

	services, err := service.NewServices(storage, cfg, logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, cfg.Server, logger.Nop()).Init()
}

func do(t *testing.T, router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestScenario_SQLite(t *testing.T) {
	router := newScenarioRouter(t, filepath.Join(t.TempDir(), "epqs.db"))

	rec := do(t, router, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.StorageConnected, decodeBody[models.StatusResponse](t, rec).DatabaseStatus)

	// schema creation is idempotent
	for i := 0; i < 2; i++ {
		rec = do(t, router, http.MethodPost, "/api/init-db", "", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec = do(t, router, http.MethodGet, "/api/tools", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	tools := decodeBody[models.ToolsResponse](t, rec).Tools
	require.NotEmpty(t, tools)
	names := make([]string, 0, len(tools))
	unique := map[string]bool{}
	for _, tool := range tools {
		names = append(names, tool.Name)
		unique[tool.Name] = true
	}
	assert.True(t, sort.StringsAreSorted(names))
	assert.Len(t, unique, len(tools))

	// a fresh database has no usage at all
	rec = do(t, router, http.MethodGet, "/api/statistics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	for _, row := range decodeBody[models.StatisticsResponse](t, rec).Statistics {
		assert.Zero(t, row.UsageCount, row.Name)
	}

	// alice registers, logs in with the same id and is refused a wrong password
	rec = do(t, router, http.MethodPost, "/api/register", `{"username":"alice","email":"alice@epqs.com","password":"wonderland"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	aliceID := decodeBody[models.RegisterResponse](t, rec).UserID
	assert.Positive(t, aliceID)

	rec = do(t, router, http.MethodPost, "/api/login", `{"username":"alice","password":"wonderland"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, aliceID, decodeBody[models.LoginResponse](t, rec).User.ID)
	token := strings.TrimPrefix(rec.Header().Get("Authorization"), "Bearer ")
	require.NotEmpty(t, token)

	rec = do(t, router, http.MethodPost, "/api/login", `{"username":"alice","password":"looking-glass"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/login", `{"username":"bob","password":"wonderland"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// the same username or email cannot be registered twice
	rec = do(t, router, http.MethodPost, "/api/register", `{"username":"alice","email":"other@epqs.com","password":"x"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	rec = do(t, router, http.MethodPost, "/api/register", `{"username":"alice2","email":"alice@epqs.com","password":"x"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	// anonymous usage is refused and leaves no trace
	rec = do(t, router, http.MethodPost, "/api/log-usage", `{"toolId":1}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = do(t, router, http.MethodPost, "/api/log-usage", `{"toolId":1}`, "forged.token.value")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/statistics", "", "")
	for _, row := range decodeBody[models.StatisticsResponse](t, rec).Statistics {
		assert.Zero(t, row.UsageCount, row.Name)
	}

	// alice uses a tool twice
	toolID := tools[0].ID
	for _, body := range []string{
		`{"toolId":` + itoa(toolID) + `,"sessionDuration":60,"dataSaved":{"step":1}}`,
		`{"toolId":` + itoa(toolID) + `,"sessionDuration":120}`,
	} {
		rec = do(t, router, http.MethodPost, "/api/log-usage", body, token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec = do(t, router, http.MethodPost, "/api/log-usage", `{}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(t, router, http.MethodPost, "/api/log-usage", `{"toolId":999999}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/statistics", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeBody[models.StatisticsResponse](t, rec).Statistics
	require.Len(t, stats, len(tools))
	assert.Equal(t, tools[0].Name, stats[0].Name)
	assert.Equal(t, int64(2), stats[0].UsageCount)
	require.NotNil(t, stats[0].AvgDuration)
	assert.InDelta(t, 90.0, *stats[0].AvgDuration, 0.001)

	// the save passthrough records a usage for a logged-in caller
	rec = do(t, router, http.MethodPost, "/api/save", `{"toolId":`+itoa(toolID)+`,"notes":"x"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, router, http.MethodGet, "/api/statistics", "", token)
	assert.Equal(t, int64(3), decodeBody[models.StatisticsResponse](t, rec).Statistics[0].UsageCount)

	rec = do(t, router, http.MethodPost, "/api/logout", "", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestScenario_Fallback(t *testing.T) {
	router := newScenarioRouter(t, "")

	rec := do(t, router, http.MethodGet, "/api/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.StorageFallback, decodeBody[models.HealthResponse](t, rec).Database)

	rec = do(t, router, http.MethodGet, "/api/tools", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tools":[
		{"id":1,"name":"5 Porquês","category":"Qualidade","filePath":"5_porques.html"},
		{"id":2,"name":"5S","category":"Organização","filePath":"5s.html"},
		{"id":3,"name":"FMEA","category":"Qualidade","filePath":"fmea.html"},
		{"id":4,"name":"Ishikawa","category":"Qualidade","filePath":"ishikawa.html"},
		{"id":5,"name":"Pareto","category":"Estatística","filePath":"pareto.html"}
	]}`, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/api/statistics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"statistics":[
		{"name":"5 Porquês","usageCount":5,"avgDuration":300},
		{"name":"FMEA","usageCount":3,"avgDuration":600},
		{"name":"Ishikawa","usageCount":2,"avgDuration":450}
	]}`, rec.Body.String())

	rec = do(t, router, http.MethodPost, "/api/register", `{"username":"alice","email":"alice@epqs.com","password":"x"}`, "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/init-db", "", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/login", `{"username":"admin","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/login", `{"username":"admin","password":"admin"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	login := decodeBody[models.LoginResponse](t, rec)
	assert.Equal(t, "Login successful (fallback mode)", login.Message)
	assert.Equal(t, models.UserSummary{ID: 1, Username: "admin", Email: "admin@epqs.com"}, login.User)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	// the session cookie alone authenticates
	req := httptest.NewRequest(http.MethodPost, "/api/log-usage", strings.NewReader(`{"toolId":3}`))
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Usage logged (fallback mode)", decodeBody[models.MessageResponse](t, rec).Message)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
