// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/epqs-catalog/internal/service"
	"github.com/MKhiriev/epqs-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validRegisterRequest = models.RegisterRequest{
	Username: "alice",
	Email:    "alice@epqs.com",
	Password: "s3cret",
}

var aliceUser = models.User{
	ID:       7,
	Username: "alice",
	Email:    "alice@epqs.com",
	IsActive: true,
}

func stubSession(token string) models.Session {
	return models.Session{UserID: aliceUser.ID, Username: aliceUser.Username, Token: token, ExpiresAt: time.Now().Add(time.Hour)}
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	var got models.RegisterRequest
	h := newTestHandlerWith(t, service.Services{
		AuthService: &mockAuthService{
			registerUserFn: func(_ context.Context, r models.RegisterRequest) (int64, error) {
				got = r
				return 42, nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/register", jsonBody(t, validRegisterRequest))
	rec := httptest.NewRecorder()
	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, validRegisterRequest, got)

	resp := decodeBody[models.RegisterResponse](t, rec)
	assert.Equal(t, int64(42), resp.UserID)
	assert.Equal(t, "User created successfully", resp.Message)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{"invalid JSON", `{"username":`, nil, http.StatusBadRequest},
		{"empty body", ``, nil, http.StatusBadRequest},
		{"invalid data", `{}`, service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"username taken", `{}`, fmt.Errorf("%w: duplicate", service.ErrUsernameTaken), http.StatusConflict},
		{"fallback mode", `{}`, service.ErrStorageUnavailable, http.StatusServiceUnavailable},
		{"unexpected", `{}`, errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandlerWith(t, service.Services{
				AuthService: &mockAuthService{
					registerUserFn: func(context.Context, models.RegisterRequest) (int64, error) {
						if tt.serviceErr == nil {
							t.Fatal("service must not be called")
						}
						return 0, tt.serviceErr
					},
				},
			})

			rec := httptest.NewRecorder()
			h.register(rec, httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeBody[models.ErrorResponse](t, rec)
			assert.NotEmpty(t, resp.Error)
			assert.NotContains(t, resp.Error, "disk on fire")
		})
	}
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	const token = "signed.jwt.token"

	h := newTestHandlerWith(t, service.Services{
		AuthService: &mockAuthService{
			loginFn: func(_ context.Context, r models.LoginRequest) (models.User, error) {
				assert.Equal(t, "alice", r.Username)
				assert.Equal(t, "s3cret", r.Password)
				return aliceUser, nil
			},
			createSessionFn: func(_ context.Context, u models.User) (models.Session, error) {
				assert.Equal(t, aliceUser.ID, u.ID)
				return stubSession(token), nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"username":"alice","password":"s3cret"}`))
	rec := httptest.NewRecorder()
	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+token, rec.Header().Get("Authorization"))

	resp := decodeBody[models.LoginResponse](t, rec)
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, aliceUser.Summary(), resp.User)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Equal(t, token, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLogin_FallbackModeMessage(t *testing.T) {
	h := newTestHandlerWith(t, service.Services{
		AuthService: &mockAuthService{
			loginFn: func(context.Context, models.LoginRequest) (models.User, error) {
				return models.User{ID: 1, Username: "admin", Email: "admin@epqs.com", IsActive: true}, nil
			},
			createSessionFn: func(context.Context, models.User) (models.Session, error) {
				return stubSession("t"), nil
			},
		},
		AppInfoService: &mockAppInfoService{version: "test", mode: models.StorageFallback},
	})

	rec := httptest.NewRecorder()
	h.login(rec, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"username":"admin","password":"admin"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[models.LoginResponse](t, rec)
	assert.Equal(t, "Login successful (fallback mode)", resp.Message)
	assert.Equal(t, int64(1), resp.User.ID)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		loginErr   error
		sessionErr error
		wantStatus int
	}{
		{"invalid JSON", `not json`, nil, nil, http.StatusBadRequest},
		{"missing fields", `{"username":""}`, service.ErrInvalidDataProvided, nil, http.StatusBadRequest},
		{"wrong credentials", `{"username":"alice","password":"x"}`, service.ErrWrongCredentials, nil, http.StatusUnauthorized},
		{"storage unavailable", `{"username":"alice","password":"x"}`, service.ErrStorageUnavailable, nil, http.StatusServiceUnavailable},
		{"unexpected", `{"username":"alice","password":"x"}`, errors.New("boom"), nil, http.StatusInternalServerError},
		{"session failure", `{"username":"alice","password":"x"}`, nil, service.ErrSessionCreationFailed, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandlerWith(t, service.Services{
				AuthService: &mockAuthService{
					loginFn: func(context.Context, models.LoginRequest) (models.User, error) {
						if tt.loginErr != nil {
							return models.User{}, tt.loginErr
						}
						return aliceUser, nil
					},
					createSessionFn: func(context.Context, models.User) (models.Session, error) {
						return models.Session{}, tt.sessionErr
					},
				},
			})

			rec := httptest.NewRecorder()
			h.login(rec, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, rec.Header().Get("Authorization"))
			assert.Empty(t, rec.Result().Cookies())
			resp := decodeBody[models.ErrorResponse](t, rec)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout_ClearsCookie(t *testing.T) {
	h := newTestHandlerWith(t, service.Services{})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.logout(rec, httptest.NewRequest(http.MethodPost, "/api/logout", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Logout successful", decodeBody[models.MessageResponse](t, rec).Message)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, sessionCookieName, cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	}
}

func TestSessionCookie_SecureFlagFollowsConfig(t *testing.T) {
	h := newTestHandlerWith(t, service.Services{})
	h.cfg.SecureCookies = true

	rec := httptest.NewRecorder()
	h.setSessionCookie(rec, stubSession("t"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}
