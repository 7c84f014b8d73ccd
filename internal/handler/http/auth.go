package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/epqs-catalog/internal/app"
	"github.com/MKhiriev/epqs-catalog/internal/logger"
	"github.com/MKhiriev/epqs-catalog/internal/service"
	"github.com/MKhiriev/epqs-catalog/internal/utils"
	"github.com/MKhiriev/epqs-catalog/models"
)

const sessionCookieName = "epqs_session"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	userID, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteError(w, app.MsgRegisterFieldsRequired, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrUsernameTaken):
			log.Err(err).Msg("username already exists")
			utils.WriteError(w, app.MsgUserAlreadyExists, http.StatusConflict)
			return
		case errors.Is(err, service.ErrStorageUnavailable):
			log.Err(err).Msg("registration without storage")
			utils.WriteError(w, app.MsgRegistrationUnavailable, http.StatusServiceUnavailable)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.RegisterResponse{
		Message: app.MsgUserCreated,
		UserID:  userID,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteError(w, app.MsgLoginFieldsRequired, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongCredentials):
			log.Err(err).Msg("no user was found/wrong password")
			utils.WriteError(w, app.MsgInvalidCredentials, http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrStorageUnavailable):
			log.Err(err).Msg("login without storage")
			utils.WriteError(w, app.MsgLoginUnavailable, http.StatusServiceUnavailable)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	session, err := h.services.AuthService.CreateSession(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of session failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Int64("user_id", user.ID).Msg("user successfully logged in")

	message := app.MsgLoginSuccessful
	if h.services.AppInfoService.GetStorageMode(ctx).IsFallback() {
		message += app.MsgFallbackSuffix
	}

	h.setSessionCookie(w, session)
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", session.Token))
	utils.WriteJSON(w, models.LoginResponse{
		Message: message,
		User:    user.Summary(),
	}, http.StatusOK)
}

// logout drops the session cookie. Tokens are stateless, so a copy kept by
// the client stays valid until it expires.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgLogoutSuccessful}, http.StatusOK)
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, session models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
