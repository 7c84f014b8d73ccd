package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/epqs-catalog/internal/app"
	"github.com/MKhiriev/epqs-catalog/internal/logger"
	"github.com/MKhiriev/epqs-catalog/internal/service"
	"github.com/MKhiriev/epqs-catalog/internal/utils"
	"github.com/MKhiriev/epqs-catalog/models"
)

// logUsage records a tool usage of the logged-in user. The session is
// checked before the body is even read.
func (h *Handler) logUsage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		log.Info().Msg("usage logging without session")
		utils.WriteError(w, app.MsgNotLoggedIn, http.StatusUnauthorized)
		return
	}

	var request models.LogUsageRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	err := h.services.UsageService.LogUsage(ctx, models.UsageEvent{
		UserID:          session.UserID,
		ToolID:          request.ToolID,
		SessionDuration: request.SessionDuration,
		DataSaved:       request.DataSaved,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthenticated):
			log.Err(err).Msg("usage logging without user")
			utils.WriteError(w, app.MsgNotLoggedIn, http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteError(w, app.MsgToolIDRequired, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrUnknownReference):
			log.Err(err).Msg("unknown tool or user")
			utils.WriteError(w, app.MsgUnknownTool, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrStorageUnavailable):
			log.Err(err).Msg("usage logging without storage")
			utils.WriteError(w, app.MsgStorageUnavailable, http.StatusServiceUnavailable)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during usage logging")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	message := app.MsgUsageLogged
	if h.services.AppInfoService.GetStorageMode(ctx).IsFallback() {
		message = app.MsgUsageLoggedFallback
	}
	utils.WriteJSON(w, models.MessageResponse{Message: message}, http.StatusOK)
}

// statistics aggregates usage per tool, scoped to the caller when a session
// is present.
func (h *Handler) statistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var userID *int64
	if id, ok := utils.GetUserIDFromContext(ctx); ok {
		userID = &id
	}

	stats, err := h.services.UsageService.Statistics(ctx, userID)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("collecting statistics failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if stats == nil {
		stats = []models.ToolStatistics{}
	}
	utils.WriteJSON(w, models.StatisticsResponse{Statistics: stats}, http.StatusOK)
}

// save accepts any JSON document. When it names a tool and the caller has
// a session, the document is recorded as a usage of that tool; recording
// failures do not fail the request.
func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var content json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	log.Debug().RawJSON("content", content).Msg("data received")

	var toolRef struct {
		ToolID *int64 `json:"toolId"`
	}
	// not every document is an object
	_ = json.Unmarshal(content, &toolRef)

	if session, ok := utils.GetSessionFromContext(ctx); ok && toolRef.ToolID != nil {
		err := h.services.UsageService.LogUsage(ctx, models.UsageEvent{
			UserID:    session.UserID,
			ToolID:    *toolRef.ToolID,
			DataSaved: content,
		})
		if err != nil {
			log.Warn().Err(err).Int64("tool_id", *toolRef.ToolID).Msg("usage of saved data was not recorded")
		}
	}

	utils.WriteJSON(w, models.SaveResponse{
		Status:  "success",
		Message: app.MsgDataSaved,
	}, http.StatusOK)
}
