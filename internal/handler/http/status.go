package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/epqs-catalog/internal/app"
	"github.com/MKhiriev/epqs-catalog/internal/logger"
	"github.com/MKhiriev/epqs-catalog/internal/utils"
	"github.com/MKhiriev/epqs-catalog/models"
)

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	utils.WriteJSON(w, models.StatusResponse{
		Message:        app.MsgServerRunning,
		Version:        h.services.AppInfoService.GetAppVersion(ctx),
		DatabaseStatus: h.services.AppInfoService.GetStorageMode(ctx),
	}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Database:  h.services.AppInfoService.GetStorageMode(r.Context()),
	}, http.StatusOK)
}

func (h *Handler) getData(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.DataResponse{
		Message:        app.MsgServerData,
		Timestamp:      time.Now().Format(time.RFC3339),
		DatabaseStatus: h.services.AppInfoService.GetStorageMode(r.Context()),
	}, http.StatusOK)
}

// initDB creates the schema and seeds the catalog. Every failure, including
// a missing database, is a 500.
func (h *Handler) initDB(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ToolService.InitializeStorage(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg(app.MsgDatabaseInitFailed)
		utils.WriteError(w, app.MsgDatabaseInitFailed, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgDatabaseInitialized}, http.StatusOK)
}
