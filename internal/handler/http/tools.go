package http

import (
	"net/http"

	"github.com/MKhiriev/epqs-catalog/internal/logger"
	"github.com/MKhiriev/epqs-catalog/internal/utils"
	"github.com/MKhiriev/epqs-catalog/models"
)

func (h *Handler) listTools(w http.ResponseWriter, r *http.Request) {
	tools, err := h.services.ToolService.ListTools(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing tools failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if tools == nil {
		tools = []models.Tool{}
	}
	utils.WriteJSON(w, models.ToolsResponse{Tools: tools}, http.StatusOK)
}
