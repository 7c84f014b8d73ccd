package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/epqs-catalog/internal/logger"
)

// getServerVersion answers in plain text so scripts can read the version
// without a JSON decoder.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, version+"\n"); err != nil {
		logger.FromRequest(r).Warn().Err(err).Str("func", "getServerVersion").Msg("error writing version")
	}
}
