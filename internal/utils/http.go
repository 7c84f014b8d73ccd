package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/epqs-catalog/models"
)

// marshalFailedBody is sent when a response value cannot be encoded, so the
// client still receives a JSON error object.
var marshalFailedBody = []byte(`{"error":"Internal Server Error"}`)

// WriteJSON encodes data as the JSON response body with the given status.
// If data cannot be encoded the response becomes a 500 with a generic JSON
// error and the encoding error is returned.
//
//	WriteJSON(w, models.MessageResponse{Message: "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "application/json")

	jsonData, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write(marshalFailedBody)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.WriteHeader(statusCode)
	return w.Write(jsonData)
}

// WriteError writes a JSON body of the form {"error": message}.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
