package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"cv-builder/internal/cv"
)

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// writeError writes a single-message error envelope.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeFieldErrors writes the field-path-keyed validation error map.
func writeFieldErrors(w http.ResponseWriter, errs cv.Errors) {
	writeJSON(w, http.StatusBadRequest, map[string]cv.Errors{"errors": errs})
}

// writeData writes the standard success envelope.
func writeData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": data})
}
