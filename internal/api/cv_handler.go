package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"cv-builder/internal/cv"
	"cv-builder/internal/storage"
)

type savePayload struct {
	Identifier string `json:"identifier"`
	cv.Record
}

// GetCVHandler returns the record addressed by identifier
// @Summary Get a CV
// @Description Fetch the stored CV record for a user identifier
// @Tags cv
// @Produce json
// @Param identifier path string true "User identifier (UUID)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cv/{identifier} [get]
func (a *API) GetCVHandler(w http.ResponseWriter, r *http.Request) {
	identifier := mux.Vars(r)["identifier"]
	if _, err := uuid.Parse(identifier); err != nil {
		writeError(w, http.StatusBadRequest, "malformed identifier")
		return
	}

	stored, err := a.store.Get(r.Context(), identifier)
	if err == storage.ErrNotFound {
		writeError(w, http.StatusNotFound, "CV not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("identifier", identifier).Msg("get cv failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, stored)
}

// SaveCVHandler creates or updates a record, identifier in body
// @Summary Create or update a CV
// @Description Validate and store the CV record for the identifier in the body; upsert semantics
// @Tags cv
// @Accept json
// @Produce json
// @Param payload body savePayload true "Identifier plus record fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /cv [post]
func (a *API) SaveCVHandler(w http.ResponseWriter, r *http.Request) {
	var payload savePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if payload.Identifier == "" {
		writeError(w, http.StatusBadRequest, "identifier is required")
		return
	}
	if _, err := uuid.Parse(payload.Identifier); err != nil {
		writeError(w, http.StatusBadRequest, "malformed identifier")
		return
	}

	validated, errs := cv.Validate(payload.Record)
	if errs != nil {
		writeFieldErrors(w, errs)
		return
	}

	stored, err := a.store.Upsert(r.Context(), payload.Identifier, validated)
	if err != nil {
		log.Error().Err(err).Str("identifier", payload.Identifier).Msg("upsert cv failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, stored)
}

// UpdateCVHandler updates an existing record, identifier in path
// @Summary Update a CV
// @Description Validate and replace the CV record for a known identifier
// @Tags cv
// @Accept json
// @Produce json
// @Param identifier path string true "User identifier (UUID)"
// @Param record body cv.Record true "Full record replacement"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /cv/{identifier} [put]
func (a *API) UpdateCVHandler(w http.ResponseWriter, r *http.Request) {
	identifier := mux.Vars(r)["identifier"]
	if _, err := uuid.Parse(identifier); err != nil {
		writeError(w, http.StatusBadRequest, "malformed identifier")
		return
	}

	exists, err := a.store.Exists(r.Context(), identifier)
	if err != nil {
		log.Error().Err(err).Str("identifier", identifier).Msg("existence check failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if !exists {
		writeError(w, http.StatusNotFound, "CV not found")
		return
	}

	var rec cv.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	validated, errs := cv.Validate(rec)
	if errs != nil {
		writeFieldErrors(w, errs)
		return
	}

	stored, err := a.store.Upsert(r.Context(), identifier, validated)
	if err != nil {
		log.Error().Err(err).Str("identifier", identifier).Msg("update cv failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeData(w, stored)
}

// ValidateCVHandler validates a record without persisting it
// @Summary Validate a CV
// @Description Run full validation and return the normalized record or a field-error map
// @Tags cv
// @Accept json
// @Produce json
// @Param record body cv.Record true "Candidate record"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /cv/validate [post]
func (a *API) ValidateCVHandler(w http.ResponseWriter, r *http.Request) {
	var rec cv.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	validated, errs := cv.Validate(rec)
	if errs != nil {
		writeFieldErrors(w, errs)
		return
	}
	writeData(w, validated)
}
