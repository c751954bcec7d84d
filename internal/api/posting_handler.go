package api

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// ExtractPostingHandler extracts plain text from an uploaded posting document
// @Summary Extract posting text from a document
// @Description Upload a job posting (PDF/DOCX/TXT) and get its plain text for the compare flow
// @Tags posting
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Posting document (max 10MB)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /posting/extract [post]
func (a *API) ExtractPostingHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid (max 10MB)")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".pdf", ".docx", ".doc", ".rtf", ".odt", ".txt":
	default:
		writeError(w, http.StatusBadRequest, "invalid file type (supported: PDF, DOCX, TXT)")
		return
	}

	text, err := a.extractor.ExtractText(header.Filename, file)
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("posting extraction failed")
		writeError(w, http.StatusInternalServerError, "failed to extract posting text")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

// FetchPostingHandler fetches posting text from a URL
// @Summary Fetch posting text from a URL
// @Description Download the posting body from an http(s) URL for the compare flow
// @Tags posting
// @Accept json
// @Produce json
// @Param payload body object true "URL payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /posting/fetch [post]
func (a *API) FetchPostingHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if strings.TrimSpace(payload.URL) == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	text, err := a.fetcher.Fetch(r.Context(), payload.URL)
	if err != nil {
		log.Error().Err(err).Str("url", payload.URL).Msg("posting fetch failed")
		writeError(w, http.StatusInternalServerError, "failed to fetch posting text")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}
