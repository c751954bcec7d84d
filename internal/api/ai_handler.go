package api

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"cv-builder/internal/cv"
)

// ImproveSummaryHandler rewrites a professional summary through the AI gateway
// @Summary Improve a summary
// @Description Send the summary text to the completion service and return the improved version
// @Tags ai
// @Accept json
// @Produce json
// @Param payload body object true "Summary payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /ai/improve-summary [post]
func (a *API) ImproveSummaryHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Summary string `json:"summary"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if strings.TrimSpace(payload.Summary) == "" {
		writeError(w, http.StatusBadRequest, "summary is empty")
		return
	}

	if ok, retryAfter := a.improveLimiter.Allow(clientKey(r)); !ok {
		writeRateLimited(w, int(math.Ceil(retryAfter.Seconds())))
		return
	}

	if a.enhancer == nil {
		writeError(w, http.StatusInternalServerError, "AI service not configured")
		return
	}

	improved, err := a.enhancer.ImproveSummary(r.Context(), payload.Summary)
	if err != nil {
		log.Error().Err(err).Msg("improve summary failed")
		writeError(w, http.StatusInternalServerError, "failed to improve summary")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"improvedText": improved})
}

// CompareHandler analyzes CV/job-posting compatibility
// @Summary Compare a CV against a job posting
// @Description Serialize the CV, send it with the posting text and return the structured analysis
// @Tags ai
// @Accept json
// @Produce json
// @Param payload body object true "CV plus posting text"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /cv/compare [post]
func (a *API) CompareHandler(w http.ResponseWriter, r *http.Request) {
	if ok, retryAfter := a.compareLimiter.Allow(clientKey(r)); !ok {
		writeRateLimited(w, int(math.Ceil(retryAfter.Seconds())))
		return
	}

	if a.enhancer == nil {
		writeError(w, http.StatusInternalServerError, "AI service not configured")
		return
	}

	var payload struct {
		CV          *cv.Record `json:"cv"`
		PostingText string     `json:"postingText"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if payload.CV == nil || strings.TrimSpace(payload.PostingText) == "" {
		writeError(w, http.StatusBadRequest, "cv and postingText are required")
		return
	}

	analysis, err := a.enhancer.CompareWithPosting(r.Context(), *payload.CV, payload.PostingText)
	if err != nil {
		log.Error().Err(err).Msg("posting comparison failed")
		writeError(w, http.StatusInternalServerError, "failed to analyze compatibility")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"analysis": analysis})
}

func writeRateLimited(w http.ResponseWriter, retryAfterSeconds int) {
	w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfterSeconds))
	minutes := (retryAfterSeconds + 59) / 60
	plural := "s"
	if minutes == 1 {
		plural = ""
	}
	writeError(w, http.StatusTooManyRequests,
		fmt.Sprintf("rate limit reached, try again in %d minute%s", minutes, plural))
}
