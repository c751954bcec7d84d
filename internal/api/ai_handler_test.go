package api

import (
	"fmt"
	"net/http"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-builder/internal/ai"
)

func TestImproveSummary_OK(t *testing.T) {
	enh := &mockEnhancer{improved: "Much better summary."}
	h := newTestAPI(t, newMockStore(), enh)

	w := doJSON(t, h, http.MethodPost, "/api/ai/improve-summary", map[string]string{"summary": "old"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Much better summary.")
	assert.Equal(t, 1, enh.calls)
}

func TestImproveSummary_EmptySummary(t *testing.T) {
	enh := &mockEnhancer{}
	h := newTestAPI(t, newMockStore(), enh)

	w := doJSON(t, h, http.MethodPost, "/api/ai/improve-summary", map[string]string{"summary": "   "})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, enh.calls)
}

func TestImproveSummary_NotConfigured(t *testing.T) {
	h := newTestAPI(t, newMockStore(), nil)
	w := doJSON(t, h, http.MethodPost, "/api/ai/improve-summary", map[string]string{"summary": "old"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "not configured")
}

func TestImproveSummary_RemoteFailure(t *testing.T) {
	enh := &mockEnhancer{err: errors.New("upstream exploded")}
	h := newTestAPI(t, newMockStore(), enh)

	w := doJSON(t, h, http.MethodPost, "/api/ai/improve-summary", map[string]string{"summary": "old"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "upstream exploded", "remote detail must not leak")
}

func TestImproveSummary_RateLimited(t *testing.T) {
	enh := &mockEnhancer{improved: "ok"}
	h := newTestAPI(t, newMockStore(), enh)

	// Limit is 5 per 10 minutes; all requests share the default test client address.
	for i := 1; i <= 5; i++ {
		w := doJSON(t, h, http.MethodPost, "/api/ai/improve-summary", map[string]string{"summary": "old"})
		require.Equal(t, http.StatusOK, w.Code, "call %d should pass", i)
	}

	w := doJSON(t, h, http.MethodPost, "/api/ai/improve-summary", map[string]string{"summary": "old"})
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	retryAfter, err := strconv.Atoi(w.Header().Get("Retry-After"))
	require.NoError(t, err, "429 must carry a Retry-After header in seconds")
	assert.Greater(t, retryAfter, 0)
	assert.LessOrEqual(t, retryAfter, 600)
	assert.Equal(t, 5, enh.calls)
}

func TestCompare_OK(t *testing.T) {
	enh := &mockEnhancer{analysis: &ai.Analysis{
		CompatibilityPercentage: 80,
		MatchedSkills:           []string{"Go"},
		Conclusion:              "Strong fit",
	}}
	h := newTestAPI(t, newMockStore(), enh)

	payload := map[string]interface{}{
		"cv":          testRecord(),
		"postingText": "We need a Go engineer",
	}
	w := doJSON(t, h, http.MethodPost, "/api/cv/compare", payload)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"compatibilityPercentage":80`)
	assert.Contains(t, w.Body.String(), "Strong fit")
}

func TestCompare_MissingFields(t *testing.T) {
	enh := &mockEnhancer{}
	h := newTestAPI(t, newMockStore(), enh)

	w := doJSON(t, h, http.MethodPost, "/api/cv/compare", map[string]interface{}{"postingText": "posting"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, h, http.MethodPost, "/api/cv/compare", map[string]interface{}{"cv": testRecord(), "postingText": " "})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, enh.calls)
}

func TestCompare_RateLimitedBeforeBodyChecks(t *testing.T) {
	enh := &mockEnhancer{analysis: &ai.Analysis{}}
	h := newTestAPI(t, newMockStore(), enh)

	payload := map[string]interface{}{"cv": testRecord(), "postingText": "posting"}
	for i := 1; i <= 3; i++ {
		w := doJSON(t, h, http.MethodPost, "/api/cv/compare", payload)
		require.Equal(t, http.StatusOK, w.Code, "call %d should pass", i)
	}

	// The compare budget is consumed before the body is inspected, so even a
	// bad request gets the 429 once exhausted.
	w := doJSON(t, h, http.MethodPost, "/api/cv/compare", map[string]string{})
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	retryAfter, err := strconv.Atoi(w.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.LessOrEqual(t, retryAfter, 900)
}

func TestCompare_LimitersAreIndependent(t *testing.T) {
	enh := &mockEnhancer{improved: "ok", analysis: &ai.Analysis{}}
	h := newTestAPI(t, newMockStore(), enh)

	payload := map[string]interface{}{"cv": testRecord(), "postingText": "posting"}
	for i := 0; i < 3; i++ {
		w := doJSON(t, h, http.MethodPost, "/api/cv/compare", payload)
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := doJSON(t, h, http.MethodPost, "/api/cv/compare", payload)
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	// Improve keeps its own keyspace and budget.
	w = doJSON(t, h, http.MethodPost, "/api/ai/improve-summary", map[string]string{"summary": "old"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCompare_NotConfigured(t *testing.T) {
	h := newTestAPI(t, newMockStore(), nil)
	w := doJSON(t, h, http.MethodPost, "/api/cv/compare",
		map[string]interface{}{"cv": testRecord(), "postingText": "posting"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "not configured")
}

func TestRateLimitMessageMentionsMinutes(t *testing.T) {
	enh := &mockEnhancer{analysis: &ai.Analysis{}}
	h := newTestAPI(t, newMockStore(), enh)

	payload := map[string]interface{}{"cv": testRecord(), "postingText": "posting"}
	for i := 0; i < 3; i++ {
		doJSON(t, h, http.MethodPost, "/api/cv/compare", payload)
	}
	w := doJSON(t, h, http.MethodPost, "/api/cv/compare", payload)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), fmt.Sprintf("%d minute", 15))
}
