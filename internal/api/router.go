package api

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	r := mux.NewRouter()
	r.Use(recoverMiddleware, loggingMiddleware)

	// Swagger documentation
	r.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Health check (for Railway, k8s, etc.)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// CV record endpoints
	api.HandleFunc("/cv", a.SaveCVHandler).Methods(http.MethodPost)
	api.HandleFunc("/cv/validate", a.ValidateCVHandler).Methods(http.MethodPost)
	api.HandleFunc("/cv/compare", a.CompareHandler).Methods(http.MethodPost)
	api.HandleFunc("/cv/{identifier}", a.GetCVHandler).Methods(http.MethodGet)
	api.HandleFunc("/cv/{identifier}", a.UpdateCVHandler).Methods(http.MethodPut)

	// AI enhancement
	api.HandleFunc("/ai/improve-summary", a.ImproveSummaryHandler).Methods(http.MethodPost)

	// Job-posting text acquisition for the compare flow
	api.HandleFunc("/posting/extract", a.ExtractPostingHandler).Methods(http.MethodPost)
	api.HandleFunc("/posting/fetch", a.FetchPostingHandler).Methods(http.MethodPost)

	return r
}
