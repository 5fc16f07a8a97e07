package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tp-labs/pulsedash/pkg/domain/interfaces"
	"github.com/tp-labs/pulsedash/pkg/domain/model"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router    chi.Router
	metrics   interfaces.Metrics
	chart     interfaces.Chart
	repo      interfaces.Repository
	dashboard *DashboardHandler
}

// NewServer creates a new HTTP server serving the dashboard page, the
// data and chart APIs, and the health check
func NewServer(
	ctx context.Context,
	addr string,
	metrics interfaces.Metrics,
	chart interfaces.Chart,
	repo interfaces.Repository,
) (*Server, error) {
	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	dashboard, err := NewDashboardHandler(metrics, chart)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create dashboard handler")
	}

	s := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:    router,
		metrics:   metrics,
		chart:     chart,
		repo:      repo,
		dashboard: dashboard,
	}

	router.Get("/health", s.handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Get("/data", s.handleData)
		r.Get("/charts", s.handleCharts)
	})

	router.Get("/", dashboard.HandleDashboard)

	return s, nil
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	info, err := s.repo.Info(r.Context())
	if err != nil {
		writeError(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"status":       "healthy",
		"service":      "pulsedash",
		"dataset_id":   info.ID,
		"record_count": info.RecordCount,
		"generated_at": info.GeneratedAt,
	})
}

// handleData handles GET /api/data: summary KPIs of the filtered dataset
func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	filter := model.ParseFilterSpec(r.URL.Query())

	summary, err := s.metrics.Summarize(r.Context(), filter)
	if err != nil {
		writeError(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"metrics": summary,
		"filter":  filter,
	})
}

// writeJSON writes a JSON response with the given status
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response as JSON
func writeError(ctx context.Context, w http.ResponseWriter, err error, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	}); err != nil {
		ctxlog.From(ctx).Error("Failed to encode error response", "error", err)
	}
}

// errorStatus maps a domain error to an HTTP status code
func errorStatus(err error) int {
	if errors.Is(err, model.ErrUnknownChartKind) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
