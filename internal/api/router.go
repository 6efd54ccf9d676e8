package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/recruitment-api/internal/api/handler"
	"github.com/mcoot/recruitment-api/internal/api/middleware"
	"github.com/mcoot/recruitment-api/internal/api/response"
	"github.com/mcoot/recruitment-api/internal/dependencies/clock"
	"github.com/mcoot/recruitment-api/internal/metrics"
	"github.com/mcoot/recruitment-api/internal/services/registry"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger   *slog.Logger
	Registry *registry.Service
	// Metrics enables per-route request metrics (optional)
	Metrics *metrics.Metrics
	// MetricsHandler is mounted at /metrics when set
	MetricsHandler http.Handler
	// Clock times requests for metrics (optional, defaults to the system clock)
	Clock clock.Clock
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	candidateHandler := handler.NewCandidateHandler(cfg.Registry)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	if cfg.Metrics != nil {
		clk := cfg.Clock
		if clk == nil {
			clk = clock.New()
		}
		api.Use(middleware.Metrics(cfg.Metrics, clk))
	}
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	candidates := api.PathPrefix("/candidates").Subrouter()
	candidates.HandleFunc("", candidateHandler.List).Methods(http.MethodGet)
	candidates.HandleFunc("", candidateHandler.Create).Methods(http.MethodPost)
	candidates.HandleFunc("/{id}", candidateHandler.Get).Methods(http.MethodGet)
	candidates.HandleFunc("/{id}", candidateHandler.Replace).Methods(http.MethodPut)
	candidates.HandleFunc("/{id}", candidateHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler).Methods(http.MethodGet)
	}

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
