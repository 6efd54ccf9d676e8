package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mcoot/recruitment-api/internal/dependencies/clock"
	"github.com/mcoot/recruitment-api/internal/dependencies/idgen"
	"github.com/mcoot/recruitment-api/internal/metrics"
	"github.com/mcoot/recruitment-api/internal/model"
	"github.com/mcoot/recruitment-api/internal/services/registry"
	"github.com/mcoot/recruitment-api/internal/storage"
	"github.com/mcoot/recruitment-api/internal/storage/memory"
	redisstorage "github.com/mcoot/recruitment-api/internal/storage/redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock
	IDs   idgen.Generator

	// Observability
	Metrics         *metrics.Metrics
	MetricsRegistry *prometheus.Registry

	// Services
	Registry *registry.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// MetricsRegistry receives the application collectors (optional)
	// If nil, a fresh registry with Go and process collectors is created
	MetricsRegistry *prometheus.Registry
	// Seed is the initial registry contents (optional)
	// If nil, model.SeedCandidates() is used; pass an empty slice for an empty registry
	Seed []*model.Candidate
}

// New creates a new application with all dependencies wired.
// The seed contents are loaded only if the storage backend has never been seeded,
// so replicas sharing one Redis keep each other's data.
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = storage.TypeMemory
	}

	switch storageType {
	case storage.TypeMemory:
		store = memory.New()
	case storage.TypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	reg := cfg.MetricsRegistry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	app := newWithDependencies(store, clock.New(), idgen.New(), reg, logger)

	seed := cfg.Seed
	if seed == nil {
		seed = model.SeedCandidates()
	}
	if err := app.Registry.Seed(context.Background(), seed); err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("seeding registry: %w", err)
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, ids idgen.Generator, reg *prometheus.Registry, logger *slog.Logger) *App {
	m := metrics.New(reg)
	registryService := registry.New(store, ids, m, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		IDs:             ids,
		Metrics:         m,
		MetricsRegistry: reg,
		Registry:        registryService,
	}
}

// MetricsHandler serves the application's metrics registry
func (a *App) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(a.MetricsRegistry, promhttp.HandlerOpts{Registry: a.MetricsRegistry})
}

// Close releases storage resources
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
