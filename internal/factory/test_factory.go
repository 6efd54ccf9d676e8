package factory

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mcoot/recruitment-api/internal/dependencies/mocks"
	"github.com/mcoot/recruitment-api/internal/model"
	"github.com/mcoot/recruitment-api/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	MockIDs   *mocks.MockIDGenerator
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// The registry starts empty; call Seed to load candidates.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockIDs := mocks.NewMockIDGenerator()

	app := newWithDependencies(store, mockClock, mockIDs, prometheus.NewRegistry(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		MockIDs:   mockIDs,
	}
}

// Seed resets the registry to the given candidates, or the default seed when none are given
func (t *TestApp) Seed(candidates ...*model.Candidate) error {
	if len(candidates) == 0 {
		candidates = model.SeedCandidates()
	}
	return t.Registry.Reset(context.Background(), candidates)
}
