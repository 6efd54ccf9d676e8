package registry

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mcoot/recruitment-api/internal/dependencies/idgen"
	"github.com/mcoot/recruitment-api/internal/metrics"
	"github.com/mcoot/recruitment-api/internal/model"
	"github.com/mcoot/recruitment-api/internal/storage"
)

// maxIDAttempts bounds identifier generation when a generated id collides
const maxIDAttempts = 5

// Service is the candidate registry: an ordered collection of candidates keyed by id
type Service struct {
	storage  storage.Storage
	ids      idgen.Generator
	validate *validator.Validate
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// New creates a new registry Service. m may be nil to disable metrics.
func New(store storage.Storage, ids idgen.Generator, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		storage:  store,
		ids:      ids,
		validate: newValidator(),
		metrics:  m,
		logger:   logger.With(slog.String("component", "registry")),
	}
}

// List returns every candidate in insertion order
func (s *Service) List(ctx context.Context) ([]*model.Candidate, error) {
	return s.storage.ListCandidates(ctx)
}

// GetByID returns the candidate with the given id
func (s *Service) GetByID(ctx context.Context, id model.CandidateID) (*model.Candidate, error) {
	return s.storage.GetCandidate(ctx, id)
}

// Create stores a new candidate under a freshly generated id.
// Any id on the supplied candidate is ignored.
func (s *Service) Create(ctx context.Context, candidate *model.Candidate) (*model.Candidate, error) {
	if err := s.validateCandidate(candidate); err != nil {
		s.recordError("create", err)
		return nil, err
	}

	stored := &model.Candidate{
		FirstName:       candidate.FirstName,
		LastName:        candidate.LastName,
		ShouldSendOffer: candidate.ShouldSendOffer,
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := s.ids.NewID()
		if id == uuid.Nil || id == candidate.ID {
			continue
		}
		stored.ID = id

		err := s.storage.InsertCandidate(ctx, stored)
		if errors.Is(err, model.ErrCandidateExists) {
			continue
		}
		if err != nil {
			s.logger.Error("failed to store candidate",
				slog.String("candidate_id", id.String()),
				slog.String("error", err.Error()),
			)
			s.recordError("create", err)
			return nil, err
		}

		s.logger.Info("candidate created", slog.String("candidate_id", id.String()))
		if s.metrics != nil {
			s.metrics.IncrementCreated()
		}
		s.refreshSize(ctx)
		return stored, nil
	}

	s.recordError("create", model.ErrIdentifierExhausted)
	return nil, model.ErrIdentifierExhausted
}

// Replace overwrites every field of the candidate with the given id.
// The body id must equal id; the candidate keeps its position in the ordering.
func (s *Service) Replace(ctx context.Context, id model.CandidateID, candidate *model.Candidate) error {
	if err := s.validateCandidate(candidate); err != nil {
		s.recordError("replace", err)
		return err
	}
	if candidate.ID != id {
		s.recordError("replace", model.ErrIdentifierMismatch)
		return model.ErrIdentifierMismatch
	}

	if err := s.storage.ReplaceCandidate(ctx, candidate.Clone()); err != nil {
		s.recordError("replace", err)
		return err
	}

	s.logger.Info("candidate replaced",
		slog.String("candidate_id", id.String()),
		slog.Bool("should_send_offer", candidate.ShouldSendOffer),
	)
	if s.metrics != nil {
		s.metrics.IncrementReplaced()
	}
	return nil
}

// Delete removes the candidate with the given id and returns it
func (s *Service) Delete(ctx context.Context, id model.CandidateID) (*model.Candidate, error) {
	removed, err := s.storage.DeleteCandidate(ctx, id)
	if err != nil {
		s.recordError("delete", err)
		return nil, err
	}

	s.logger.Info("candidate deleted", slog.String("candidate_id", id.String()))
	if s.metrics != nil {
		s.metrics.IncrementDeleted()
	}
	s.refreshSize(ctx)
	return removed, nil
}

// Reset replaces the registry contents with the given ordered candidates.
// Used to isolate tests.
func (s *Service) Reset(ctx context.Context, candidates []*model.Candidate) error {
	if err := s.storage.ResetCandidates(ctx, candidates); err != nil {
		return err
	}
	s.logger.Info("registry reset", slog.Int("candidate_count", len(candidates)))
	s.refreshSize(ctx)
	return nil
}

// Seed loads the startup candidates unless the backing store was already seeded,
// so a restart or a second replica never wipes live data.
func (s *Service) Seed(ctx context.Context, candidates []*model.Candidate) error {
	seeded, err := s.storage.SeedCandidates(ctx, candidates)
	if err != nil {
		return err
	}
	if seeded {
		s.logger.Info("registry seeded", slog.Int("candidate_count", len(candidates)))
	} else {
		s.logger.Info("registry already seeded, keeping existing candidates")
	}
	s.refreshSize(ctx)
	return nil
}

func (s *Service) refreshSize(ctx context.Context) {
	if s.metrics == nil {
		return
	}
	n, err := s.storage.CountCandidates(ctx)
	if err != nil {
		s.logger.Warn("could not count candidates", slog.String("error", err.Error()))
		return
	}
	s.metrics.SetRegistrySize(n)
}

func (s *Service) recordError(operation string, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordError(operation, errorReason(err))
}

func errorReason(err error) string {
	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		return "validation"
	case errors.Is(err, model.ErrCandidateNotFound):
		return "not_found"
	case errors.Is(err, model.ErrIdentifierMismatch):
		return "identifier_mismatch"
	case errors.Is(err, model.ErrIdentifierExhausted):
		return "identifier_exhausted"
	default:
		return "storage"
	}
}
