package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mcoot/recruitment-api/internal/model"
	"github.com/mcoot/recruitment-api/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	candidates map[model.CandidateID]*model.Candidate
	order      []model.CandidateID
	seeded     bool
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		candidates: make(map[model.CandidateID]*model.Candidate),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) ListCandidates(ctx context.Context) ([]*model.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.Candidate, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.candidates[id].Clone())
	}
	return result, nil
}

func (s *Storage) GetCandidate(ctx context.Context, id model.CandidateID) (*model.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	candidate, ok := s.candidates[id]
	if !ok {
		return nil, model.ErrCandidateNotFound
	}
	return candidate.Clone(), nil
}

func (s *Storage) CountCandidates(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order), nil
}

func (s *Storage) InsertCandidate(ctx context.Context, candidate *model.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.candidates[candidate.ID]; ok {
		return model.ErrCandidateExists
	}
	s.candidates[candidate.ID] = candidate.Clone()
	s.order = append(s.order, candidate.ID)
	return nil
}

func (s *Storage) ReplaceCandidate(ctx context.Context, candidate *model.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.candidates[candidate.ID]; !ok {
		return model.ErrCandidateNotFound
	}
	s.candidates[candidate.ID] = candidate.Clone()
	return nil
}

func (s *Storage) DeleteCandidate(ctx context.Context, id model.CandidateID) (*model.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	candidate, ok := s.candidates[id]
	if !ok {
		return nil, model.ErrCandidateNotFound
	}
	delete(s.candidates, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return candidate, nil
}

func (s *Storage) ResetCandidates(ctx context.Context, candidates []*model.Candidate) error {
	byID, order, err := index(candidates)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates = byID
	s.order = order
	s.seeded = true
	return nil
}

func (s *Storage) SeedCandidates(ctx context.Context, candidates []*model.Candidate) (bool, error) {
	byID, order, err := index(candidates)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seeded {
		return false, nil
	}
	s.candidates = byID
	s.order = order
	s.seeded = true
	return true, nil
}

func index(candidates []*model.Candidate) (map[model.CandidateID]*model.Candidate, []model.CandidateID, error) {
	byID := make(map[model.CandidateID]*model.Candidate, len(candidates))
	order := make([]model.CandidateID, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := byID[c.ID]; ok {
			return nil, nil, model.ErrCandidateExists
		}
		byID[c.ID] = c.Clone()
		order = append(order, c.ID)
	}
	return byID, order, nil
}
