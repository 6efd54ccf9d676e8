package storage

import (
	"context"

	"github.com/mcoot/recruitment-api/internal/model"
)

// Storage defines the interface for candidate persistence.
// Implementations keep candidates in insertion order and key them by identifier.
type Storage interface {
	// ListCandidates returns every candidate in insertion order
	ListCandidates(ctx context.Context) ([]*model.Candidate, error)
	GetCandidate(ctx context.Context, id model.CandidateID) (*model.Candidate, error)
	CountCandidates(ctx context.Context) (int, error)

	// InsertCandidate appends a candidate; returns model.ErrCandidateExists on a duplicate id
	InsertCandidate(ctx context.Context, candidate *model.Candidate) error
	// ReplaceCandidate overwrites a candidate in place, keeping its position
	ReplaceCandidate(ctx context.Context, candidate *model.Candidate) error
	// DeleteCandidate removes a candidate and returns what was removed
	DeleteCandidate(ctx context.Context, id model.CandidateID) (*model.Candidate, error)

	// ResetCandidates replaces the whole collection with the given ordered list
	ResetCandidates(ctx context.Context, candidates []*model.Candidate) error
	// SeedCandidates loads the list only if the backend has never been seeded or reset,
	// reporting whether it did. Shared backends make this safe for several replicas.
	SeedCandidates(ctx context.Context, candidates []*model.Candidate) (bool, error)
}

// Storage backend names accepted by configuration
const (
	TypeMemory = "memory"
	TypeRedis  = "redis"
)
