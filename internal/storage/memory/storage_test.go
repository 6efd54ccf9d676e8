package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/recruitment-api/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func newCandidate(first, last string) *model.Candidate {
	return &model.Candidate{ID: uuid.New(), FirstName: first, LastName: last}
}

func (s *StorageSuite) TestInsertAndGetCandidate() {
	candidate := newCandidate("John", "Smith")

	err := s.storage.InsertCandidate(s.ctx, candidate)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetCandidate(s.ctx, candidate.ID)
	s.Require().NoError(err)
	s.Equal(candidate, retrieved)
}

func (s *StorageSuite) TestGetCandidateNotFound() {
	_, err := s.storage.GetCandidate(s.ctx, uuid.New())
	s.ErrorIs(err, model.ErrCandidateNotFound)
}

func (s *StorageSuite) TestInsertDuplicateID() {
	candidate := newCandidate("John", "Smith")
	s.Require().NoError(s.storage.InsertCandidate(s.ctx, candidate))

	err := s.storage.InsertCandidate(s.ctx, candidate)
	s.ErrorIs(err, model.ErrCandidateExists)

	count, err := s.storage.CountCandidates(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *StorageSuite) TestListPreservesInsertionOrder() {
	first := newCandidate("John", "Smith")
	second := newCandidate("James", "Bennet")
	third := newCandidate("Ada", "Lovelace")
	for _, c := range []*model.Candidate{first, second, third} {
		s.Require().NoError(s.storage.InsertCandidate(s.ctx, c))
	}

	list, err := s.storage.ListCandidates(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal(first.ID, list[0].ID)
	s.Equal(second.ID, list[1].ID)
	s.Equal(third.ID, list[2].ID)
}

func (s *StorageSuite) TestListEmpty() {
	list, err := s.storage.ListCandidates(s.ctx)
	s.Require().NoError(err)
	s.NotNil(list)
	s.Empty(list)
}

func (s *StorageSuite) TestReplaceKeepsPosition() {
	first := newCandidate("John", "Smith")
	second := newCandidate("James", "Bennet")
	s.Require().NoError(s.storage.InsertCandidate(s.ctx, first))
	s.Require().NoError(s.storage.InsertCandidate(s.ctx, second))

	updated := &model.Candidate{ID: first.ID, FirstName: "Test", LastName: "Smith", ShouldSendOffer: true}
	s.Require().NoError(s.storage.ReplaceCandidate(s.ctx, updated))

	list, err := s.storage.ListCandidates(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(updated, list[0])
	s.Equal(second.ID, list[1].ID)
}

func (s *StorageSuite) TestReplaceNotFound() {
	err := s.storage.ReplaceCandidate(s.ctx, newCandidate("Nobody", "Here"))
	s.ErrorIs(err, model.ErrCandidateNotFound)

	count, err := s.storage.CountCandidates(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *StorageSuite) TestDeleteCandidate() {
	first := newCandidate("John", "Smith")
	second := newCandidate("James", "Bennet")
	s.Require().NoError(s.storage.InsertCandidate(s.ctx, first))
	s.Require().NoError(s.storage.InsertCandidate(s.ctx, second))

	removed, err := s.storage.DeleteCandidate(s.ctx, first.ID)
	s.Require().NoError(err)
	s.Equal(first, removed)

	_, err = s.storage.GetCandidate(s.ctx, first.ID)
	s.ErrorIs(err, model.ErrCandidateNotFound)

	list, err := s.storage.ListCandidates(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(second.ID, list[0].ID)
}

func (s *StorageSuite) TestDeleteNotFound() {
	_, err := s.storage.DeleteCandidate(s.ctx, uuid.New())
	s.ErrorIs(err, model.ErrCandidateNotFound)
}

func (s *StorageSuite) TestSeedCandidatesOnlyOnce() {
	seeded, err := s.storage.SeedCandidates(s.ctx, model.SeedCandidates())
	s.Require().NoError(err)
	s.True(seeded)

	added := newCandidate("Added", "Later")
	s.Require().NoError(s.storage.InsertCandidate(s.ctx, added))

	seeded, err = s.storage.SeedCandidates(s.ctx, model.SeedCandidates())
	s.Require().NoError(err)
	s.False(seeded)

	list, err := s.storage.ListCandidates(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(model.SeedCandidateID, list[0].ID)
	s.Equal(added.ID, list[1].ID)
}

func (s *StorageSuite) TestSeedCandidatesSkippedAfterReset() {
	s.Require().NoError(s.storage.ResetCandidates(s.ctx, nil))

	seeded, err := s.storage.SeedCandidates(s.ctx, model.SeedCandidates())
	s.Require().NoError(err)
	s.False(seeded)

	count, err := s.storage.CountCandidates(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *StorageSuite) TestResetCandidates() {
	_ = s.storage.InsertCandidate(s.ctx, newCandidate("Old", "Record"))

	err := s.storage.ResetCandidates(s.ctx, model.SeedCandidates())
	s.Require().NoError(err)

	list, err := s.storage.ListCandidates(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(model.SeedCandidateID, list[0].ID)
}

func (s *StorageSuite) TestResetRejectsDuplicatesWithoutChangingState() {
	existing := newCandidate("Keep", "Me")
	_ = s.storage.InsertCandidate(s.ctx, existing)

	dup := newCandidate("Dup", "Licate")
	err := s.storage.ResetCandidates(s.ctx, []*model.Candidate{dup, dup})
	s.ErrorIs(err, model.ErrCandidateExists)

	list, err := s.storage.ListCandidates(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(existing.ID, list[0].ID)
}

func (s *StorageSuite) TestReturnedCandidatesAreCopies() {
	candidate := newCandidate("John", "Smith")
	_ = s.storage.InsertCandidate(s.ctx, candidate)

	// Mutating the caller's value must not leak into storage
	candidate.FirstName = "Mutated"

	retrieved, err := s.storage.GetCandidate(s.ctx, candidate.ID)
	s.Require().NoError(err)
	s.Equal("John", retrieved.FirstName)

	retrieved.LastName = "Mutated"
	again, err := s.storage.GetCandidate(s.ctx, candidate.ID)
	s.Require().NoError(err)
	s.Equal("Smith", again.LastName)
}

func (s *StorageSuite) TestConcurrentInserts() {
	const workers = 50

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.storage.InsertCandidate(s.ctx, newCandidate("Concurrent", "Candidate"))
		}()
	}
	wg.Wait()

	count, err := s.storage.CountCandidates(s.ctx)
	s.Require().NoError(err)
	s.Equal(workers, count)

	list, err := s.storage.ListCandidates(s.ctx)
	s.Require().NoError(err)
	s.Len(list, workers)
}
