package redis

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/recruitment-api/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func newCandidate(first, last string) *model.Candidate {
	return &model.Candidate{ID: uuid.New(), FirstName: first, LastName: last}
}

func (s *StorageSuite) TestInsertAndGetCandidate() {
	candidate := newCandidate("John", "Smith")
	candidate.ShouldSendOffer = true

	err := s.storage.InsertCandidate(s.ctx, candidate)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetCandidate(s.ctx, candidate.ID)
	s.Require().NoError(err)
	s.Equal(candidate, retrieved)
}

func (s *StorageSuite) TestInsertWritesHashAndOrderList() {
	candidate := newCandidate("John", "Smith")
	s.Require().NoError(s.storage.InsertCandidate(s.ctx, candidate))

	s.True(s.mini.Exists(candidatesKey(defaultKeyPrefix)))
	s.NotEmpty(s.mini.HGet(candidatesKey(defaultKeyPrefix), candidate.ID.String()))

	order, err := s.mini.List(candidateOrderKey(defaultKeyPrefix))
	s.Require().NoError(err)
	s.Equal([]string{candidate.ID.String()}, order)
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
	s.False(s.mini.Exists(candidatesKey(defaultKeyPrefix)))
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

	order, err := s.mini.List(candidateOrderKey(defaultKeyPrefix))
	s.Require().NoError(err)
	s.Equal([]string{second.ID.String()}, order)
}

func (s *StorageSuite) TestDeleteNotFound() {
	_, err := s.storage.DeleteCandidate(s.ctx, uuid.New())
	s.ErrorIs(err, model.ErrCandidateNotFound)
}

func (s *StorageSuite) TestConcurrentInserts() {
	const workers = 100

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.storage.InsertCandidate(s.ctx, newCandidate("Concurrent", "Candidate")); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Empty(errs)

	count, err := s.storage.CountCandidates(s.ctx)
	s.Require().NoError(err)
	s.Equal(workers, count)

	order, err := s.mini.List(candidateOrderKey(defaultKeyPrefix))
	s.Require().NoError(err)
	s.Len(order, workers)
}

func (s *StorageSuite) TestConcurrentInsertsOfSameID() {
	const workers = 20
	candidate := newCandidate("Only", "Once")

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		inserted int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.storage.InsertCandidate(s.ctx, candidate)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				inserted++
				return
			}
			s.ErrorIs(err, model.ErrCandidateExists)
		}()
	}
	wg.Wait()

	s.Equal(1, inserted)
	order, err := s.mini.List(candidateOrderKey(defaultKeyPrefix))
	s.Require().NoError(err)
	s.Equal([]string{candidate.ID.String()}, order)
}

func (s *StorageSuite) TestConcurrentDeletesAndReplaces() {
	const n = 50
	candidates := make([]*model.Candidate, n)
	for i := range candidates {
		candidates[i] = newCandidate("Mixed", "Writer")
		s.Require().NoError(s.storage.InsertCandidate(s.ctx, candidates[i]))
	}

	var wg sync.WaitGroup
	for i, c := range candidates {
		i, c := i, c
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				_, err := s.storage.DeleteCandidate(s.ctx, c.ID)
				s.NoError(err)
				return
			}
			updated := c.Clone()
			updated.ShouldSendOffer = true
			s.NoError(s.storage.ReplaceCandidate(s.ctx, updated))
		}()
	}
	wg.Wait()

	list, err := s.storage.ListCandidates(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, n/2)
	for i, c := range list {
		s.Equal(candidates[2*i+1].ID, c.ID)
		s.True(c.ShouldSendOffer)
	}
}

func (s *StorageSuite) TestSeedCandidatesOnlyOnce() {
	seeded, err := s.storage.SeedCandidates(s.ctx, model.SeedCandidates())
	s.Require().NoError(err)
	s.True(seeded)
	s.True(s.mini.Exists(seededKey(defaultKeyPrefix)))

	added := newCandidate("Added", "Later")
	s.Require().NoError(s.storage.InsertCandidate(s.ctx, added))

	// A second process sharing the server must not wipe what the first wrote
	client := redis.NewClient(&redis.Options{Addr: s.mini.Addr()})
	other := NewWithClient(client, DefaultConfig())
	defer func() { _ = other.Close() }()

	seeded, err = other.SeedCandidates(s.ctx, model.SeedCandidates())
	s.Require().NoError(err)
	s.False(seeded)

	list, err := s.storage.ListCandidates(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(model.SeedCandidateID, list[0].ID)
	s.Equal(added.ID, list[1].ID)
}

func (s *StorageSuite) TestSeedCandidatesClearsUnmarkedData() {
	s.mini.HSet(candidatesKey(defaultKeyPrefix), uuid.NewString(), `{"firstName":"Stale"}`)

	seeded, err := s.storage.SeedCandidates(s.ctx, model.SeedCandidates())
	s.Require().NoError(err)
	s.True(seeded)

	list, err := s.storage.ListCandidates(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(model.SeedCandidateID, list[0].ID)
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
	s.Equal("John", list[0].FirstName)
}

func (s *StorageSuite) TestResetToEmpty() {
	_ = s.storage.InsertCandidate(s.ctx, newCandidate("Old", "Record"))

	s.Require().NoError(s.storage.ResetCandidates(s.ctx, nil))

	count, err := s.storage.CountCandidates(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *StorageSuite) TestResetRejectsDuplicates() {
	existing := newCandidate("Keep", "Me")
	_ = s.storage.InsertCandidate(s.ctx, existing)

	dup := newCandidate("Dup", "Licate")
	err := s.storage.ResetCandidates(s.ctx, []*model.Candidate{dup, dup})
	s.ErrorIs(err, model.ErrCandidateExists)

	kept, err := s.storage.GetCandidate(s.ctx, existing.ID)
	s.Require().NoError(err)
	s.Equal(existing, kept)
}

func (s *StorageSuite) TestKeyPrefixIsolatesRegistries() {
	client := redis.NewClient(&redis.Options{Addr: s.mini.Addr()})
	cfg := DefaultConfig()
	cfg.KeyPrefix = "other"
	other := NewWithClient(client, cfg)
	defer func() { _ = other.Close() }()

	s.Require().NoError(s.storage.InsertCandidate(s.ctx, newCandidate("John", "Smith")))

	count, err := other.CountCandidates(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *StorageSuite) TestCorruptRecordReturnsError() {
	id := uuid.New()
	s.mini.HSet(candidatesKey(defaultKeyPrefix), id.String(), "not json")

	_, err := s.storage.GetCandidate(s.ctx, id)
	s.Error(err)
	s.NotErrorIs(err, model.ErrCandidateNotFound)
}

func TestNewRejectsInvalidURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.URL = "not-a-redis-url"

	_, err := New(cfg)
	if err == nil {
		t.Fatal("expected error for invalid redis URL")
	}
}

func TestNewConnectsToServer(t *testing.T) {
	mini := miniredis.RunT(t)

	cfg := DefaultConfig()
	cfg.URL = "redis://" + mini.Addr()

	store, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = store.Close() }()
}
