package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/recruitment-api/internal/model"
	"github.com/mcoot/recruitment-api/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Candidates live in a hash keyed by id; insertion order is kept in a separate list.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = defaultKeyPrefix
	}
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) hashKey() string {
	return candidatesKey(s.cfg.KeyPrefix)
}

func (s *Storage) orderKey() string {
	return candidateOrderKey(s.cfg.KeyPrefix)
}

func (s *Storage) seededKey() string {
	return seededKey(s.cfg.KeyPrefix)
}

func (s *Storage) ListCandidates(ctx context.Context) ([]*model.Candidate, error) {
	// Read the hash and the order list in one MULTI so they form a consistent snapshot
	var (
		recordsCmd *redis.MapStringStringCmd
		orderCmd   *redis.StringSliceCmd
	)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		recordsCmd = pipe.HGetAll(ctx, s.hashKey())
		orderCmd = pipe.LRange(ctx, s.orderKey(), 0, -1)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	records := recordsCmd.Val()
	ids := orderCmd.Val()

	candidates := make([]*model.Candidate, 0, len(ids))
	for _, id := range ids {
		data, ok := records[id]
		if !ok {
			continue // Order entry without a record
		}
		candidate, err := decodeCandidate([]byte(data))
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

func (s *Storage) GetCandidate(ctx context.Context, id model.CandidateID) (*model.Candidate, error) {
	data, err := s.client.HGet(ctx, s.hashKey(), id.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrCandidateNotFound
		}
		return nil, err
	}
	return decodeCandidate(data)
}

func (s *Storage) CountCandidates(ctx context.Context) (int, error) {
	n, err := s.client.HLen(ctx, s.hashKey()).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (s *Storage) InsertCandidate(ctx context.Context, candidate *model.Candidate) error {
	data, err := json.Marshal(candidate)
	if err != nil {
		return err
	}

	keys := []string{s.hashKey(), s.orderKey()}
	inserted, err := insertScript.Run(ctx, s.client, keys, candidate.ID.String(), data).Int()
	if err != nil {
		return fmt.Errorf("insert candidate: %w", err)
	}
	if inserted == 0 {
		return model.ErrCandidateExists
	}
	return nil
}

func (s *Storage) ReplaceCandidate(ctx context.Context, candidate *model.Candidate) error {
	data, err := json.Marshal(candidate)
	if err != nil {
		return err
	}

	keys := []string{s.hashKey(), s.orderKey()}
	replaced, err := replaceScript.Run(ctx, s.client, keys, candidate.ID.String(), data).Int()
	if err != nil {
		return fmt.Errorf("replace candidate: %w", err)
	}
	if replaced == 0 {
		return model.ErrCandidateNotFound
	}
	return nil
}

func (s *Storage) DeleteCandidate(ctx context.Context, id model.CandidateID) (*model.Candidate, error) {
	keys := []string{s.hashKey(), s.orderKey()}
	data, err := deleteScript.Run(ctx, s.client, keys, id.String()).Text()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("delete candidate: %w", err)
	}
	return decodeCandidate([]byte(data))
}

func (s *Storage) ResetCandidates(ctx context.Context, candidates []*model.Candidate) error {
	fields, ids, err := encodeCandidates(candidates)
	if err != nil {
		return err
	}

	// Delete existing records and write the new ones atomically
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.hashKey(), s.orderKey())
		if len(candidates) > 0 {
			pipe.HSet(ctx, s.hashKey(), fields...)
			pipe.RPush(ctx, s.orderKey(), ids...)
		}
		pipe.Set(ctx, s.seededKey(), "1", 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("reset candidates: %w", err)
	}
	return nil
}

func (s *Storage) SeedCandidates(ctx context.Context, candidates []*model.Candidate) (bool, error) {
	fields, _, err := encodeCandidates(candidates)
	if err != nil {
		return false, err
	}

	keys := []string{s.hashKey(), s.orderKey(), s.seededKey()}
	seeded, err := seedScript.Run(ctx, s.client, keys, fields...).Int()
	if err != nil {
		return false, fmt.Errorf("seed candidates: %w", err)
	}
	return seeded == 1, nil
}

// encodeCandidates flattens candidates into alternating id/record arguments
// plus the ordered ids, rejecting duplicate ids
func encodeCandidates(candidates []*model.Candidate) ([]any, []any, error) {
	seen := make(map[model.CandidateID]bool, len(candidates))
	fields := make([]any, 0, len(candidates)*2)
	ids := make([]any, 0, len(candidates))
	for _, c := range candidates {
		if seen[c.ID] {
			return nil, nil, model.ErrCandidateExists
		}
		seen[c.ID] = true

		data, err := json.Marshal(c)
		if err != nil {
			return nil, nil, err
		}
		fields = append(fields, c.ID.String(), data)
		ids = append(ids, c.ID.String())
	}
	return fields, ids, nil
}

func decodeCandidate(data []byte) (*model.Candidate, error) {
	var candidate model.Candidate
	if err := json.Unmarshal(data, &candidate); err != nil {
		return nil, fmt.Errorf("decode candidate: %w", err)
	}
	return &candidate, nil
}
