package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"Calendar/internal/engine"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "session:"
	sessionTTL       = 24 * time.Hour
	emptyState       = "{}"
)

// Store keeps each session's range selection in Redis.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore returns a new session store.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = sessionTTL
	}
	return &Store{rdb: rdb, ttl: ttl}
}

// TTL is how long a session lives after its last write.
func (s *Store) TTL() time.Duration { return s.ttl }

// Create stores a new session without a selection and returns its ID.
func (s *Store) Create(ctx context.Context) (string, error) {
	id, err := newSessionID()
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, sessionKeyPrefix+id, emptyState, s.ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

// Exists returns true if the session exists.
func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
	n, err := s.rdb.Exists(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Load returns the saved selection. ok is false when the session has none yet.
func (s *Store) Load(ctx context.Context, id string) (state engine.State, ok bool, err error) {
	b, err := s.rdb.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return engine.State{}, false, nil
	}
	if err != nil {
		return engine.State{}, false, err
	}
	if err := json.Unmarshal(b, &state); err != nil {
		return engine.State{}, false, fmt.Errorf("session %s: %w", id, err)
	}
	if state.Boundary.Key == "" {
		return engine.State{}, false, nil
	}
	return state, true, nil
}

// Save stores the selection and refreshes the session TTL.
func (s *Store) Save(ctx context.Context, id string, state engine.State) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKeyPrefix+id, b, s.ttl).Err()
}

// Reset drops the selection but keeps the session.
func (s *Store) Reset(ctx context.Context, id string) error {
	return s.rdb.Set(ctx, sessionKeyPrefix+id, emptyState, s.ttl).Err()
}

// Delete removes a session by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+id).Err()
}

func newSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	return hex.EncodeToString(b), nil
}
