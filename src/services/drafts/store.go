package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"Tracer-Study-Portal/src/models"

	"github.com/redis/go-redis/v9"
)

// Key scopes a draft to the login session that opened it.
type Key struct {
	SessionID string
	SurveyID  string
}

func (k Key) redisKey() string {
	return fmt.Sprintf("draft:%s:%s", k.SessionID, k.SurveyID)
}

// Store holds the drafts of open authoring sessions. A draft lives from Open
// until Discard, logout, or TTL expiry.
type Store interface {
	Get(ctx context.Context, key Key) (models.Draft, bool, error)
	Put(ctx context.Context, key Key, d models.Draft) error
	Discard(ctx context.Context, key Key) error
	DiscardSession(ctx context.Context, sessionID string) error
}

// NewStore returns a Redis-backed store, or an in-memory one when client is
// nil (development mode without Redis).
func NewStore(client *redis.Client, ttl time.Duration) Store {
	if client == nil {
		return NewMemoryStore(ttl)
	}
	return &RedisStore{client: client, ttl: ttl}
}

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func (s *RedisStore) Get(ctx context.Context, key Key) (models.Draft, bool, error) {
	raw, err := s.client.GetEx(ctx, key.redisKey(), s.ttl).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Draft{}, false, nil
	}
	if err != nil {
		return models.Draft{}, false, fmt.Errorf("load draft: %w", err)
	}
	var d models.Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return models.Draft{}, false, fmt.Errorf("decode draft: %w", err)
	}
	return d, true, nil
}

func (s *RedisStore) Put(ctx context.Context, key Key, d models.Draft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	return s.client.Set(ctx, key.redisKey(), raw, s.ttl).Err()
}

func (s *RedisStore) Discard(ctx context.Context, key Key) error {
	return s.client.Del(ctx, key.redisKey()).Err()
}

func (s *RedisStore) DiscardSession(ctx context.Context, sessionID string) error {
	iter := s.client.Scan(ctx, 0, fmt.Sprintf("draft:%s:*", sessionID), 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

type memoryEntry struct {
	draft     models.Draft
	expiresAt time.Time
}

// MemoryStore keeps drafts in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[Key]memoryEntry
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, entries: make(map[Key]memoryEntry), now: time.Now}
}

func (s *MemoryStore) Get(_ context.Context, key Key) (models.Draft, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return models.Draft{}, false, nil
	}
	if s.ttl > 0 && s.now().After(e.expiresAt) {
		delete(s.entries, key)
		return models.Draft{}, false, nil
	}
	e.expiresAt = s.now().Add(s.ttl)
	s.entries[key] = e
	return cloneDraft(e.draft), true, nil
}

func (s *MemoryStore) Put(_ context.Context, key Key, d models.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = memoryEntry{draft: cloneDraft(d), expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Discard(_ context.Context, key Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

func (s *MemoryStore) DiscardSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k := range s.entries {
		if k.SessionID == sessionID {
			delete(s.entries, k)
		}
	}
	return nil
}
