package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrKeyNotFound is returned by KVStore.Get for missing or expired keys.
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the string key/value store behind progress and last-result
// persistence.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key. A zero ttl keeps the key until deleted.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

type RedisKVStore struct {
	Redis *redis.Client
}

func NewRedisKVStore(rdb *redis.Client) *RedisKVStore {
	return &RedisKVStore{Redis: rdb}
}

func (s *RedisKVStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.Redis.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	return v, err
}

func (s *RedisKVStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.Redis.Set(ctx, key, value, ttl).Err()
}

func (s *RedisKVStore) Del(ctx context.Context, key string) error {
	return s.Redis.Del(ctx, key).Err()
}

func (s *RedisKVStore) Ping(ctx context.Context) error {
	return s.Redis.Ping(ctx).Err()
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryKVStore keeps keys in process memory. It is used when redis is
// disabled and in tests.
type MemoryKVStore struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
	now   func() time.Time
}

func NewMemoryKVStore() *MemoryKVStore {
	return &MemoryKVStore{items: make(map[string]memoryEntry), now: time.Now}
}

func (s *MemoryKVStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	e, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		return "", ErrKeyNotFound
	}
	if s.expired(e) {
		s.mu.Lock()
		// A Set may have replaced the entry since the read lock was released.
		if cur, ok := s.items[key]; ok && s.expired(cur) {
			delete(s.items, key)
		}
		s.mu.Unlock()
		return "", ErrKeyNotFound
	}
	return e.value, nil
}

func (s *MemoryKVStore) expired(e memoryEntry) bool {
	return !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt)
}

func (s *MemoryKVStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	e := memoryEntry{value: value}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.mu.Lock()
	s.items[key] = e
	s.mu.Unlock()
	return nil
}

func (s *MemoryKVStore) Del(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
	return nil
}

func (s *MemoryKVStore) Ping(context.Context) error { return nil }
