package theme

import (
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"admybrand.GO/config"
)

// Store is the durable key-value contract for theme persistence.
// Get returns "" with a nil error for an absent key.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// MemoryStore is the in-process fallback when redis is not configured.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m[key], nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

// RedisStore persists theme preferences in redis, surviving restarts.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Get(key string) (string, error) {
	v, err := s.client.Get(config.RedisCtx(), s.prefix+key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return v, err
}

func (s *RedisStore) Set(key, value string) error {
	return s.client.Set(config.RedisCtx(), s.prefix+key, value, time.Duration(0)).Err()
}

// NewStore picks redis when the global client is configured, otherwise
// the in-memory fallback.
func NewStore() Store {
	if config.RedisClient != nil {
		return NewRedisStore(config.RedisClient, "admybrand:")
	}
	return NewMemoryStore()
}
