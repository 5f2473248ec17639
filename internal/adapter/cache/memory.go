// Package cache provides the CacheRepository backends used by the HTTP
// response cache: an in-process store and a redis-backed one.
package cache

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"taskboard/internal/core/port"
)

type memoryRepository struct {
	cache *gocache.Cache
}

func NewMemoryRepository() port.CacheRepository {
	return &memoryRepository{
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (m *memoryRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.cache.Set(key, value, ttl)
	return nil
}

func (m *memoryRepository) Get(ctx context.Context, key string) ([]byte, error) {
	value, found := m.cache.Get(key)

	if !found {
		return nil, nil
	}

	return value.([]byte), nil
}

func (m *memoryRepository) Delete(ctx context.Context, key string) error {
	m.cache.Delete(key)
	return nil
}

func (m *memoryRepository) DeleteByPrefix(ctx context.Context, prefix string) error {
	for key := range m.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			m.cache.Delete(key)
		}
	}

	return nil
}

func (m *memoryRepository) Close() error {
	m.cache.Flush()
	return nil
}
