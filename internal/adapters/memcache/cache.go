// internal/adapters/memcache/cache.go
package memcache

import (
	"context"
	"encoding/json"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"trip_scout/internal/adapters/observability"
)

// Cache is the in-process default backend for the IATA memo when no redis is
// configured. Values round-trip through JSON so both backends behave the
// same.
type Cache struct{ c *gocache.Cache }

func New(defaultTTL time.Duration) *Cache {
	return &Cache{c: gocache.New(defaultTTL, 10*time.Minute)}
}

func (m *Cache) Get(_ context.Context, key string, dst any) (bool, error) {
	v, ok := m.c.Get(key)
	if !ok {
		observability.ObserveCache("memory", "miss")
		return false, nil
	}
	observability.ObserveCache("memory", "hit")
	return true, json.Unmarshal(v.([]byte), dst)
}

func (m *Cache) Set(_ context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	observability.ObserveCache("memory", "set")
	m.c.Set(key, b, time.Duration(ttlSec)*time.Second)
	return nil
}

func (m *Cache) Del(_ context.Context, key string) error {
	observability.ObserveCache("memory", "del")
	m.c.Delete(key)
	return nil
}
