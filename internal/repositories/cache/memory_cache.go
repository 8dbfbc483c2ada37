package cache

import (
	"context"
	"time"

	portsrepo "github.com/SscSPs/deal_desk/internal/core/ports/repositories"
	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache is an in-process scenario cache used when no Redis address is
// configured. A background sweep removes expired entries every
// cleanupInterval, so keys that are never read again do not accumulate.
type MemoryCache struct {
	items *gocache.Cache
}

// NewMemoryCache creates an empty in-process cache. defaultTTL applies when
// Set is called without a TTL.
func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{items: gocache.New(defaultTTL, cleanupInterval)}
}

var _ portsrepo.ScenarioCache = (*MemoryCache)(nil)

func (m *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok := m.items.Get(key)
	if !ok {
		return nil, false, nil
	}
	stored, ok := v.([]byte)
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(stored))
	copy(out, stored)
	return out, true, nil
}

func (m *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	m.items.Set(key, stored, ttl)
	return nil
}

// Len reports the number of held entries, including expired ones the next
// sweep has not removed yet.
func (m *MemoryCache) Len() int {
	return m.items.ItemCount()
}
