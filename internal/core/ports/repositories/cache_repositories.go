package repositories

import (
	"context"
	"time"
)

// ScenarioCache stores encoded scenario sets keyed by a digest of the inputs
// they were computed from.
type ScenarioCache interface {
	// Get returns the cached value and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value for ttl; a zero ttl keeps it until evicted.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
