// Package cache provides the time-bounded revalidation cache used for the
// post corpus: a value stays valid for its TTL and is re-fetched afterwards.
package cache

import (
	"context"
	"time"
)

type Cache interface {
	// Get returns the stored value and whether it is present and still valid.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
