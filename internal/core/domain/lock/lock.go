package lock

import (
	"context"
	"time"
)

// Locker is a best-effort leader lock. The engine is not safe to run
// concurrently against the same reminder set, so a run first acquires
// the lock and is skipped when another instance holds it.
type Locker interface {
	// Acquire returns false when the lock is already held elsewhere.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
