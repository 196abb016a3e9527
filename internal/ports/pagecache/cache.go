// Package pagecache declares the time-bounded store for rendered pages.
package pagecache

import (
	"context"
	"time"
)

// PageCache keeps rendered responses keyed by request URI. Entries are only
// dropped on expiry or Clear; writes to the underlying data never touch it.
type PageCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Clear(ctx context.Context) error
}
