// Package memory holds in-process adapters for single-instance deployments.
package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultPageCacheSize bounds how many distinct URIs are kept.
const DefaultPageCacheSize = 1024

type pageEntry struct {
	body    []byte
	expires time.Time
}

// PageCache is an LRU of rendered pages. The LRU itself drops entries after
// maxTTL; each entry also carries the TTL it was stored with.
type PageCache struct {
	lru *expirable.LRU[string, pageEntry]
	Now func() time.Time
}

func NewPageCache(size int, maxTTL time.Duration) *PageCache {
	if size <= 0 {
		size = DefaultPageCacheSize
	}
	return &PageCache{
		lru: expirable.NewLRU[string, pageEntry](size, nil, maxTTL),
		Now: time.Now,
	}
}

func (c *PageCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	e, ok := c.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !c.Now().Before(e.expires) {
		c.lru.Remove(key)
		return nil, false, nil
	}
	return e.body, true, nil
}

func (c *PageCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	body := make([]byte, len(value))
	copy(body, value)
	c.lru.Add(key, pageEntry{body: body, expires: c.Now().Add(ttl)})
	return nil
}

// Clear empties the cache.
func (c *PageCache) Clear(_ context.Context) error {
	c.lru.Purge()
	return nil
}
