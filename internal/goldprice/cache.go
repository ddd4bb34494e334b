package goldprice

import (
	"context"
	"sync"
	"time"
)

// CachedSource serves a previously fetched Quote while it is younger
// than the configured TTL. A TTL of zero turns the cache off entirely,
// which is the default: each request then observes a fresh upstream
// price. Errors are never cached.
type CachedSource struct {
	src Source
	ttl time.Duration

	mu    sync.Mutex
	quote Quote
	valid bool
}

func NewCachedSource(src Source, ttl time.Duration) *CachedSource {
	return &CachedSource{src: src, ttl: ttl}
}

func (c *CachedSource) PricePerGram(ctx context.Context) (Quote, error) {
	if c.ttl <= 0 {
		return c.src.PricePerGram(ctx)
	}

	// Serializing refreshes means concurrent callers during an expiry
	// trigger a single upstream call.
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && time.Since(c.quote.FetchedAt) < c.ttl {
		return c.quote, nil
	}

	q, err := c.src.PricePerGram(ctx)
	if err != nil {
		return Quote{}, err
	}

	c.quote = q
	c.valid = true
	return q, nil
}
