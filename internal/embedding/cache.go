package embedding

import (
	"context"
	"crypto/sha256"
	"sync"
)

// CachedProvider wraps a Provider with an in-memory cache keyed by the
// SHA-256 hash of the document text. Scoring the same document against
// many counterparts then costs one provider round-trip instead of one
// per pairing. The cache is safe for concurrent use.
type CachedProvider struct {
	inner Provider

	mu      sync.RWMutex
	vectors map[[sha256.Size]byte][]float32
}

// NewCachedProvider wraps the given provider with content-hash caching.
func NewCachedProvider(inner Provider) *CachedProvider {
	return &CachedProvider{
		inner:   inner,
		vectors: make(map[[sha256.Size]byte][]float32),
	}
}

// Embed returns the cached vector for the text if present, otherwise
// delegates to the wrapped provider and caches the result. Provider
// failures are never cached.
func (c *CachedProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	key := sha256.Sum256([]byte(text))

	c.mu.RLock()
	vector, ok := c.vectors[key]
	c.mu.RUnlock()
	if ok {
		return vector, nil
	}

	vector, err := c.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.vectors[key] = vector
	c.mu.Unlock()

	return vector, nil
}

// Close releases resources held by the wrapped provider.
func (c *CachedProvider) Close() error {
	return c.inner.Close()
}
