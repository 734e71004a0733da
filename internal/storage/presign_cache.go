package storage

import (
	"context"
	"sync"
	"time"
)

// presignSkew is subtracted from a link's lifetime so callers never receive
// a URL about to expire mid-download.
const presignSkew = 5 * time.Minute

type cachedURL struct {
	url       string
	expiresAt time.Time
}

// PresignCache caches presigned object URLs with their expiry timestamps.
// It is an explicit, injectable object rather than module-level state, so a
// test can supply its own clock and separate deployments keep separate
// caches.
type PresignCache struct {
	mu   sync.Mutex
	urls map[string]cachedURL
	now  func() time.Time
}

func NewPresignCache() *PresignCache {
	return &PresignCache{
		urls: make(map[string]cachedURL),
		now:  time.Now,
	}
}

// NewPresignCacheWithClock is the test constructor.
func NewPresignCacheWithClock(now func() time.Time) *PresignCache {
	return &PresignCache{
		urls: make(map[string]cachedURL),
		now:  now,
	}
}

// Get returns the cached URL for objectName if it is still comfortably
// before expiry, otherwise calls mint to produce a fresh one and caches it.
func (c *PresignCache) Get(ctx context.Context, objectName string, lifetime time.Duration, mint func(ctx context.Context) (string, error)) (string, error) {
	c.mu.Lock()
	if cached, ok := c.urls[objectName]; ok && c.now().Before(cached.expiresAt) {
		url := cached.url
		c.mu.Unlock()
		return url, nil
	}
	c.mu.Unlock()

	url, err := mint(ctx)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.urls[objectName] = cachedURL{
		url:       url,
		expiresAt: c.now().Add(lifetime - presignSkew),
	}
	c.mu.Unlock()
	return url, nil
}

// Invalidate drops the cached URL for an object, if any.
func (c *PresignCache) Invalidate(objectName string) {
	c.mu.Lock()
	delete(c.urls, objectName)
	c.mu.Unlock()
}
