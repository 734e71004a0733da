package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPresignCache_MintsOnceWhileFresh(t *testing.T) {
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cache := NewPresignCacheWithClock(func() time.Time { return clock })
	ctx := context.Background()

	mints := 0
	mint := func(ctx context.Context) (string, error) {
		mints++
		return "https://minio.local/reports/2024-03.pdf?sig=abc", nil
	}

	url1, err := cache.Get(ctx, "reports/2024-03.pdf", time.Hour, mint)
	assert.NoError(t, err)
	url2, err := cache.Get(ctx, "reports/2024-03.pdf", time.Hour, mint)
	assert.NoError(t, err)

	assert.Equal(t, url1, url2)
	assert.Equal(t, 1, mints)
}

func TestPresignCache_RemintsAfterExpiry(t *testing.T) {
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cache := NewPresignCacheWithClock(func() time.Time { return clock })
	ctx := context.Background()

	mints := 0
	mint := func(ctx context.Context) (string, error) {
		mints++
		return "https://minio.local/reports/2024-03.pdf?sig=abc", nil
	}

	_, err := cache.Get(ctx, "reports/2024-03.pdf", time.Hour, mint)
	assert.NoError(t, err)

	// Entry expires at lifetime minus the skew, so 56 minutes is past it.
	clock = clock.Add(56 * time.Minute)
	_, err = cache.Get(ctx, "reports/2024-03.pdf", time.Hour, mint)
	assert.NoError(t, err)
	assert.Equal(t, 2, mints)
}

func TestPresignCache_SkewExpiresEarly(t *testing.T) {
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cache := NewPresignCacheWithClock(func() time.Time { return clock })
	ctx := context.Background()

	mints := 0
	mint := func(ctx context.Context) (string, error) {
		mints++
		return "https://minio.local/reports/2024-03.pdf?sig=abc", nil
	}

	_, err := cache.Get(ctx, "reports/2024-03.pdf", 10*time.Minute, mint)
	assert.NoError(t, err)

	// URL is still technically valid for 4 more minutes, but inside the
	// 5 minute skew, so it must be reminted.
	clock = clock.Add(6 * time.Minute)
	_, err = cache.Get(ctx, "reports/2024-03.pdf", 10*time.Minute, mint)
	assert.NoError(t, err)
	assert.Equal(t, 2, mints)
}

func TestPresignCache_InvalidateForcesRemint(t *testing.T) {
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cache := NewPresignCacheWithClock(func() time.Time { return clock })
	ctx := context.Background()

	mints := 0
	mint := func(ctx context.Context) (string, error) {
		mints++
		return "https://minio.local/reports/2024-03.pdf?sig=abc", nil
	}

	_, err := cache.Get(ctx, "reports/2024-03.pdf", time.Hour, mint)
	assert.NoError(t, err)

	cache.Invalidate("reports/2024-03.pdf")

	_, err = cache.Get(ctx, "reports/2024-03.pdf", time.Hour, mint)
	assert.NoError(t, err)
	assert.Equal(t, 2, mints)
}

func TestPresignCache_MintErrorNotCached(t *testing.T) {
	cache := NewPresignCache()
	ctx := context.Background()

	wantErr := errors.New("minio unreachable")
	url, err := cache.Get(ctx, "reports/2024-03.pdf", time.Hour, func(ctx context.Context) (string, error) {
		return "", wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Empty(t, url)

	// A later successful mint fills the cache normally.
	url, err = cache.Get(ctx, "reports/2024-03.pdf", time.Hour, func(ctx context.Context) (string, error) {
		return "https://minio.local/reports/2024-03.pdf?sig=abc", nil
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, url)
}

func TestPresignCache_KeysAreIndependent(t *testing.T) {
	cache := NewPresignCache()
	ctx := context.Background()

	urlA, err := cache.Get(ctx, "reports/2024-02.pdf", time.Hour, func(ctx context.Context) (string, error) {
		return "https://minio.local/reports/2024-02.pdf?sig=feb", nil
	})
	assert.NoError(t, err)

	urlB, err := cache.Get(ctx, "reports/2024-03.pdf", time.Hour, func(ctx context.Context) (string, error) {
		return "https://minio.local/reports/2024-03.pdf?sig=mar", nil
	})
	assert.NoError(t, err)
	assert.NotEqual(t, urlA, urlB)

	cache.Invalidate("reports/2024-02.pdf")

	// March entry survives February's invalidation.
	urlB2, err := cache.Get(ctx, "reports/2024-03.pdf", time.Hour, func(ctx context.Context) (string, error) {
		t.Fatal("should not remint")
		return "", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, urlB, urlB2)
}
