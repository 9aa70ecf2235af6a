package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryRateLimiter counts hits in fixed windows inside this process.
// Used when Redis is not configured.
type MemoryRateLimiter struct {
	mu    sync.Mutex
	cache *gocache.Cache
}

func NewMemoryRateLimiter() RateLimiter {
	return &MemoryRateLimiter{
		cache: gocache.New(time.Minute, 5*time.Minute),
	}
}

func (l *MemoryRateLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, error) {
	if limit <= 0 {
		return true, nil
	}

	k := l.getKey(key, window)

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.cache.Add(k, 1, window); err == nil {
		return true, nil
	}
	count, err := l.cache.IncrementInt(k, 1)
	if err != nil {
		// expired between Add and IncrementInt
		l.cache.Set(k, 1, window)
		return true, nil
	}
	return count <= limit, nil
}

func (l *MemoryRateLimiter) Reset(_ context.Context, key string) error {
	prefix := fmt.Sprintf("ratelimit:%s:", key)

	l.mu.Lock()
	defer l.mu.Unlock()
	for k := range l.cache.Items() {
		if strings.HasPrefix(k, prefix) {
			l.cache.Delete(k)
		}
	}
	return nil
}

func (l *MemoryRateLimiter) getKey(identifier string, window time.Duration) string {
	return fmt.Sprintf("ratelimit:%s:%s", identifier, window.String())
}
