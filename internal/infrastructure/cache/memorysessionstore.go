package cache

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemorySessionStore keeps revocations in process memory.
// Revocations are lost on restart; tokens stay bounded by their own expiry.
type MemorySessionStore struct {
	cache *gocache.Cache
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		cache: gocache.New(gocache.NoExpiration, 10*time.Minute),
	}
}

func (s *MemorySessionStore) Revoke(_ context.Context, sessionID string, ttl time.Duration) error {
	if sessionID == "" {
		return errors.New("session id cannot be empty")
	}
	if ttl <= 0 {
		return nil
	}
	s.cache.Set(sessionID, struct{}{}, ttl)
	return nil
}

func (s *MemorySessionStore) IsRevoked(_ context.Context, sessionID string) (bool, error) {
	_, found := s.cache.Get(sessionID)
	return found, nil
}
