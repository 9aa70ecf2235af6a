// Package cache holds the short-lived server-side state for admin sessions.
package cache

import (
	"context"
	"time"
)

// SessionStore remembers admin sessions revoked before their token expired.
type SessionStore interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}
