package usecases

import (
	"context"
	"time"
)

// PasswordChecker compares a submitted password with the configured admin secret.
type PasswordChecker interface {
	Matches(password string) bool
}

type SessionTokenService interface {
	Issue(sessionID string) (string, time.Time, error)
	// VerifySession returns apperrors.ErrSessionTokenExpired or ErrSessionTokenInvalid on failure.
	VerifySession(token string) (sessionID string, expiresAt time.Time, err error)
	TTL() time.Duration
}

type SessionStore interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}
