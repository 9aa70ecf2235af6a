package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/potluckhq/potluck/internal/shared/errors"
)

const adminSubject = "admin"

var (
	ErrTokenExpired = apperrors.ErrSessionTokenExpired
	ErrTokenInvalid = apperrors.ErrSessionTokenInvalid
)

// SessionClaims identify one admin login. The session id lets a logout revoke it.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type SessionTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionTokenService(secret string, ttl time.Duration) *SessionTokenService {
	return &SessionTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *SessionTokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for sessionID and returns it with its expiry.
func (s *SessionTokenService) Issue(sessionID string) (string, time.Time, error) {
	now := s.now().UTC()
	expiresAt := now.Add(s.ttl)

	claims := &SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminSubject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks signature, algorithm and expiry. It returns ErrTokenExpired or ErrTokenInvalid.
func (s *SessionTokenService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(adminSubject),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// VerifySession is Verify reduced to the session id and its expiry.
func (s *SessionTokenService) VerifySession(tokenString string) (string, time.Time, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return "", time.Time{}, err
	}
	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return claims.SessionID, expiresAt, nil
}
