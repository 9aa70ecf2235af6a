package usecases

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/potluckhq/potluck/internal/shared/errors"
	"github.com/potluckhq/potluck/internal/shared/logger"
)

type AdminSession struct {
	SessionID string
	ExpiresAt time.Time
}

type VerifyAdminSessionUseCase struct {
	tokens SessionTokenService
	store  SessionStore
	logger logger.Interface
}

func NewVerifyAdminSessionUseCase(tokens SessionTokenService, store SessionStore, logger logger.Interface) *VerifyAdminSessionUseCase {
	return &VerifyAdminSessionUseCase{
		tokens: tokens,
		store:  store,
		logger: logger,
	}
}

// Execute checks the token signature and expiry, then the revocation list.
func (uc *VerifyAdminSessionUseCase) Execute(ctx context.Context, token string) (*AdminSession, error) {
	if token == "" {
		return nil, apperrors.NewUnauthorizedError("Admin login required")
	}

	sessionID, expiresAt, err := uc.tokens.VerifySession(token)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionTokenExpired) {
			return nil, apperrors.NewSessionExpiredError()
		}
		uc.logger.Warnw("invalid admin session token", "error", err)
		return nil, apperrors.NewTokenInvalidError()
	}

	revoked, err := uc.store.IsRevoked(ctx, sessionID)
	if err != nil {
		uc.logger.Errorw("failed to check session revocation", "error", err, "session_id", sessionID)
		return nil, apperrors.NewInternalError("failed to verify session")
	}
	if revoked {
		return nil, apperrors.NewSessionExpiredError()
	}

	return &AdminSession{SessionID: sessionID, ExpiresAt: expiresAt}, nil
}
