package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/potluckhq/potluck/internal/shared/logger"
)

type LogoutAdminCommand struct {
	SessionID string
	ExpiresAt time.Time
}

type LogoutAdminUseCase struct {
	store  SessionStore
	tokens SessionTokenService
	logger logger.Interface
}

func NewLogoutAdminUseCase(store SessionStore, tokens SessionTokenService, logger logger.Interface) *LogoutAdminUseCase {
	return &LogoutAdminUseCase{
		store:  store,
		tokens: tokens,
		logger: logger,
	}
}

// Execute revokes the session until the token would have expired anyway.
func (uc *LogoutAdminUseCase) Execute(ctx context.Context, cmd LogoutAdminCommand) error {
	ttl := uc.tokens.TTL()
	if !cmd.ExpiresAt.IsZero() {
		ttl = time.Until(cmd.ExpiresAt)
	}
	if ttl <= 0 {
		uc.logger.Infow("admin session already expired", "session_id", cmd.SessionID)
		return nil
	}

	if err := uc.store.Revoke(ctx, cmd.SessionID, ttl); err != nil {
		uc.logger.Errorw("failed to revoke admin session", "error", err, "session_id", cmd.SessionID)
		return fmt.Errorf("failed to logout: %w", err)
	}

	uc.logger.Infow("admin logged out successfully", "session_id", cmd.SessionID)
	return nil
}
