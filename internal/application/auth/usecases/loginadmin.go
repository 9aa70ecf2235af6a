package usecases

import (
	"context"
	"time"

	apperrors "github.com/potluckhq/potluck/internal/shared/errors"
	"github.com/potluckhq/potluck/internal/shared/id"
	"github.com/potluckhq/potluck/internal/shared/logger"
)

type LoginAdminCommand struct {
	Password  string
	IPAddress string
}

type LoginAdminResult struct {
	Token     string
	SessionID string
	ExpiresAt time.Time
}

type LoginAdminUseCase struct {
	password PasswordChecker
	tokens   SessionTokenService
	logger   logger.Interface
}

func NewLoginAdminUseCase(password PasswordChecker, tokens SessionTokenService, logger logger.Interface) *LoginAdminUseCase {
	return &LoginAdminUseCase{
		password: password,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute exchanges the shared admin password for a signed session token.
func (uc *LoginAdminUseCase) Execute(ctx context.Context, cmd LoginAdminCommand) (*LoginAdminResult, error) {
	uc.logger.Infow("executing login admin use case", "ip", cmd.IPAddress)

	if cmd.Password == "" || !uc.password.Matches(cmd.Password) {
		uc.logger.Warnw("admin login failed", "ip", cmd.IPAddress)
		return nil, apperrors.NewInvalidCredentialsError()
	}

	sessionID := id.NewSessionID()
	token, expiresAt, err := uc.tokens.Issue(sessionID)
	if err != nil {
		uc.logger.Errorw("failed to issue admin session token", "error", err)
		return nil, apperrors.NewInternalError("failed to create session")
	}

	uc.logger.Infow("admin logged in successfully", "session_id", sessionID, "ip", cmd.IPAddress)
	return &LoginAdminResult{
		Token:     token,
		SessionID: sessionID,
		ExpiresAt: expiresAt,
	}, nil
}
