package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	authUsecases "github.com/potluckhq/potluck/internal/application/auth/usecases"
	"github.com/potluckhq/potluck/internal/shared/constants"
	"github.com/potluckhq/potluck/internal/shared/errors"
	"github.com/potluckhq/potluck/internal/shared/logger"
	"github.com/potluckhq/potluck/internal/shared/utils"
)

// ContextKeyAdminSessionExpiresAt carries the token expiry so logout can bound the revocation.
const ContextKeyAdminSessionExpiresAt = "admin_session_expires_at"

type AdminSessionVerifier interface {
	Execute(ctx context.Context, token string) (*authUsecases.AdminSession, error)
}

type AdminAuthMiddleware struct {
	verifier AdminSessionVerifier
	logger   logger.Interface
}

func NewAdminAuthMiddleware(verifier AdminSessionVerifier, logger logger.Interface) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// RequireAdmin accepts the session cookie, or a Bearer token for API clients.
func (m *AdminAuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetTokenFromCookie(c, utils.AdminSessionCookie)
		if token == "" {
			token = bearerToken(c.GetHeader(constants.HeaderAuthorization))
		}

		session, err := m.verifier.Execute(c.Request.Context(), token)
		if err != nil {
			if errors.ShouldLogAuthError(err) {
				m.logger.Warnw("admin session rejected", "error", err, "ip", c.ClientIP())
			}
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyAdminSessionID, session.SessionID)
		c.Set(ContextKeyAdminSessionExpiresAt, session.ExpiresAt)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
