package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/potluckhq/potluck/internal/shared/config"
	"github.com/potluckhq/potluck/internal/shared/constants"
	"github.com/potluckhq/potluck/internal/shared/id"
	"github.com/potluckhq/potluck/internal/shared/utils"
)

// AttendeeSession makes sure every public visitor carries a browser session id.
// The cookie is issued once and kept until it expires; a malformed value is replaced.
func AttendeeSession(attendeeCfg config.AttendeeConfig, cookieCfg config.CookieConfig) gin.HandlerFunc {
	maxAge := attendeeCfg.CookieMaxDays * 24 * 60 * 60

	return func(c *gin.Context) {
		sessionID := utils.GetTokenFromCookie(c, attendeeCfg.CookieName)
		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = id.NewSessionID()
			utils.SetAttendeeCookie(c, cookieCfg, attendeeCfg.CookieName, sessionID, maxAge)
		}

		c.Set(constants.ContextKeyAttendeeSessionID, sessionID)
		c.Next()
	}
}

// AttendeeSessionID returns the id set by AttendeeSession, empty outside public routes.
func AttendeeSessionID(c *gin.Context) string {
	return c.GetString(constants.ContextKeyAttendeeSessionID)
}
