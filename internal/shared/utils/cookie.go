package utils

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/potluckhq/potluck/internal/shared/config"
)

const (
	AdminSessionCookie = "potluck_admin"
	CSRFTokenCookie    = "csrf_token"
	CSRFTokenHeader    = "X-CSRF-Token"
	csrfTokenBytes     = 32
)

// SetAdminSessionCookie stores the signed admin session token as an HttpOnly cookie
func SetAdminSessionCookie(c *gin.Context, cookieConfig config.CookieConfig, token string, maxAge int) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		AdminSessionCookie,
		token,
		maxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// ClearAdminSessionCookie removes the admin session cookie
func ClearAdminSessionCookie(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		AdminSessionCookie,
		"",
		-1,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true,
	)
}

// SetAttendeeCookie persists the browser session identifier used for claim ownership.
// It is HttpOnly; attendees never need to read it from script.
func SetAttendeeCookie(c *gin.Context, cookieConfig config.CookieConfig, name, sessionID string, maxAge int) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		name,
		sessionID,
		maxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true,
	)
}

// GetTokenFromCookie retrieves a cookie value, empty when absent
func GetTokenFromCookie(c *gin.Context, cookieName string) string {
	token, err := c.Cookie(cookieName)
	if err == nil && token != "" {
		return token
	}
	return ""
}

// SetCSRFCookie generates a random CSRF token and sets it as a non-HttpOnly cookie.
// The token is readable by frontend JavaScript for the Double Submit Cookie pattern.
func SetCSRFCookie(c *gin.Context, cookieConfig config.CookieConfig, maxAge int) string {
	token := generateCSRFToken()

	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		CSRFTokenCookie,
		token,
		maxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		false, // HttpOnly=false so frontend JS can read it
	)
	return token
}

// ClearCSRFCookie removes the CSRF token cookie.
func ClearCSRFCookie(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		CSRFTokenCookie,
		"",
		-1,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		false,
	)
}

func generateCSRFToken() string {
	b := make([]byte, csrfTokenBytes)
	if _, err := rand.Read(b); err != nil {
		panic("csrf: failed to generate random token: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// parseSameSite converts string to http.SameSite
func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
