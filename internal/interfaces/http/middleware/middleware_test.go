package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authUsecases "github.com/potluckhq/potluck/internal/application/auth/usecases"
	"github.com/potluckhq/potluck/internal/infrastructure/ratelimit"
	"github.com/potluckhq/potluck/internal/shared/config"
	"github.com/potluckhq/potluck/internal/shared/constants"
	apperrors "github.com/potluckhq/potluck/internal/shared/errors"
	"github.com/potluckhq/potluck/internal/shared/logger"
	"github.com/potluckhq/potluck/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func ok(c *gin.Context) {
	c.String(http.StatusOK, c.GetString(constants.ContextKeyAttendeeSessionID))
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// =====================================================================
// AttendeeSession
// =====================================================================

func newAttendeeRouter() *gin.Engine {
	r := gin.New()
	r.Use(AttendeeSession(
		config.AttendeeConfig{CookieName: "potluck_sid", CookieMaxDays: 365},
		config.CookieConfig{Path: "/"},
	))
	r.GET("/p/:slug", ok)
	return r
}

func TestAttendeeSession_IssuesCookie(t *testing.T) {
	w := serve(newAttendeeRouter(), httptest.NewRequest(http.MethodGet, "/p/abc", nil))

	require.Equal(t, http.StatusOK, w.Code)
	cookie := findCookie(w, "potluck_sid")
	require.NotNil(t, cookie)
	_, err := uuid.Parse(cookie.Value)
	assert.NoError(t, err)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 365*24*60*60, cookie.MaxAge)
	assert.Equal(t, cookie.Value, w.Body.String())
}

func TestAttendeeSession_KeepsExistingCookie(t *testing.T) {
	existing := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/p/abc", nil)
	req.AddCookie(&http.Cookie{Name: "potluck_sid", Value: existing})

	w := serve(newAttendeeRouter(), req)

	assert.Equal(t, existing, w.Body.String())
	assert.Nil(t, findCookie(w, "potluck_sid"))
}

func TestAttendeeSession_ReplacesMalformedCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/p/abc", nil)
	req.AddCookie(&http.Cookie{Name: "potluck_sid", Value: "not-a-session"})

	w := serve(newAttendeeRouter(), req)

	cookie := findCookie(w, "potluck_sid")
	require.NotNil(t, cookie)
	assert.NotEqual(t, "not-a-session", cookie.Value)
	assert.Equal(t, cookie.Value, w.Body.String())
}

// =====================================================================
// CSRF
// =====================================================================

func newCSRFRouter() *gin.Engine {
	r := gin.New()
	r.Use(CSRF("/admin/login"))
	r.POST("/admin/login", ok)
	r.POST("/admin/potlucks", ok)
	r.GET("/admin/dashboard", ok)
	return r
}

func TestCSRF(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		cookies    map[string]string
		header     string
		bearer     bool
		wantStatus int
	}{
		{"safe method passes", http.MethodGet, "/admin/dashboard", nil, "", false, http.StatusOK},
		{"exempt login passes", http.MethodPost, "/admin/login", nil, "", false, http.StatusOK},
		{"missing cookie", http.MethodPost, "/admin/potlucks", map[string]string{utils.AdminSessionCookie: "t"}, "abc", false, http.StatusForbidden},
		{"missing header", http.MethodPost, "/admin/potlucks", map[string]string{utils.AdminSessionCookie: "t", utils.CSRFTokenCookie: "abc"}, "", false, http.StatusForbidden},
		{"mismatch", http.MethodPost, "/admin/potlucks", map[string]string{utils.AdminSessionCookie: "t", utils.CSRFTokenCookie: "abc"}, "xyz", false, http.StatusForbidden},
		{"match", http.MethodPost, "/admin/potlucks", map[string]string{utils.AdminSessionCookie: "t", utils.CSRFTokenCookie: "abc"}, "abc", false, http.StatusOK},
		{"bearer only skips check", http.MethodPost, "/admin/potlucks", nil, "", true, http.StatusOK},
		{"bearer with cookie still checked", http.MethodPost, "/admin/potlucks", map[string]string{utils.AdminSessionCookie: "t"}, "", true, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			for name, value := range tt.cookies {
				req.AddCookie(&http.Cookie{Name: name, Value: value})
			}
			if tt.header != "" {
				req.Header.Set(utils.CSRFTokenHeader, tt.header)
			}
			if tt.bearer {
				req.Header.Set("Authorization", "Bearer token")
			}

			w := serve(newCSRFRouter(), req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

// =====================================================================
// RequireAdmin
// =====================================================================

type stubVerifier struct {
	token   string
	session *authUsecases.AdminSession
	err     error
}

func (s *stubVerifier) Execute(ctx context.Context, token string) (*authUsecases.AdminSession, error) {
	s.token = token
	return s.session, s.err
}

func newAdminRouter(v *stubVerifier) *gin.Engine {
	r := gin.New()
	r.Use(NewAdminAuthMiddleware(v, logger.NewNopLogger()).RequireAdmin())
	r.GET("/admin/dashboard", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.ContextKeyAdminSessionID))
	})
	return r
}

func TestRequireAdmin_CookieTakesPrecedence(t *testing.T) {
	v := &stubVerifier{session: &authUsecases.AdminSession{SessionID: "sid-1", ExpiresAt: time.Now().Add(time.Hour)}}
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: utils.AdminSessionCookie, Value: "cookie-token"})
	req.Header.Set("Authorization", "Bearer header-token")

	w := serve(newAdminRouter(v), req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cookie-token", v.token)
	assert.Equal(t, "sid-1", w.Body.String())
}

func TestRequireAdmin_BearerFallback(t *testing.T) {
	v := &stubVerifier{session: &authUsecases.AdminSession{SessionID: "sid-2"}}
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer header-token")

	w := serve(newAdminRouter(v), req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "header-token", v.token)
}

func TestRequireAdmin_Rejects(t *testing.T) {
	v := &stubVerifier{err: apperrors.NewSessionExpiredError()}
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Basic Zm9vOmJhcg==")

	w := serve(newAdminRouter(v), req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, v.token)
}

// =====================================================================
// RateLimit
// =====================================================================

type failingLimiter struct{}

func (failingLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	return false, errors.New("redis: connection refused")
}

func (failingLimiter) Reset(ctx context.Context, key string) error { return nil }

func TestRateLimit_BlocksAfterLimit(t *testing.T) {
	r := gin.New()
	r.POST("/admin/login", RateLimit(ratelimit.NewMemoryRateLimiter(), "login", 2, time.Minute, logger.NewNopLogger()), ok)

	for i := 0; i < 2; i++ {
		w := serve(r, httptest.NewRequest(http.MethodPost, "/admin/login", nil))
		require.Equal(t, http.StatusOK, w.Code, "attempt %d", i+1)
	}

	w := serve(r, httptest.NewRequest(http.MethodPost, "/admin/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
}

func TestRateLimit_FailsOpen(t *testing.T) {
	r := gin.New()
	r.POST("/admin/login", RateLimit(failingLimiter{}, "login", 1, time.Minute, logger.NewNopLogger()), ok)

	w := serve(r, httptest.NewRequest(http.MethodPost, "/admin/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

// =====================================================================
// Recovery, CORS and security headers
// =====================================================================

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logger.NewNopLogger()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestCORSAndSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://party.example"}), SecurityHeaders())
	r.GET("/p/:slug", ok)

	req := httptest.NewRequest(http.MethodGet, "/p/abc", nil)
	req.Header.Set("Origin", "https://party.example")
	w := serve(r, req)
	assert.Equal(t, "https://party.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))

	req = httptest.NewRequest(http.MethodGet, "/p/abc", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = serve(r, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
