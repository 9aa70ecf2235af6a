package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authUsecases "github.com/potluckhq/potluck/internal/application/auth/usecases"
	"github.com/potluckhq/potluck/internal/interfaces/http/middleware"
	"github.com/potluckhq/potluck/internal/shared/config"
	"github.com/potluckhq/potluck/internal/shared/constants"
	"github.com/potluckhq/potluck/internal/shared/logger"
	"github.com/potluckhq/potluck/internal/shared/utils"
)

type AuthHandler struct {
	loginUC      loginAdminUseCase
	logoutUC     logoutAdminUseCase
	cookieConfig config.CookieConfig
	logger       logger.Interface
}

func NewAuthHandler(
	loginUC loginAdminUseCase,
	logoutUC logoutAdminUseCase,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:      loginUC,
		logoutUC:     logoutUC,
		cookieConfig: cookieConfig,
		logger:       logger,
	}
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CSRFToken string    `json:"csrf_token"`
}

// Login godoc
// @Summary Admin login
// @Description Exchange the admin password for a session cookie
// @Tags admin-auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin password"
// @Success 200 {object} utils.APIResponse{data=LoginResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := utils.BindRequest(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), authUsecases.LoginAdminCommand{
		Password:  req.Password,
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	utils.SetAdminSessionCookie(c, h.cookieConfig, result.Token, maxAge)
	csrfToken := utils.SetCSRFCookie(c, h.cookieConfig, maxAge)

	utils.SuccessResponse(c, http.StatusOK, "Logged in", LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		CSRFToken: csrfToken,
	})
}

// Logout godoc
// @Summary Admin logout
// @Description Revoke the current admin session
// @Tags admin-auth
// @Produce json
// @Security AdminSession
// @Success 204
// @Failure 401 {object} utils.APIResponse
// @Router /admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cmd := authUsecases.LogoutAdminCommand{
		SessionID: c.GetString(constants.ContextKeyAdminSessionID),
	}
	if expiresAt, ok := c.Get(middleware.ContextKeyAdminSessionExpiresAt); ok {
		cmd.ExpiresAt, _ = expiresAt.(time.Time)
	}

	if err := h.logoutUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ClearAdminSessionCookie(c, h.cookieConfig)
	utils.ClearCSRFCookie(c, h.cookieConfig)
	utils.NoContentResponse(c)
}
