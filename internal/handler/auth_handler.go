package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"folio/internal/config"
	"folio/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	cfg         config.JWTConfig
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, cfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Authenticate with email and password. On success the session
// @Description token is set as an HttpOnly cookie and also returned in the body.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} Response{data=SessionResponse} "Authenticated"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input service.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	session, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.CookieName, session.Token, maxAge, "/", h.cfg.CookieDomain, h.cfg.CookieSecure, true)

	RespondOK(c, gin.H{
		"token":      session.Token,
		"expires_at": session.ExpiresAt,
		"user":       session.User,
	})
}

// Logout handles DELETE /api/auth/login
// @Summary Log out
// @Description Revoke the session by clearing the session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} Response{data=MessageResponse} "Logged out"
// @Security CookieAuth
// @Router /auth/login [delete]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.CookieName, "", -1, "/", h.cfg.CookieDomain, h.cfg.CookieSecure, true)
	RespondOK(c, gin.H{"message": "logged out"})
}

// Register handles POST /api/auth/register
// @Summary Register the owner account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} Response{data=domain.User} "Account created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input service.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	user, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, user)
}

// Me handles GET /api/auth/me
// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} Response "Session claims"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security CookieAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, exists := c.Get("claims")
	if !exists {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing session")
		return
	}
	RespondOK(c, claims)
}
