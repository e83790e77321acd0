package controllers

import (
	"net/http"

	"trimspire/middlewares"
	"trimspire/services"
	"trimspire/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type MagicLinkInput struct {
	Email string `json:"email" binding:"required,email"`
}

type SetPasswordInput struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type AuthController struct {
	auth   *services.AuthService
	secure bool
	log    *zap.Logger
}

// NewAuthController builds the controller. secure controls the Secure flag of the
// session cookie.
func NewAuthController(auth *services.AuthService, secure bool, log *zap.Logger) *AuthController {
	return &AuthController{auth: auth, secure: secure, log: log}
}

func (ac *AuthController) setSession(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middlewares.SessionCookie, token, int(utils.SessionTTL.Seconds()), "/", "", ac.secure, true)
}

func (ac *AuthController) clearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", ac.secure, true)
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	token, err := ac.auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, ac.log, err)
		return
	}
	ac.setSession(c, token)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /api/auth/magic-link
func (ac *AuthController) RequestMagicLink(c *gin.Context) {
	var input MagicLinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	// The answer never reveals whether the address is registered.
	if err := ac.auth.SendMagicLink(c.Request.Context(), input.Email); err != nil {
		ac.log.Error("send magic link", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"message": "if the address is registered, a login link is on its way"})
}

// GET /api/auth/verify?token=
func (ac *AuthController) VerifyMagicLink(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	session, err := ac.auth.VerifyMagicLink(c.Request.Context(), token)
	if err != nil {
		respondError(c, ac.log, err)
		return
	}
	ac.setSession(c, session)
	c.Redirect(http.StatusFound, "/dashboard")
}

// POST /api/auth/set-password
func (ac *AuthController) SetPassword(c *gin.Context) {
	var input SetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	session, err := ac.auth.SetPassword(c.Request.Context(), input.Token, input.Password)
	if err != nil {
		respondError(c, ac.log, err)
		return
	}
	ac.setSession(c, session)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *gin.Context) {
	ac.clearSession(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
