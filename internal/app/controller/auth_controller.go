package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kiattisakchaochata/backendTopaward/config"
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/service"
	apperrors "github.com/Kiattisakchaochata/backendTopaward/internal/errors"
	"github.com/Kiattisakchaochata/backendTopaward/internal/middleware"
	"github.com/Kiattisakchaochata/backendTopaward/pkg/redis"
	"github.com/Kiattisakchaochata/backendTopaward/pkg/util"
)

type AuthController struct {
	authService  service.AuthService
	oauthService service.OAuthService
	cfg          *config.Config
}

func NewAuthController(authService service.AuthService, oauthService service.OAuthService, cfg *config.Config) *AuthController {
	return &AuthController{
		authService:  authService,
		oauthService: oauthService,
		cfg:          cfg,
	}
}

type OAuthTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// issueSession signs a JWT for the user and sets it as an HTTP-only
// cookie alongside the JSON payload.
func (ctrl *AuthController) issueSession(c *gin.Context, userID uint, role string) (string, error) {
	token, err := util.GenerateToken(userID, role, ctrl.cfg.JWT.Secret, ctrl.cfg.JWT.TokenExpiry)
	if err != nil {
		return "", err
	}

	maxAge := int(ctrl.cfg.JWT.TokenExpiry.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ctrl.cfg.JWT.CookieName, token, maxAge, "/", "", ctrl.cfg.IsProduction(), true)
	return token, nil
}

// Register handles user registration
// POST /api/auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req service.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Name, email and password are required")
		return
	}

	user, err := ctrl.authService.Register(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailAlreadyExists):
			apperrors.Conflict(c, apperrors.AuthEmailAlreadyExists, "This email is already registered")
		case errors.Is(err, service.ErrPasswordTooShort):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Password must be at least 6 characters")
		default:
			log.Error("Registration failed", err, nil)
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "auth")
		}
		return
	}

	token, err := ctrl.issueSession(c, user.ID, string(user.Role))
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  user.Public(),
		"token": token,
	})
}

// Login handles password login
// POST /api/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	var req service.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Email and password are required")
		return
	}

	user, err := ctrl.authService.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthInvalidCredentials, "Invalid email or password")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "auth")
		return
	}

	token, err := ctrl.issueSession(c, user.ID, string(user.Role))
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user.Public(),
		"token": token,
	})
}

// GoogleLogin verifies a Google ID token and signs the user in
// POST /api/auth/oauth/google
func (ctrl *AuthController) GoogleLogin(c *gin.Context) {
	var req OAuthTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "An ID token is required")
		return
	}

	user, err := ctrl.oauthService.LoginWithGoogle(req.Token)
	if err != nil {
		ctrl.respondOAuthError(c, err)
		return
	}

	token, err := ctrl.issueSession(c, user.ID, string(user.Role))
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.Public(), "token": token})
}

// FacebookLogin verifies a Facebook access token and signs the user in
// POST /api/auth/oauth/facebook
func (ctrl *AuthController) FacebookLogin(c *gin.Context) {
	var req OAuthTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "An access token is required")
		return
	}

	user, err := ctrl.oauthService.LoginWithFacebook(req.Token)
	if err != nil {
		ctrl.respondOAuthError(c, err)
		return
	}

	token, err := ctrl.issueSession(c, user.ID, string(user.Role))
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.Public(), "token": token})
}

func (ctrl *AuthController) respondOAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrOAuthNoEmail):
		apperrors.BadRequest(c, apperrors.AuthOAuthNoEmail, "The provider account has no email address")
	case errors.Is(err, service.ErrOAuthTokenInvalid):
		apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthOAuthFailed, "Could not verify the provider token")
	default:
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "auth")
	}
}

// Me returns the authenticated user
// GET /api/auth/me
func (ctrl *AuthController) Me(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		apperrors.Unauthorized(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}

// Logout clears the auth cookie and blacklists the live token
// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	if token, err := c.Cookie(ctrl.cfg.JWT.CookieName); err == nil && token != "" {
		_ = redis.BlacklistToken(c.Request.Context(), token, ctrl.cfg.JWT.TokenExpiry)
	}

	c.SetCookie(ctrl.cfg.JWT.CookieName, "", -1, "/", "", ctrl.cfg.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// ChangePassword updates the password for the authenticated user
// POST /api/auth/change-password
func (ctrl *AuthController) ChangePassword(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		apperrors.Unauthorized(c, "")
		return
	}

	var req service.ChangePasswordInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Old and new passwords are required")
		return
	}

	if err := ctrl.authService.ChangePassword(user.ID, req); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthPasswordMismatch, "Current password is incorrect")
		case errors.Is(err, service.ErrPasswordTooShort):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "New password must be at least 8 characters")
		case errors.Is(err, service.ErrPasswordUnchanged):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "New password must differ from the old one")
		case errors.Is(err, service.ErrNoPasswordSet):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "This account signs in with a social provider")
		default:
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "auth")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}
