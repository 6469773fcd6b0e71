package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/repository"
	"github.com/Kiattisakchaochata/backendTopaward/internal/errors"
	"github.com/Kiattisakchaochata/backendTopaward/pkg/redis"
	"github.com/Kiattisakchaochata/backendTopaward/pkg/util"
)

// Context keys for user information
const (
	UserKey   = "current_user"
	UserIDKey = "user_id"
)

type AuthMiddleware struct {
	jwtSecret  string
	cookieName string
	userRepo   repository.UserRepository
}

func NewAuthMiddleware(jwtSecret, cookieName string, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret:  jwtSecret,
		cookieName: cookieName,
		userRepo:   userRepo,
	}
}

// tokenFromRequest prefers the auth cookie and falls back to a Bearer
// header.
func (m *AuthMiddleware) tokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(m.cookieName); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// Authenticate validates the JWT and loads the current user from the
// database, so a deleted account is rejected even with a live token.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		token := m.tokenFromRequest(c)
		if token == "" {
			errors.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		if blacklisted, err := redis.IsTokenBlacklisted(c.Request.Context(), token); err == nil && blacklisted {
			errors.RespondWithError(c, 401, errors.AuthTokenInvalid, "Token has been revoked")
			c.Abort()
			return
		}

		claims, err := util.ValidateToken(token, m.jwtSecret)
		if err != nil {
			log.Warn("Token validation failed", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			if err == util.ErrExpiredToken {
				errors.RespondWithError(c, 401, errors.AuthTokenExpired, "Session expired, please log in again")
			} else {
				errors.RespondWithError(c, 401, errors.AuthTokenInvalid, "Invalid authentication token")
			}
			c.Abort()
			return
		}

		user, err := m.userRepo.FindByID(claims.UserID)
		if err != nil {
			log.Warn("Token user no longer exists", map[string]interface{}{
				"user_id": claims.UserID,
			})
			errors.RespondWithError(c, 401, errors.AuthTokenInvalid, "Invalid authentication token")
			c.Abort()
			return
		}

		c.Set(UserKey, user)
		c.Set(UserIDKey, user.ID)
		c.Next()
	}
}

// OptionalAuthenticate loads the user when a valid token is present and
// continues as guest otherwise.
func (m *AuthMiddleware) OptionalAuthenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.tokenFromRequest(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := util.ValidateToken(token, m.jwtSecret)
		if err != nil {
			c.Next()
			return
		}
		if user, err := m.userRepo.FindByID(claims.UserID); err == nil {
			c.Set(UserKey, user)
			c.Set(UserIDKey, user.ID)
		}
		c.Next()
	}
}

// RequireAdmin allows only users with the ADMIN role. Must run after
// Authenticate.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetCurrentUser(c)
		if user == nil {
			errors.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			errors.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetCurrentUser returns the authenticated user or nil.
func GetCurrentUser(c *gin.Context) *model.User {
	if value, exists := c.Get(UserKey); exists {
		if user, ok := value.(*model.User); ok {
			return user
		}
	}
	return nil
}
