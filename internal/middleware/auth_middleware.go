package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anupamk/vidyalaya/internal/app/models"
	"github.com/anupamk/vidyalaya/internal/app/models/dto"
	"github.com/anupamk/vidyalaya/internal/app/services"
	"github.com/anupamk/vidyalaya/internal/pkg/apperrors"
	"github.com/anupamk/vidyalaya/internal/pkg/auth"
)

// sessionContextKey is where the resolved session lives in the gin context.
const sessionContextKey = "session"

// AuthMiddleware resolves sessions from bearer tokens and gates routes
// by role. The route-level role gate is a convenience; the services run
// the authoritative check themselves.
type AuthMiddleware struct {
	authService services.AuthService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// SessionFromContext returns the session the JWTAuth middleware resolved,
// or nil when the request is unauthenticated.
func SessionFromContext(c *gin.Context) *models.Session {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}
	session, ok := value.(*models.Session)
	if !ok {
		return nil
	}
	return session
}

// JWTAuth requires a valid bearer token and stores the session it carries.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		session, err := m.authService.SessionFromToken(tokenString)
		if err != nil || session == nil {
			errorCode := dto.ErrorCodeInvalidToken
			errorDetails := "Invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				errorCode = dto.ErrorCodeExpiredToken
				errorDetails = "Token has expired"
			}

			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed")
			errorDetail = errorDetail.WithDetails(errorDetails)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// OptionalJWTAuth resolves a session when a valid token is present but
// lets anonymous requests through. Until a token arrives the session is
// simply unknown; nothing admin-only renders off this path.
func (m *AuthMiddleware) OptionalJWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			c.Next()
			return
		}

		if session, err := m.authService.SessionFromToken(tokenString); err == nil && session != nil {
			c.Set(sessionContextKey, session)
		}
		c.Next()
	}
}

// RoleRequired rejects requests whose session ranks below the required
// role. Must run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := SessionFromContext(c)
		if session == nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("No session on request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		if !session.Role.AtLeast(required) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
			errorDetail = errorDetail.WithDetails("You don't have sufficient permissions for this operation")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}
