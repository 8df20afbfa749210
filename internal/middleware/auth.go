package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/bdelucia/blog/internal/response"
)

// ContextUserID is the gin context key holding the authenticated user ID
const ContextUserID = "user_id"

// SessionValidator interface for auth-provider session validation
type SessionValidator interface {
	ValidateSession(ctx context.Context, tokenStr string) (uuid.UUID, error)
}

// AuthWithValidator returns a middleware that validates session tokens via
// the external auth provider. Revoked sessions are rejected here.
func AuthWithValidator(validator SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		userID, err := validator.ValidateSession(ctx, tokenString)
		if err != nil {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid or expired session")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// Auth returns a middleware that validates JWT tokens locally. Used when no
// auth provider URL is configured; sessions revoked at the provider are not
// detected here.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid token claims")
			c.Abort()
			return
		}

		// Support multiple claim formats for the user ID
		var userIDStr string
		if uid, ok := claims["user_id"].(string); ok {
			userIDStr = uid
		} else if sub, ok := claims["sub"].(string); ok {
			userIDStr = sub
		} else if uid, ok := claims["uid"].(string); ok {
			userIDStr = uid
		} else {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "User ID not found in token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid user ID format")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID returns the authenticated user ID stored by the auth middleware
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authorization header is required")
		c.Abort()
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid authorization header format")
		c.Abort()
		return "", false
	}

	return parts[1], true
}
