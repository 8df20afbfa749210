package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bdelucia/blog/internal/response"
)

// AdminChecker reports whether a user holds the admin role
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) bool
}

// RequireAdmin returns a middleware that rejects non-admin users. It
// must run after the auth middleware.
func RequireAdmin(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		if !checker.IsAdmin(c.Request.Context(), userID) {
			response.SendError(c, http.StatusForbidden, response.ErrCodeForbidden, "Admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}
