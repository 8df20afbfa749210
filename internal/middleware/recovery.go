package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bdelucia/blog/internal/response"
)

// Recovery returns a middleware that recovers from panics
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.String("query", c.Request.URL.RawQuery),
					zap.Stack("stacktrace"),
				)

				response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
