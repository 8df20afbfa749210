package response

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// Error codes shared between services and handlers
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

// AppError is an application-level error carrying a machine-readable code
type AppError struct {
	Code    string
	Message string
	Details string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAppError creates a new AppError
func NewAppError(code, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

// SendSuccess writes a JSON success response
func SendSuccess(c *gin.Context, status int, payload interface{}) {
	if payload == nil {
		c.JSON(status, gin.H{"success": true})
		return
	}
	c.JSON(status, payload)
}

// SendError writes the JSON error body. Every error response has the
// shape {"error": message}, regardless of status code.
func SendError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": message})
}
