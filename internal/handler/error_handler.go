package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bdelucia/blog/internal/response"
)

// handleServiceError maps service layer errors to appropriate HTTP responses
func handleServiceError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Resource not found")
		return
	}

	var appErr *response.AppError
	if errors.As(err, &appErr) {
		statusCode := mapErrorCodeToHTTPStatus(appErr.Code)
		response.SendError(c, statusCode, appErr.Code, appErr.Message)
		return
	}

	response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case response.ErrCodeNotFound:
		return http.StatusNotFound
	case response.ErrCodeAlreadyExists:
		return http.StatusConflict
	case response.ErrCodeValidation:
		return http.StatusBadRequest
	case response.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case response.ErrCodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// pathID parses a positive integer path parameter. A false return means
// the 400 response has already been written.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid "+name)
		return 0, false
	}
	return id, true
}
