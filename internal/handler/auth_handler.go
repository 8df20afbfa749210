package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bdelucia/blog/internal/dto"
	"github.com/bdelucia/blog/internal/middleware"
	"github.com/bdelucia/blog/internal/response"
	"github.com/bdelucia/blog/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// GetCurrentUser godoc
// @Summary      Get the authenticated user
// @Tags         auth
// @Produce      json
// @Success      200 {object} dto.UserResponse
// @Failure      404 {object} map[string]string "No local account for this session"
// @Security     BearerAuth
// @Router       /auth/me [get]
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	user := h.authService.GetCurrentUser(c.Request.Context(), userID)
	if user == nil {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "User not found")
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"user": user})
}

// CreateUser godoc
// @Summary      Provision a local account after signup
// @Description  Called once the external auth provider has created the account. The user ID is provider-issued.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateUserRequest true "Account"
// @Success      201 {object} dto.UserResponse
// @Failure      400 {object} map[string]string "Validation failure"
// @Router       /auth/create-user [post]
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	user, err := h.authService.CreateUserAfterSignup(c.Request.Context(), req.UserID, req.Email, req.FullName)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if user == nil {
		response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Failed to create user")
		return
	}
	response.SendSuccess(c, http.StatusCreated, gin.H{"user": user})
}
