package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bdelucia/blog/internal/dto"
	"github.com/bdelucia/blog/internal/response"
	"github.com/bdelucia/blog/internal/service"
	"github.com/bdelucia/blog/internal/validation"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetUser godoc
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Param        userId path string true "User ID (UUID)"
// @Success      200 {object} dto.UserResponse
// @Failure      404 {object} map[string]string "User not found"
// @Router       /users/{userId} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if user == nil {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "User not found")
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"user": user})
}

// GetAllUsers godoc
// @Summary      List users
// @Tags         admin-users
// @Produce      json
// @Param        role query string false "Filter by role" Enums(admin, user)
// @Success      200 {array} dto.UserResponse
// @Security     BearerAuth
// @Router       /admin/users [get]
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	if role := c.Query("role"); role != "" {
		response.SendSuccess(c, http.StatusOK, gin.H{"users": h.userService.GetUsersByRole(c.Request.Context(), role)})
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"users": h.userService.GetAllUsers(c.Request.Context())})
}

// UpdateUser godoc
// @Summary      Update a user
// @Tags         admin-users
// @Accept       json
// @Produce      json
// @Param        userId path string true "User ID (UUID)"
// @Param        request body dto.UpdateUserRequest true "Fields to update"
// @Success      200 {object} dto.UserResponse
// @Failure      404 {object} map[string]string "User not found"
// @Security     BearerAuth
// @Router       /admin/users/{userId} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("userId"), &validation.UpdateUserInput{
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
		Role:      req.Role,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if user == nil {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "User not found")
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"user": user})
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  The user's comments, reactions and mentions are removed with the account.
// @Tags         admin-users
// @Produce      json
// @Param        userId path string true "User ID (UUID)"
// @Success      200 {object} map[string]bool
// @Failure      404 {object} map[string]string "User not found"
// @Security     BearerAuth
// @Router       /admin/users/{userId} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	deleted, err := h.userService.DeleteUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if !deleted {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "User not found")
		return
	}
	response.SendSuccess(c, http.StatusOK, nil)
}

// GetUserProfile godoc
// @Summary      Get a user's profile
// @Tags         users
// @Produce      json
// @Param        userId path string true "User ID (UUID)"
// @Success      200 {object} dto.UserProfileResponse
// @Failure      404 {object} map[string]string "Profile not found"
// @Router       /users/{userId}/profile [get]
func (h *UserHandler) GetUserProfile(c *gin.Context) {
	profile, err := h.userService.GetUserProfile(c.Request.Context(), c.Param("userId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if profile == nil {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Profile not found")
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"profile": profile})
}

// UpsertUserProfile godoc
// @Summary      Create or update a user's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userId path string true "User ID (UUID)"
// @Param        request body dto.UpsertProfileRequest true "Profile fields"
// @Success      200 {object} dto.UserProfileResponse
// @Failure      400 {object} map[string]string "Validation failure"
// @Security     BearerAuth
// @Router       /users/{userId}/profile [put]
func (h *UserHandler) UpsertUserProfile(c *gin.Context) {
	userID := c.Param("userId")

	var req dto.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	existing, err := h.userService.GetUserProfile(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	var profile *dto.UserProfileResponse
	if existing == nil {
		profile, err = h.userService.CreateUserProfile(c.Request.Context(), &validation.CreateUserProfileInput{
			ID:            userID,
			Bio:           req.Bio,
			Website:       req.Website,
			Location:      req.Location,
			TwitterHandle: req.TwitterHandle,
			GithubHandle:  req.GithubHandle,
		})
	} else {
		profile, err = h.userService.UpdateUserProfile(c.Request.Context(), userID, &validation.UpdateUserProfileInput{
			Bio:           req.Bio,
			Website:       req.Website,
			Location:      req.Location,
			TwitterHandle: req.TwitterHandle,
			GithubHandle:  req.GithubHandle,
		})
	}
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if profile == nil {
		response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Failed to save profile")
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"profile": profile})
}

// DeleteUserProfile godoc
// @Summary      Delete a user's profile
// @Tags         users
// @Produce      json
// @Param        userId path string true "User ID (UUID)"
// @Success      200 {object} map[string]bool
// @Failure      404 {object} map[string]string "Profile not found"
// @Security     BearerAuth
// @Router       /users/{userId}/profile [delete]
func (h *UserHandler) DeleteUserProfile(c *gin.Context) {
	deleted, err := h.userService.DeleteUserProfile(c.Request.Context(), c.Param("userId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if !deleted {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Profile not found")
		return
	}
	response.SendSuccess(c, http.StatusOK, nil)
}
