package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/bdelucia/blog/internal/domain"
)

// CreateUserRequest represents the post-signup provisioning request.
// The user ID comes from the external auth provider.
type CreateUserRequest struct {
	UserID   string  `json:"userId" binding:"required"`
	Email    string  `json:"email" binding:"required"`
	FullName *string `json:"fullName"`
}

// UpdateUserRequest represents the request to update a user
type UpdateUserRequest struct {
	FullName  *string `json:"fullName"`
	AvatarURL *string `json:"avatarUrl"`
	Role      *string `json:"role"`
}

// UpsertProfileRequest represents a profile create/update request
type UpsertProfileRequest struct {
	Bio           *string `json:"bio"`
	Website       *string `json:"website"`
	Location      *string `json:"location"`
	TwitterHandle *string `json:"twitterHandle"`
	GithubHandle  *string `json:"githubHandle"`
}

// UserResponse represents the user response
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"fullName"`
	AvatarURL *string   `json:"avatarUrl"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserProfileResponse represents the profile response
type UserProfileResponse struct {
	ID            uuid.UUID `json:"id"`
	Bio           *string   `json:"bio"`
	Website       *string   `json:"website"`
	Location      *string   `json:"location"`
	TwitterHandle *string   `json:"twitterHandle"`
	GithubHandle  *string   `json:"githubHandle"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ToUserResponse converts a User to its response shape
func ToUserResponse(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToUserResponses converts a list of users
func ToUserResponses(users []*domain.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}

// ToUserProfileResponse converts a UserProfile to its response shape
func ToUserProfileResponse(p *domain.UserProfile) *UserProfileResponse {
	if p == nil {
		return nil
	}
	return &UserProfileResponse{
		ID:            p.ID,
		Bio:           p.Bio,
		Website:       p.Website,
		Location:      p.Location,
		TwitterHandle: p.TwitterHandle,
		GithubHandle:  p.GithubHandle,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
