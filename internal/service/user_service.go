package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bdelucia/blog/internal/domain"
	"github.com/bdelucia/blog/internal/dto"
	"github.com/bdelucia/blog/internal/repository"
	"github.com/bdelucia/blog/internal/validation"
)

// UserService defines the interface for user business logic
type UserService interface {
	GetUser(ctx context.Context, id string) (*dto.UserResponse, error)
	GetUserByEmail(ctx context.Context, email string) (*dto.UserResponse, error)
	GetAllUsers(ctx context.Context) []*dto.UserResponse
	GetUsersByRole(ctx context.Context, role string) []*dto.UserResponse
	CreateUser(ctx context.Context, in *validation.CreateUserInput) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, id string, in *validation.UpdateUserInput) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id string) (bool, error)
	GetUserProfile(ctx context.Context, id string) (*dto.UserProfileResponse, error)
	CreateUserProfile(ctx context.Context, in *validation.CreateUserProfileInput) (*dto.UserProfileResponse, error)
	UpdateUserProfile(ctx context.Context, id string, in *validation.UpdateUserProfileInput) (*dto.UserProfileResponse, error)
	DeleteUserProfile(ctx context.Context, id string) (bool, error)
}

// userServiceImpl is the implementation of UserService
type userServiceImpl struct {
	userRepo    repository.UserRepository
	profileRepo repository.UserProfileRepository
	logger      *zap.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo repository.UserRepository, profileRepo repository.UserProfileRepository, logger *zap.Logger) UserService {
	return &userServiceImpl{userRepo: userRepo, profileRepo: profileRepo, logger: logger}
}

func parseUserID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, validationError(&validation.Error{Fields: []validation.FieldError{
			{Field: "id", Message: "id must be a valid UUID"},
		}})
	}
	return uid, nil
}

// GetUser returns a user by ID
func (s *userServiceImpl) GetUser(ctx context.Context, id string) (*dto.UserResponse, error) {
	uid, err := parseUserID(id)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, uid)
	if err != nil {
		s.logger.Error("failed to fetch user", zap.String("id", id), zap.Error(err))
		return nil, nil
	}
	return dto.ToUserResponse(user), nil
}

// GetUserByEmail returns a user by email
func (s *userServiceImpl) GetUserByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	if err := validation.Email(email); err != nil {
		return nil, validationError(err)
	}
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Error("failed to fetch user by email", zap.String("email", email), zap.Error(err))
		return nil, nil
	}
	return dto.ToUserResponse(user), nil
}

// GetAllUsers returns every user
func (s *userServiceImpl) GetAllUsers(ctx context.Context) []*dto.UserResponse {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("failed to fetch users", zap.Error(err))
		return []*dto.UserResponse{}
	}
	return dto.ToUserResponses(users)
}

// GetUsersByRole returns users holding the given role
func (s *userServiceImpl) GetUsersByRole(ctx context.Context, role string) []*dto.UserResponse {
	users, err := s.userRepo.FindByRole(ctx, domain.UserRole(role))
	if err != nil {
		s.logger.Error("failed to fetch users by role", zap.String("role", role), zap.Error(err))
		return []*dto.UserResponse{}
	}
	return dto.ToUserResponses(users)
}

// CreateUser inserts a user row. The ID must be the one issued by the
// external auth provider; it is never generated here.
func (s *userServiceImpl) CreateUser(ctx context.Context, in *validation.CreateUserInput) (*dto.UserResponse, error) {
	if err := validation.CreateUser(in); err != nil {
		return nil, validationError(err)
	}

	user := &domain.User{
		ID:        uuid.MustParse(in.ID),
		Email:     in.Email,
		FullName:  in.FullName,
		AvatarURL: in.AvatarURL,
		Role:      domain.RoleUser,
	}
	if in.Role != "" {
		user.Role = domain.UserRole(in.Role)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("failed to create user", zap.String("id", in.ID), zap.Error(err))
		return nil, nil
	}
	return dto.ToUserResponse(user), nil
}

// UpdateUser applies a partial update to a user row
func (s *userServiceImpl) UpdateUser(ctx context.Context, id string, in *validation.UpdateUserInput) (*dto.UserResponse, error) {
	uid, err := parseUserID(id)
	if err != nil {
		return nil, err
	}
	if err := validation.UpdateUser(in); err != nil {
		return nil, validationError(err)
	}

	fields := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if in.FullName != nil {
		fields["full_name"] = *in.FullName
	}
	if in.AvatarURL != nil {
		fields["avatar_url"] = *in.AvatarURL
	}
	if in.Role != nil {
		fields["role"] = *in.Role
	}

	user, err := s.userRepo.Update(ctx, uid, fields)
	if err != nil {
		s.logger.Error("failed to update user", zap.String("id", id), zap.Error(err))
		return nil, nil
	}
	return dto.ToUserResponse(user), nil
}

// DeleteUser removes a user; comments and reactions cascade
func (s *userServiceImpl) DeleteUser(ctx context.Context, id string) (bool, error) {
	uid, err := parseUserID(id)
	if err != nil {
		return false, err
	}
	if err := s.userRepo.Delete(ctx, uid); err != nil {
		s.logger.Error("failed to delete user", zap.String("id", id), zap.Error(err))
		return false, nil
	}
	return true, nil
}

// GetUserProfile returns the optional profile sub-record
func (s *userServiceImpl) GetUserProfile(ctx context.Context, id string) (*dto.UserProfileResponse, error) {
	uid, err := parseUserID(id)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileRepo.FindByUserID(ctx, uid)
	if err != nil {
		s.logger.Error("failed to fetch user profile", zap.String("id", id), zap.Error(err))
		return nil, nil
	}
	return dto.ToUserProfileResponse(profile), nil
}

// CreateUserProfile inserts the profile sub-record keyed by the user ID
func (s *userServiceImpl) CreateUserProfile(ctx context.Context, in *validation.CreateUserProfileInput) (*dto.UserProfileResponse, error) {
	if err := validation.CreateUserProfile(in); err != nil {
		return nil, validationError(err)
	}
	profile := &domain.UserProfile{
		ID:            uuid.MustParse(in.ID),
		Bio:           in.Bio,
		Website:       in.Website,
		Location:      in.Location,
		TwitterHandle: in.TwitterHandle,
		GithubHandle:  in.GithubHandle,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		s.logger.Error("failed to create user profile", zap.String("id", in.ID), zap.Error(err))
		return nil, nil
	}
	return dto.ToUserProfileResponse(profile), nil
}

// UpdateUserProfile applies a partial update to the profile sub-record
func (s *userServiceImpl) UpdateUserProfile(ctx context.Context, id string, in *validation.UpdateUserProfileInput) (*dto.UserProfileResponse, error) {
	uid, err := parseUserID(id)
	if err != nil {
		return nil, err
	}
	if err := validation.UpdateUserProfile(in); err != nil {
		return nil, validationError(err)
	}

	fields := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if in.Bio != nil {
		fields["bio"] = *in.Bio
	}
	if in.Website != nil {
		fields["website"] = *in.Website
	}
	if in.Location != nil {
		fields["location"] = *in.Location
	}
	if in.TwitterHandle != nil {
		fields["twitter_handle"] = *in.TwitterHandle
	}
	if in.GithubHandle != nil {
		fields["github_handle"] = *in.GithubHandle
	}

	profile, err := s.profileRepo.Update(ctx, uid, fields)
	if err != nil {
		s.logger.Error("failed to update user profile", zap.String("id", id), zap.Error(err))
		return nil, nil
	}
	return dto.ToUserProfileResponse(profile), nil
}

// DeleteUserProfile removes the profile sub-record
func (s *userServiceImpl) DeleteUserProfile(ctx context.Context, id string) (bool, error) {
	uid, err := parseUserID(id)
	if err != nil {
		return false, err
	}
	if err := s.profileRepo.Delete(ctx, uid); err != nil {
		s.logger.Error("failed to delete user profile", zap.String("id", id), zap.Error(err))
		return false, nil
	}
	return true, nil
}
