package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bdelucia/blog/internal/domain"
	"github.com/bdelucia/blog/internal/dto"
	"github.com/bdelucia/blog/internal/response"
	"github.com/bdelucia/blog/internal/validation"
)

// AuthService resolves provider sessions to local user rows and holds
// the role checks. The auth middleware has already validated the token;
// these methods work from the provider-issued user ID.
type AuthService interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) *dto.UserResponse
	RequireAuth(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	RequireAdmin(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	IsAdmin(ctx context.Context, userID uuid.UUID) bool
	IsAuthenticated(ctx context.Context, userID uuid.UUID) bool
	CreateUserAfterSignup(ctx context.Context, userID, email string, fullName *string) (*dto.UserResponse, error)
}

// authServiceImpl is the implementation of AuthService
type authServiceImpl struct {
	userService UserService
	logger      *zap.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(userService UserService, logger *zap.Logger) AuthService {
	return &authServiceImpl{userService: userService, logger: logger}
}

// GetCurrentUser resolves the provider session to the local user row.
// Returns nil when the local row is absent.
func (s *authServiceImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) *dto.UserResponse {
	if userID == uuid.Nil {
		return nil
	}
	user, err := s.userService.GetUser(ctx, userID.String())
	if err != nil {
		s.logger.Error("failed to resolve current user", zap.String("userId", userID.String()), zap.Error(err))
		return nil
	}
	return user
}

// RequireAuth returns the current user or an unauthorized error
func (s *authServiceImpl) RequireAuth(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user := s.GetCurrentUser(ctx, userID)
	if user == nil {
		return nil, response.NewAppError(response.ErrCodeUnauthorized, "Authentication required", "")
	}
	return user, nil
}

// RequireAdmin returns the current user or a forbidden error when the
// role is not admin. Role checks are a plain equality test.
func (s *authServiceImpl) RequireAdmin(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.RequireAuth(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != string(domain.RoleAdmin) {
		return nil, response.NewAppError(response.ErrCodeForbidden, "Admin access required", "")
	}
	return user, nil
}

// IsAdmin reports whether the session user holds the admin role
func (s *authServiceImpl) IsAdmin(ctx context.Context, userID uuid.UUID) bool {
	user := s.GetCurrentUser(ctx, userID)
	return user != nil && user.Role == string(domain.RoleAdmin)
}

// IsAuthenticated reports whether the session resolves to a local user
func (s *authServiceImpl) IsAuthenticated(ctx context.Context, userID uuid.UUID) bool {
	return s.GetCurrentUser(ctx, userID) != nil
}

// CreateUserAfterSignup provisions the local user row once the external
// provider confirms account creation. The default role is user.
func (s *authServiceImpl) CreateUserAfterSignup(ctx context.Context, userID, email string, fullName *string) (*dto.UserResponse, error) {
	return s.userService.CreateUser(ctx, &validation.CreateUserInput{
		ID:       userID,
		Email:    email,
		FullName: fullName,
		Role:     string(domain.RoleUser),
	})
}
