package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bdelucia/blog/internal/domain"
	"github.com/bdelucia/blog/internal/dto"
	"github.com/bdelucia/blog/internal/response"
	"github.com/bdelucia/blog/internal/validation"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	GetUserFunc           func(ctx context.Context, id string) (*dto.UserResponse, error)
	GetUserByEmailFunc    func(ctx context.Context, email string) (*dto.UserResponse, error)
	GetAllUsersFunc       func(ctx context.Context) []*dto.UserResponse
	GetUsersByRoleFunc    func(ctx context.Context, role string) []*dto.UserResponse
	CreateUserFunc        func(ctx context.Context, in *validation.CreateUserInput) (*dto.UserResponse, error)
	UpdateUserFunc        func(ctx context.Context, id string, in *validation.UpdateUserInput) (*dto.UserResponse, error)
	DeleteUserFunc        func(ctx context.Context, id string) (bool, error)
	GetUserProfileFunc    func(ctx context.Context, id string) (*dto.UserProfileResponse, error)
	CreateUserProfileFunc func(ctx context.Context, in *validation.CreateUserProfileInput) (*dto.UserProfileResponse, error)
	UpdateUserProfileFunc func(ctx context.Context, id string, in *validation.UpdateUserProfileInput) (*dto.UserProfileResponse, error)
	DeleteUserProfileFunc func(ctx context.Context, id string) (bool, error)
}

func (m *MockUserService) GetUser(ctx context.Context, id string) (*dto.UserResponse, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	if m.GetUserByEmailFunc != nil {
		return m.GetUserByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserService) GetAllUsers(ctx context.Context) []*dto.UserResponse {
	if m.GetAllUsersFunc != nil {
		return m.GetAllUsersFunc(ctx)
	}
	return nil
}

func (m *MockUserService) GetUsersByRole(ctx context.Context, role string) []*dto.UserResponse {
	if m.GetUsersByRoleFunc != nil {
		return m.GetUsersByRoleFunc(ctx, role)
	}
	return nil
}

func (m *MockUserService) CreateUser(ctx context.Context, in *validation.CreateUserInput) (*dto.UserResponse, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, in)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, id string, in *validation.UpdateUserInput) (*dto.UserResponse, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, in)
	}
	return nil, nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, id string) (bool, error) {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return false, nil
}

func (m *MockUserService) GetUserProfile(ctx context.Context, id string) (*dto.UserProfileResponse, error) {
	if m.GetUserProfileFunc != nil {
		return m.GetUserProfileFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) CreateUserProfile(ctx context.Context, in *validation.CreateUserProfileInput) (*dto.UserProfileResponse, error) {
	if m.CreateUserProfileFunc != nil {
		return m.CreateUserProfileFunc(ctx, in)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUserProfile(ctx context.Context, id string, in *validation.UpdateUserProfileInput) (*dto.UserProfileResponse, error) {
	if m.UpdateUserProfileFunc != nil {
		return m.UpdateUserProfileFunc(ctx, id, in)
	}
	return nil, nil
}

func (m *MockUserService) DeleteUserProfile(ctx context.Context, id string) (bool, error) {
	if m.DeleteUserProfileFunc != nil {
		return m.DeleteUserProfileFunc(ctx, id)
	}
	return false, nil
}

func newAuthService(users *MockUserService) AuthService {
	logger, _ := zap.NewDevelopment()
	return NewAuthService(users, logger)
}

func TestAuthService_GetCurrentUser(t *testing.T) {
	userID := uuid.New()

	t.Run("resolves local row", func(t *testing.T) {
		users := &MockUserService{
			GetUserFunc: func(ctx context.Context, id string) (*dto.UserResponse, error) {
				return &dto.UserResponse{ID: userID, Role: "user"}, nil
			},
		}
		svc := newAuthService(users)

		got := svc.GetCurrentUser(context.Background(), userID)
		if got == nil || got.ID != userID {
			t.Errorf("unexpected user %+v", got)
		}
	})

	t.Run("nil session yields nil", func(t *testing.T) {
		svc := newAuthService(&MockUserService{})
		if got := svc.GetCurrentUser(context.Background(), uuid.Nil); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("missing local row yields nil", func(t *testing.T) {
		svc := newAuthService(&MockUserService{})
		if got := svc.GetCurrentUser(context.Background(), userID); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
		if svc.IsAuthenticated(context.Background(), userID) {
			t.Error("session without a local row must not count as authenticated")
		}
	})
}

func TestAuthService_RequireAdmin(t *testing.T) {
	adminID := uuid.New()
	userID := uuid.New()

	users := &MockUserService{
		GetUserFunc: func(ctx context.Context, id string) (*dto.UserResponse, error) {
			switch id {
			case adminID.String():
				return &dto.UserResponse{ID: adminID, Role: string(domain.RoleAdmin)}, nil
			case userID.String():
				return &dto.UserResponse{ID: userID, Role: string(domain.RoleUser)}, nil
			}
			return nil, nil
		},
	}
	svc := newAuthService(users)
	ctx := context.Background()

	if _, err := svc.RequireAdmin(ctx, adminID); err != nil {
		t.Errorf("admin rejected: %v", err)
	}

	_, err := svc.RequireAdmin(ctx, userID)
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.Code != response.ErrCodeForbidden {
		t.Errorf("expected FORBIDDEN for non-admin, got %v", err)
	}

	_, err = svc.RequireAdmin(ctx, uuid.New())
	if !errors.As(err, &appErr) || appErr.Code != response.ErrCodeUnauthorized {
		t.Errorf("expected UNAUTHORIZED for unknown user, got %v", err)
	}

	if svc.IsAdmin(ctx, userID) {
		t.Error("regular user must not be admin")
	}
	if !svc.IsAdmin(ctx, adminID) {
		t.Error("admin role not detected")
	}
}

func TestAuthService_CreateUserAfterSignup(t *testing.T) {
	providerID := uuid.New()

	var gotInput *validation.CreateUserInput
	users := &MockUserService{
		CreateUserFunc: func(ctx context.Context, in *validation.CreateUserInput) (*dto.UserResponse, error) {
			gotInput = in
			return &dto.UserResponse{ID: providerID, Email: in.Email, Role: in.Role}, nil
		},
	}
	svc := newAuthService(users)

	got, err := svc.CreateUserAfterSignup(context.Background(), providerID.String(), "new@example.com", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Role != string(domain.RoleUser) {
		t.Errorf("expected default role user, got %s", got.Role)
	}
	if gotInput.ID != providerID.String() {
		t.Error("provider-issued ID not passed through")
	}
}
