package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bdelucia/blog/internal/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	FindByRole(ctx context.Context, role domain.UserRole) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// userRepositoryImpl is the GORM implementation of UserRepository
type userRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepositoryImpl{db: db}
}

// FindByID finds a user by ID
func (r *userRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	if err := conn(r.db).WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *userRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := conn(r.db).WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindAll returns every user, newest first
func (r *userRepositoryImpl) FindAll(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	if err := conn(r.db).WithContext(ctx).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByRole returns users with the given role, newest first
func (r *userRepositoryImpl) FindByRole(ctx context.Context, role domain.UserRole) ([]*domain.User, error) {
	var users []*domain.User
	if err := conn(r.db).WithContext(ctx).
		Where("role = ?", role).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Create inserts a new user row. The ID must already be set by the caller.
func (r *userRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	return conn(r.db).WithContext(ctx).Create(user).Error
}

// Update applies the given column set and returns the fresh row
func (r *userRepositoryImpl) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*domain.User, error) {
	res := conn(r.db).WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete removes a user; comments and reactions cascade
func (r *userRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(r.db).WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.User{}).Error
}
