package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bdelucia/blog/internal/domain"
)

// UserProfileRepository defines the interface for profile data access
type UserProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	Create(ctx context.Context, profile *domain.UserProfile) error
	Update(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) (*domain.UserProfile, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// userProfileRepositoryImpl is the GORM implementation of UserProfileRepository
type userProfileRepositoryImpl struct {
	db *gorm.DB
}

// NewUserProfileRepository creates a new instance of UserProfileRepository
func NewUserProfileRepository(db *gorm.DB) UserProfileRepository {
	return &userProfileRepositoryImpl{db: db}
}

// FindByUserID finds the profile keyed by the user's ID
func (r *userProfileRepositoryImpl) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := conn(r.db).WithContext(ctx).
		Where("id = ?", userID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Create inserts a new profile row
func (r *userProfileRepositoryImpl) Create(ctx context.Context, profile *domain.UserProfile) error {
	return conn(r.db).WithContext(ctx).Create(profile).Error
}

// Update applies the given column set and returns the fresh row
func (r *userProfileRepositoryImpl) Update(ctx context.Context, userID uuid.UUID, fields map[string]interface{}) (*domain.UserProfile, error) {
	res := conn(r.db).WithContext(ctx).
		Model(&domain.UserProfile{}).
		Where("id = ?", userID).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByUserID(ctx, userID)
}

// Delete removes a profile row
func (r *userProfileRepositoryImpl) Delete(ctx context.Context, userID uuid.UUID) error {
	return conn(r.db).WithContext(ctx).
		Where("id = ?", userID).
		Delete(&domain.UserProfile{}).Error
}
