package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile is an optional one-to-one extension of User, keyed by the
// same provider-supplied ID.
type UserProfile struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Bio           *string   `gorm:"type:varchar(500)" json:"bio"`
	Website       *string   `gorm:"type:varchar(500)" json:"website"`
	Location      *string   `gorm:"type:varchar(100)" json:"location"`
	TwitterHandle *string   `gorm:"type:varchar(50)" json:"twitterHandle"`
	GithubHandle  *string   `gorm:"type:varchar(50)" json:"githubHandle"`
	CreatedAt     time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"not null" json:"updatedAt"`
}

// TableName specifies the table name for UserProfile
func (UserProfile) TableName() string {
	return "user_profiles"
}
