package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the authorization level of a user
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// User represents an application user. The ID is supplied by the external
// auth provider after signup and is never generated locally.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FullName  *string   `gorm:"type:varchar(255)" json:"fullName"`
	AvatarURL *string   `gorm:"type:varchar(500)" json:"avatarUrl"`
	Role      UserRole  `gorm:"type:varchar(10);not null;default:'user'" json:"role"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`

	// Relations
	Profile   *UserProfile      `gorm:"foreignKey:ID;references:ID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
	Comments  []Comment         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Reactions []CommentReaction `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"reactions,omitempty"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
