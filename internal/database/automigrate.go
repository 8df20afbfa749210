package database

import (
	"gorm.io/gorm"

	"github.com/bdelucia/blog/internal/domain"
)

// AutoMigrate creates or updates the schema for all blog entities.
// Order matters: referenced tables first so foreign keys resolve.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.UserProfile{},
		&domain.Article{},
		&domain.Comment{},
		&domain.CommentReaction{},
		&domain.CommentMention{},
	)
}
