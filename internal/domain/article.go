package domain

import (
	"time"

	"gorm.io/datatypes"
)

// ArticleStatus represents the publication state of an article
type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusPublished ArticleStatus = "published"
)

// Article represents a blog post with a draft/published lifecycle
type Article struct {
	ID         uint                        `gorm:"primaryKey" json:"id"`
	Title      string                      `gorm:"type:varchar(255);not null" json:"title"`
	Summary    *string                     `gorm:"type:text" json:"summary"`
	Image      *string                     `gorm:"type:varchar(500)" json:"image"`
	Tags       datatypes.JSONSlice[string] `json:"tags"`
	DatePosted *time.Time                  `gorm:"index:idx_articles_date_posted" json:"datePosted"`
	Status     ArticleStatus               `gorm:"type:varchar(20);not null;default:'draft';index:idx_articles_status" json:"status"`
	Content    *string                     `gorm:"type:text" json:"content"`
	Slug       string                      `gorm:"type:varchar(255);uniqueIndex:idx_articles_slug;not null" json:"slug"`
	CreatedAt  time.Time                   `gorm:"not null" json:"createdAt"`
	UpdatedAt  time.Time                   `gorm:"not null" json:"updatedAt"`

	// Relations
	Comments []Comment `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// TableName specifies the table name for Article
func (Article) TableName() string {
	return "articles"
}

// IsPublished reports whether the article is publicly visible
func (a *Article) IsPublished() bool {
	return a.Status == ArticleStatusPublished
}
