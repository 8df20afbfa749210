package domain

import (
	"time"

	"github.com/google/uuid"
)

// CommentStatus represents the moderation state of a comment.
// Every comment starts as pending and becomes publicly visible only
// after a moderator approves it.
type CommentStatus string

const (
	CommentStatusPending  CommentStatus = "pending"
	CommentStatusApproved CommentStatus = "approved"
	CommentStatusRejected CommentStatus = "rejected"
	CommentStatusSpam     CommentStatus = "spam"
)

// ReactionType represents a typed reaction a user attaches to a comment
type ReactionType string

const (
	ReactionLike    ReactionType = "like"
	ReactionDislike ReactionType = "dislike"
	ReactionLove    ReactionType = "love"
	ReactionLaugh   ReactionType = "laugh"
	ReactionAngry   ReactionType = "angry"
	ReactionSad     ReactionType = "sad"
	ReactionWow     ReactionType = "wow"
)

// Comment represents a comment on an article
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ArticleID uint      `gorm:"not null;index:idx_comments_article_id;index:idx_comments_article_status,priority:1" json:"articleId"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_comments_user_id" json:"userId"`
	ParentID  *uint     `gorm:"index:idx_comments_parent_id" json:"parentId"`

	// Moderation
	Status     CommentStatus `gorm:"type:varchar(20);not null;default:'pending';index:idx_comments_status;index:idx_comments_article_status,priority:2" json:"status"`
	IsEdited   bool          `gorm:"not null;default:false" json:"isEdited"`
	EditReason *string       `gorm:"type:varchar(200)" json:"editReason"`

	// Metadata kept for moderation (IPv4 or IPv6, browser info)
	IPAddress *string `gorm:"type:varchar(45)" json:"ipAddress,omitempty"`
	UserAgent *string `gorm:"type:text" json:"userAgent,omitempty"`

	CreatedAt   time.Time  `gorm:"not null;index:idx_comments_created_at" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updatedAt"`
	EditedAt    *time.Time `json:"editedAt"`
	ModeratedAt *time.Time `json:"moderatedAt"`
	ModeratedBy *uuid.UUID `gorm:"type:uuid" json:"moderatedBy"`

	// Relations
	Article   Article           `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE" json:"article,omitempty"`
	User      User              `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Replies   []Comment         `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"replies,omitempty"`
	Reactions []CommentReaction `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"reactions,omitempty"`
	Mentions  []CommentMention  `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"mentions,omitempty"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}

// IsReply reports whether the comment is a nested reply
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}

// CommentReaction records a single typed reaction. At most one reaction
// exists per (comment, user) pair; adding a new one replaces the old row.
type CommentReaction struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	CommentID    uint         `gorm:"not null;index:idx_comment_reactions_comment_id;index:idx_comment_reactions_comment_user,priority:1" json:"commentId"`
	UserID       uuid.UUID    `gorm:"type:uuid;not null;index:idx_comment_reactions_user_id;index:idx_comment_reactions_comment_user,priority:2" json:"userId"`
	ReactionType ReactionType `gorm:"type:varchar(20);not null" json:"reactionType"`
	CreatedAt    time.Time    `gorm:"not null" json:"createdAt"`

	// Relations
	Comment Comment `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"comment,omitempty"`
	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// TableName specifies the table name for CommentReaction
func (CommentReaction) TableName() string {
	return "comment_reactions"
}

// CommentMention records that a comment mentioned another user
type CommentMention struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CommentID       uint      `gorm:"not null;index:idx_comment_mentions_comment_id" json:"commentId"`
	MentionedUserID uuid.UUID `gorm:"type:uuid;not null;index:idx_comment_mentions_mentioned_user_id" json:"mentionedUserId"`
	CreatedAt       time.Time `gorm:"not null" json:"createdAt"`

	// Relations
	Comment       Comment `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"comment,omitempty"`
	MentionedUser User    `gorm:"foreignKey:MentionedUserID;constraint:OnDelete:CASCADE" json:"mentionedUser,omitempty"`
}

// TableName specifies the table name for CommentMention
func (CommentMention) TableName() string {
	return "comment_mentions"
}
