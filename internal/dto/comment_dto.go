package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/bdelucia/blog/internal/domain"
)

// CreateCommentRequest represents the request to create a comment
type CreateCommentRequest struct {
	Content   string `json:"content" binding:"required"`
	ArticleID int64  `json:"articleId" binding:"required"`
	ParentID  *int64 `json:"parentId"`
}

// UpdateCommentRequest represents the request to edit a comment
type UpdateCommentRequest struct {
	Content    string  `json:"content" binding:"required"`
	EditReason *string `json:"editReason"`
}

// ModerateCommentRequest represents a moderation action
type ModerateCommentRequest struct {
	Status string `json:"status" binding:"required"`
}

// AddReactionRequest represents the request to react to a comment
type AddReactionRequest struct {
	ReactionType string `json:"reactionType" binding:"required"`
}

// AddMentionRequest represents the request to record a mention
type AddMentionRequest struct {
	MentionedUserID string `json:"mentionedUserId" binding:"required"`
}

// CommentUser is the author summary attached to comment responses
type CommentUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"fullName"`
	AvatarURL *string   `json:"avatarUrl"`
}

// ReactionUser is the reduced user summary attached to reactions
type ReactionUser struct {
	ID        uuid.UUID `json:"id"`
	FullName  *string   `json:"fullName"`
	AvatarURL *string   `json:"avatarUrl"`
}

// ReactionResponse represents a comment reaction
type ReactionResponse struct {
	ID           uint          `json:"id"`
	CommentID    uint          `json:"commentId"`
	UserID       uuid.UUID     `json:"userId"`
	ReactionType string        `json:"reactionType"`
	CreatedAt    time.Time     `json:"createdAt"`
	User         *ReactionUser `json:"user,omitempty"`
}

// MentionResponse represents a recorded mention
type MentionResponse struct {
	ID              uint      `json:"id"`
	CommentID       uint      `json:"commentId"`
	MentionedUserID uuid.UUID `json:"mentionedUserId"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CommentResponse represents the comment response
type CommentResponse struct {
	ID          uint                `json:"id"`
	Content     string              `json:"content"`
	ArticleID   uint                `json:"articleId"`
	UserID      uuid.UUID           `json:"userId"`
	ParentID    *uint               `json:"parentId"`
	Status      string              `json:"status"`
	IsEdited    bool                `json:"isEdited"`
	EditReason  *string             `json:"editReason"`
	IPAddress   *string             `json:"ipAddress,omitempty"`
	UserAgent   *string             `json:"userAgent,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	EditedAt    *time.Time          `json:"editedAt"`
	ModeratedAt *time.Time          `json:"moderatedAt"`
	ModeratedBy *uuid.UUID          `json:"moderatedBy"`
	User        *CommentUser        `json:"user,omitempty"`
	Reactions   []*ReactionResponse `json:"reactions,omitempty"`
	Replies     []*CommentResponse  `json:"replies,omitempty"`
	Mentions    []*MentionResponse  `json:"mentions,omitempty"`
}

// ToCommentResponse converts a Comment to its response shape. The author
// and reaction summaries are included when the relations were loaded.
func ToCommentResponse(c *domain.Comment) *CommentResponse {
	if c == nil {
		return nil
	}
	resp := &CommentResponse{
		ID:          c.ID,
		Content:     c.Content,
		ArticleID:   c.ArticleID,
		UserID:      c.UserID,
		ParentID:    c.ParentID,
		Status:      string(c.Status),
		IsEdited:    c.IsEdited,
		EditReason:  c.EditReason,
		IPAddress:   c.IPAddress,
		UserAgent:   c.UserAgent,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		EditedAt:    c.EditedAt,
		ModeratedAt: c.ModeratedAt,
		ModeratedBy: c.ModeratedBy,
	}
	if c.User.ID != uuid.Nil {
		resp.User = &CommentUser{
			ID:        c.User.ID,
			Email:     c.User.Email,
			FullName:  c.User.FullName,
			AvatarURL: c.User.AvatarURL,
		}
	}
	for i := range c.Reactions {
		resp.Reactions = append(resp.Reactions, ToReactionResponse(&c.Reactions[i]))
	}
	return resp
}

// ToCommentResponses converts a list of comments
func ToCommentResponses(comments []*domain.Comment) []*CommentResponse {
	out := make([]*CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, ToCommentResponse(c))
	}
	return out
}

// ToReactionResponse converts a CommentReaction to its response shape
func ToReactionResponse(r *domain.CommentReaction) *ReactionResponse {
	if r == nil {
		return nil
	}
	resp := &ReactionResponse{
		ID:           r.ID,
		CommentID:    r.CommentID,
		UserID:       r.UserID,
		ReactionType: string(r.ReactionType),
		CreatedAt:    r.CreatedAt,
	}
	if r.User.ID != uuid.Nil {
		resp.User = &ReactionUser{
			ID:        r.User.ID,
			FullName:  r.User.FullName,
			AvatarURL: r.User.AvatarURL,
		}
	}
	return resp
}

// ToMentionResponse converts a CommentMention to its response shape
func ToMentionResponse(m *domain.CommentMention) *MentionResponse {
	if m == nil {
		return nil
	}
	return &MentionResponse{
		ID:              m.ID,
		CommentID:       m.CommentID,
		MentionedUserID: m.MentionedUserID,
		CreatedAt:       m.CreatedAt,
	}
}
