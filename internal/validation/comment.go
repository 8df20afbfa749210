package validation

import "strings"

// Sort fields accepted by the public comment listing
const (
	SortByCreatedAt = "created_at"
	SortByUpdatedAt = "updated_at"
	SortByReactions = "reactions"
)

// CreateCommentInput is the schema for creating a comment
type CreateCommentInput struct {
	Content   string  `json:"content" validate:"required,min=1,max=2000"`
	ArticleID int64   `json:"articleId" validate:"required,gt=0"`
	ParentID  *int64  `json:"parentId" validate:"omitempty,gt=0"`
	UserID    string  `json:"userId" validate:"required,uuid"`
	IPAddress *string `json:"ipAddress" validate:"omitempty,max=45"`
	UserAgent *string `json:"userAgent" validate:"omitempty,max=500"`
}

// UpdateCommentInput is the schema for editing a comment
type UpdateCommentInput struct {
	Content    *string `json:"content" validate:"omitempty,min=1,max=2000"`
	EditReason *string `json:"editReason" validate:"omitempty,max=200"`
}

// ModerateCommentInput is the schema for a moderation action
type ModerateCommentInput struct {
	Status      string `json:"status" validate:"required,oneof=pending approved rejected spam"`
	ModeratedBy string `json:"moderatedBy" validate:"required,uuid"`
}

// CreateReactionInput is the schema for adding a reaction
type CreateReactionInput struct {
	CommentID    int64  `json:"commentId" validate:"required,gt=0"`
	UserID       string `json:"userId" validate:"required,uuid"`
	ReactionType string `json:"reactionType" validate:"required,oneof=like dislike love laugh angry sad wow"`
}

// CreateMentionInput is the schema for recording a mention
type CreateMentionInput struct {
	CommentID       int64  `json:"commentId" validate:"required,gt=0"`
	MentionedUserID string `json:"mentionedUserId" validate:"required,uuid"`
}

// CommentQueryInput is the schema for comment listing queries
type CommentQueryInput struct {
	IncludeReactions bool   `json:"includeReactions"`
	IncludeMentions  bool   `json:"includeMentions"`
	Limit            *int   `json:"limit" validate:"min=1,max=100"`
	Offset           int    `json:"offset" validate:"min=0"`
	SortBy           string `json:"sortBy" validate:"oneof=created_at updated_at reactions"`
	SortOrder        string `json:"sortOrder" validate:"oneof=asc desc"`
}

// ApplyDefaults fills unset query fields with their defaults
// (limit 20, offset 0, created_at descending). A limit that was
// supplied, even as an out-of-range value like 0, is left for
// validation to reject.
func (q *CommentQueryInput) ApplyDefaults() {
	if q.Limit == nil {
		limit := 20
		q.Limit = &limit
	}
	if q.SortBy == "" {
		q.SortBy = SortByCreatedAt
	}
	if q.SortOrder == "" {
		q.SortOrder = "desc"
	}
}

// CreateComment trims the content, then validates input for comment creation
func CreateComment(in *CreateCommentInput) error {
	in.Content = strings.TrimSpace(in.Content)
	return structOf(in)
}

// UpdateComment trims the content, then validates input for comment edits
func UpdateComment(in *UpdateCommentInput) error {
	if in.Content != nil {
		trimmed := strings.TrimSpace(*in.Content)
		in.Content = &trimmed
	}
	return structOf(in)
}

// ModerateComment validates input for a moderation action
func ModerateComment(in *ModerateCommentInput) error {
	return structOf(in)
}

// CreateReaction validates input for adding a reaction
func CreateReaction(in *CreateReactionInput) error {
	return structOf(in)
}

// CreateMention validates input for recording a mention
func CreateMention(in *CreateMentionInput) error {
	return structOf(in)
}

// CommentQuery applies defaults and validates a listing query
func CommentQuery(in *CommentQueryInput) error {
	in.ApplyDefaults()
	return structOf(in)
}
