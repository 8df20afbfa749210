package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bdelucia/blog/internal/domain"
)

// CommentListOptions controls ordering and pagination of the public
// comment listing. SortBy must be a whitelisted column.
type CommentListOptions struct {
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// CommentRepository defines the interface for comment, reaction and
// mention data access
type CommentRepository interface {
	FindByID(ctx context.Context, id uint) (*domain.Comment, error)
	FindByArticle(ctx context.Context, articleID uint, opts CommentListOptions) ([]*domain.Comment, error)
	FindRepliesByParentIDs(ctx context.Context, parentIDs []uint) ([]*domain.Comment, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Comment, error)
	FindPending(ctx context.Context) ([]*domain.Comment, error)
	Create(ctx context.Context, comment *domain.Comment) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*domain.Comment, error)
	Delete(ctx context.Context, id uint) error
	ReplaceReaction(ctx context.Context, reaction *domain.CommentReaction) error
	DeleteReaction(ctx context.Context, commentID uint, userID uuid.UUID) error
	FindReactionsByComment(ctx context.Context, commentID uint) ([]*domain.CommentReaction, error)
	CreateMention(ctx context.Context, mention *domain.CommentMention) error
	FindMentionsByComment(ctx context.Context, commentID uint) ([]*domain.CommentMention, error)
	DeleteModeratedBefore(ctx context.Context, statuses []domain.CommentStatus, cutoff time.Time) (int64, error)
}

// commentRepositoryImpl is the GORM implementation of CommentRepository
type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

// orderClause maps validated sort options onto a SQL order expression.
// "reactions" has no backing aggregate column and orders by created_at,
// matching the observed output of the previous implementation.
func orderClause(opts CommentListOptions) string {
	column := "created_at"
	switch opts.SortBy {
	case "updated_at":
		column = "updated_at"
	}
	direction := "DESC"
	if opts.SortOrder == "asc" {
		direction = "ASC"
	}
	return fmt.Sprintf("%s %s", column, direction)
}

// FindByID finds a comment with its author and reactions attached
func (r *commentRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Comment, error) {
	var comment domain.Comment
	if err := conn(r.db).WithContext(ctx).
		Preload("User").
		Preload("Reactions").
		Preload("Reactions.User").
		First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByArticle returns approved, top-level comments for an article
func (r *commentRepositoryImpl) FindByArticle(ctx context.Context, articleID uint, opts CommentListOptions) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	if err := conn(r.db).WithContext(ctx).
		Preload("User").
		Preload("Reactions").
		Preload("Reactions.User").
		Where("article_id = ? AND status = ? AND parent_id IS NULL", articleID, domain.CommentStatusApproved).
		Order(orderClause(opts)).
		Limit(opts.Limit).
		Offset(opts.Offset).
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// FindRepliesByParentIDs batch-fetches the approved replies for a set of
// parent comments, oldest first. Grouping by parent happens in the caller.
func (r *commentRepositoryImpl) FindRepliesByParentIDs(ctx context.Context, parentIDs []uint) ([]*domain.Comment, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	var replies []*domain.Comment
	if err := conn(r.db).WithContext(ctx).
		Preload("User").
		Preload("Reactions").
		Preload("Reactions.User").
		Where("parent_id IN ? AND status = ?", parentIDs, domain.CommentStatusApproved).
		Order("created_at ASC").
		Find(&replies).Error; err != nil {
		return nil, err
	}
	return replies, nil
}

// FindByUser returns a user's approved comments, newest first
func (r *commentRepositoryImpl) FindByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	if err := conn(r.db).WithContext(ctx).
		Preload("User").
		Preload("Reactions").
		Where("user_id = ? AND status = ?", userID, domain.CommentStatusApproved).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// FindPending returns the moderation queue, newest first
func (r *commentRepositoryImpl) FindPending(ctx context.Context) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	if err := conn(r.db).WithContext(ctx).
		Preload("User").
		Where("status = ?", domain.CommentStatusPending).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Create inserts a new comment
func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.Comment) error {
	return conn(r.db).WithContext(ctx).Create(comment).Error
}

// Update applies the given column set and returns the fresh row
func (r *commentRepositoryImpl) Update(ctx context.Context, id uint, fields map[string]interface{}) (*domain.Comment, error) {
	res := conn(r.db).WithContext(ctx).
		Model(&domain.Comment{}).
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

// Delete hard-deletes a comment; replies and reactions cascade
func (r *commentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return conn(r.db).WithContext(ctx).Delete(&domain.Comment{}, id).Error
}

// ReplaceReaction removes any prior reaction from the same user on the
// same comment and inserts the new one, in a single transaction, so at
// most one reaction row exists per (comment, user) pair.
func (r *commentRepositoryImpl) ReplaceReaction(ctx context.Context, reaction *domain.CommentReaction) error {
	return conn(r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("comment_id = ? AND user_id = ?", reaction.CommentID, reaction.UserID).
			Delete(&domain.CommentReaction{}).Error; err != nil {
			return err
		}
		return tx.Create(reaction).Error
	})
}

// DeleteReaction removes the (comment, user) reaction row. Deleting a
// reaction that does not exist is not an error.
func (r *commentRepositoryImpl) DeleteReaction(ctx context.Context, commentID uint, userID uuid.UUID) error {
	return conn(r.db).WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&domain.CommentReaction{}).Error
}

// FindReactionsByComment returns all reactions on a comment
func (r *commentRepositoryImpl) FindReactionsByComment(ctx context.Context, commentID uint) ([]*domain.CommentReaction, error) {
	var reactions []*domain.CommentReaction
	if err := conn(r.db).WithContext(ctx).
		Preload("User").
		Where("comment_id = ?", commentID).
		Order("created_at ASC").
		Find(&reactions).Error; err != nil {
		return nil, err
	}
	return reactions, nil
}

// CreateMention records a mention relationship
func (r *commentRepositoryImpl) CreateMention(ctx context.Context, mention *domain.CommentMention) error {
	return conn(r.db).WithContext(ctx).Create(mention).Error
}

// FindMentionsByComment returns the mentions recorded on a comment
func (r *commentRepositoryImpl) FindMentionsByComment(ctx context.Context, commentID uint) ([]*domain.CommentMention, error) {
	var mentions []*domain.CommentMention
	if err := conn(r.db).WithContext(ctx).
		Preload("MentionedUser").
		Where("comment_id = ?", commentID).
		Order("created_at ASC").
		Find(&mentions).Error; err != nil {
		return nil, err
	}
	return mentions, nil
}

// DeleteModeratedBefore removes comments in the given statuses whose
// moderation happened before the cutoff. Used by the cleanup job.
func (r *commentRepositoryImpl) DeleteModeratedBefore(ctx context.Context, statuses []domain.CommentStatus, cutoff time.Time) (int64, error) {
	res := conn(r.db).WithContext(ctx).
		Where("status IN ? AND moderated_at IS NOT NULL AND moderated_at < ?", statuses, cutoff).
		Delete(&domain.Comment{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
