package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bdelucia/blog/internal/domain"
	"github.com/bdelucia/blog/internal/dto"
	"github.com/bdelucia/blog/internal/repository"
	"github.com/bdelucia/blog/internal/validation"
)

// CommentService defines the interface for comment, reaction and mention
// business logic. Comments enter the moderation queue as pending and
// become publicly visible only once approved.
type CommentService interface {
	GetComment(ctx context.Context, id int64) (*dto.CommentResponse, error)
	GetCommentsByArticle(ctx context.Context, articleID int64, query *validation.CommentQueryInput) ([]*dto.CommentResponse, error)
	GetCommentReplies(ctx context.Context, parentID int64) ([]*dto.CommentResponse, error)
	GetCommentsByUser(ctx context.Context, userID string) []*dto.CommentResponse
	GetPendingComments(ctx context.Context) []*dto.CommentResponse
	CreateComment(ctx context.Context, in *validation.CreateCommentInput) (*dto.CommentResponse, error)
	UpdateComment(ctx context.Context, id int64, in *validation.UpdateCommentInput) (*dto.CommentResponse, error)
	ModerateComment(ctx context.Context, id int64, in *validation.ModerateCommentInput) (*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, id int64) (bool, error)
	GetCommentReactions(ctx context.Context, commentID int64) ([]*dto.ReactionResponse, error)
	AddReaction(ctx context.Context, in *validation.CreateReactionInput) (*dto.ReactionResponse, error)
	RemoveReaction(ctx context.Context, commentID int64, userID uuid.UUID) (bool, error)
	AddMention(ctx context.Context, in *validation.CreateMentionInput) (*dto.MentionResponse, error)
}

// commentServiceImpl is the implementation of CommentService
type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	logger      *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(commentRepo repository.CommentRepository, logger *zap.Logger) CommentService {
	return &commentServiceImpl{commentRepo: commentRepo, logger: logger}
}

// GetComment returns a single comment with author and reactions
func (s *commentServiceImpl) GetComment(ctx context.Context, id int64) (*dto.CommentResponse, error) {
	if err := validation.ID("id", id); err != nil {
		return nil, validationError(err)
	}
	comment, err := s.commentRepo.FindByID(ctx, uint(id))
	if err != nil {
		s.logger.Error("failed to fetch comment", zap.Int64("id", id), zap.Error(err))
		return nil, nil
	}
	return dto.ToCommentResponse(comment), nil
}

// GetCommentsByArticle returns the public comment listing for an
// article: approved, top-level comments only, ordered and paginated per
// the query. When includeReactions is set, each comment also carries its
// approved reply tree, batch-fetched with a single query.
func (s *commentServiceImpl) GetCommentsByArticle(ctx context.Context, articleID int64, query *validation.CommentQueryInput) ([]*dto.CommentResponse, error) {
	if err := validation.ID("articleId", articleID); err != nil {
		return nil, validationError(err)
	}
	if query == nil {
		query = &validation.CommentQueryInput{}
	}
	if err := validation.CommentQuery(query); err != nil {
		return nil, validationError(err)
	}

	comments, err := s.commentRepo.FindByArticle(ctx, uint(articleID), repository.CommentListOptions{
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
		Limit:     *query.Limit,
		Offset:    query.Offset,
	})
	if err != nil {
		s.logger.Error("failed to fetch comments", zap.Int64("articleId", articleID), zap.Error(err))
		return []*dto.CommentResponse{}, nil
	}

	responses := dto.ToCommentResponses(comments)
	if query.IncludeMentions {
		s.attachMentions(ctx, responses)
	}
	if !query.IncludeReactions {
		for _, r := range responses {
			r.Reactions = nil
		}
		return responses, nil
	}

	parentIDs := make([]uint, 0, len(comments))
	for _, c := range comments {
		parentIDs = append(parentIDs, c.ID)
	}
	replies, err := s.commentRepo.FindRepliesByParentIDs(ctx, parentIDs)
	if err != nil {
		s.logger.Error("failed to fetch comment replies", zap.Int64("articleId", articleID), zap.Error(err))
		return responses, nil
	}
	byParent := make(map[uint][]*dto.CommentResponse, len(responses))
	for _, reply := range replies {
		if reply.ParentID == nil {
			continue
		}
		byParent[*reply.ParentID] = append(byParent[*reply.ParentID], dto.ToCommentResponse(reply))
	}
	for _, r := range responses {
		r.Replies = byParent[r.ID]
	}
	return responses, nil
}

// attachMentions loads the mention rows for each comment in the page. A
// failed lookup leaves that comment's mentions empty.
func (s *commentServiceImpl) attachMentions(ctx context.Context, responses []*dto.CommentResponse) {
	for _, r := range responses {
		mentions, err := s.commentRepo.FindMentionsByComment(ctx, r.ID)
		if err != nil {
			s.logger.Error("failed to fetch comment mentions", zap.Uint("commentId", r.ID), zap.Error(err))
			continue
		}
		for _, m := range mentions {
			r.Mentions = append(r.Mentions, dto.ToMentionResponse(m))
		}
	}
}

// GetCommentReplies returns the approved replies of one comment, oldest first
func (s *commentServiceImpl) GetCommentReplies(ctx context.Context, parentID int64) ([]*dto.CommentResponse, error) {
	if err := validation.ID("parentId", parentID); err != nil {
		return nil, validationError(err)
	}
	replies, err := s.commentRepo.FindRepliesByParentIDs(ctx, []uint{uint(parentID)})
	if err != nil {
		s.logger.Error("failed to fetch comment replies", zap.Int64("parentId", parentID), zap.Error(err))
		return []*dto.CommentResponse{}, nil
	}
	return dto.ToCommentResponses(replies), nil
}

// GetCommentsByUser returns a user's approved comments, newest first
func (s *commentServiceImpl) GetCommentsByUser(ctx context.Context, userID string) []*dto.CommentResponse {
	uid, err := uuid.Parse(userID)
	if err != nil {
		s.logger.Warn("invalid user id for comment lookup", zap.String("userId", userID))
		return []*dto.CommentResponse{}
	}
	comments, err := s.commentRepo.FindByUser(ctx, uid)
	if err != nil {
		s.logger.Error("failed to fetch user comments", zap.String("userId", userID), zap.Error(err))
		return []*dto.CommentResponse{}
	}
	return dto.ToCommentResponses(comments)
}

// GetPendingComments returns the moderation queue
func (s *commentServiceImpl) GetPendingComments(ctx context.Context) []*dto.CommentResponse {
	comments, err := s.commentRepo.FindPending(ctx)
	if err != nil {
		s.logger.Error("failed to fetch pending comments", zap.Error(err))
		return []*dto.CommentResponse{}
	}
	return dto.ToCommentResponses(comments)
}

// CreateComment validates and inserts a comment. New comments are always
// pending. Replies are capped at one level: replying to a reply fails
// validation.
func (s *commentServiceImpl) CreateComment(ctx context.Context, in *validation.CreateCommentInput) (*dto.CommentResponse, error) {
	if err := validation.CreateComment(in); err != nil {
		return nil, validationError(err)
	}

	comment := &domain.Comment{
		Content:   in.Content,
		ArticleID: uint(in.ArticleID),
		UserID:    uuid.MustParse(in.UserID),
		Status:    domain.CommentStatusPending,
		IPAddress: in.IPAddress,
		UserAgent: in.UserAgent,
	}
	if in.ParentID != nil {
		parent, err := s.commentRepo.FindByID(ctx, uint(*in.ParentID))
		if err != nil {
			s.logger.Error("failed to fetch parent comment", zap.Int64("parentId", *in.ParentID), zap.Error(err))
			return nil, nil
		}
		if parent.ParentID != nil {
			return nil, validationError(&validation.Error{Fields: []validation.FieldError{
				{Field: "parentId", Message: "replies cannot be nested more than one level"},
			}})
		}
		parentID := uint(*in.ParentID)
		comment.ParentID = &parentID
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		s.logger.Error("failed to create comment", zap.Int64("articleId", in.ArticleID), zap.Error(err))
		return nil, nil
	}

	created, err := s.commentRepo.FindByID(ctx, comment.ID)
	if err != nil {
		s.logger.Error("failed to reload created comment", zap.Uint("id", comment.ID), zap.Error(err))
		return dto.ToCommentResponse(comment), nil
	}
	return dto.ToCommentResponse(created), nil
}

// UpdateComment applies an author edit, marking the comment as edited
func (s *commentServiceImpl) UpdateComment(ctx context.Context, id int64, in *validation.UpdateCommentInput) (*dto.CommentResponse, error) {
	if err := validation.ID("id", id); err != nil {
		return nil, validationError(err)
	}
	if err := validation.UpdateComment(in); err != nil {
		return nil, validationError(err)
	}

	now := time.Now().UTC()
	fields := map[string]interface{}{
		"is_edited":  true,
		"edited_at":  now,
		"updated_at": now,
	}
	if in.Content != nil {
		fields["content"] = *in.Content
	}
	if in.EditReason != nil {
		fields["edit_reason"] = *in.EditReason
	}

	comment, err := s.commentRepo.Update(ctx, uint(id), fields)
	if err != nil {
		s.logger.Error("failed to update comment", zap.Int64("id", id), zap.Error(err))
		return nil, nil
	}
	return dto.ToCommentResponse(comment), nil
}

// ModerateComment records a moderation decision: the new status, who
// made it and when. This is the only path that changes comment status.
func (s *commentServiceImpl) ModerateComment(ctx context.Context, id int64, in *validation.ModerateCommentInput) (*dto.CommentResponse, error) {
	if err := validation.ID("id", id); err != nil {
		return nil, validationError(err)
	}
	if err := validation.ModerateComment(in); err != nil {
		return nil, validationError(err)
	}

	now := time.Now().UTC()
	comment, err := s.commentRepo.Update(ctx, uint(id), map[string]interface{}{
		"status":       in.Status,
		"moderated_by": uuid.MustParse(in.ModeratedBy),
		"moderated_at": now,
		"updated_at":   now,
	})
	if err != nil {
		s.logger.Error("failed to moderate comment", zap.Int64("id", id), zap.Error(err))
		return nil, nil
	}
	return dto.ToCommentResponse(comment), nil
}

// DeleteComment hard-deletes a comment. Ownership checks belong to the
// route layer; this trusts the caller.
func (s *commentServiceImpl) DeleteComment(ctx context.Context, id int64) (bool, error) {
	if err := validation.ID("id", id); err != nil {
		return false, validationError(err)
	}
	if err := s.commentRepo.Delete(ctx, uint(id)); err != nil {
		s.logger.Error("failed to delete comment", zap.Int64("id", id), zap.Error(err))
		return false, nil
	}
	return true, nil
}

// GetCommentReactions returns all reactions on a comment
func (s *commentServiceImpl) GetCommentReactions(ctx context.Context, commentID int64) ([]*dto.ReactionResponse, error) {
	if err := validation.ID("commentId", commentID); err != nil {
		return nil, validationError(err)
	}
	reactions, err := s.commentRepo.FindReactionsByComment(ctx, uint(commentID))
	if err != nil {
		s.logger.Error("failed to fetch comment reactions", zap.Int64("commentId", commentID), zap.Error(err))
		return []*dto.ReactionResponse{}, nil
	}
	out := make([]*dto.ReactionResponse, 0, len(reactions))
	for _, r := range reactions {
		out = append(out, dto.ToReactionResponse(r))
	}
	return out, nil
}

// AddReaction replaces the user's reaction on the comment with the new
// one. At most one reaction per (comment, user) ever exists.
func (s *commentServiceImpl) AddReaction(ctx context.Context, in *validation.CreateReactionInput) (*dto.ReactionResponse, error) {
	if err := validation.CreateReaction(in); err != nil {
		return nil, validationError(err)
	}

	reaction := &domain.CommentReaction{
		CommentID:    uint(in.CommentID),
		UserID:       uuid.MustParse(in.UserID),
		ReactionType: domain.ReactionType(in.ReactionType),
	}
	if err := s.commentRepo.ReplaceReaction(ctx, reaction); err != nil {
		s.logger.Error("failed to add comment reaction", zap.Int64("commentId", in.CommentID), zap.Error(err))
		return nil, nil
	}
	return dto.ToReactionResponse(reaction), nil
}

// RemoveReaction deletes the user's reaction if present. Removing a
// reaction that does not exist still succeeds.
func (s *commentServiceImpl) RemoveReaction(ctx context.Context, commentID int64, userID uuid.UUID) (bool, error) {
	if err := validation.ID("commentId", commentID); err != nil {
		return false, validationError(err)
	}
	if err := s.commentRepo.DeleteReaction(ctx, uint(commentID), userID); err != nil {
		s.logger.Error("failed to remove comment reaction", zap.Int64("commentId", commentID), zap.Error(err))
		return false, nil
	}
	return true, nil
}

// AddMention records a mention relationship on a comment
func (s *commentServiceImpl) AddMention(ctx context.Context, in *validation.CreateMentionInput) (*dto.MentionResponse, error) {
	if err := validation.CreateMention(in); err != nil {
		return nil, validationError(err)
	}
	mention := &domain.CommentMention{
		CommentID:       uint(in.CommentID),
		MentionedUserID: uuid.MustParse(in.MentionedUserID),
	}
	if err := s.commentRepo.CreateMention(ctx, mention); err != nil {
		s.logger.Error("failed to record mention", zap.Int64("commentId", in.CommentID), zap.Error(err))
		return nil, nil
	}
	return dto.ToMentionResponse(mention), nil
}
