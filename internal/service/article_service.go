package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/bdelucia/blog/internal/domain"
	"github.com/bdelucia/blog/internal/dto"
	"github.com/bdelucia/blog/internal/repository"
	"github.com/bdelucia/blog/internal/response"
	"github.com/bdelucia/blog/internal/validation"
)

// ArticleService defines the interface for article business logic.
//
// Error contract, shared by every service in this package: a non-nil
// error is always a validation failure (*response.AppError with code
// VALIDATION_ERROR). Database failures are logged and degrade to a
// nil/empty/false result with a nil error, so callers treat "not found"
// and "backend unavailable" uniformly.
type ArticleService interface {
	GetBlogPosts(ctx context.Context) []*dto.ArticleResponse
	GetPost(ctx context.Context, slug string) (*dto.ArticleResponse, error)
	GetAllPosts(ctx context.Context) []*dto.ArticleResponse
	GetPostByID(ctx context.Context, id int64) (*dto.ArticleResponse, error)
	GetDraftPosts(ctx context.Context) []*dto.ArticleResponse
	GetPostsByTag(ctx context.Context, tag string) []*dto.ArticleResponse
	CreatePost(ctx context.Context, in *validation.CreateArticleInput) (*dto.ArticleResponse, error)
	UpdatePost(ctx context.Context, id int64, in *validation.UpdateArticleInput) (*dto.ArticleResponse, error)
	PublishPost(ctx context.Context, id int64) (*dto.ArticleResponse, error)
	UnpublishPost(ctx context.Context, id int64) (*dto.ArticleResponse, error)
	DeletePost(ctx context.Context, id int64) (bool, error)
	DeletePostBySlug(ctx context.Context, slug string) (bool, error)
	PostExists(ctx context.Context, slug string) bool
	GetPostCount(ctx context.Context) int64
	GetPublishedPostCount(ctx context.Context) int64
}

// articleServiceImpl is the implementation of ArticleService
type articleServiceImpl struct {
	articleRepo repository.ArticleRepository
	logger      *zap.Logger
}

// NewArticleService creates a new instance of ArticleService
func NewArticleService(articleRepo repository.ArticleRepository, logger *zap.Logger) ArticleService {
	return &articleServiceImpl{articleRepo: articleRepo, logger: logger}
}

func validationError(err error) *response.AppError {
	return response.NewAppError(response.ErrCodeValidation, err.Error(), "")
}

// GetBlogPosts returns published articles, newest publish date first
func (s *articleServiceImpl) GetBlogPosts(ctx context.Context) []*dto.ArticleResponse {
	articles, err := s.articleRepo.FindPublished(ctx)
	if err != nil {
		s.logger.Error("failed to fetch blog posts", zap.Error(err))
		return []*dto.ArticleResponse{}
	}
	return dto.ToArticleResponses(articles)
}

// GetPost returns a published article by slug, or nil when the slug is
// unknown or the article is still a draft
func (s *articleServiceImpl) GetPost(ctx context.Context, slug string) (*dto.ArticleResponse, error) {
	if err := validation.Slug(slug); err != nil {
		return nil, validationError(err)
	}
	article, err := s.articleRepo.FindPublishedBySlug(ctx, slug)
	if err != nil {
		s.logger.Error("failed to fetch post", zap.String("slug", slug), zap.Error(err))
		return nil, nil
	}
	return dto.ToArticleResponse(article), nil
}

// GetAllPosts returns every article regardless of status
func (s *articleServiceImpl) GetAllPosts(ctx context.Context) []*dto.ArticleResponse {
	articles, err := s.articleRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("failed to fetch all posts", zap.Error(err))
		return []*dto.ArticleResponse{}
	}
	return dto.ToArticleResponses(articles)
}

// GetPostByID returns an article by ID regardless of status
func (s *articleServiceImpl) GetPostByID(ctx context.Context, id int64) (*dto.ArticleResponse, error) {
	if err := validation.ID("id", id); err != nil {
		return nil, validationError(err)
	}
	article, err := s.articleRepo.FindByID(ctx, uint(id))
	if err != nil {
		s.logger.Error("failed to fetch post by id", zap.Int64("id", id), zap.Error(err))
		return nil, nil
	}
	return dto.ToArticleResponse(article), nil
}

// GetDraftPosts returns draft articles
func (s *articleServiceImpl) GetDraftPosts(ctx context.Context) []*dto.ArticleResponse {
	articles, err := s.articleRepo.FindDrafts(ctx)
	if err != nil {
		s.logger.Error("failed to fetch draft posts", zap.Error(err))
		return []*dto.ArticleResponse{}
	}
	return dto.ToArticleResponses(articles)
}

// GetPostsByTag returns published articles carrying the given tag
func (s *articleServiceImpl) GetPostsByTag(ctx context.Context, tag string) []*dto.ArticleResponse {
	articles, err := s.articleRepo.FindPublishedByTag(ctx, tag)
	if err != nil {
		s.logger.Error("failed to fetch posts by tag", zap.String("tag", tag), zap.Error(err))
		return []*dto.ArticleResponse{}
	}
	return dto.ToArticleResponses(articles)
}

// CreatePost validates and inserts a new article, defaulting to draft
func (s *articleServiceImpl) CreatePost(ctx context.Context, in *validation.CreateArticleInput) (*dto.ArticleResponse, error) {
	if err := validation.CreateArticle(in); err != nil {
		return nil, validationError(err)
	}

	article := &domain.Article{
		Title:   in.Title,
		Summary: in.Summary,
		Image:   in.Image,
		Content: in.Content,
		Slug:    in.Slug,
		Status:  domain.ArticleStatusDraft,
	}
	if in.Status != "" {
		article.Status = domain.ArticleStatus(in.Status)
	}
	if len(in.Tags) > 0 {
		article.Tags = datatypes.JSONSlice[string](in.Tags)
	}
	if in.DatePosted != nil {
		// Format already validated
		t, _ := time.Parse(time.RFC3339, *in.DatePosted)
		article.DatePosted = &t
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		s.logger.Error("failed to create post", zap.String("slug", in.Slug), zap.Error(err))
		return nil, nil
	}
	return dto.ToArticleResponse(article), nil
}

// UpdatePost validates and applies a partial update, stamping updatedAt
func (s *articleServiceImpl) UpdatePost(ctx context.Context, id int64, in *validation.UpdateArticleInput) (*dto.ArticleResponse, error) {
	if err := validation.ID("id", id); err != nil {
		return nil, validationError(err)
	}
	if err := validation.UpdateArticle(in); err != nil {
		return nil, validationError(err)
	}

	fields := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Summary != nil {
		fields["summary"] = *in.Summary
	}
	if in.Image != nil {
		fields["image"] = *in.Image
	}
	if in.Tags != nil {
		fields["tags"] = datatypes.JSONSlice[string](in.Tags)
	}
	if in.DatePosted != nil {
		t, _ := time.Parse(time.RFC3339, *in.DatePosted)
		fields["date_posted"] = t
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	if in.Content != nil {
		fields["content"] = *in.Content
	}
	if in.Slug != nil {
		holder, err := s.articleRepo.FindBySlug(ctx, *in.Slug)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("failed to check slug availability", zap.String("slug", *in.Slug), zap.Error(err))
		}
		if holder != nil && holder.ID != uint(id) {
			return nil, validationError(&validation.Error{Fields: []validation.FieldError{
				{Field: "slug", Message: "slug is already in use"},
			}})
		}
		fields["slug"] = *in.Slug
	}

	article, err := s.articleRepo.Update(ctx, uint(id), fields)
	if err != nil {
		s.logger.Error("failed to update post", zap.Int64("id", id), zap.Error(err))
		return nil, nil
	}
	return dto.ToArticleResponse(article), nil
}

// PublishPost flips an article to published and stamps the publish date
func (s *articleServiceImpl) PublishPost(ctx context.Context, id int64) (*dto.ArticleResponse, error) {
	if err := validation.ID("id", id); err != nil {
		return nil, validationError(err)
	}
	now := time.Now().UTC()
	article, err := s.articleRepo.Update(ctx, uint(id), map[string]interface{}{
		"status":      domain.ArticleStatusPublished,
		"date_posted": now,
		"updated_at":  now,
	})
	if err != nil {
		s.logger.Error("failed to publish post", zap.Int64("id", id), zap.Error(err))
		return nil, nil
	}
	return dto.ToArticleResponse(article), nil
}

// UnpublishPost flips an article back to draft and clears the publish date
func (s *articleServiceImpl) UnpublishPost(ctx context.Context, id int64) (*dto.ArticleResponse, error) {
	if err := validation.ID("id", id); err != nil {
		return nil, validationError(err)
	}
	article, err := s.articleRepo.Update(ctx, uint(id), map[string]interface{}{
		"status":      domain.ArticleStatusDraft,
		"date_posted": nil,
		"updated_at":  time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error("failed to unpublish post", zap.Int64("id", id), zap.Error(err))
		return nil, nil
	}
	return dto.ToArticleResponse(article), nil
}

// DeletePost removes an article by ID; dependent comments cascade
func (s *articleServiceImpl) DeletePost(ctx context.Context, id int64) (bool, error) {
	if err := validation.ID("id", id); err != nil {
		return false, validationError(err)
	}
	if err := s.articleRepo.Delete(ctx, uint(id)); err != nil {
		s.logger.Error("failed to delete post", zap.Int64("id", id), zap.Error(err))
		return false, nil
	}
	return true, nil
}

// DeletePostBySlug removes an article by slug
func (s *articleServiceImpl) DeletePostBySlug(ctx context.Context, slug string) (bool, error) {
	if err := validation.Slug(slug); err != nil {
		return false, validationError(err)
	}
	if err := s.articleRepo.DeleteBySlug(ctx, slug); err != nil {
		s.logger.Error("failed to delete post by slug", zap.String("slug", slug), zap.Error(err))
		return false, nil
	}
	return true, nil
}

// PostExists reports whether an article with the slug exists
func (s *articleServiceImpl) PostExists(ctx context.Context, slug string) bool {
	exists, err := s.articleRepo.ExistsBySlug(ctx, slug)
	if err != nil {
		s.logger.Error("failed to check post existence", zap.String("slug", slug), zap.Error(err))
		return false
	}
	return exists
}

// GetPostCount returns the total article count
func (s *articleServiceImpl) GetPostCount(ctx context.Context) int64 {
	count, err := s.articleRepo.Count(ctx)
	if err != nil {
		s.logger.Error("failed to count posts", zap.Error(err))
		return 0
	}
	return count
}

// GetPublishedPostCount returns the published article count
func (s *articleServiceImpl) GetPublishedPostCount(ctx context.Context) int64 {
	count, err := s.articleRepo.CountPublished(ctx)
	if err != nil {
		s.logger.Error("failed to count published posts", zap.Error(err))
		return 0
	}
	return count
}
