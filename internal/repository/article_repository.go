package repository

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/bdelucia/blog/internal/domain"
)

// ArticleRepository defines the interface for article data access
type ArticleRepository interface {
	FindPublished(ctx context.Context) ([]*domain.Article, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Article, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*domain.Article, error)
	FindAll(ctx context.Context) ([]*domain.Article, error)
	FindByID(ctx context.Context, id uint) (*domain.Article, error)
	FindDrafts(ctx context.Context) ([]*domain.Article, error)
	FindPublishedByTag(ctx context.Context, tag string) ([]*domain.Article, error)
	Create(ctx context.Context, article *domain.Article) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*domain.Article, error)
	Delete(ctx context.Context, id uint) error
	DeleteBySlug(ctx context.Context, slug string) error
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountPublished(ctx context.Context) (int64, error)
}

// articleRepositoryImpl is the GORM implementation of ArticleRepository
type articleRepositoryImpl struct {
	db *gorm.DB
}

// NewArticleRepository creates a new instance of ArticleRepository
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepositoryImpl{db: db}
}

// FindPublished returns published articles, newest publish date first
func (r *articleRepositoryImpl) FindPublished(ctx context.Context) ([]*domain.Article, error) {
	var articles []*domain.Article
	if err := conn(r.db).WithContext(ctx).
		Where("status = ?", domain.ArticleStatusPublished).
		Order("date_posted DESC").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// FindBySlug finds an article by slug regardless of status
func (r *articleRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	var article domain.Article
	if err := conn(r.db).WithContext(ctx).
		Where("slug = ?", slug).
		First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// FindPublishedBySlug finds a published article by slug
func (r *articleRepositoryImpl) FindPublishedBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	var article domain.Article
	if err := conn(r.db).WithContext(ctx).
		Where("slug = ? AND status = ?", slug, domain.ArticleStatusPublished).
		First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// FindAll returns every article regardless of status, newest first
func (r *articleRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Article, error) {
	var articles []*domain.Article
	if err := conn(r.db).WithContext(ctx).
		Order("created_at DESC").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// FindByID finds an article by its ID
func (r *articleRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Article, error) {
	var article domain.Article
	if err := conn(r.db).WithContext(ctx).First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// FindDrafts returns draft articles, newest first
func (r *articleRepositoryImpl) FindDrafts(ctx context.Context) ([]*domain.Article, error) {
	var articles []*domain.Article
	if err := conn(r.db).WithContext(ctx).
		Where("status = ?", domain.ArticleStatusDraft).
		Order("created_at DESC").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// FindPublishedByTag returns published articles carrying the given tag
func (r *articleRepositoryImpl) FindPublishedByTag(ctx context.Context, tag string) ([]*domain.Article, error) {
	var articles []*domain.Article
	if err := conn(r.db).WithContext(ctx).
		Where("status = ?", domain.ArticleStatusPublished).
		Where(datatypes.JSONArrayQuery("tags").Contains(tag)).
		Order("date_posted DESC").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// Create inserts a new article
func (r *articleRepositoryImpl) Create(ctx context.Context, article *domain.Article) error {
	return conn(r.db).WithContext(ctx).Create(article).Error
}

// Update applies the given column set and returns the fresh row.
// A map is used so nullable columns (date_posted) can be cleared.
func (r *articleRepositoryImpl) Update(ctx context.Context, id uint, fields map[string]interface{}) (*domain.Article, error) {
	res := conn(r.db).WithContext(ctx).
		Model(&domain.Article{}).
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

// Delete removes an article by ID; dependent comments cascade
func (r *articleRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return conn(r.db).WithContext(ctx).Delete(&domain.Article{}, id).Error
}

// DeleteBySlug removes an article by slug
func (r *articleRepositoryImpl) DeleteBySlug(ctx context.Context, slug string) error {
	return conn(r.db).WithContext(ctx).
		Where("slug = ?", slug).
		Delete(&domain.Article{}).Error
}

// ExistsBySlug reports whether any article has the given slug
func (r *articleRepositoryImpl) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := conn(r.db).WithContext(ctx).
		Model(&domain.Article{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the total number of articles
func (r *articleRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := conn(r.db).WithContext(ctx).
		Model(&domain.Article{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountPublished returns the number of published articles
func (r *articleRepositoryImpl) CountPublished(ctx context.Context) (int64, error) {
	var count int64
	if err := conn(r.db).WithContext(ctx).
		Model(&domain.Article{}).
		Where("status = ?", domain.ArticleStatusPublished).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
