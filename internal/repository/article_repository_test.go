package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/bdelucia/blog/internal/domain"
)

func TestArticleRepository_FindPublished(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	first := createTestArticle(t, db, domain.ArticleStatusPublished, "older-post")
	db.Model(first).Update("date_posted", older)
	second := createTestArticle(t, db, domain.ArticleStatusPublished, "newer-post")
	db.Model(second).Update("date_posted", newer)
	createTestArticle(t, db, domain.ArticleStatusDraft, "draft-post")

	articles, err := repo.FindPublished(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 published articles, got %d", len(articles))
	}
	if articles[0].Slug != "newer-post" || articles[1].Slug != "older-post" {
		t.Errorf("expected newest first, got %s then %s", articles[0].Slug, articles[1].Slug)
	}
}

func TestArticleRepository_FindPublishedBySlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	createTestArticle(t, db, domain.ArticleStatusPublished, "published-post")
	createTestArticle(t, db, domain.ArticleStatusDraft, "draft-post")

	article, err := repo.FindPublishedBySlug(ctx, "published-post")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if article.Slug != "published-post" {
		t.Errorf("unexpected slug %s", article.Slug)
	}

	// A draft is invisible through the published lookup
	if _, err := repo.FindPublishedBySlug(ctx, "draft-post"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound for draft, got %v", err)
	}

	// FindBySlug sees it regardless of status
	draft, err := repo.FindBySlug(ctx, "draft-post")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Status != domain.ArticleStatusDraft {
		t.Errorf("unexpected status %s", draft.Status)
	}
}

func TestArticleRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	article := createTestArticle(t, db, domain.ArticleStatusDraft, "my-post")

	now := time.Now().UTC()
	updated, err := repo.Update(ctx, article.ID, map[string]interface{}{
		"title":       "Renamed",
		"status":      domain.ArticleStatusPublished,
		"date_posted": now,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Errorf("title not updated: %s", updated.Title)
	}
	if updated.Status != domain.ArticleStatusPublished {
		t.Errorf("status not updated: %s", updated.Status)
	}
	if updated.DatePosted == nil {
		t.Error("date_posted not set")
	}
}

func TestArticleRepository_UpdateMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	_, err := repo.Update(ctx, 9999, map[string]interface{}{"title": "Nope"})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestArticleRepository_ExistsAndCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	createTestArticle(t, db, domain.ArticleStatusPublished, "one")
	createTestArticle(t, db, domain.ArticleStatusDraft, "two")

	exists, err := repo.ExistsBySlug(ctx, "one")
	if err != nil || !exists {
		t.Errorf("ExistsBySlug(one) = %v, %v", exists, err)
	}
	exists, err = repo.ExistsBySlug(ctx, "missing")
	if err != nil || exists {
		t.Errorf("ExistsBySlug(missing) = %v, %v", exists, err)
	}

	total, err := repo.Count(ctx)
	if err != nil || total != 2 {
		t.Errorf("Count() = %d, %v", total, err)
	}
	published, err := repo.CountPublished(ctx)
	if err != nil || published != 1 {
		t.Errorf("CountPublished() = %d, %v", published, err)
	}
}

func TestArticleRepository_FindPublishedByTag(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	tagged := &domain.Article{
		Title:  "Tagged",
		Slug:   "tagged-post",
		Status: domain.ArticleStatusPublished,
		Tags:   datatypes.JSONSlice[string]{"go", "web"},
	}
	if err := db.Create(tagged).Error; err != nil {
		t.Fatalf("failed to create article: %v", err)
	}
	other := &domain.Article{
		Title:  "Other",
		Slug:   "other-post",
		Status: domain.ArticleStatusPublished,
		Tags:   datatypes.JSONSlice[string]{"rust"},
	}
	if err := db.Create(other).Error; err != nil {
		t.Fatalf("failed to create article: %v", err)
	}
	draftTagged := &domain.Article{
		Title:  "Draft",
		Slug:   "draft-tagged",
		Status: domain.ArticleStatusDraft,
		Tags:   datatypes.JSONSlice[string]{"go"},
	}
	if err := db.Create(draftTagged).Error; err != nil {
		t.Fatalf("failed to create article: %v", err)
	}

	articles, err := repo.FindPublishedByTag(ctx, "go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("expected 1 article, got %d", len(articles))
	}
	if articles[0].Slug != "tagged-post" {
		t.Errorf("unexpected slug %s", articles[0].Slug)
	}
}

func TestArticleRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	article := createTestArticle(t, db, domain.ArticleStatusPublished, "doomed")

	if err := repo.Delete(ctx, article.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.FindByID(ctx, article.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound after delete, got %v", err)
	}
}
