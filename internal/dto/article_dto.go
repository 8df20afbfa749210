package dto

import (
	"time"

	"github.com/bdelucia/blog/internal/domain"
)

// CreateArticleRequest represents the request to create an article
type CreateArticleRequest struct {
	Title      string   `json:"title" binding:"required"`
	Summary    *string  `json:"summary"`
	Image      *string  `json:"image"`
	Tags       []string `json:"tags"`
	DatePosted *string  `json:"datePosted"`
	Status     string   `json:"status"`
	Content    *string  `json:"content"`
	Slug       string   `json:"slug" binding:"required"`
}

// UpdateArticleRequest represents the request to update an article
type UpdateArticleRequest struct {
	Title      *string  `json:"title"`
	Summary    *string  `json:"summary"`
	Image      *string  `json:"image"`
	Tags       []string `json:"tags"`
	DatePosted *string  `json:"datePosted"`
	Status     *string  `json:"status"`
	Content    *string  `json:"content"`
	Slug       *string  `json:"slug"`
}

// ArticleResponse represents the article response
type ArticleResponse struct {
	ID         uint       `json:"id"`
	Title      string     `json:"title"`
	Summary    *string    `json:"summary"`
	Image      *string    `json:"image"`
	Tags       []string   `json:"tags"`
	DatePosted *time.Time `json:"datePosted"`
	Status     string     `json:"status"`
	Content    *string    `json:"content"`
	Slug       string     `json:"slug"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// ToArticleResponse converts an Article to its response shape
func ToArticleResponse(a *domain.Article) *ArticleResponse {
	if a == nil {
		return nil
	}
	return &ArticleResponse{
		ID:         a.ID,
		Title:      a.Title,
		Summary:    a.Summary,
		Image:      a.Image,
		Tags:       a.Tags,
		DatePosted: a.DatePosted,
		Status:     string(a.Status),
		Content:    a.Content,
		Slug:       a.Slug,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// ToArticleResponses converts a list of articles
func ToArticleResponses(articles []*domain.Article) []*ArticleResponse {
	out := make([]*ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, ToArticleResponse(a))
	}
	return out
}
