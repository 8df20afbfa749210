package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/bdelucia/blog/internal/dto"
	"github.com/bdelucia/blog/internal/response"
	"github.com/bdelucia/blog/internal/service"
	"github.com/bdelucia/blog/internal/validation"
)

// MockArticleService is a mock implementation of ArticleService
type MockArticleService struct {
	GetBlogPostsFunc          func(ctx context.Context) []*dto.ArticleResponse
	GetPostFunc               func(ctx context.Context, slug string) (*dto.ArticleResponse, error)
	GetAllPostsFunc           func(ctx context.Context) []*dto.ArticleResponse
	GetPostByIDFunc           func(ctx context.Context, id int64) (*dto.ArticleResponse, error)
	GetDraftPostsFunc         func(ctx context.Context) []*dto.ArticleResponse
	GetPostsByTagFunc         func(ctx context.Context, tag string) []*dto.ArticleResponse
	CreatePostFunc            func(ctx context.Context, in *validation.CreateArticleInput) (*dto.ArticleResponse, error)
	UpdatePostFunc            func(ctx context.Context, id int64, in *validation.UpdateArticleInput) (*dto.ArticleResponse, error)
	PublishPostFunc           func(ctx context.Context, id int64) (*dto.ArticleResponse, error)
	UnpublishPostFunc         func(ctx context.Context, id int64) (*dto.ArticleResponse, error)
	DeletePostFunc            func(ctx context.Context, id int64) (bool, error)
	DeletePostBySlugFunc      func(ctx context.Context, slug string) (bool, error)
	PostExistsFunc            func(ctx context.Context, slug string) bool
	GetPostCountFunc          func(ctx context.Context) int64
	GetPublishedPostCountFunc func(ctx context.Context) int64
}

func (m *MockArticleService) GetBlogPosts(ctx context.Context) []*dto.ArticleResponse {
	if m.GetBlogPostsFunc != nil {
		return m.GetBlogPostsFunc(ctx)
	}
	return nil
}

func (m *MockArticleService) GetPost(ctx context.Context, slug string) (*dto.ArticleResponse, error) {
	if m.GetPostFunc != nil {
		return m.GetPostFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockArticleService) GetAllPosts(ctx context.Context) []*dto.ArticleResponse {
	if m.GetAllPostsFunc != nil {
		return m.GetAllPostsFunc(ctx)
	}
	return nil
}

func (m *MockArticleService) GetPostByID(ctx context.Context, id int64) (*dto.ArticleResponse, error) {
	if m.GetPostByIDFunc != nil {
		return m.GetPostByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockArticleService) GetDraftPosts(ctx context.Context) []*dto.ArticleResponse {
	if m.GetDraftPostsFunc != nil {
		return m.GetDraftPostsFunc(ctx)
	}
	return nil
}

func (m *MockArticleService) GetPostsByTag(ctx context.Context, tag string) []*dto.ArticleResponse {
	if m.GetPostsByTagFunc != nil {
		return m.GetPostsByTagFunc(ctx, tag)
	}
	return nil
}

func (m *MockArticleService) CreatePost(ctx context.Context, in *validation.CreateArticleInput) (*dto.ArticleResponse, error) {
	if m.CreatePostFunc != nil {
		return m.CreatePostFunc(ctx, in)
	}
	return nil, nil
}

func (m *MockArticleService) UpdatePost(ctx context.Context, id int64, in *validation.UpdateArticleInput) (*dto.ArticleResponse, error) {
	if m.UpdatePostFunc != nil {
		return m.UpdatePostFunc(ctx, id, in)
	}
	return nil, nil
}

func (m *MockArticleService) PublishPost(ctx context.Context, id int64) (*dto.ArticleResponse, error) {
	if m.PublishPostFunc != nil {
		return m.PublishPostFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockArticleService) UnpublishPost(ctx context.Context, id int64) (*dto.ArticleResponse, error) {
	if m.UnpublishPostFunc != nil {
		return m.UnpublishPostFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockArticleService) DeletePost(ctx context.Context, id int64) (bool, error) {
	if m.DeletePostFunc != nil {
		return m.DeletePostFunc(ctx, id)
	}
	return false, nil
}

func (m *MockArticleService) DeletePostBySlug(ctx context.Context, slug string) (bool, error) {
	if m.DeletePostBySlugFunc != nil {
		return m.DeletePostBySlugFunc(ctx, slug)
	}
	return false, nil
}

func (m *MockArticleService) PostExists(ctx context.Context, slug string) bool {
	if m.PostExistsFunc != nil {
		return m.PostExistsFunc(ctx, slug)
	}
	return false
}

func (m *MockArticleService) GetPostCount(ctx context.Context) int64 {
	if m.GetPostCountFunc != nil {
		return m.GetPostCountFunc(ctx)
	}
	return 0
}

func (m *MockArticleService) GetPublishedPostCount(ctx context.Context) int64 {
	if m.GetPublishedPostCountFunc != nil {
		return m.GetPublishedPostCountFunc(ctx)
	}
	return 0
}

var _ service.ArticleService = (*MockArticleService)(nil)

func newArticleRouter(articles *MockArticleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewArticleHandler(articles)

	r := gin.New()
	r.GET("/articles", h.GetBlogPosts)
	r.GET("/articles/tags/:tag", h.GetPostsByTag)
	r.GET("/articles/:slug", h.GetPost)
	admin := r.Group("/admin/articles")
	admin.GET("", h.GetAllPosts)
	admin.POST("", h.CreatePost)
	admin.GET("/drafts", h.GetDraftPosts)
	admin.GET("/stats", h.GetPostStats)
	admin.GET("/:articleId", h.GetPostByID)
	admin.PUT("/:articleId", h.UpdatePost)
	admin.DELETE("/:articleId", h.DeletePost)
	admin.POST("/:articleId/publish", h.PublishPost)
	admin.POST("/:articleId/unpublish", h.UnpublishPost)
	return r
}

func TestArticleHandler_GetPost(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		articles := &MockArticleService{
			GetPostFunc: func(ctx context.Context, slug string) (*dto.ArticleResponse, error) {
				return &dto.ArticleResponse{ID: 4, Title: "First Post", Slug: slug, Status: "published"}, nil
			},
		}
		r := newArticleRouter(articles)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/articles/first-post", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Article dto.ArticleResponse `json:"article"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Article.Slug != "first-post" {
			t.Errorf("expected slug first-post, got %q", body.Article.Slug)
		}
	})

	t.Run("missing article returns 404", func(t *testing.T) {
		r := newArticleRouter(&MockArticleService{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/articles/no-such-post", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("malformed slug returns 400", func(t *testing.T) {
		articles := &MockArticleService{
			GetPostFunc: func(ctx context.Context, slug string) (*dto.ArticleResponse, error) {
				return nil, response.NewAppError(response.ErrCodeValidation, validation.Slug(slug).Error(), "")
			},
		}
		r := newArticleRouter(articles)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/articles/Not%20A%20Slug", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestArticleHandler_GetBlogPosts(t *testing.T) {
	articles := &MockArticleService{
		GetBlogPostsFunc: func(ctx context.Context) []*dto.ArticleResponse {
			return []*dto.ArticleResponse{
				{ID: 1, Title: "A", Slug: "a", Status: "published"},
				{ID: 2, Title: "B", Slug: "b", Status: "published"},
			}
		},
	}
	r := newArticleRouter(articles)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/articles", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Articles []*dto.ArticleResponse `json:"articles"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body.Articles) != 2 {
		t.Errorf("expected 2 articles, got %d", len(body.Articles))
	}
}

func TestArticleHandler_CreatePost(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		var gotInput *validation.CreateArticleInput
		articles := &MockArticleService{
			CreatePostFunc: func(ctx context.Context, in *validation.CreateArticleInput) (*dto.ArticleResponse, error) {
				gotInput = in
				return &dto.ArticleResponse{ID: 1, Title: in.Title, Slug: in.Slug, Status: "draft"}, nil
			},
		}
		r := newArticleRouter(articles)

		payload, _ := json.Marshal(dto.CreateArticleRequest{
			Title: "My Post",
			Slug:  "my-post",
			Tags:  []string{"go", "testing"},
		})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/admin/articles", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if gotInput.Title != "My Post" || gotInput.Slug != "my-post" || len(gotInput.Tags) != 2 {
			t.Errorf("input not forwarded: %+v", gotInput)
		}
	})

	t.Run("missing title returns 400", func(t *testing.T) {
		r := newArticleRouter(&MockArticleService{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/admin/articles", bytes.NewReader([]byte(`{"slug":"my-post"}`)))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid slug returns 400", func(t *testing.T) {
		articles := &MockArticleService{
			CreatePostFunc: func(ctx context.Context, in *validation.CreateArticleInput) (*dto.ArticleResponse, error) {
				return nil, response.NewAppError(response.ErrCodeValidation, validation.Slug(in.Slug).Error(), "")
			},
		}
		r := newArticleRouter(articles)

		payload, _ := json.Marshal(dto.CreateArticleRequest{Title: "My Post", Slug: "My Post"})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/admin/articles", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestArticleHandler_PublishPost(t *testing.T) {
	t.Run("publishes by id", func(t *testing.T) {
		var gotID int64
		articles := &MockArticleService{
			PublishPostFunc: func(ctx context.Context, id int64) (*dto.ArticleResponse, error) {
				gotID = id
				return &dto.ArticleResponse{ID: uint(id), Status: "published"}, nil
			},
		}
		r := newArticleRouter(articles)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/admin/articles/9/publish", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if gotID != 9 {
			t.Errorf("expected id 9, got %d", gotID)
		}
	})

	t.Run("missing article returns 404", func(t *testing.T) {
		r := newArticleRouter(&MockArticleService{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/admin/articles/9/publish", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		r := newArticleRouter(&MockArticleService{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/admin/articles/nope/publish", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestArticleHandler_DeletePost(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		articles := &MockArticleService{
			DeletePostFunc: func(ctx context.Context, id int64) (bool, error) {
				return true, nil
			},
		}
		r := newArticleRouter(articles)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/admin/articles/3", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not deleted returns 404", func(t *testing.T) {
		r := newArticleRouter(&MockArticleService{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/admin/articles/3", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestArticleHandler_GetPostStats(t *testing.T) {
	articles := &MockArticleService{
		GetPostCountFunc:          func(ctx context.Context) int64 { return 10 },
		GetPublishedPostCountFunc: func(ctx context.Context) int64 { return 7 },
	}
	r := newArticleRouter(articles)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/articles/stats", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]int64
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["total"] != 10 || body["published"] != 7 {
		t.Errorf("unexpected stats: %v", body)
	}
}
