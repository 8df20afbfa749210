package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bdelucia/blog/internal/dto"
	"github.com/bdelucia/blog/internal/response"
	"github.com/bdelucia/blog/internal/service"
	"github.com/bdelucia/blog/internal/validation"
)

type ArticleHandler struct {
	articleService service.ArticleService
}

func NewArticleHandler(articleService service.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

// GetBlogPosts godoc
// @Summary      List published articles
// @Description  Returns published articles, newest publish date first
// @Tags         articles
// @Produce      json
// @Success      200 {array} dto.ArticleResponse
// @Router       /articles [get]
func (h *ArticleHandler) GetBlogPosts(c *gin.Context) {
	posts := h.articleService.GetBlogPosts(c.Request.Context())
	response.SendSuccess(c, http.StatusOK, gin.H{"articles": posts})
}

// GetPost godoc
// @Summary      Get a published article by slug
// @Tags         articles
// @Produce      json
// @Param        slug path string true "Article slug"
// @Success      200 {object} dto.ArticleResponse
// @Failure      400 {object} map[string]string "Invalid slug"
// @Failure      404 {object} map[string]string "Article not found"
// @Router       /articles/{slug} [get]
func (h *ArticleHandler) GetPost(c *gin.Context) {
	post, err := h.articleService.GetPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if post == nil {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Article not found")
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"article": post})
}

// GetPostsByTag godoc
// @Summary      List published articles by tag
// @Tags         articles
// @Produce      json
// @Param        tag path string true "Tag"
// @Success      200 {array} dto.ArticleResponse
// @Router       /articles/tags/{tag} [get]
func (h *ArticleHandler) GetPostsByTag(c *gin.Context) {
	posts := h.articleService.GetPostsByTag(c.Request.Context(), c.Param("tag"))
	response.SendSuccess(c, http.StatusOK, gin.H{"articles": posts})
}

// GetAllPosts godoc
// @Summary      List every article regardless of status
// @Tags         admin-articles
// @Produce      json
// @Success      200 {array} dto.ArticleResponse
// @Router       /admin/articles [get]
func (h *ArticleHandler) GetAllPosts(c *gin.Context) {
	posts := h.articleService.GetAllPosts(c.Request.Context())
	response.SendSuccess(c, http.StatusOK, gin.H{"articles": posts})
}

// GetDraftPosts godoc
// @Summary      List draft articles
// @Tags         admin-articles
// @Produce      json
// @Success      200 {array} dto.ArticleResponse
// @Router       /admin/articles/drafts [get]
func (h *ArticleHandler) GetDraftPosts(c *gin.Context) {
	posts := h.articleService.GetDraftPosts(c.Request.Context())
	response.SendSuccess(c, http.StatusOK, gin.H{"articles": posts})
}

// GetPostByID godoc
// @Summary      Get an article by ID regardless of status
// @Tags         admin-articles
// @Produce      json
// @Param        articleId path int true "Article ID"
// @Success      200 {object} dto.ArticleResponse
// @Failure      404 {object} map[string]string "Article not found"
// @Router       /admin/articles/{articleId} [get]
func (h *ArticleHandler) GetPostByID(c *gin.Context) {
	id, ok := pathID(c, "articleId")
	if !ok {
		return
	}
	post, err := h.articleService.GetPostByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if post == nil {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Article not found")
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"article": post})
}

// CreatePost godoc
// @Summary      Create an article
// @Tags         admin-articles
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateArticleRequest true "Article"
// @Success      201 {object} dto.ArticleResponse
// @Failure      400 {object} map[string]string "Validation failure"
// @Router       /admin/articles [post]
func (h *ArticleHandler) CreatePost(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	post, err := h.articleService.CreatePost(c.Request.Context(), &validation.CreateArticleInput{
		Title:      req.Title,
		Summary:    req.Summary,
		Image:      req.Image,
		Tags:       req.Tags,
		DatePosted: req.DatePosted,
		Status:     req.Status,
		Content:    req.Content,
		Slug:       req.Slug,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if post == nil {
		response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Failed to create article")
		return
	}
	response.SendSuccess(c, http.StatusCreated, gin.H{"article": post})
}

// UpdatePost godoc
// @Summary      Update an article
// @Tags         admin-articles
// @Accept       json
// @Produce      json
// @Param        articleId path int true "Article ID"
// @Param        request body dto.UpdateArticleRequest true "Fields to update"
// @Success      200 {object} dto.ArticleResponse
// @Failure      400 {object} map[string]string "Validation failure"
// @Failure      404 {object} map[string]string "Article not found"
// @Router       /admin/articles/{articleId} [put]
func (h *ArticleHandler) UpdatePost(c *gin.Context) {
	id, ok := pathID(c, "articleId")
	if !ok {
		return
	}

	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	post, err := h.articleService.UpdatePost(c.Request.Context(), id, &validation.UpdateArticleInput{
		Title:      req.Title,
		Summary:    req.Summary,
		Image:      req.Image,
		Tags:       req.Tags,
		DatePosted: req.DatePosted,
		Status:     req.Status,
		Content:    req.Content,
		Slug:       req.Slug,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if post == nil {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Article not found")
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"article": post})
}

// PublishPost godoc
// @Summary      Publish an article
// @Description  Sets the status to published and stamps the publish date
// @Tags         admin-articles
// @Produce      json
// @Param        articleId path int true "Article ID"
// @Success      200 {object} dto.ArticleResponse
// @Failure      404 {object} map[string]string "Article not found"
// @Router       /admin/articles/{articleId}/publish [post]
func (h *ArticleHandler) PublishPost(c *gin.Context) {
	id, ok := pathID(c, "articleId")
	if !ok {
		return
	}
	post, err := h.articleService.PublishPost(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if post == nil {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Article not found")
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"article": post})
}

// UnpublishPost godoc
// @Summary      Unpublish an article
// @Description  Returns the article to draft and clears the publish date
// @Tags         admin-articles
// @Produce      json
// @Param        articleId path int true "Article ID"
// @Success      200 {object} dto.ArticleResponse
// @Failure      404 {object} map[string]string "Article not found"
// @Router       /admin/articles/{articleId}/unpublish [post]
func (h *ArticleHandler) UnpublishPost(c *gin.Context) {
	id, ok := pathID(c, "articleId")
	if !ok {
		return
	}
	post, err := h.articleService.UnpublishPost(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if post == nil {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Article not found")
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"article": post})
}

// DeletePost godoc
// @Summary      Delete an article
// @Tags         admin-articles
// @Produce      json
// @Param        articleId path int true "Article ID"
// @Success      200 {object} map[string]bool
// @Failure      404 {object} map[string]string "Article not found"
// @Router       /admin/articles/{articleId} [delete]
func (h *ArticleHandler) DeletePost(c *gin.Context) {
	id, ok := pathID(c, "articleId")
	if !ok {
		return
	}
	deleted, err := h.articleService.DeletePost(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if !deleted {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Article not found")
		return
	}
	response.SendSuccess(c, http.StatusOK, nil)
}

// GetPostStats godoc
// @Summary      Article counts
// @Tags         admin-articles
// @Produce      json
// @Success      200 {object} map[string]int64
// @Router       /admin/articles/stats [get]
func (h *ArticleHandler) GetPostStats(c *gin.Context) {
	ctx := c.Request.Context()
	response.SendSuccess(c, http.StatusOK, gin.H{
		"total":     h.articleService.GetPostCount(ctx),
		"published": h.articleService.GetPublishedPostCount(ctx),
	})
}
