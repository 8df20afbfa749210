package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bdelucia/blog/internal/dto"
	"github.com/bdelucia/blog/internal/middleware"
	"github.com/bdelucia/blog/internal/response"
	"github.com/bdelucia/blog/internal/service"
	"github.com/bdelucia/blog/internal/validation"
)

type CommentHandler struct {
	commentService service.CommentService
	authService    service.AuthService
}

func NewCommentHandler(commentService service.CommentService, authService service.AuthService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		authService:    authService,
	}
}

// GetArticleComments godoc
// @Summary      List approved comments for an article
// @Description  Top-level approved comments, paginated. With includeReactions the reply tree and reactions are attached.
// @Tags         comments
// @Produce      json
// @Param        articleId query int true "Article ID"
// @Param        includeReactions query bool false "Attach reactions and replies"
// @Param        limit query int false "Page size (1-100, default 20)"
// @Param        offset query int false "Offset (default 0)"
// @Param        sortBy query string false "Sort field" Enums(created_at, updated_at, reactions)
// @Param        sortOrder query string false "Sort order" Enums(asc, desc)
// @Success      200 {array} dto.CommentResponse
// @Failure      400 {object} map[string]string "Invalid query"
// @Router       /comments [get]
func (h *CommentHandler) GetArticleComments(c *gin.Context) {
	articleID, err := strconv.ParseInt(c.Query("articleId"), 10, 64)
	if err != nil || articleID <= 0 {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "articleId must be a positive integer")
		return
	}

	query := &validation.CommentQueryInput{
		IncludeReactions: c.Query("includeReactions") == "true",
		IncludeMentions:  c.Query("includeMentions") == "true",
		SortBy:           c.Query("sortBy"),
		SortOrder:        c.Query("sortOrder"),
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "limit must be an integer")
			return
		}
		query.Limit = &n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "offset must be an integer")
			return
		}
		query.Offset = n
	}

	comments, err := h.commentService.GetCommentsByArticle(c.Request.Context(), articleID, query)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"comments": comments})
}

// CreateComment godoc
// @Summary      Submit a comment
// @Description  Creates a comment in the moderation queue. Replies to replies are rejected.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCommentRequest true "Comment"
// @Success      201 {object} dto.CommentResponse
// @Failure      400 {object} map[string]string "Validation failure"
// @Failure      401 {object} map[string]string "Authentication required"
// @Security     BearerAuth
// @Router       /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	ip := clientIP(c)
	ua := c.Request.UserAgent()
	in := &validation.CreateCommentInput{
		Content:   req.Content,
		ArticleID: req.ArticleID,
		ParentID:  req.ParentID,
		UserID:    userID.String(),
	}
	if ip != "" {
		in.IPAddress = &ip
	}
	if ua != "" {
		in.UserAgent = &ua
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if comment == nil {
		response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Failed to create comment")
		return
	}
	response.SendSuccess(c, http.StatusCreated, gin.H{"comment": comment})
}

// GetComment godoc
// @Summary      Get a comment by ID
// @Tags         comments
// @Produce      json
// @Param        commentId path int true "Comment ID"
// @Success      200 {object} dto.CommentResponse
// @Failure      404 {object} map[string]string "Comment not found"
// @Router       /comments/{commentId} [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	id, ok := pathID(c, "commentId")
	if !ok {
		return
	}
	comment, err := h.commentService.GetComment(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if comment == nil {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Comment not found")
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"comment": comment})
}

// GetCommentReplies godoc
// @Summary      List approved replies to a comment
// @Tags         comments
// @Produce      json
// @Param        commentId path int true "Comment ID"
// @Success      200 {array} dto.CommentResponse
// @Router       /comments/{commentId}/replies [get]
func (h *CommentHandler) GetCommentReplies(c *gin.Context) {
	id, ok := pathID(c, "commentId")
	if !ok {
		return
	}
	replies, err := h.commentService.GetCommentReplies(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"comments": replies})
}

// GetUserComments godoc
// @Summary      List comments written by a user
// @Tags         comments
// @Produce      json
// @Param        userId path string true "User ID (UUID)"
// @Success      200 {array} dto.CommentResponse
// @Router       /users/{userId}/comments [get]
func (h *CommentHandler) GetUserComments(c *gin.Context) {
	comments := h.commentService.GetCommentsByUser(c.Request.Context(), c.Param("userId"))
	response.SendSuccess(c, http.StatusOK, gin.H{"comments": comments})
}

// UpdateComment godoc
// @Summary      Edit a comment
// @Description  Only the author may edit. The edit is flagged and timestamped.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        commentId path int true "Comment ID"
// @Param        request body dto.UpdateCommentRequest true "New content"
// @Success      200 {object} dto.CommentResponse
// @Failure      403 {object} map[string]string "Not the author"
// @Failure      404 {object} map[string]string "Comment not found"
// @Security     BearerAuth
// @Router       /comments/{commentId} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, ok := pathID(c, "commentId")
	if !ok {
		return
	}
	userID, ok := middleware.UserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	existing, err := h.commentService.GetComment(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if existing == nil {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Comment not found")
		return
	}
	if existing.UserID != userID {
		response.SendError(c, http.StatusForbidden, response.ErrCodeForbidden, "Only the author can edit a comment")
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), id, &validation.UpdateCommentInput{
		Content:    &req.Content,
		EditReason: req.EditReason,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if comment == nil {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Comment not found")
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"comment": comment})
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  The author or an admin may delete. Replies, reactions and mentions go with it.
// @Tags         comments
// @Produce      json
// @Param        commentId path int true "Comment ID"
// @Success      200 {object} map[string]bool
// @Failure      403 {object} map[string]string "Not the author or an admin"
// @Failure      404 {object} map[string]string "Comment not found"
// @Security     BearerAuth
// @Router       /comments/{commentId} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := pathID(c, "commentId")
	if !ok {
		return
	}
	userID, ok := middleware.UserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	existing, err := h.commentService.GetComment(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if existing == nil {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Comment not found")
		return
	}
	if existing.UserID != userID && !h.authService.IsAdmin(c.Request.Context(), userID) {
		response.SendError(c, http.StatusForbidden, response.ErrCodeForbidden, "Only the author or an admin can delete a comment")
		return
	}

	deleted, err := h.commentService.DeleteComment(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if !deleted {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Comment not found")
		return
	}
	response.SendSuccess(c, http.StatusOK, nil)
}

// GetCommentReactions godoc
// @Summary      List the reactions on a comment
// @Tags         reactions
// @Produce      json
// @Param        commentId path int true "Comment ID"
// @Success      200 {object} map[string][]dto.ReactionResponse
// @Router       /comments/{commentId}/reactions [get]
func (h *CommentHandler) GetCommentReactions(c *gin.Context) {
	id, ok := pathID(c, "commentId")
	if !ok {
		return
	}
	reactions, err := h.commentService.GetCommentReactions(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"reactions": reactions})
}

// AddReaction godoc
// @Summary      React to a comment
// @Description  A user holds at most one reaction per comment; a new reaction replaces the previous one.
// @Tags         reactions
// @Accept       json
// @Produce      json
// @Param        commentId path int true "Comment ID"
// @Param        request body dto.AddReactionRequest true "Reaction"
// @Success      201 {object} dto.ReactionResponse
// @Failure      400 {object} map[string]string "Unknown reaction type"
// @Security     BearerAuth
// @Router       /comments/{commentId}/reactions [post]
func (h *CommentHandler) AddReaction(c *gin.Context) {
	id, ok := pathID(c, "commentId")
	if !ok {
		return
	}
	userID, ok := middleware.UserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	var req dto.AddReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	reaction, err := h.commentService.AddReaction(c.Request.Context(), &validation.CreateReactionInput{
		CommentID:    id,
		UserID:       userID.String(),
		ReactionType: req.ReactionType,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if reaction == nil {
		response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Failed to add reaction")
		return
	}
	response.SendSuccess(c, http.StatusCreated, gin.H{"reaction": reaction})
}

// RemoveReaction godoc
// @Summary      Remove the caller's reaction from a comment
// @Description  Removing a reaction that does not exist still succeeds.
// @Tags         reactions
// @Produce      json
// @Param        commentId path int true "Comment ID"
// @Success      200 {object} map[string]bool
// @Security     BearerAuth
// @Router       /comments/{commentId}/reactions [delete]
func (h *CommentHandler) RemoveReaction(c *gin.Context) {
	id, ok := pathID(c, "commentId")
	if !ok {
		return
	}
	userID, ok := middleware.UserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	if _, err := h.commentService.RemoveReaction(c.Request.Context(), id, userID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, nil)
}

// AddMention godoc
// @Summary      Record a mention of another user in a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        commentId path int true "Comment ID"
// @Param        request body dto.AddMentionRequest true "Mentioned user"
// @Success      201 {object} dto.MentionResponse
// @Failure      400 {object} map[string]string "Invalid user ID"
// @Security     BearerAuth
// @Router       /comments/{commentId}/mentions [post]
func (h *CommentHandler) AddMention(c *gin.Context) {
	id, ok := pathID(c, "commentId")
	if !ok {
		return
	}
	if _, ok := middleware.UserID(c); !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	var req dto.AddMentionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	mention, err := h.commentService.AddMention(c.Request.Context(), &validation.CreateMentionInput{
		CommentID:       id,
		MentionedUserID: req.MentionedUserID,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if mention == nil {
		response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Failed to record mention")
		return
	}
	response.SendSuccess(c, http.StatusCreated, gin.H{"mention": mention})
}

// GetPendingComments godoc
// @Summary      List comments awaiting moderation
// @Tags         moderation
// @Produce      json
// @Success      200 {array} dto.CommentResponse
// @Security     BearerAuth
// @Router       /admin/comments/pending [get]
func (h *CommentHandler) GetPendingComments(c *gin.Context) {
	comments := h.commentService.GetPendingComments(c.Request.Context())
	response.SendSuccess(c, http.StatusOK, gin.H{"comments": comments})
}

// ModerateComment godoc
// @Summary      Moderate a comment
// @Description  Sets the comment status and records who moderated it and when.
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Param        commentId path int true "Comment ID"
// @Param        request body dto.ModerateCommentRequest true "Decision"
// @Success      200 {object} dto.CommentResponse
// @Failure      400 {object} map[string]string "Unknown status"
// @Failure      404 {object} map[string]string "Comment not found"
// @Security     BearerAuth
// @Router       /admin/comments/{commentId}/moderate [post]
func (h *CommentHandler) ModerateComment(c *gin.Context) {
	id, ok := pathID(c, "commentId")
	if !ok {
		return
	}
	userID, ok := middleware.UserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	var req dto.ModerateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	comment, err := h.commentService.ModerateComment(c.Request.Context(), id, &validation.ModerateCommentInput{
		Status:      req.Status,
		ModeratedBy: userID.String(),
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if comment == nil {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Comment not found")
		return
	}
	middleware.RecordModeration(comment.Status)
	response.SendSuccess(c, http.StatusOK, gin.H{"comment": comment})
}

// clientIP prefers the forwarding headers set by the edge proxy and
// falls back to gin's resolution of the remote address.
func clientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		if i := strings.Index(fwd, ","); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	if real := c.GetHeader("X-Real-IP"); real != "" {
		return real
	}
	return c.ClientIP()
}
