package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bdelucia/blog/internal/client"
	"github.com/bdelucia/blog/internal/handler"
	"github.com/bdelucia/blog/internal/middleware"
	"github.com/bdelucia/blog/internal/repository"
	"github.com/bdelucia/blog/internal/service"
)

// Config holds router configuration
type Config struct {
	DB          *gorm.DB
	Logger      *zap.Logger
	JWTSecret   string
	BasePath    string
	CORSOrigins []string
	AuthClient  *client.AuthClient
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.Metrics())

	// Prometheus metrics endpoint
	r.GET("/metrics", middleware.MetricsHandler())

	// Health check routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "blog-api"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if cfg.DB == nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "blog-api"})
			return
		}
		sqlDB, err := cfg.DB.DB()
		if err != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "blog-api"})
			return
		}
		if err := sqlDB.Ping(); err != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "blog-api"})
			return
		}
		c.JSON(200, gin.H{"status": "ready", "service": "blog-api"})
	})

	// Initialize repositories
	articleRepo := repository.NewArticleRepository(cfg.DB)
	userRepo := repository.NewUserRepository(cfg.DB)
	profileRepo := repository.NewUserProfileRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)

	// Initialize services
	articleService := service.NewArticleService(articleRepo, cfg.Logger)
	userService := service.NewUserService(userRepo, profileRepo, cfg.Logger)
	commentService := service.NewCommentService(commentRepo, cfg.Logger)
	authService := service.NewAuthService(userService, cfg.Logger)

	// Initialize handlers
	articleHandler := handler.NewArticleHandler(articleService)
	userHandler := handler.NewUserHandler(userService)
	commentHandler := handler.NewCommentHandler(commentService, authService)
	authHandler := handler.NewAuthHandler(authService)

	// API routes group
	api := r.Group(cfg.BasePath)

	// Auth middleware
	var authMiddleware gin.HandlerFunc
	if cfg.AuthClient != nil {
		authMiddleware = middleware.AuthWithValidator(cfg.AuthClient)
	} else {
		authMiddleware = middleware.Auth(cfg.JWTSecret)
	}
	adminMiddleware := middleware.RequireAdmin(authService)

	// ============================================================
	// Article routes (public)
	// ============================================================
	articles := api.Group("/articles")
	{
		articles.GET("", articleHandler.GetBlogPosts)
		articles.GET("/tags/:tag", articleHandler.GetPostsByTag)
		articles.GET("/:slug", articleHandler.GetPost)
	}

	// ============================================================
	// Comment routes (reads public, writes authenticated)
	// ============================================================
	comments := api.Group("/comments")
	{
		comments.GET("", commentHandler.GetArticleComments)
		comments.GET("/:commentId", commentHandler.GetComment)
		comments.GET("/:commentId/replies", commentHandler.GetCommentReplies)
		comments.GET("/:commentId/reactions", commentHandler.GetCommentReactions)

		comments.POST("", authMiddleware, commentHandler.CreateComment)
		comments.PUT("/:commentId", authMiddleware, commentHandler.UpdateComment)
		comments.DELETE("/:commentId", authMiddleware, commentHandler.DeleteComment)
		comments.POST("/:commentId/reactions", authMiddleware, commentHandler.AddReaction)
		comments.DELETE("/:commentId/reactions", authMiddleware, commentHandler.RemoveReaction)
		comments.POST("/:commentId/mentions", authMiddleware, commentHandler.AddMention)
	}

	// ============================================================
	// User routes
	// ============================================================
	users := api.Group("/users")
	{
		users.GET("/:userId", userHandler.GetUser)
		users.GET("/:userId/comments", commentHandler.GetUserComments)
		users.GET("/:userId/profile", userHandler.GetUserProfile)

		users.PUT("/:userId/profile", authMiddleware, userHandler.UpsertUserProfile)
		users.DELETE("/:userId/profile", authMiddleware, userHandler.DeleteUserProfile)
	}

	// ============================================================
	// Auth routes
	// ============================================================
	auth := api.Group("/auth")
	{
		auth.POST("/create-user", authHandler.CreateUser)
		auth.GET("/me", authMiddleware, authHandler.GetCurrentUser)
	}

	// ============================================================
	// Admin routes
	// ============================================================
	admin := api.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		adminArticles := admin.Group("/articles")
		{
			adminArticles.GET("", articleHandler.GetAllPosts)
			adminArticles.POST("", articleHandler.CreatePost)
			adminArticles.GET("/drafts", articleHandler.GetDraftPosts)
			adminArticles.GET("/stats", articleHandler.GetPostStats)
			adminArticles.GET("/:articleId", articleHandler.GetPostByID)
			adminArticles.PUT("/:articleId", articleHandler.UpdatePost)
			adminArticles.DELETE("/:articleId", articleHandler.DeletePost)
			adminArticles.POST("/:articleId/publish", articleHandler.PublishPost)
			adminArticles.POST("/:articleId/unpublish", articleHandler.UnpublishPost)
		}

		adminComments := admin.Group("/comments")
		{
			adminComments.GET("/pending", commentHandler.GetPendingComments)
			adminComments.POST("/:commentId/moderate", commentHandler.ModerateComment)
		}

		adminUsers := admin.Group("/users")
		{
			adminUsers.GET("", userHandler.GetAllUsers)
			adminUsers.PUT("/:userId", userHandler.UpdateUser)
			adminUsers.DELETE("/:userId", userHandler.DeleteUser)
		}
	}

	return r
}
