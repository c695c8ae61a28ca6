package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"blogcms/api/internal/config"
	"blogcms/api/internal/middleware"
	"blogcms/api/internal/models"
	"blogcms/api/internal/repository"
	"blogcms/api/internal/service"
	"blogcms/api/internal/storage"
)

type HandlerSet struct {
	log             zerolog.Logger
	cfg             *config.AppConfig
	authService     *service.AuthService
	tokenService    *service.TokenService
	userService     *service.UserService
	blogService     *service.BlogService
	categoryService *service.CategoryService
	uploadService   *service.UploadService
	db              *pgxpool.Pool
	cache           *redis.Client
	store           *storage.ObjectStore
	users           *repository.UserRepository
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, cache *redis.Client, store *storage.ObjectStore, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	tokens := service.NewTokenService(tokenRepo, sessionRepo, cfg, log)
	auth := service.NewAuthService(userRepo, tokens, log)
	users := service.NewUserService(userRepo, log)
	categories := service.NewCategoryService(categoryRepo, log)
	blogs := service.NewBlogService(blogRepo, categoryRepo, log)
	uploads := service.NewUploadService(store, cfg, log)

	return HandlerSet{
		log:             log,
		cfg:             cfg,
		authService:     auth,
		tokenService:    tokens,
		userService:     users,
		blogService:     blogs,
		categoryService: categories,
		uploadService:   uploads,
		db:              db,
		cache:           cache,
		store:           store,
		users:           userRepo,
	}
}

func (h HandlerSet) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	authGate := middleware.Auth(h.cfg, h.users)
	adminOnly := middleware.RequireRoles(models.UserRoleAdmin)
	authLimiter := middleware.RateLimit(h.cache, h.log, "auth", 20, 15*time.Minute)
	blogLimiter := middleware.RateLimit(h.cache, h.log, "blog", 200, 5*time.Minute)

	v1 := router.Group("/v1")
	{
		auth := v1.Group("/auth")
		auth.Use(authLimiter)
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh-token", h.Refresh)
		auth.POST("/logout", h.Logout)

		v1.GET("/home", authGate, h.Home)

		users := v1.Group("/users")
		users.Use(authGate, adminOnly)
		users.GET("/:id", h.GetUser)
		users.PATCH("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)

		blogs := v1.Group("/blogs")
		blogs.GET("", blogLimiter, h.ListBlogs)
		blogs.GET("/:id", blogLimiter, h.GetBlog)
		blogs.POST("/:id/views", blogLimiter, h.IncrementBlogViews)
		blogs.POST("", authGate, adminOnly, h.CreateBlog)
		blogs.POST("/draft", authGate, adminOnly, h.SaveBlogDraft)
		blogs.POST("/:id/publish", authGate, adminOnly, h.PublishBlog)
		blogs.PATCH("/:id", authGate, adminOnly, h.UpdateBlog)
		blogs.DELETE("/:id", authGate, adminOnly, h.DeleteBlog)

		categories := v1.Group("/categories")
		categories.GET("", h.ListCategories)
		categories.GET("/:id", h.GetCategory)
		categories.POST("", authGate, adminOnly, h.CreateCategory)
		categories.PATCH("/:id", authGate, adminOnly, h.UpdateCategory)
		categories.DELETE("/:id", authGate, adminOnly, h.DeleteCategory)

		v1.POST("/uploads", authGate, h.Upload)
		v1.GET("/images", h.GetImage)
	}
}
