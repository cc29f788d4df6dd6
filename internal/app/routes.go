package app

import (
	"bookmarks/internal/auth"
	"bookmarks/internal/cache"
	"bookmarks/internal/config"
	"bookmarks/internal/handlers"
	"bookmarks/internal/repo"
	"bookmarks/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	tokens := auth.NewTokenManager([]byte(cfg.JWT.Secret), cfg.JWT.TTL.Duration())
	userRepo := repo.NewPGUserRepo(db)
	authSvc := service.NewAuthService(userRepo, tokens)
	authHandler := handlers.NewAuthHandler(authSvc)
	registerAuthRoutes(api, authHandler)

	protected := api.Group("", auth.RequireAuth(tokens, userRepo))

	userSvc := service.NewUserService(userRepo)
	userHandler := handlers.NewUserHandler(userSvc)
	registerUserRoutes(protected, userHandler)

	bookmarkRepo := repo.NewPGBookmarkRepo(db)
	bookmarkCache := cache.NewBookmarkCache(rdb, cfg.Redis.DefaultTTL.Duration())
	bookmarkSvc := service.NewBookmarkService(bookmarkRepo, bookmarkCache)
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkSvc)
	registerBookmarkRoutes(protected, bookmarkHandler)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Bookmark API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/auth/signup", h.Signup)
	api.POST("/auth/signin", h.Signin)
}

func registerUserRoutes(api *gin.RouterGroup, h *handlers.UserHandler) {
	api.GET("/users/me", h.Me)
	api.PATCH("/users", h.Update)
}

func registerBookmarkRoutes(api *gin.RouterGroup, h *handlers.BookmarkHandler) {
	api.POST("/bookmarks", h.Create)
	api.GET("/bookmarks", h.List)
	api.GET("/bookmarks/:id", h.GetByID)
	api.PATCH("/bookmarks/:id", h.Update)
	api.DELETE("/bookmarks/:id", h.Delete)
}
