package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"conduit-backend/internal/shared/middleware"
	"conduit-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.RateLimit(c.Cache, 300, time.Minute),
	)

	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", healthCheckHandler(c))

		setupArticleRoutes(api, c)
		setupProfileRoutes(api, c)
		setupTagRoutes(api, c)
	}

	return router
}

// ========================================
// ARTICLE ROUTES
// ========================================
func setupArticleRoutes(api *gin.RouterGroup, c *container.Container) {
	jwtManager := c.JWTManager

	articles := api.Group("/articles")
	{
		// Public reads resolve the viewer when a token is present.
		articles.GET("", middleware.AuthOptional(jwtManager), c.ArticleHandler.List)
		articles.GET("/feed", middleware.AuthRequired(jwtManager), c.ArticleHandler.Feed)
		articles.GET("/:slug", middleware.AuthOptional(jwtManager), c.ArticleHandler.Get)

		articles.POST("", middleware.AuthRequired(jwtManager), c.ArticleHandler.Create)
		articles.PUT("/:slug", middleware.AuthRequired(jwtManager), c.ArticleHandler.Update)
		articles.DELETE("/:slug", middleware.AuthRequired(jwtManager), c.ArticleHandler.Delete)

		articles.POST("/:slug/favorite", middleware.AuthRequired(jwtManager), c.ArticleHandler.Favorite)
		articles.DELETE("/:slug/favorite", middleware.AuthRequired(jwtManager), c.ArticleHandler.Unfavorite)
	}
}

// ========================================
// PROFILE ROUTES
// ========================================
func setupProfileRoutes(api *gin.RouterGroup, c *container.Container) {
	jwtManager := c.JWTManager

	profiles := api.Group("/profiles")
	{
		profiles.GET("/:username", middleware.AuthOptional(jwtManager), c.ProfileHandler.Get)
		profiles.POST("/:username/follow", middleware.AuthRequired(jwtManager), c.ProfileHandler.Follow)
		profiles.DELETE("/:username/follow", middleware.AuthRequired(jwtManager), c.ProfileHandler.Unfollow)
	}
}

// ========================================
// TAG ROUTES
// ========================================
func setupTagRoutes(api *gin.RouterGroup, c *container.Container) {
	api.GET("/tags", c.TagHandler.List)
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  gin.H{},
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
