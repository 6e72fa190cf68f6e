package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"digital-canvas/cmd/api/handlers"
	"digital-canvas/cmd/api/middleware"
	"digital-canvas/cmd/api/services"
	"digital-canvas/config"
	_ "digital-canvas/docs"
	"digital-canvas/internal/logger"
)

func New(cfg config.AppConfig, feedSvc *services.FeedService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// Health check
	r.GET("/health", handlers.HealthHandler(feedSvc, cfg.ContentAPI.Configured()))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/feed", handlers.ListFeedHandler(feedSvc))
		api.GET("/feed/:slug", handlers.GetFeedItemHandler(feedSvc))

		if cfg.Server.AdminAPIKey != "" {
			admin := api.Group("/feed/cache", middleware.AdminAPIKey(cfg.Server.AdminAPIKey))
			admin.POST("/clear", handlers.ClearFeedCacheHandler(feedSvc))
		} else {
			logger.WarnWithFields("admin api key not set, cache clear endpoint disabled", logger.Fields{"route": "POST /api/feed/cache/clear"})
		}
	}

	return r
}
