package http

import (
	"github.com/gin-gonic/gin"
	"github.com/pagecraft/backend/config"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Aggregate view over every generated artifact
		v1.GET("/data", handler.GetData)

		pages := v1.Group("/pages")
		{
			pages.GET("/questions", handler.GetQuestions)
			pages.GET("/faq", handler.GetFAQ)
			pages.GET("/products/:index", handler.GetProductPage)
			pages.GET("/comparison", handler.GetComparison)
		}
	}

	return router
}
