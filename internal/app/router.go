package app

import (
	"pathwise_backend/docs"
	"pathwise_backend/internal/config"
	"pathwise_backend/internal/middleware"
	"pathwise_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		// Content generation
		authGroup.POST("/roadmap", c.generation.GenerateRoadmap)
		authGroup.POST("/quiz", c.generation.GenerateQuiz)
		authGroup.POST("/generate-resource", c.generation.GenerateResource)
		authGroup.POST("/translate", c.generation.Translate)
		authGroup.POST("/resources/export", c.generation.ExportResource)

		// Progress tracking
		authGroup.GET("/progress", c.progress.GetProgress)
		authGroup.POST("/progress/quiz", c.progress.RecordQuiz)
		authGroup.POST("/progress/roadmap", c.progress.RecordRoadmapProgress)
		authGroup.POST("/progress/login", c.progress.RecordLogin)
		authGroup.POST("/progress/learning-time", c.progress.UpdateLearningTime)
	}
}
