package app

import (
	"learnlens_backend/docs"
	"learnlens_backend/internal/config"
	"learnlens_backend/internal/middleware"
	"learnlens_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由（无需认证）
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/devices/register", c.auth.Register)
		public.POST("/devices/login", c.auth.Login)
	}

	// 需要设备令牌的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.device))
	{
		authGroup.POST("/sessions", c.session.Record)

		authGroup.GET("/analytics", c.analytics.GetAnalytics)
		authGroup.GET("/analytics/streak", c.analytics.GetStreak)
		authGroup.GET("/analytics/paths", c.analytics.GetPaths)

		authGroup.GET("/insights", c.insight.Generate)
		authGroup.GET("/insights/recent", c.insight.Recent)
		authGroup.GET("/recommendations", c.insight.Recommendations)
	}
}
