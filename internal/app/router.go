package app

import (
	"learnhub_backend/docs"
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/middleware"
	"learnhub_backend/internal/model"
	"learnhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由（无需登录）
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/me", c.auth.GetMe)

		authGroup.GET("/profile", c.profile.GetProfile)
		authGroup.PUT("/profile", c.profile.UpdateProfile)

		authGroup.GET("/catalog", c.catalog.ListItems)
		authGroup.GET("/catalog/:id", c.catalog.GetItem)

		authGroup.GET("/recommendations", c.recommendation.GetRecommendations)
		authGroup.GET("/recommendations/insights", c.recommendation.GetInsights)
		authGroup.GET("/recommendations/plan", c.recommendation.GetWeeklyPlan)
		authGroup.POST("/recommendations/analysis", c.recommendation.StartAnalysis)
		authGroup.GET("/recommendations/analysis", c.recommendation.GetAnalysisStatus)

		authGroup.GET("/wishlist", c.wishlist.GetWishlist)
		authGroup.POST("/wishlist/:id/toggle", c.wishlist.ToggleWishlist)
	}

	// 管理员相关接口
	adminGroup := router.Group("/api/admin")
	adminGroup.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		adminGroup.POST("/catalog", c.catalog.CreateItem)
		adminGroup.PUT("/catalog/:id", c.catalog.UpdateItem)
		adminGroup.DELETE("/catalog/:id", c.catalog.DeleteItem)
		adminGroup.POST("/catalog/:id/cover", c.catalog.UploadCover)
	}
}
