package app

import (
	"crypto_compass_backend/docs"
	"crypto_compass_backend/internal/config"
	"crypto_compass_backend/internal/middleware"
	"crypto_compass_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需会话)
	registerPublicRoutes(router, c)

	// 2. 需要会话令牌的路由
	sessionGroup := router.Group("/api")
	sessionGroup.Use(middleware.SessionMiddleware(cfg.Session.Secret))
	{
		registerQuizRoutes(sessionGroup, c)
		registerResultRoutes(sessionGroup, c)
		registerNFTRoutes(sessionGroup, c)
	}
}

func registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/sessions", c.session.Create)
		public.GET("/archetypes", c.catalog.Archetypes)
		public.GET("/archetypes/:id", c.catalog.Archetype)
		public.GET("/questions/bank", c.catalog.QuestionBank)
	}
}

func registerQuizRoutes(group *gin.RouterGroup, c *controllers) {
	quiz := group.Group("/quiz")
	{
		quiz.POST("/start", c.quiz.Start)
		quiz.GET("/state", c.quiz.State)
		quiz.POST("/answers", c.quiz.Answer)
		quiz.POST("/navigate", c.quiz.Navigate)
		quiz.POST("/complete", c.quiz.Complete)
		quiz.DELETE("", c.quiz.Reset)
	}
}

func registerResultRoutes(group *gin.RouterGroup, c *controllers) {
	results := group.Group("/results")
	{
		results.GET("/last", c.result.Last)
		results.GET("/share", c.result.Share)
		results.POST("/compare", c.result.Compare)
		results.GET("/statistics", c.result.Statistics)
	}
}

func registerNFTRoutes(group *gin.RouterGroup, c *controllers) {
	nft := group.Group("/nft")
	{
		nft.POST("/mint", c.nft.Mint)
		nft.GET("/metadata", c.nft.Metadata)
		nft.GET("/mints", c.nft.Mints)
	}
}
