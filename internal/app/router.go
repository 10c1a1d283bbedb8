package app

import (
	"github.com/GinYoshida/kanji-quize/docs"
	"github.com/GinYoshida/kanji-quize/internal/config"
	"github.com/GinYoshida/kanji-quize/internal/middleware"
	"github.com/GinYoshida/kanji-quize/internal/model"
	"github.com/GinYoshida/kanji-quize/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共ルート（ログイン不要）
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/session", c.auth.PlayerSession)
		public.POST("/auth/passcode", c.auth.VerifyPasscode)
	}

	// 認証が必要なルート
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/quizzes", c.quiz.ListQuestions)
		authGroup.GET("/quizzes/active", c.quiz.ListActiveQuestions)
		authGroup.GET("/quizzes/:id", c.quiz.GetQuestion)

		authGroup.GET("/logs", c.logs.ListLogs)
		authGroup.POST("/logs", c.logs.CreateLog)

		authGroup.POST("/sessions", c.session.StartSession)
		authGroup.GET("/sessions/:id", c.session.GetSession)
		authGroup.POST("/sessions/:id/answer", c.session.SubmitAnswer)
		authGroup.POST("/sessions/:id/finish", c.session.FinishSession)
		authGroup.DELETE("/sessions/:id", c.session.AbandonSession)

		// 保護者（パスコード認証済み）のみ
		parent := authGroup.Group("/")
		parent.Use(middleware.RoleMiddleware(model.RoleParent))
		{
			parent.POST("/quizzes", c.quiz.CreateQuestion)
			parent.PATCH("/quizzes/:id", c.quiz.UpdateQuestion)
			parent.DELETE("/quizzes/:id", c.quiz.DeleteQuestion)
			parent.POST("/upload", c.upload.UploadImage)
		}
	}
}
