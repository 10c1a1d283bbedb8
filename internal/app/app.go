package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GinYoshida/kanji-quize/internal/config"
	"github.com/GinYoshida/kanji-quize/internal/controller"
	"github.com/GinYoshida/kanji-quize/internal/game"
	"github.com/GinYoshida/kanji-quize/internal/repository"
	"github.com/GinYoshida/kanji-quize/internal/service"
	"github.com/GinYoshida/kanji-quize/pkg/database"
	"github.com/GinYoshida/kanji-quize/pkg/logger"
	"github.com/GinYoshida/kanji-quize/pkg/monitoring"
	"github.com/GinYoshida/kanji-quize/pkg/security"
	"github.com/GinYoshida/kanji-quize/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	Sessions *game.Manager
}

type repositories struct {
	quizQuestion *repository.QuizQuestionRepository
	learningLog  *repository.LearningLogRepository
}

type services struct {
	auth    *service.AuthService
	quiz    *service.QuizService
	logs    *service.LearningLogService
	storage *service.StorageService
}

type controllers struct {
	auth    *controller.AuthController
	quiz    *controller.QuizController
	logs    *controller.LogController
	session *controller.SessionController
	upload  *controller.UploadController
	health  *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		quizQuestion: repository.NewQuizQuestionRepository(db),
		learningLog:  repository.NewLearningLogRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	return &services{
		auth:    service.NewAuthService(cfg, rdb),
		quiz:    service.NewQuizService(repos.quizQuestion),
		logs:    service.NewLearningLogService(repos.learningLog),
		storage: service.NewStorageService(cfg),
	}
}

func (a *App) initControllers(s *services, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:    controller.NewAuthController(s.auth),
		quiz:    controller.NewQuizController(s.quiz, s.storage),
		logs:    controller.NewLogController(s.logs),
		session: controller.NewSessionController(a.Sessions, s.quiz, s.logs, cfg.Quiz.DefaultCount),
		upload:  controller.NewUploadController(s.storage),
		health:  controller.NewHealthController(db, rdb, a.Sessions),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks() {
	go func() {
		ticker := time.NewTicker(time.Minute)
		for range ticker.C {
			if n := a.Sessions.Sweep(); n > 0 {
				logger.Log.Info("swept idle quiz sessions", zap.Int("count", n))
			}
			monitoring.ActiveSessions.Set(float64(a.Sessions.Count()))
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
		Sessions: game.NewManager(game.Config{
			FeedbackCorrect:   time.Duration(cfg.Quiz.FeedbackCorrectMs) * time.Millisecond,
			FeedbackIncorrect: time.Duration(cfg.Quiz.FeedbackIncorrectMs) * time.Millisecond,
		}, time.Duration(cfg.Quiz.SessionIdleMinutes)*time.Minute),
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, cfg, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("kanji-quiz", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/images", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks()

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
