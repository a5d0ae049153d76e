package app

import (
	"context"
	"learnlens_backend/internal/config"
	"learnlens_backend/internal/controller"
	"learnlens_backend/internal/model"
	"learnlens_backend/internal/repository"
	"learnlens_backend/internal/service"
	"learnlens_backend/pkg/database"
	"learnlens_backend/pkg/logger"
	"learnlens_backend/pkg/monitoring"
	"learnlens_backend/pkg/security"
	"learnlens_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

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
	services *services
}

type repositories struct {
	session *repository.SessionRepository
	path    *repository.LearningPathRepository
	insight *repository.InsightRepository
	device  *repository.DeviceRepository
}

type services struct {
	classifier   *service.ClassifierService
	scorer       *service.EngagementScorer
	learningPath *service.LearningPathService
	learning     *service.LearningService
	analytics    *service.AnalyticsService
	insight      *service.InsightService
	auth         *service.AuthService
}

type controllers struct {
	session   *controller.SessionController
	analytics *controller.AnalyticsController
	insight   *controller.InsightController
	auth      *controller.AuthController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		session: repository.NewSessionRepository(db),
		path:    repository.NewLearningPathRepository(db),
		insight: repository.NewInsightRepository(db),
		device:  repository.NewDeviceRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.classifier = service.NewClassifierService(model.DefaultTaxonomy())
	s.scorer = service.NewEngagementScorer(service.DefaultEngagementThresholds())
	s.learningPath = service.NewLearningPathService(repos.path, repos.session)
	s.learning = service.NewLearningService(s.classifier, s.scorer, repos.session, s.learningPath)
	s.analytics = service.NewAnalyticsService(
		repos.session,
		repos.path,
		rdb,
		time.Duration(cfg.Analytics.CacheTTLSeconds)*time.Second,
	)
	s.insight = service.NewInsightService(
		s.analytics,
		repos.session,
		repos.insight,
		s.classifier,
		service.LogNotifier{},
		cfg.Insights,
	)
	s.auth = service.NewAuthService(repos.device, cfg)

	// 记录完成后的钩子：先让汇总缓存失效，再生成洞察。
	// 异步执行，失败只记日志，不影响记录路径。
	s.learning.OnRecord(func() {
		s.analytics.InvalidateCache()
		if _, err := s.insight.GenerateInsights(); err != nil {
			logger.Log.Error("insight generation failed", zap.Error(err))
		}
	})

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		session:   controller.NewSessionController(s.learning),
		analytics: controller.NewAnalyticsController(s.analytics, s.learningPath),
		insight:   controller.NewInsightController(s.insight),
		auth:      controller.NewAuthController(s.auth),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks 周期性洞察生成，对应扩展侧的定时 alarm
func (a *App) startBackgroundTasks(s *services) {
	interval := time.Duration(a.Config.Insights.GenerateIntervalMinutes) * time.Minute
	go func() {
		ticker := time.NewTicker(interval)
		for range ticker.C {
			if _, err := s.insight.GenerateInsights(); err != nil {
				logger.Log.Error("scheduled insight generation failed", zap.Error(err))
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

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
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("learnlens", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	app.startBackgroundTasks(services)

	return app
}

func ginMode(mode string) string {
	if mode == "release" {
		return gin.ReleaseMode
	}
	return gin.DebugMode
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

	// 等待中断信号优雅地关闭服务器
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
