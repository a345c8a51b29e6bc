package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"pathwise_backend/internal/config"
	"pathwise_backend/internal/controller"
	"pathwise_backend/internal/llm"
	"pathwise_backend/internal/repository"
	"pathwise_backend/internal/service"
	"pathwise_backend/pkg/database"
	"pathwise_backend/pkg/logger"
	"pathwise_backend/pkg/monitoring"
	"pathwise_backend/pkg/security"
	"pathwise_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	liveConfig atomic.Pointer[config.Config]
}

type services struct {
	auth      *service.AuthService
	roadmap   *service.RoadmapService
	resource  *service.ResourceService
	translate *service.TranslateService
	progress  *service.ProgressService
	export    *service.ExportService
}

type controllers struct {
	auth       *controller.AuthController
	generation *controller.GenerationController
	progress   *controller.ProgressController
	health     *controller.HealthController
}

func (a *App) initServices(userRepo *repository.UserRepository, generator llm.Generator, rdb *redis.Client, cfg *config.Config) (*services, error) {
	storage, err := service.NewStorageProvider(cfg)
	if err != nil {
		return nil, err
	}

	return &services{
		auth:      service.NewAuthService(userRepo, cfg),
		roadmap:   service.NewRoadmapService(generator, rdb, cfg.Redis.RoadmapTTL),
		resource:  service.NewResourceService(generator),
		translate: service.NewTranslateService(generator),
		progress:  service.NewProgressService(userRepo),
		export:    service.NewExportService(storage),
	}, nil
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth, s.progress),
		generation: controller.NewGenerationController(s.roadmap, s.resource, s.translate, s.export),
		progress:   controller.NewProgressController(s.progress),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100
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

// OnConfigReload swaps the live config; used by the file watcher.
func (a *App) OnConfigReload(cfg *config.Config) {
	a.liveConfig.Store(cfg)
	logger.Log.Info("configuration reloaded")
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	generator, err := llm.NewGeminiGenerator(context.Background(), cfg.AI)
	if err != nil {
		logger.Log.Fatal("Failed to initialize generator", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}
	app.liveConfig.Store(cfg)

	userRepo := repository.NewUserRepository(db)
	services, err := app.initServices(userRepo, generator, rdb, cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("pathwise-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

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
