package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"crypto_compass_backend/internal/config"
	"crypto_compass_backend/internal/controller"
	"crypto_compass_backend/internal/repository"
	"crypto_compass_backend/internal/service"
	"crypto_compass_backend/internal/util"
	"crypto_compass_backend/pkg/configwatcher"
	"crypto_compass_backend/pkg/database"
	"crypto_compass_backend/pkg/logger"
	"crypto_compass_backend/pkg/monitoring"
	"crypto_compass_backend/pkg/security"
	"crypto_compass_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	ConfigFile      string
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	rateLimiter     *security.RateLimiter
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	store    repository.KVStore
	progress *repository.ProgressRepository
	result   *repository.ResultRepository
	mint     *repository.MintRepository
}

type services struct {
	session *service.SessionService
	storage *service.StorageService
	quiz    *service.QuizService
	result  *service.ResultService
	mint    *service.MintService
}

type controllers struct {
	session *controller.SessionController
	quiz    *controller.QuizController
	result  *controller.ResultController
	catalog *controller.CatalogController
	nft     *controller.NFTController
	health  *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	var store repository.KVStore
	if rdb != nil {
		store = repository.NewRedisKVStore(rdb)
	} else {
		// 未启用 Redis 时进度只保存在本进程内
		store = repository.NewMemoryKVStore()
	}
	return &repositories{
		store:    store,
		progress: repository.NewProgressRepository(store, cfg.Quiz.ProgressTTL()),
		result:   repository.NewResultRepository(db),
		mint:     repository.NewMintRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.session = service.NewSessionService(&cfg.Session)
	s.storage = service.NewStorageService(cfg)
	s.quiz = service.NewQuizService(repos.progress, repos.result, cfg.Quiz)
	s.result = service.NewResultService(s.quiz, repos.result, cfg.Quiz)
	s.mint = service.NewMintService(s.quiz, repos.mint, s.storage, service.NewRelayMinter(cfg.NFT), cfg.NFT)

	a.RegisterConfigCallback(func(newCfg *config.Config) {
		s.mint.UpdateConfig(newCfg.NFT)
		logger.Log.Info("NFT config updated", zap.Bool("enabled", newCfg.NFT.Enabled))
	})

	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB) *controllers {
	return &controllers{
		session: controller.NewSessionController(s.session),
		quiz:    controller.NewQuizController(s.quiz),
		result:  controller.NewResultController(s.result),
		catalog: controller.NewCatalogController(),
		nft:     controller.NewNFTController(s.mint),
		health:  controller.NewHealthController(db, repos.store),
	}
}

func rateWindow(cfg config.RateLimitConfig) time.Duration {
	return time.Duration(cfg.WindowMinutes) * time.Minute
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	a.rateLimiter = security.NewRateLimiter(cfg.RateLimit.MaxRequests, rateWindow(cfg.RateLimit))
	router.Use(a.rateLimiter.Middleware())
	a.RegisterConfigCallback(func(newCfg *config.Config) {
		a.rateLimiter.Update(newCfg.RateLimit.MaxRequests, rateWindow(newCfg.RateLimit))
	})

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config, configFile string) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	app := &App{
		Config:     cfg,
		ConfigFile: configFile,
		DB:         db,
	}
	if cfg.MigrateOnly {
		return app
	}

	if cfg.Redis.Enabled {
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Warn("Redis unavailable, keeping test progress in memory", zap.Error(err))
		} else {
			app.Redis = rdb
		}
	}

	repos := app.initRepositories(db, app.Redis, cfg)
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, repos, db)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Server.Mode == "debug" {
		router.Use(gin.Logger())
	}
	app.Router = router

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(logger.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	if a.ConfigFile != "" {
		go func() {
			if err := configwatcher.WatchConfig(watchCtx, a.ConfigFile, a.applyConfig); err != nil {
				logger.Log.Warn("Config watcher stopped", zap.String("file", a.ConfigFile), zap.Error(err))
			}
		}()
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close(ctx)
	logger.Log.Info("Server exiting")
}

// Close releases background workers and connections.
func (a *App) Close(ctx context.Context) {
	if a.services != nil {
		a.services.quiz.Close()
	}
	if a.rateLimiter != nil {
		a.rateLimiter.Stop()
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// ConfigFilePath returns the config file LoadConfig reads from dir.
func ConfigFilePath(dir string) string {
	return filepath.Join(dir, "config.yaml")
}
