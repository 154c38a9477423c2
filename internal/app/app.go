package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quintet_backend/internal/config"
	"quintet_backend/internal/controller"
	"quintet_backend/internal/repository"
	"quintet_backend/internal/service"
	"quintet_backend/internal/util"
	"quintet_backend/pkg/database"
	"quintet_backend/pkg/logger"
	"quintet_backend/pkg/monitoring"
	"quintet_backend/pkg/security"
	"quintet_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	student    *repository.StudentRepository
	instructor *repository.InstructorRepository
	course     *repository.CourseRepository
	enrollment *repository.EnrollmentRepository
	content    *repository.ContentRepository
	catalog    *repository.CatalogRepository
	cascade    *repository.CascadeRepository
	analytics  *repository.AnalyticsRepository
}

type services struct {
	auth       *service.AuthService
	user       *service.UserService
	course     *service.CourseService
	catalog    *service.CatalogService
	enrollment *service.EnrollmentService
	grading    *service.GradingService
	analytics  *service.AnalyticsService
	storage    *service.StorageService
	content    *service.ContentService
	blacklist  service.TokenBlacklist
}

type controllers struct {
	auth       *controller.AuthController
	student    *controller.StudentController
	instructor *controller.InstructorController
	admin      *controller.AdminController
	analytics  *controller.AnalyticsController
	course     *controller.CourseController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置文件变更后调用；日志级别立即生效，其余配置需要重启
func (a *App) ApplyConfig(cfg *config.Config) {
	logger.SetLevel(logger.LevelFor(cfg))
	logger.Log.Info("Config reloaded", zap.String("logLevel", logger.Level().String()))
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		student:    repository.NewStudentRepository(db),
		instructor: repository.NewInstructorRepository(db),
		course:     repository.NewCourseRepository(db),
		enrollment: repository.NewEnrollmentRepository(db),
		content:    repository.NewContentRepository(db),
		catalog:    repository.NewCatalogRepository(db),
		cascade:    repository.NewCascadeRepository(db),
		analytics:  repository.NewAnalyticsRepository(db),
	}
}

func initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	if rdb != nil {
		s.blacklist = service.NewRedisTokenBlacklist(rdb)
	} else {
		s.blacklist = service.NewMemoryTokenBlacklist()
	}

	s.auth = service.NewAuthService(repos.user, s.blacklist, cfg)
	s.user = service.NewUserService(repos.user, repos.student, repos.instructor)
	s.course = service.NewCourseService(repos.course, repos.catalog, repos.instructor)
	s.catalog = service.NewCatalogService(repos.catalog)
	s.grading = service.NewGradingService(db, repos.enrollment, repos.course, cfg.Grading)
	s.analytics = service.NewAnalyticsService(repos.analytics, repos.course, repos.student, repos.enrollment, repos.content)
	s.storage = service.NewStorageService(&cfg.Storage)
	s.enrollment = service.NewEnrollmentService(db, repos.student, repos.instructor, repos.course, repos.enrollment, repos.content, repos.cascade, s.storage)
	s.content = service.NewContentService(repos.content, repos.course, s.storage, os.TempDir())

	return s
}

func initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		student:    controller.NewStudentController(s.user, s.enrollment, s.analytics),
		instructor: controller.NewInstructorController(s.user, s.course, s.enrollment, s.grading, s.content),
		admin:      controller.NewAdminController(s.auth, s.user, s.course, s.catalog, s.enrollment, s.grading),
		analytics:  controller.NewAnalyticsController(s.analytics),
		course:     controller.NewCourseController(s.course, s.catalog),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if cfg.RateLimit.MaxRequests > 0 && window > 0 {
		router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, window))
	}

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// Assemble 在已打开的数据库（以及可选的 Redis）之上组装服务与路由
func Assemble(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*App, error) {
	if err := util.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}
	monitoring.Init()

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := initRepositories(db)
	app.services = initServices(repos, cfg, db, rdb)
	controllers := initControllers(app.services, db, rdb)

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.Router = router
	return app, nil
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	// release 模式下只有显式指定 -migrate 才会建表
	if cfg.Server.Mode != gin.ReleaseMode || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
	}
	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}, nil
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
			rdb = nil
		}
	}

	app, err := Assemble(cfg, db, rdb)
	if err != nil {
		return nil, err
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("quintet-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		} else {
			app.tracer = tp
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.services.auth.EnsureAdmin(ctx); err != nil {
		return nil, fmt.Errorf("bootstrap admin: %w", err)
	}

	return app, nil
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

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

	logger.Log.Info("Server exiting")
}
