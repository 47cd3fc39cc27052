package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rope_coach_backend/internal/config"
	"rope_coach_backend/internal/controller"
	"rope_coach_backend/internal/repository"
	"rope_coach_backend/internal/service"
	"rope_coach_backend/pkg/database"
	"rope_coach_backend/pkg/logger"
	"rope_coach_backend/pkg/monitoring"
	"rope_coach_backend/pkg/security"
	"rope_coach_backend/pkg/tracing"

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
}

type repositories struct {
	user    *repository.UserRepository
	library *repository.LibraryRepository
	puzzle  *repository.PuzzleRepository
	class   *repository.ClassRepository
	student *repository.StudentRepository
	fitness *repository.FitnessTestRepository
	plan    *repository.CyclePlanRepository
	report  *repository.CycleReportRepository
}

type services struct {
	auth      *service.AuthService
	storage   *service.StorageService
	puzzles   *service.PuzzleService
	library   *service.LibraryService
	classes   *service.ClassService
	reports   *service.ReportService
	cycles    *service.CycleService
	dashboard *service.DashboardService
}

type controllers struct {
	auth      *controller.AuthController
	catalog   *controller.CatalogController
	exercise  *controller.ExerciseController
	mission   *controller.MissionController
	puzzle    *controller.PuzzleController
	cycle     *controller.CycleController
	library   *controller.LibraryController
	class     *controller.ClassController
	dashboard *controller.DashboardController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:    repository.NewUserRepository(db),
		library: repository.NewLibraryRepository(db),
		puzzle:  repository.NewPuzzleRepository(db),
		class:   repository.NewClassRepository(db),
		student: repository.NewStudentRepository(db),
		fitness: repository.NewFitnessTestRepository(db),
		plan:    repository.NewCyclePlanRepository(db),
		report:  repository.NewCycleReportRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.user, cfg)
	s.storage = service.NewStorageService(cfg)
	s.puzzles = service.NewPuzzleService(repos.puzzle, db)
	s.library = service.NewLibraryService(repos.library, s.puzzles, db, rdb)
	s.classes = service.NewClassService(repos.class, repos.student, repos.fitness)
	s.reports = service.NewReportService(repos.class, repos.student, repos.fitness, repos.report)
	s.cycles = service.NewCycleService(repos.library, repos.plan, s.reports)
	s.dashboard = service.NewDashboardService(repos.library, repos.plan, repos.report)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		catalog:   controller.NewCatalogController(s.library),
		exercise:  controller.NewExerciseController(s.library, s.storage),
		mission:   controller.NewMissionController(s.library),
		puzzle:    controller.NewPuzzleController(s.puzzles),
		cycle:     controller.NewCycleController(s.library, s.cycles, s.reports),
		library:   controller.NewLibraryController(s.library),
		class:     controller.NewClassController(s.classes),
		dashboard: controller.NewDashboardController(s.dashboard),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 10000
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("rope-coach", cfg.Tracing.CollectorEndpoint); err != nil {
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

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
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
