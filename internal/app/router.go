package app

import (
	"rope_coach_backend/docs"
	"rope_coach_backend/internal/config"
	"rope_coach_backend/internal/middleware"
	"rope_coach_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
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
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		a.registerCatalogRoutes(authGroup, c)
		a.registerExerciseRoutes(authGroup, c)
		a.registerCycleRoutes(authGroup, c)
		a.registerLibraryRoutes(authGroup, c)
		a.registerClassRoutes(authGroup, c)

		authGroup.GET("/dashboard/overview", c.dashboard.GetOverview)
		authGroup.GET("/dashboard/plans/:id/outline", c.dashboard.GetPlanOutline)
	}
}

func (a *App) registerCatalogRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/stages", c.catalog.ListStages)
	rg.GET("/stages/:id", c.catalog.GetStage)
	rg.PUT("/stages", c.catalog.SaveStage)
	rg.DELETE("/stages/:id", c.catalog.DeleteStage)

	rg.GET("/plans", c.catalog.ListPlans)
	rg.GET("/plans/:id", c.catalog.GetPlan)
	rg.PUT("/plans", c.catalog.SavePlan)
	rg.DELETE("/plans/:id", c.catalog.DeletePlan)

	rg.GET("/units", c.catalog.ListUnits)
	rg.GET("/units/:id", c.catalog.GetUnit)
	rg.PUT("/units", c.catalog.SaveUnit)
	rg.DELETE("/units/:id", c.catalog.DeleteUnit)

	rg.GET("/qualities", c.catalog.ListQualities)
	rg.PUT("/qualities", c.catalog.SaveQuality)
	rg.DELETE("/qualities/:id", c.catalog.DeleteQuality)
}

func (a *App) registerExerciseRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/drills", c.exercise.ListDrills)
	rg.GET("/drills/:id", c.exercise.GetDrill)
	rg.PUT("/drills", c.exercise.SaveDrill)
	rg.DELETE("/drills/:id", c.exercise.DeleteDrill)

	rg.GET("/games", c.exercise.ListGames)
	rg.GET("/games/:id", c.exercise.GetGame)
	rg.PUT("/games", c.exercise.SaveGame)
	rg.DELETE("/games/:id", c.exercise.DeleteGame)

	rg.POST("/exercises/demo-video", c.exercise.UploadDemoVideo)

	rg.GET("/mission-cards", c.mission.ListMissionCards)
	rg.GET("/mission-cards/:id", c.mission.GetMissionCard)
	rg.PUT("/mission-cards", c.mission.SaveMissionCard)
	rg.DELETE("/mission-cards/:id", c.mission.DeleteMissionCard)

	rg.GET("/puzzles", c.puzzle.ListTemplates)
	rg.GET("/puzzles/:id", c.puzzle.GetTemplate)
	rg.PUT("/puzzles", c.puzzle.SaveTemplate)
	rg.DELETE("/puzzles/:id", c.puzzle.DeleteTemplate)
}

func (a *App) registerCycleRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/cycle-templates", c.cycle.ListTemplates)
	rg.GET("/cycle-templates/:id", c.cycle.GetTemplate)
	rg.PUT("/cycle-templates", c.cycle.SaveTemplate)
	rg.DELETE("/cycle-templates/:id", c.cycle.DeleteTemplate)

	rg.POST("/cycle-plans", c.cycle.AssignPlan)
	rg.GET("/cycle-plans", c.cycle.ListPlans)
	rg.GET("/cycle-plans/:id", c.cycle.GetPlan)
	rg.DELETE("/cycle-plans/:id", c.cycle.DeletePlan)
	rg.POST("/cycle-plans/:id/complete-session", c.cycle.CompleteSession)
	rg.GET("/cycle-plans/:id/reports", c.cycle.ListPlanReports)
}

func (a *App) registerLibraryRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/library/export", c.library.Export)
	rg.POST("/library/import", c.library.Import)
	rg.PUT("/library/assets/:kind", c.library.ReplaceAssets)
}

func (a *App) registerClassRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/classes", c.class.ListClasses)
	rg.GET("/classes/:id", c.class.GetClass)
	rg.PUT("/classes", c.class.SaveClass)
	rg.DELETE("/classes/:id", c.class.DeleteClass)

	rg.GET("/students", c.class.ListStudents)
	rg.GET("/students/:id", c.class.GetStudent)
	rg.PUT("/students", c.class.SaveStudent)
	rg.DELETE("/students/:id", c.class.DeleteStudent)
	rg.GET("/students/:id/reports", c.cycle.ListStudentReports)
	rg.GET("/students/:id/fitness-tests", c.class.ListFitnessTests)

	rg.PUT("/fitness-tests", c.class.SaveFitnessTest)
	rg.DELETE("/fitness-tests/:id", c.class.DeleteFitnessTest)
}
