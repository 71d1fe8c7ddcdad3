package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"efiling-system/internal/controllers"
	"efiling-system/internal/repositories"
	"efiling-system/internal/services"
	"efiling-system/pkg/config"
	"efiling-system/pkg/middleware"
	"efiling-system/pkg/service"
)

// InitRouter wires repositories, services and controllers and mounts every
// route group. Everything except auth sits behind the JWT middleware.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	// repositories
	userRepo := repositories.NewUserRepository(dbConn, logger)
	fileRepo := repositories.NewFileRepository(dbConn, logger)
	dashboardRepo := repositories.NewDashboardRepository(dbConn, logger)
	departmentRepo := repositories.NewDepartmentRepository(dbConn, logger)
	roleRepo := repositories.NewRoleRepository(dbConn, logger)
	daakRepo := repositories.NewDaakRepository(dbConn, logger)
	templateRepo := repositories.NewWorkflowTemplateRepository(dbConn, logger)
	slaRepo := repositories.NewSLAMatrixRepository(dbConn, logger)
	geoRepo := repositories.NewGeographyRepository(dbConn, logger)
	reportRepo := repositories.NewReportRepository(dbConn, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient, logger)

	// services
	authService := services.NewAuthService(userRepo, jwtSvc, logger)
	fileService := services.NewFileService(fileRepo, userRepo, slaRepo, logger)
	dashboardService := services.NewDashboardService(dashboardRepo, userRepo, logger)
	departmentService := services.NewDepartmentService(departmentRepo, logger)
	roleService := services.NewRoleService(roleRepo, cacheRepo, cfg.Cache.ReferenceTTL, logger)
	daakService := services.NewDaakService(daakRepo, logger)
	templateService := services.NewWorkflowTemplateService(templateRepo, logger)
	slaService := services.NewSLAMatrixService(slaRepo, logger)
	geoService := services.NewGeographyService(geoRepo, cacheRepo, cfg.Cache.ReferenceTTL, logger)
	teamService := services.NewTeamService(userRepo, logger)
	reportService := services.NewReportService(reportRepo, userRepo, logger)

	// controllers
	authController := controllers.NewAuthController(authService, logger)
	fileController := controllers.NewFileController(fileService, logger)
	dashboardController := controllers.NewDashboardController(dashboardService, logger)
	departmentController := controllers.NewDepartmentController(departmentService, logger)
	roleController := controllers.NewRoleController(roleService, logger)
	daakController := controllers.NewDaakController(daakService, logger)
	templateController := controllers.NewWorkflowTemplateController(templateService, logger)
	slaController := controllers.NewSLAMatrixController(slaService, logger)
	geoController := controllers.NewGeographyController(geoService, logger)
	teamController := controllers.NewTeamController(teamService, logger)
	reportController := controllers.NewReportController(reportService, logger)

	runAuthRouter(api, authController)

	secureGroup := api.Group("", authMW.Auth)
	runDashboardRouter(secureGroup, dashboardController)
	runFileRouter(secureGroup, fileController)
	runDepartmentRouter(secureGroup, departmentController)
	runRoleRouter(secureGroup, roleController)
	runDaakRouter(secureGroup, daakController)
	runWorkflowTemplateRouter(secureGroup, templateController)
	runSLAMatrixRouter(secureGroup, slaController)
	runGeographyRouter(secureGroup, geoController)
	runTeamRouter(secureGroup, teamController)
	runReportRouter(secureGroup, reportController)
}
