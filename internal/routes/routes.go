package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/repositories"
	"inventory-system/internal/services"
	"inventory-system/pkg/config"
	"inventory-system/pkg/middleware"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, logger *zap.Logger, cfg *config.Config) {
	logger.Info("InitRouter: registrando rutas")

	// --- 1. REPOSITORIOS ---
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	stationRepo := repositories.NewStationRepository(dbConn)
	locationRepo := repositories.NewLocationRepository(dbConn)
	responsibleRepo := repositories.NewResponsibleRepository(dbConn)
	userRepo := repositories.NewUserRepository(dbConn)
	activityRepo := repositories.NewActivityRepository(dbConn)
	dashboardRepo := repositories.NewDashboardRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- 2. SERVICIOS ---
	authorizer := services.NewAuthorizer(userRepo, cacheRepo, logger, cfg.Cache.PermisosTTL)
	equipmentService := services.NewEquipmentService(equipmentRepo, activityRepo, logger)
	stationService := services.NewStationService(stationRepo, logger)
	resguardoService := services.NewResguardoService(stationRepo, logger)
	locationService := services.NewLocationService(locationRepo, activityRepo, logger)
	responsibleService := services.NewResponsibleService(responsibleRepo, activityRepo, logger)
	userService := services.NewUserService(userRepo, activityRepo, authorizer, logger)
	activityService := services.NewActivityService(activityRepo, logger)
	dashboardService := services.NewDashboardService(dashboardRepo, activityRepo, logger)

	// --- 3. CONTROLADORES ---
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	stationCtrl := controllers.NewStationController(stationService, resguardoService, logger)
	locationCtrl := controllers.NewLocationController(locationService, logger)
	responsibleCtrl := controllers.NewResponsibleController(responsibleService, logger)
	userCtrl := controllers.NewUserController(userService, logger)
	activityCtrl := controllers.NewActivityController(activityService, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)
	reportCtrl := controllers.NewReportController(equipmentService, logger)

	// --- 4. RUTAS ---
	// Todo cuelga de /api; el actor se resuelve una vez y cada módulo mutador
	// pasa por su permiso.
	api := e.Group("/api", middleware.ResolveActor(userRepo, logger))
	perm := func(module string) echo.MiddlewareFunc {
		return middleware.RequirePermission(authorizer, module, logger)
	}

	runEquipmentRouter(api, equipmentCtrl, perm("equipment"))
	runStationRouter(api, stationCtrl, perm("stations"))
	runLocationRouter(api, locationCtrl, perm("locations"))
	runResponsibleRouter(api, responsibleCtrl, perm("responsibles"))
	runUserRouter(api, userCtrl, perm("users"))
	runActivityRouter(api, activityCtrl)
	runDashboardRouter(api, dashboardCtrl)
	runReportRouter(api, reportCtrl)

	logger.Info("InitRouter: rutas registradas")
}
