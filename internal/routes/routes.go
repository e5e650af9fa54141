package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"rental-system/internal/controllers"
	"rental-system/internal/repositories"
	"rental-system/internal/services"
	"rental-system/pkg/config"
)

// InitRouter wires repositories, services and controllers together and
// registers every route under /api.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")

	txManager := repositories.NewTxManager(dbConn)

	var cacheRepo repositories.CacheRepositoryInterface
	if redisClient != nil {
		cacheRepo = repositories.NewRedisCacheRepository(redisClient)
	}

	// --- repositories ---
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	unitRepo := repositories.NewEquipmentUnitRepository(dbConn)
	employeeRepo := repositories.NewEmployeeRepository(dbConn)
	dailyRepo := repositories.NewEmployeeDailyRepository(dbConn)
	paymentRepo := repositories.NewEmployeePaymentRepository(dbConn)
	eventRepo := repositories.NewEventRepository(dbConn)
	settingsRepo := repositories.NewCompanySettingsRepository(dbConn)
	dashboardRepo := repositories.NewDashboardRepository(dbConn)

	// --- services ---
	equipmentService := services.NewEquipmentService(equipmentRepo, unitRepo, txManager, cacheRepo, logger)
	employeeService := services.NewEmployeeService(employeeRepo, dailyRepo, paymentRepo, txManager, logger)
	eventService := services.NewEventService(eventRepo, unitRepo, equipmentRepo, txManager, cacheRepo, logger)
	financeService := services.NewFinanceService(eventRepo, employeeRepo, dailyRepo, paymentRepo, logger)
	dashboardService := services.NewDashboardService(dashboardRepo, cacheRepo, cfg.Cache.DashboardTTL, logger)
	settingsService := services.NewCompanySettingsService(settingsRepo, logger)

	// --- controllers ---
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	employeeCtrl := controllers.NewEmployeeController(employeeService, logger)
	eventCtrl := controllers.NewEventController(eventService, logger)
	financeCtrl := controllers.NewFinanceController(financeService, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)
	settingsCtrl := controllers.NewCompanySettingsController(settingsService, logger)

	// --- equipment ---
	api.GET("/equipment", equipmentCtrl.GetEquipments)
	api.GET("/equipment/:id", equipmentCtrl.FindEquipment)
	api.POST("/equipment", equipmentCtrl.CreateEquipment)
	api.PUT("/equipment/:id", equipmentCtrl.UpdateEquipment)
	api.DELETE("/equipment/:id", equipmentCtrl.DeleteEquipment)
	api.POST("/equipment/recount", equipmentCtrl.RecountAllEquipment)
	api.POST("/equipment/:id/units", equipmentCtrl.AddUnit)
	api.POST("/equipment/:id/recount", equipmentCtrl.RecountEquipment)
	api.PATCH("/equipment-units/:unitId/status", equipmentCtrl.UpdateUnitStatus)
	api.PATCH("/equipment-units/:unitId/identifier", equipmentCtrl.UpdateUnitIdentifier)
	api.DELETE("/equipment-units/:unitId", equipmentCtrl.DeleteUnit)

	// --- employees ---
	api.GET("/employees", employeeCtrl.GetEmployees)
	api.GET("/employees/:id", employeeCtrl.FindEmployee)
	api.POST("/employees", employeeCtrl.CreateEmployee)
	api.PUT("/employees/:id", employeeCtrl.UpdateEmployee)
	api.DELETE("/employees/:id", employeeCtrl.DeleteEmployee)
	api.GET("/employees/:id/balance", employeeCtrl.GetEmployeeBalance)

	api.GET("/employee-dailies", employeeCtrl.GetDailies)
	api.POST("/employee-dailies", employeeCtrl.CreateDaily)
	api.PUT("/employee-dailies/:id", employeeCtrl.UpdateDaily)
	api.DELETE("/employee-dailies/:id", employeeCtrl.DeleteDaily)

	api.GET("/employee-payments", employeeCtrl.GetPayments)
	api.POST("/employee-payments", employeeCtrl.CreatePayment)
	api.DELETE("/employee-payments/:id", employeeCtrl.DeletePayment)

	// --- events ---
	api.GET("/events", eventCtrl.GetEvents)
	api.GET("/events/calendar", eventCtrl.GetCalendar)
	api.GET("/events/:id", eventCtrl.FindEvent)
	api.POST("/events", eventCtrl.CreateEvent)
	api.PUT("/events/:id", eventCtrl.UpdateEvent)
	api.PUT("/events/:id/equipment", eventCtrl.ReplaceEquipmentItems)
	api.DELETE("/events/:id", eventCtrl.DeleteEvent)

	// --- finance ---
	api.GET("/finance/summary", financeCtrl.GetSummary)
	api.GET("/finance/events", financeCtrl.GetEventFinancials)
	api.GET("/finance/events/:id", financeCtrl.GetEventFinancialsByID)
	api.GET("/finance/employees", financeCtrl.GetFixedEmployees)
	api.GET("/finance/freelancers", financeCtrl.GetFreelancerDailies)
	api.GET("/finance/overview", financeCtrl.GetOverview)
	api.GET("/finance/report", financeCtrl.GetReport)

	// --- dashboard & settings ---
	api.GET("/dashboard", dashboardCtrl.GetStats)
	api.GET("/settings", settingsCtrl.GetSettings)
	api.PUT("/settings", settingsCtrl.UpdateSettings)

	logger.Info("router initialized")
}
