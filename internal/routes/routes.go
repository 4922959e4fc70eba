package routes

import (
	"equipment-api/internal/controllers"
	"equipment-api/internal/infrastructure/memdb"
	"equipment-api/internal/listeners"
	"equipment-api/internal/repositories"
	"equipment-api/internal/services"
	"equipment-api/pkg/eventbus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Services - то, что собирает InitRouter. Нужен main для сидера и тестам.
type Services struct {
	Equipment services.EquipmentServiceInterface
	Parameter services.ParameterServiceInterface
}

func InitRouter(e *echo.Echo, db *memdb.DB, bus *eventbus.Bus, logger *zap.Logger) *Services {
	logger.Info("InitRouter: registering routes")

	listeners.NewAuditListener(logger).Register(bus)

	// --- 1. РЕПОЗИТОРИИ ---
	equipmentRepo := repositories.NewEquipmentRepository(db)
	parameterRepo := repositories.NewParameterRepository(db)

	// --- 2. СЕРВИСЫ ---
	equipmentService := services.NewEquipmentService(equipmentRepo, bus, logger)
	parameterService := services.NewParameterService(parameterRepo, bus, logger)

	// --- 3. РОУТЕРЫ ---
	runEquipmentRouter(e, equipmentService, logger)
	runParameterRouter(e, parameterService, logger)
	runReportRouter(e, equipmentService, logger)
	runHealthRouter(e, db, logger)

	return &Services{
		Equipment: equipmentService,
		Parameter: parameterService,
	}
}

func runHealthRouter(e *echo.Echo, db *memdb.DB, logger *zap.Logger) {
	healthCtrl := controllers.NewHealthController(db, logger)
	e.GET("/health", healthCtrl.Health)
}
