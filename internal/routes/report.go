package routes

import (
	"equipment-api/internal/controllers"
	"equipment-api/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Статический путь /equipment/export у echo приоритетнее /equipment/:id.
func runReportRouter(
	e *echo.Echo,
	equipmentService services.EquipmentServiceInterface,
	logger *zap.Logger,
) {
	reportCtrl := controllers.NewReportController(equipmentService, logger)

	e.GET("/equipment/export", reportCtrl.ExportEquipments)
}
