package routes

import (
	"equipment-api/internal/controllers"
	"equipment-api/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runEquipmentRouter(e *echo.Echo, equipmentService services.EquipmentServiceInterface, logger *zap.Logger) {
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)

	e.GET("/equipment", equipmentCtrl.GetEquipments)
	e.GET("/equipment/:id", equipmentCtrl.FindEquipment)
	e.POST("/equipment", equipmentCtrl.CreateEquipment)
	e.PUT("/equipment/:id", equipmentCtrl.UpdateEquipment)
	e.DELETE("/equipment/:id", equipmentCtrl.DeleteEquipment)
}
