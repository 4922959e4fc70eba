package routes

import (
	"equipment-api/internal/controllers"
	"equipment-api/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runParameterRouter(e *echo.Echo, parameterService services.ParameterServiceInterface, logger *zap.Logger) {
	parameterCtrl := controllers.NewParameterController(parameterService, logger)

	e.GET("/parameter", parameterCtrl.GetParameters)
	e.GET("/parameter/:id", parameterCtrl.FindParameter)
	e.POST("/parameter", parameterCtrl.CreateParameter)
	e.PUT("/parameter/:id", parameterCtrl.UpdateParameter)
	e.DELETE("/parameter/:id", parameterCtrl.DeleteParameter)
}
