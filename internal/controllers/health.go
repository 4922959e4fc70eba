package controllers

import (
	"net/http"

	"equipment-api/internal/dto"
	"equipment-api/internal/infrastructure/memdb"
	"equipment-api/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HealthController struct {
	db     *memdb.DB
	logger *zap.Logger
}

func NewHealthController(db *memdb.DB, logger *zap.Logger) *HealthController {
	return &HealthController{db: db, logger: logger}
}

func (c *HealthController) Health(ctx echo.Context) error {
	logger := utils.LoggerFrom(ctx, c.logger)

	stats, err := c.db.Stats(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, logger)
	}

	return ctx.JSON(http.StatusOK, dto.HealthDTO{
		Status:     "ok",
		Equipments: stats.Equipments,
		Parameters: stats.Parameters,
	})
}
