package controllers

import (
	"fmt"
	"net/http"

	"equipment-api/internal/dto"
	"equipment-api/internal/services"
	"equipment-api/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(
	service services.EquipmentServiceInterface,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService: service,
		logger:           logger,
	}
}

func (c *EquipmentController) GetEquipments(ctx echo.Context) error {
	logger := utils.LoggerFrom(ctx, c.logger)

	res, err := c.equipmentService.GetEquipments(ctx.Request().Context())
	if err != nil {
		logger.Error("GetEquipments: failed to list equipment", zap.Error(err))
		return utils.ErrorResponse(ctx, err, logger)
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *EquipmentController) FindEquipment(ctx echo.Context) error {
	logger := utils.LoggerFrom(ctx, c.logger)

	id, err := utils.ParseID(ctx, "equipment")
	if err != nil {
		return utils.ErrorResponse(ctx, err, logger)
	}

	res, err := c.equipmentService.FindEquipment(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, logger)
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	logger := utils.LoggerFrom(ctx, c.logger)

	var dto dto.CreateEquipmentDTO
	if err := ctx.Bind(&dto); err != nil {
		return utils.ErrorResponse(ctx, utils.InvalidBody(err), logger)
	}

	if err := ctx.Validate(&dto); err != nil {
		logger.Debug("CreateEquipment: validation failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, logger)
	}

	res, err := c.equipmentService.CreateEquipment(ctx.Request().Context(), dto)
	if err != nil {
		return utils.ErrorResponse(ctx, err, logger)
	}

	return utils.CreatedResponse(ctx, fmt.Sprintf("/equipment/%d", res.ID), res)
}

func (c *EquipmentController) UpdateEquipment(ctx echo.Context) error {
	logger := utils.LoggerFrom(ctx, c.logger)

	id, err := utils.ParseID(ctx, "equipment")
	if err != nil {
		return utils.ErrorResponse(ctx, err, logger)
	}

	var dto dto.UpdateEquipmentDTO
	if err := ctx.Bind(&dto); err != nil {
		return utils.ErrorResponse(ctx, utils.InvalidBody(err), logger)
	}

	if err := ctx.Validate(&dto); err != nil {
		logger.Debug("UpdateEquipment: validation failed", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, logger)
	}

	if err := c.equipmentService.UpdateEquipment(ctx.Request().Context(), id, dto); err != nil {
		return utils.ErrorResponse(ctx, err, logger)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *EquipmentController) DeleteEquipment(ctx echo.Context) error {
	logger := utils.LoggerFrom(ctx, c.logger)

	id, err := utils.ParseID(ctx, "equipment")
	if err != nil {
		return utils.ErrorResponse(ctx, err, logger)
	}

	if err := c.equipmentService.DeleteEquipment(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, logger)
	}

	return ctx.NoContent(http.StatusNoContent)
}
