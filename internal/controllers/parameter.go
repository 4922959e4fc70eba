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

type ParameterController struct {
	parameterService services.ParameterServiceInterface
	logger           *zap.Logger
}

func NewParameterController(
	service services.ParameterServiceInterface,
	logger *zap.Logger,
) *ParameterController {
	return &ParameterController{
		parameterService: service,
		logger:           logger,
	}
}

func (c *ParameterController) GetParameters(ctx echo.Context) error {
	logger := utils.LoggerFrom(ctx, c.logger)

	res, err := c.parameterService.GetParameters(ctx.Request().Context())
	if err != nil {
		logger.Error("GetParameters: failed to list parameters", zap.Error(err))
		return utils.ErrorResponse(ctx, err, logger)
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *ParameterController) FindParameter(ctx echo.Context) error {
	logger := utils.LoggerFrom(ctx, c.logger)

	id, err := utils.ParseID(ctx, "parameter")
	if err != nil {
		return utils.ErrorResponse(ctx, err, logger)
	}

	res, err := c.parameterService.FindParameter(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, logger)
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *ParameterController) CreateParameter(ctx echo.Context) error {
	logger := utils.LoggerFrom(ctx, c.logger)

	var dto dto.CreateParameterDTO
	if err := ctx.Bind(&dto); err != nil {
		return utils.ErrorResponse(ctx, utils.InvalidBody(err), logger)
	}

	if err := ctx.Validate(&dto); err != nil {
		logger.Debug("CreateParameter: validation failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, logger)
	}

	res, err := c.parameterService.CreateParameter(ctx.Request().Context(), dto)
	if err != nil {
		return utils.ErrorResponse(ctx, err, logger)
	}

	return utils.CreatedResponse(ctx, fmt.Sprintf("/parameter/%d", res.ID), res)
}

func (c *ParameterController) UpdateParameter(ctx echo.Context) error {
	logger := utils.LoggerFrom(ctx, c.logger)

	id, err := utils.ParseID(ctx, "parameter")
	if err != nil {
		return utils.ErrorResponse(ctx, err, logger)
	}

	var dto dto.UpdateParameterDTO
	if err := ctx.Bind(&dto); err != nil {
		return utils.ErrorResponse(ctx, utils.InvalidBody(err), logger)
	}

	if err := ctx.Validate(&dto); err != nil {
		logger.Debug("UpdateParameter: validation failed", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, logger)
	}

	if err := c.parameterService.UpdateParameter(ctx.Request().Context(), id, dto); err != nil {
		return utils.ErrorResponse(ctx, err, logger)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *ParameterController) DeleteParameter(ctx echo.Context) error {
	logger := utils.LoggerFrom(ctx, c.logger)

	id, err := utils.ParseID(ctx, "parameter")
	if err != nil {
		return utils.ErrorResponse(ctx, err, logger)
	}

	if err := c.parameterService.DeleteParameter(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, logger)
	}

	return ctx.NoContent(http.StatusNoContent)
}
