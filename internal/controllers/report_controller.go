package controllers

import (
	"fmt"
	"net/http"
	"time"

	"equipment-api/internal/entities"
	"equipment-api/internal/services"
	apperrors "equipment-api/pkg/errors"
	"equipment-api/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	equipmentSheet = "Equipment"
	parameterSheet = "Parameters"
)

var (
	equipmentHeaders = []interface{}{"ID", "Name", "Description", "Code", "Parameters"}
	parameterHeaders = []interface{}{"ID", "Name", "Description", "Equipment code", "Equipment ID"}
)

type ReportController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewReportController(
	equipmentService services.EquipmentServiceInterface,
	logger *zap.Logger,
) *ReportController {
	return &ReportController{
		equipmentService: equipmentService,
		logger:           logger,
	}
}

// ExportEquipments выгружает весь каталог в xlsx. Параметры идут отдельным листом,
// включая осиротевшие после удаления оборудования.
func (c *ReportController) ExportEquipments(ctx echo.Context) error {
	logger := utils.LoggerFrom(ctx, c.logger)

	equipments, parameters, err := c.equipmentService.GetCatalog(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, logger)
	}

	f, err := buildWorkbook(equipments, parameters)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "Не удалось сформировать файл", err, nil),
			logger,
		)
	}
	defer f.Close()

	fileName := fmt.Sprintf("equipment_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

func buildWorkbook(equipments []entities.Equipment, parameters []entities.Parameter) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", equipmentSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(parameterSheet); err != nil {
		return nil, err
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(equipmentSheet, "A1", &equipmentHeaders); err != nil {
		return nil, err
	}
	for i, e := range equipments {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{e.ID, e.Name, e.Description, e.Code, len(e.Parameters)}
		if err := f.SetSheetRow(equipmentSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	if err := f.SetSheetRow(parameterSheet, "A1", &parameterHeaders); err != nil {
		return nil, err
	}
	for i, p := range parameters {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{p.ID, p.Name, p.Description, p.EquipmentCode, p.EquipmentID}
		if err := f.SetSheetRow(parameterSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	for _, sheet := range []string{equipmentSheet, parameterSheet} {
		_ = f.SetCellStyle(sheet, "A1", "E1", style)
		_ = f.SetColWidth(sheet, "B", "C", 30)
		_ = f.SetColWidth(sheet, "D", "E", 18)
	}
	return f, nil
}
