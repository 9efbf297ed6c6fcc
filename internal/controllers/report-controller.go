package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"
)

type ReportController struct {
	equipmentService *services.EquipmentService
	logger           *zap.Logger
}

func NewReportController(equipmentService *services.EquipmentService, logger *zap.Logger) *ReportController {
	return &ReportController{equipmentService: equipmentService, logger: logger}
}

var inventoryHeaders = []string{
	"ID", "Nombre", "Tipo", "Marca", "Modelo", "Número de serie", "Estado",
	"Perfil", "Tipo de impresora", "Asignación", "Fecha de alta",
}

// GetInventoryReport exporta el inventario completo como libro de Excel.
func (c *ReportController) GetInventoryReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	items, err := c.equipmentService.GetEquipment(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "No se pudo generar el reporte de inventario", err, nil),
			c.logger)
	}

	f := excelize.NewFile()
	sheet := "Inventario"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &inventoryHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "K1", style)

	for i, item := range items {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := inventoryRow(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "F", 22)
	f.SetColWidth(sheet, "J", "J", 28)
	f.SetColWidth(sheet, "K", "K", 16)

	fileName := fmt.Sprintf("inventario_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

func inventoryRow(item dto.EquipmentListItemDTO) []interface{} {
	strOrEmpty := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}

	var fechaAlta string
	if item.CreatedAt != nil {
		fechaAlta = item.CreatedAt.Format("02/01/2006")
	}

	return []interface{}{
		item.ID,
		strOrEmpty(item.Nombre),
		item.Tipo,
		item.Marca,
		item.Modelo,
		item.NumeroSerie,
		item.Estado,
		strOrEmpty(item.Perfil),
		strOrEmpty(item.TipoImpresora),
		item.Estacion,
		fechaAlta,
	}
}
