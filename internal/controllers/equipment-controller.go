package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/middleware"
	"inventory-system/pkg/utils"
)

type EquipmentController struct {
	equipmentService *services.EquipmentService
	logger           *zap.Logger
}

func NewEquipmentController(equipmentService *services.EquipmentService, logger *zap.Logger) *EquipmentController {
	return &EquipmentController{equipmentService: equipmentService, logger: logger}
}

func (c *EquipmentController) GetEquipment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	items, err := c.equipmentService.GetEquipment(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "No se pudo obtener el inventario", err, nil),
			c.logger)
	}

	return utils.SuccessResponse(ctx, items, "Inventario obtenido correctamente", http.StatusOK)
}

// GetAvailableEquipment nunca responde parcial: ante un fallo devuelve 500 con
// el resultado vacío.
func (c *EquipmentController) GetAvailableEquipment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	stationType := ctx.QueryParam("stationType")

	res, err := c.equipmentService.GetAvailableEquipment(reqCtx, stationType)
	if err != nil {
		httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "No se pudo calcular la disponibilidad", err, nil)
		httpErr.Details = dto.AvailableEquipmentResponseDTO{Equipment: []dto.AvailableEquipmentDTO{}}
		return utils.ErrorResponse(ctx, httpErr, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Equipos disponibles obtenidos", http.StatusOK)
}

func (c *EquipmentController) FindEquipment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	eq, err := c.equipmentService.FindEquipment(reqCtx, id)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusNotFound, "Equipo no encontrado", err, nil), c.logger)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, eq, "Equipo encontrado", http.StatusOK)
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var in dto.CreateEquipmentDTO
	if err := ctx.Bind(&in); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la solicitud inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&in); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.equipmentService.CreateEquipment(reqCtx, middleware.ActorID(ctx), in)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, created, "Equipo creado correctamente", http.StatusCreated)
}

func (c *EquipmentController) UpdateEquipment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var in dto.UpdateEquipmentDTO
	if err := ctx.Bind(&in); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la solicitud inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&in); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.equipmentService.UpdateEquipment(reqCtx, middleware.ActorID(ctx), id, in)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusNotFound, "Equipo no encontrado", err, nil), c.logger)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, updated, "Equipo actualizado correctamente", http.StatusOK)
}

func (c *EquipmentController) DeleteEquipment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.equipmentService.DeleteEquipment(reqCtx, middleware.ActorID(ctx), id); err != nil {
		if err == apperrors.ErrNotFound {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusNotFound, "Equipo no encontrado", err, nil), c.logger)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "Equipo eliminado correctamente", http.StatusOK)
}

func parseID(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewHttpError(
			http.StatusBadRequest,
			"ID inválido",
			err,
			map[string]interface{}{"param": ctx.Param("id")},
		)
	}
	return id, nil
}
