package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/middleware"
	"inventory-system/pkg/utils"
)

type LocationController struct {
	locationService *services.LocationService
	logger          *zap.Logger
}

func NewLocationController(locationService *services.LocationService, logger *zap.Logger) *LocationController {
	return &LocationController{locationService: locationService, logger: logger}
}

func (c *LocationController) GetLocations(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	// El frontend manda la búsqueda como query=.
	if q := ctx.QueryParam("query"); q != "" {
		filter.Search = q
	}

	locations, err := c.locationService.GetLocations(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "No se pudieron obtener las ubicaciones", err, nil),
			c.logger)
	}

	return utils.SuccessResponse(ctx, locations, "Ubicaciones obtenidas correctamente", http.StatusOK)
}

func (c *LocationController) FindLocation(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	loc, err := c.locationService.FindLocation(reqCtx, id)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusNotFound, "Ubicación no encontrada", err, nil), c.logger)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, loc, "Ubicación encontrada", http.StatusOK)
}

func (c *LocationController) CreateLocation(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var in dto.CreateLocationDTO
	if err := ctx.Bind(&in); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la solicitud inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&in); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.locationService.CreateLocation(reqCtx, middleware.ActorID(ctx), in)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, created, "Ubicación creada correctamente", http.StatusCreated)
}

func (c *LocationController) UpdateLocation(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var in dto.UpdateLocationDTO
	if err := ctx.Bind(&in); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la solicitud inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&in); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.locationService.UpdateLocation(reqCtx, middleware.ActorID(ctx), id, in)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusNotFound, "Ubicación no encontrada", err, nil), c.logger)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, updated, "Ubicación actualizada correctamente", http.StatusOK)
}

func (c *LocationController) DeleteLocation(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.locationService.DeleteLocation(reqCtx, middleware.ActorID(ctx), id); err != nil {
		if err == apperrors.ErrNotFound {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusNotFound, "Ubicación no encontrada", err, nil), c.logger)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "Ubicación eliminada correctamente", http.StatusOK)
}
