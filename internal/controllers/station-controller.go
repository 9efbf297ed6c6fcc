package controllers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/middleware"
	"inventory-system/pkg/utils"
)

type StationController struct {
	stationService   *services.StationService
	resguardoService *services.ResguardoService
	logger           *zap.Logger
}

func NewStationController(
	stationService *services.StationService,
	resguardoService *services.ResguardoService,
	logger *zap.Logger,
) *StationController {
	return &StationController{
		stationService:   stationService,
		resguardoService: resguardoService,
		logger:           logger,
	}
}

func (c *StationController) GetStations(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	stations, err := c.stationService.GetStations(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "No se pudieron obtener las estaciones", err, nil),
			c.logger)
	}

	return utils.SuccessResponse(ctx, stations, "Estaciones obtenidas correctamente", http.StatusOK)
}

func (c *StationController) FindStation(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	station, err := c.stationService.FindStation(reqCtx, id)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusNotFound, "Estación no encontrada", err, nil), c.logger)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, station, "Estación encontrada", http.StatusOK)
}

func (c *StationController) CreateStation(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var in dto.SaveStationDTO
	if err := ctx.Bind(&in); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la solicitud inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&in); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.stationService.CreateStation(reqCtx, middleware.ActorID(ctx), in)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, created, "Estación creada correctamente", http.StatusCreated)
}

func (c *StationController) UpdateStation(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var in dto.SaveStationDTO
	if err := ctx.Bind(&in); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la solicitud inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&in); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.stationService.UpdateStation(reqCtx, middleware.ActorID(ctx), id, in)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusNotFound, "Estación no encontrada", err, nil), c.logger)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, updated, "Estación actualizada correctamente", http.StatusOK)
}

func (c *StationController) DeleteStation(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.stationService.DeleteStation(reqCtx, middleware.ActorID(ctx), id); err != nil {
		if err == apperrors.ErrNotFound {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusNotFound, "Estación no encontrada", err, nil), c.logger)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "Estación eliminada correctamente", http.StatusOK)
}

// GetResguardo descarga el documento de resguardo de la estación como texto plano.
func (c *StationController) GetResguardo(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	doc, err := c.resguardoService.GenerateResguardo(reqCtx, id)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusNotFound, "Estación no encontrada", err, nil), c.logger)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	fileName := fmt.Sprintf("resguardo_estacion_%d.txt", id)
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	return ctx.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(doc))
}
