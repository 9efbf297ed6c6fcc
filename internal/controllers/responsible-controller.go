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

type ResponsibleController struct {
	responsibleService *services.ResponsibleService
	logger             *zap.Logger
}

func NewResponsibleController(responsibleService *services.ResponsibleService, logger *zap.Logger) *ResponsibleController {
	return &ResponsibleController{responsibleService: responsibleService, logger: logger}
}

func (c *ResponsibleController) GetResponsibles(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	list, err := c.responsibleService.GetResponsibles(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "No se pudieron obtener los responsables", err, nil),
			c.logger)
	}

	return utils.SuccessResponse(ctx, list, "Responsables obtenidos correctamente", http.StatusOK)
}

func (c *ResponsibleController) FindResponsible(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	resp, err := c.responsibleService.FindResponsible(reqCtx, id)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusNotFound, "Responsable no encontrado", err, nil), c.logger)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, resp, "Responsable encontrado", http.StatusOK)
}

func (c *ResponsibleController) CreateResponsible(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var in dto.CreateResponsibleDTO
	if err := ctx.Bind(&in); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la solicitud inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&in); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.responsibleService.CreateResponsible(reqCtx, middleware.ActorID(ctx), in)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, created, "Responsable creado correctamente", http.StatusCreated)
}

func (c *ResponsibleController) UpdateResponsible(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var in dto.UpdateResponsibleDTO
	if err := ctx.Bind(&in); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la solicitud inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&in); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.responsibleService.UpdateResponsible(reqCtx, middleware.ActorID(ctx), id, in)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusNotFound, "Responsable no encontrado", err, nil), c.logger)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, updated, "Responsable actualizado correctamente", http.StatusOK)
}

func (c *ResponsibleController) DeleteResponsible(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.responsibleService.DeleteResponsible(reqCtx, middleware.ActorID(ctx), id); err != nil {
		if err == apperrors.ErrNotFound {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusNotFound, "Responsable no encontrado", err, nil), c.logger)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "Responsable eliminado correctamente", http.StatusOK)
}
