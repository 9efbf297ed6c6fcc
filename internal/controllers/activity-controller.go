package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	"inventory-system/pkg/utils"
)

type ActivityController struct {
	activityService *services.ActivityService
	logger          *zap.Logger
}

func NewActivityController(activityService *services.ActivityService, logger *zap.Logger) *ActivityController {
	return &ActivityController{activityService: activityService, logger: logger}
}

// GetActivity siempre responde 200; un fallo de BD produce la lista vacía.
func (c *ActivityController) GetActivity(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	query := dto.ActivityQuery{
		Search: ctx.QueryParam("search"),
		Type:   ctx.QueryParam("type"),
		UserID: ctx.QueryParam("user"),
		Date:   ctx.QueryParam("date"),
	}

	res := c.activityService.GetActivity(reqCtx, query)
	return utils.SuccessResponse(ctx, res, "Bitácora obtenida correctamente", http.StatusOK)
}
