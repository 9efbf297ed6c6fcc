package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/services"
	"inventory-system/pkg/utils"
)

type DashboardController struct {
	dashboardService *services.DashboardService
	logger           *zap.Logger
}

func NewDashboardController(dashboardService *services.DashboardService, logger *zap.Logger) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, logger: logger}
}

// GetSummary siempre responde 200: ante cualquier fallo el servicio entrega el
// resumen en ceros.
func (c *DashboardController) GetSummary(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	summary := c.dashboardService.GetSummary(reqCtx)
	return utils.SuccessResponse(ctx, summary, "Resumen del tablero obtenido", http.StatusOK)
}
