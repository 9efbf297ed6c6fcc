package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runActivityRouter(g *echo.Group, ctrl *controllers.ActivityController) {
	g.GET("/activity-log", ctrl.GetActivity)
}
