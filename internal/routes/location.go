package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runLocationRouter(g *echo.Group, ctrl *controllers.LocationController, perm echo.MiddlewareFunc) {
	g.GET("/locations", ctrl.GetLocations)
	g.GET("/locations/:id", ctrl.FindLocation)
	g.POST("/locations", ctrl.CreateLocation, perm)
	g.PUT("/locations/:id", ctrl.UpdateLocation, perm)
	g.DELETE("/locations/:id", ctrl.DeleteLocation, perm)
}
