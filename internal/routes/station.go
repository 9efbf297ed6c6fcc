package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runStationRouter(g *echo.Group, ctrl *controllers.StationController, perm echo.MiddlewareFunc) {
	g.GET("/stations", ctrl.GetStations)
	g.GET("/stations/:id", ctrl.FindStation)
	g.GET("/stations/:id/resguardo", ctrl.GetResguardo)
	g.POST("/stations", ctrl.CreateStation, perm)
	g.PUT("/stations/:id", ctrl.UpdateStation, perm)
	g.DELETE("/stations/:id", ctrl.DeleteStation, perm)
}
