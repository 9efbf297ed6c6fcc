package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runEquipmentRouter(g *echo.Group, ctrl *controllers.EquipmentController, perm echo.MiddlewareFunc) {
	g.GET("/equipment", ctrl.GetEquipment)
	g.GET("/equipment/available", ctrl.GetAvailableEquipment)
	g.GET("/equipment/:id", ctrl.FindEquipment)
	g.POST("/equipment", ctrl.CreateEquipment, perm)
	g.PUT("/equipment/:id", ctrl.UpdateEquipment, perm)
	g.DELETE("/equipment/:id", ctrl.DeleteEquipment, perm)
}
