package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runResponsibleRouter(g *echo.Group, ctrl *controllers.ResponsibleController, perm echo.MiddlewareFunc) {
	g.GET("/responsibles", ctrl.GetResponsibles)
	g.GET("/responsibles/:id", ctrl.FindResponsible)
	g.POST("/responsibles", ctrl.CreateResponsible, perm)
	g.PUT("/responsibles/:id", ctrl.UpdateResponsible, perm)
	g.DELETE("/responsibles/:id", ctrl.DeleteResponsible, perm)
}
