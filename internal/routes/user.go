package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runUserRouter(g *echo.Group, ctrl *controllers.UserController, perm echo.MiddlewareFunc) {
	g.GET("/users", ctrl.GetUsers)
	g.GET("/users/:id", ctrl.FindUser)
	g.POST("/users", ctrl.CreateUser, perm)
	g.PUT("/users/:id", ctrl.UpdateUser, perm)
	g.DELETE("/users/:id", ctrl.DeleteUser, perm)
}
