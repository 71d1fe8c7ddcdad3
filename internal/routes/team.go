package routes

import (
	"github.com/labstack/echo/v4"

	"efiling-system/internal/controllers"
)

func runTeamRouter(g *echo.Group, ctrl *controllers.TeamController) {
	g.GET("/users", ctrl.GetUsers)
	g.GET("/user/:id", ctrl.FindUser)
	g.GET("/team/by-level", ctrl.GetTeamByLevel)
}
