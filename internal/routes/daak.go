package routes

import (
	"github.com/labstack/echo/v4"

	"efiling-system/internal/controllers"
)

func runDaakRouter(g *echo.Group, ctrl *controllers.DaakController) {
	g.GET("/daaks", ctrl.GetDaaks)
	g.GET("/daak/:id", ctrl.FindDaak)
	g.POST("/daak", ctrl.CreateDaak)
	g.PUT("/daak/:id", ctrl.UpdateDaak)
	g.DELETE("/daak/:id", ctrl.DeleteDaak)
}
