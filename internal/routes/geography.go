package routes

import (
	"github.com/labstack/echo/v4"

	"efiling-system/internal/controllers"
)

func runGeographyRouter(g *echo.Group, ctrl *controllers.GeographyController) {
	g.GET("/zones", ctrl.GetZones)
	g.POST("/zone", ctrl.CreateZone)
	g.PUT("/zone/:id", ctrl.UpdateZone)
	g.DELETE("/zone/:id", ctrl.DeleteZone)

	g.GET("/districts", ctrl.GetDistricts)
	g.POST("/district", ctrl.CreateDistrict)
	g.PUT("/district/:id", ctrl.UpdateDistrict)
	g.DELETE("/district/:id", ctrl.DeleteDistrict)

	g.GET("/towns", ctrl.GetTowns)
	g.POST("/town", ctrl.CreateTown)
	g.PUT("/town/:id", ctrl.UpdateTown)
	g.DELETE("/town/:id", ctrl.DeleteTown)

	g.GET("/divisions", ctrl.GetDivisions)
	g.POST("/division", ctrl.CreateDivision)
	g.PUT("/division/:id", ctrl.UpdateDivision)
	g.DELETE("/division/:id", ctrl.DeleteDivision)
}
