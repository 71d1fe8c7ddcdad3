package routes

import (
	"github.com/labstack/echo/v4"

	"efiling-system/internal/controllers"
)

func runSLAMatrixRouter(g *echo.Group, ctrl *controllers.SLAMatrixController) {
	g.GET("/sla-matrices", ctrl.GetSLAMatrices)
	g.POST("/sla-matrix", ctrl.CreateSLAMatrix)
	g.PUT("/sla-matrix/:id", ctrl.UpdateSLAMatrix)
	g.DELETE("/sla-matrix/:id", ctrl.DeleteSLAMatrix)
}
