package routes

import (
	"github.com/labstack/echo/v4"

	"efiling-system/internal/controllers"
)

func runReportRouter(g *echo.Group, ctrl *controllers.ReportController) {
	g.GET("/reports/file-register", ctrl.GetFileRegister)
	g.GET("/reports/file-register/export", ctrl.ExportFileRegister)
}
