package routes

import (
	"github.com/labstack/echo/v4"

	"efiling-system/internal/controllers"
)

func runFileRouter(g *echo.Group, ctrl *controllers.FileController) {
	g.GET("/files", ctrl.GetFiles)
	g.GET("/file/:id", ctrl.FindFile)
	g.POST("/file", ctrl.CreateFile)
	g.PUT("/file/:id", ctrl.UpdateFile)
	g.DELETE("/file/:id", ctrl.DeleteFile)
}
