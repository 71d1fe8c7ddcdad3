package routes

import (
	"github.com/labstack/echo/v4"

	"efiling-system/internal/controllers"
)

func runWorkflowTemplateRouter(g *echo.Group, ctrl *controllers.WorkflowTemplateController) {
	g.GET("/workflow-templates", ctrl.GetWorkflowTemplates)
	g.GET("/workflow-template/:id", ctrl.FindWorkflowTemplate)
	g.POST("/workflow-template", ctrl.CreateWorkflowTemplate)
	g.PUT("/workflow-template/:id", ctrl.UpdateWorkflowTemplate)
	g.DELETE("/workflow-template/:id", ctrl.DeleteWorkflowTemplate)
}
