package routes

import (
	"github.com/labstack/echo/v4"

	"efiling-system/internal/controllers"
)

func runRoleRouter(g *echo.Group, ctrl *controllers.RoleController) {
	g.GET("/roles", ctrl.GetRoles)
	g.GET("/role/:id", ctrl.FindRole)
	g.POST("/role", ctrl.CreateRole)
	g.PUT("/role/:id", ctrl.UpdateRole)
	g.DELETE("/role/:id", ctrl.DeleteRole)

	g.GET("/role-groups", ctrl.GetRoleGroups)
	g.POST("/role-group", ctrl.CreateRoleGroup)
}
