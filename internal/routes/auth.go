package routes

import (
	"github.com/labstack/echo/v4"

	"efiling-system/internal/controllers"
)

func runAuthRouter(api *echo.Group, ctrl *controllers.AuthController) {
	api.POST("/auth/login", ctrl.Login)
	api.POST("/auth/refresh", ctrl.RefreshToken)
}
