package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"efiling-system/internal/services"
	"efiling-system/pkg/utils"
)

type DashboardController struct {
	dashboardService *services.DashboardService
	logger           *zap.Logger
}

func NewDashboardController(service *services.DashboardService, logger *zap.Logger) *DashboardController {
	return &DashboardController{dashboardService: service, logger: logger}
}

// GetStats serves GET /api/dashboard/stats. Stateless read path: either the
// full payload or a single error envelope, never partial data.
func (c *DashboardController) GetStats(ctx echo.Context) error {
	stats, err := c.dashboardService.GetDashboardStats(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    stats,
	})
}
