package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"efiling-system/internal/services"
	"efiling-system/pkg/utils"
)

type TeamController struct {
	teamService *services.TeamService
	logger      *zap.Logger
}

func NewTeamController(service *services.TeamService, logger *zap.Logger) *TeamController {
	return &TeamController{teamService: service, logger: logger}
}

func (c *TeamController) GetUsers(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	users, total, err := c.teamService.GetUsers(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, users, "users retrieved", http.StatusOK, total)
}

func (c *TeamController) FindUser(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	user, err := c.teamService.FindUserByID(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, user, "user retrieved", http.StatusOK)
}

// GetTeamByLevel serves the org chart view grouped by engineer seniority.
func (c *TeamController) GetTeamByLevel(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	groups, err := c.teamService.GetTeamByLevel(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, groups, "team retrieved", http.StatusOK)
}
