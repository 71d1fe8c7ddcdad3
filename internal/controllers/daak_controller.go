package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"efiling-system/internal/dto"
	"efiling-system/internal/services"
	apperrors "efiling-system/pkg/errors"
	"efiling-system/pkg/utils"
)

type DaakController struct {
	daakService *services.DaakService
	logger      *zap.Logger
}

func NewDaakController(service *services.DaakService, logger *zap.Logger) *DaakController {
	return &DaakController{daakService: service, logger: logger}
}

func (c *DaakController) GetDaaks(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	daaks, total, err := c.daakService.GetDaaks(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, daaks, "daak entries retrieved", http.StatusOK, total)
}

func (c *DaakController) FindDaak(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	daak, err := c.daakService.FindDaakByID(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, daak, "daak entry retrieved", http.StatusOK)
}

func (c *DaakController) CreateDaak(ctx echo.Context) error {
	var payload dto.CreateDaakDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err), c.logger)
	}
	daak, err := c.daakService.CreateDaak(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, daak, "daak entry registered", http.StatusCreated)
}

func (c *DaakController) UpdateDaak(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateDaakDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err), c.logger)
	}
	daak, err := c.daakService.UpdateDaak(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, daak, "daak entry updated", http.StatusOK)
}

func (c *DaakController) DeleteDaak(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.daakService.DeleteDaak(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "daak entry deleted", http.StatusOK)
}
