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

type SLAMatrixController struct {
	slaService *services.SLAMatrixService
	logger     *zap.Logger
}

func NewSLAMatrixController(service *services.SLAMatrixService, logger *zap.Logger) *SLAMatrixController {
	return &SLAMatrixController{slaService: service, logger: logger}
}

func (c *SLAMatrixController) GetSLAMatrices(ctx echo.Context) error {
	matrices, err := c.slaService.GetSLAMatrices(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, matrices, "sla matrices retrieved", http.StatusOK)
}

func (c *SLAMatrixController) CreateSLAMatrix(ctx echo.Context) error {
	var payload dto.CreateSLAMatrixDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err), c.logger)
	}
	matrix, err := c.slaService.CreateSLAMatrix(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, matrix, "sla matrix created", http.StatusCreated)
}

func (c *SLAMatrixController) UpdateSLAMatrix(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateSLAMatrixDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err), c.logger)
	}
	matrix, err := c.slaService.UpdateSLAMatrix(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, matrix, "sla matrix updated", http.StatusOK)
}

func (c *SLAMatrixController) DeleteSLAMatrix(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.slaService.DeleteSLAMatrix(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "sla matrix deleted", http.StatusOK)
}
