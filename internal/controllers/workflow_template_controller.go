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

type WorkflowTemplateController struct {
	templateService *services.WorkflowTemplateService
	logger          *zap.Logger
}

func NewWorkflowTemplateController(service *services.WorkflowTemplateService, logger *zap.Logger) *WorkflowTemplateController {
	return &WorkflowTemplateController{templateService: service, logger: logger}
}

func (c *WorkflowTemplateController) GetWorkflowTemplates(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	templates, total, err := c.templateService.GetWorkflowTemplates(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, templates, "workflow templates retrieved", http.StatusOK, total)
}

func (c *WorkflowTemplateController) FindWorkflowTemplate(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	template, err := c.templateService.FindWorkflowTemplateByID(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, template, "workflow template retrieved", http.StatusOK)
}

func (c *WorkflowTemplateController) CreateWorkflowTemplate(ctx echo.Context) error {
	var payload dto.CreateWorkflowTemplateDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err), c.logger)
	}
	template, err := c.templateService.CreateWorkflowTemplate(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, template, "workflow template created", http.StatusCreated)
}

func (c *WorkflowTemplateController) UpdateWorkflowTemplate(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateWorkflowTemplateDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err), c.logger)
	}
	template, err := c.templateService.UpdateWorkflowTemplate(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, template, "workflow template updated", http.StatusOK)
}

func (c *WorkflowTemplateController) DeleteWorkflowTemplate(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.templateService.DeleteWorkflowTemplate(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "workflow template deleted", http.StatusOK)
}
