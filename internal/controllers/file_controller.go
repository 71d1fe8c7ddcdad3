package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"efiling-system/internal/dto"
	"efiling-system/internal/services"
	apperrors "efiling-system/pkg/errors"
	"efiling-system/pkg/utils"
)

type FileController struct {
	fileService *services.FileService
	logger      *zap.Logger
}

func NewFileController(service *services.FileService, logger *zap.Logger) *FileController {
	return &FileController{fileService: service, logger: logger}
}

func parseIDParam(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewBadRequestError("invalid id: %s", ctx.Param("id"))
	}
	return id, nil
}

func (c *FileController) GetFiles(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	files, total, err := c.fileService.GetFiles(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, files, "files retrieved", http.StatusOK, total)
}

func (c *FileController) FindFile(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	file, err := c.fileService.FindFileByID(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, file, "file retrieved", http.StatusOK)
}

func (c *FileController) CreateFile(ctx echo.Context) error {
	var payload dto.CreateFileDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err), c.logger)
	}
	file, err := c.fileService.CreateFile(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, file, "file created", http.StatusCreated)
}

func (c *FileController) UpdateFile(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateFileDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err), c.logger)
	}
	file, err := c.fileService.UpdateFile(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, file, "file updated", http.StatusOK)
}

func (c *FileController) DeleteFile(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.fileService.DeleteFile(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "file deleted", http.StatusOK)
}
