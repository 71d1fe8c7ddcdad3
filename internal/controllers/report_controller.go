package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"efiling-system/internal/entities"
	"efiling-system/internal/services"
	apperrors "efiling-system/pkg/errors"
	"efiling-system/pkg/utils"
)

type ReportController struct {
	reportService *services.ReportService
	logger        *zap.Logger
}

func NewReportController(service *services.ReportService, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: service, logger: logger}
}

func parseReportFilter(ctx echo.Context) (entities.ReportFilter, error) {
	var filter entities.ReportFilter

	if raw := ctx.QueryParam("date_from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, apperrors.NewBadRequestError("invalid date_from: %s", raw)
		}
		filter.DateFrom = &t
	}
	if raw := ctx.QueryParam("date_to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, apperrors.NewBadRequestError("invalid date_to: %s", raw)
		}
		// Inclusive end of day.
		t = t.Add(24*time.Hour - time.Second)
		filter.DateTo = &t
	}

	departmentIDs, err := utils.ParseUint64Slice(ctx.QueryParams()["department_id"])
	if err != nil {
		return filter, apperrors.NewBadRequestError("invalid department_id")
	}
	filter.DepartmentIDs = departmentIDs

	districtIDs, err := utils.ParseUint64Slice(ctx.QueryParams()["district_id"])
	if err != nil {
		return filter, apperrors.NewBadRequestError("invalid district_id")
	}
	filter.DistrictIDs = districtIDs

	filter.Statuses = ctx.QueryParams()["status"]

	q := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	if q.WithPagination {
		filter.Page = q.Page
		filter.PerPage = q.Limit
	}
	return filter, nil
}

func (c *ReportController) GetFileRegister(ctx echo.Context) error {
	filter, err := parseReportFilter(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	items, total, err := c.reportService.GetFileRegister(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, items, "file register retrieved", http.StatusOK, total)
}

// ExportFileRegister streams the register as an XLSX attachment.
func (c *ReportController) ExportFileRegister(ctx echo.Context) error {
	filter, err := parseReportFilter(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	buffer, err := c.reportService.ExportFileRegister(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	filename := services.FileRegisterFilename(filter)
	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, filename))
	return ctx.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buffer.Bytes())
}
