package services

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"efiling-system/internal/authz"
	"efiling-system/internal/entities"
	"efiling-system/internal/repositories"
	apperrors "efiling-system/pkg/errors"
	"efiling-system/pkg/utils"
)

type ReportService struct {
	repo     repositories.ReportRepositoryInterface
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewReportService(repo repositories.ReportRepositoryInterface, userRepo repositories.UserRepositoryInterface, logger *zap.Logger) *ReportService {
	return &ReportService{repo: repo, userRepo: userRepo, logger: logger}
}

func (s *ReportService) GetFileRegister(ctx context.Context, filter entities.ReportFilter) ([]entities.FileReportItem, uint64, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, 0, apperrors.ErrUnauthorized
	}
	actor, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.logger.Warn("report caller profile not resolved, using own-files scope",
			zap.Uint64("user_id", userID), zap.Error(err))
		actor = nil
	}
	scope := authz.BuildFileScope(actor, userID)
	return s.repo.GetFileRegister(ctx, filter, scope)
}

var fileRegisterHeaders = []string{
	"#", "File Number", "Subject", "Status", "Priority",
	"Department", "District", "Created By", "Assigned To",
	"Created At", "SLA Deadline", "SLA Status", "Time Remaining",
}

// ExportFileRegister renders the register as an XLSX workbook. Pagination is
// ignored so the export always covers the whole filtered set.
func (s *ReportService) ExportFileRegister(ctx context.Context, filter entities.ReportFilter) (*bytes.Buffer, error) {
	filter.Page = 0
	filter.PerPage = 0
	items, _, err := s.GetFileRegister(ctx, filter)
	if err != nil {
		return nil, err
	}

	workbook := excelize.NewFile()
	defer workbook.Close()

	const sheet = "File Register"
	index, err := workbook.NewSheet(sheet)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, "failed to build report workbook", err)
	}
	workbook.SetActiveSheet(index)
	workbook.DeleteSheet("Sheet1")

	headerStyle, err := workbook.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, "failed to build report workbook", err)
	}

	for i, header := range fileRegisterHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		workbook.SetCellValue(sheet, cell, header)
	}
	endHeader, _ := excelize.CoordinatesToCellName(len(fileRegisterHeaders), 1)
	workbook.SetCellStyle(sheet, "A1", endHeader, headerStyle)

	for rowIdx, item := range items {
		row := rowIdx + 2
		values := []interface{}{
			rowIdx + 1,
			item.FileNumber,
			item.Subject,
			item.Status,
			item.Priority,
			item.DepartmentName.String,
			item.DistrictName.String,
			item.CreatorName.String,
			item.AssigneeName.String,
			item.CreatedAt.Format("02.01.2006 15:04"),
			"",
			item.SLAStatus,
			"",
		}
		if item.SLADeadline.Valid {
			values[10] = item.SLADeadline.Time.Format("02.01.2006 15:04")
		}
		if item.HoursToDeadline.Valid && item.HoursToDeadline.Float64 > 0 {
			values[12] = utils.FormatHoursHumanReadable(item.HoursToDeadline.Float64)
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, row)
			workbook.SetCellValue(sheet, cell, value)
		}
	}

	workbook.SetColWidth(sheet, "B", "C", 30)
	workbook.SetColWidth(sheet, "F", "I", 22)
	workbook.SetColWidth(sheet, "J", "M", 18)

	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, "failed to write report workbook", err)
	}
	return buffer, nil
}

// FileRegisterFilename names the download after the filter window.
func FileRegisterFilename(filter entities.ReportFilter) string {
	if filter.DateFrom != nil && filter.DateTo != nil {
		return fmt.Sprintf("file-register_%s_%s.xlsx",
			filter.DateFrom.Format("2006-01-02"), filter.DateTo.Format("2006-01-02"))
	}
	return "file-register.xlsx"
}
