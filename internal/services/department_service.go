package services

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"efiling-system/internal/dto"
	"efiling-system/internal/entities"
	"efiling-system/internal/repositories"
	apperrors "efiling-system/pkg/errors"
	"efiling-system/pkg/types"
)

type DepartmentService struct {
	repo   repositories.DepartmentRepositoryInterface
	logger *zap.Logger
}

func NewDepartmentService(repo repositories.DepartmentRepositoryInterface, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{repo: repo, logger: logger}
}

func (s *DepartmentService) GetDepartments(ctx context.Context, filter types.Filter) ([]entities.Department, uint64, error) {
	return s.repo.GetDepartments(ctx, filter)
}

func (s *DepartmentService) FindDepartmentByID(ctx context.Context, id uint64) (*entities.Department, error) {
	return s.repo.FindDepartmentByID(ctx, id)
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*entities.Department, error) {
	id, err := s.repo.CreateDepartment(ctx, entities.Department{
		Name: payload.Name,
		Code: payload.Code,
	})
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, "failed to create department", err)
	}
	return s.repo.FindDepartmentByID(ctx, id)
}

func (s *DepartmentService) UpdateDepartment(ctx context.Context, id uint64, payload dto.UpdateDepartmentDTO) (*entities.Department, error) {
	if err := s.repo.UpdateDepartment(ctx, id, payload.Name, payload.Code); err != nil {
		return nil, err
	}
	return s.repo.FindDepartmentByID(ctx, id)
}

func (s *DepartmentService) DeleteDepartment(ctx context.Context, id uint64) error {
	return s.repo.DeleteDepartment(ctx, id)
}
