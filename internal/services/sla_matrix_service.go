package services

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"efiling-system/internal/dto"
	"efiling-system/internal/entities"
	"efiling-system/internal/repositories"
	apperrors "efiling-system/pkg/errors"
)

type SLAMatrixService struct {
	repo   repositories.SLAMatrixRepositoryInterface
	logger *zap.Logger
}

func NewSLAMatrixService(repo repositories.SLAMatrixRepositoryInterface, logger *zap.Logger) *SLAMatrixService {
	return &SLAMatrixService{repo: repo, logger: logger}
}

func (s *SLAMatrixService) GetSLAMatrices(ctx context.Context) ([]entities.SLAMatrix, error) {
	return s.repo.GetSLAMatrices(ctx)
}

func (s *SLAMatrixService) CreateSLAMatrix(ctx context.Context, payload dto.CreateSLAMatrixDTO) (*entities.SLAMatrix, error) {
	id, err := s.repo.CreateSLAMatrix(ctx, entities.SLAMatrix{
		DepartmentID:    payload.DepartmentID,
		Priority:        payload.Priority,
		ResolutionHours: payload.ResolutionHours,
	})
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, "failed to create sla matrix", err)
	}
	return s.repo.FindSLAMatrixByID(ctx, id)
}

func (s *SLAMatrixService) UpdateSLAMatrix(ctx context.Context, id uint64, payload dto.UpdateSLAMatrixDTO) (*entities.SLAMatrix, error) {
	patch := repositories.SLAMatrixPatch{
		DepartmentID:    payload.DepartmentID,
		Priority:        payload.Priority,
		ResolutionHours: payload.ResolutionHours,
	}
	if err := s.repo.UpdateSLAMatrix(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.repo.FindSLAMatrixByID(ctx, id)
}

func (s *SLAMatrixService) DeleteSLAMatrix(ctx context.Context, id uint64) error {
	return s.repo.DeleteSLAMatrix(ctx, id)
}
