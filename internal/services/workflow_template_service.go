package services

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"efiling-system/internal/dto"
	"efiling-system/internal/entities"
	"efiling-system/internal/repositories"
	apperrors "efiling-system/pkg/errors"
	"efiling-system/pkg/types"
)

type WorkflowTemplateService struct {
	repo   repositories.WorkflowTemplateRepositoryInterface
	logger *zap.Logger
}

func NewWorkflowTemplateService(repo repositories.WorkflowTemplateRepositoryInterface, logger *zap.Logger) *WorkflowTemplateService {
	return &WorkflowTemplateService{repo: repo, logger: logger}
}

func (s *WorkflowTemplateService) GetWorkflowTemplates(ctx context.Context, filter types.Filter) ([]entities.WorkflowTemplate, uint64, error) {
	return s.repo.GetWorkflowTemplates(ctx, filter)
}

func (s *WorkflowTemplateService) FindWorkflowTemplateByID(ctx context.Context, id uint64) (*entities.WorkflowTemplate, error) {
	return s.repo.FindWorkflowTemplateByID(ctx, id)
}

// validateStages rejects templates whose stage array is empty or malformed.
func validateStages(raw json.RawMessage) error {
	var stages []entities.WorkflowStage
	if err := json.Unmarshal(raw, &stages); err != nil {
		return apperrors.NewBadRequestError("stages must be a JSON array of stage objects")
	}
	if len(stages) == 0 {
		return apperrors.NewBadRequestError("a workflow template needs at least one stage")
	}
	for _, stage := range stages {
		if stage.Name == "" || stage.RoleCode == "" {
			return apperrors.NewBadRequestError("every stage needs a name and a role code")
		}
	}
	return nil
}

func (s *WorkflowTemplateService) CreateWorkflowTemplate(ctx context.Context, payload dto.CreateWorkflowTemplateDTO) (*entities.WorkflowTemplate, error) {
	if err := validateStages(payload.Stages); err != nil {
		return nil, err
	}
	id, err := s.repo.CreateWorkflowTemplate(ctx, entities.WorkflowTemplate{
		Name:         payload.Name,
		DepartmentID: payload.DepartmentID,
		Stages:       payload.Stages,
		IsActive:     payload.IsActive,
	})
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, "failed to create workflow template", err)
	}
	return s.repo.FindWorkflowTemplateByID(ctx, id)
}

func (s *WorkflowTemplateService) UpdateWorkflowTemplate(ctx context.Context, id uint64, payload dto.UpdateWorkflowTemplateDTO) (*entities.WorkflowTemplate, error) {
	if payload.Stages != nil {
		if err := validateStages(payload.Stages); err != nil {
			return nil, err
		}
	}
	patch := repositories.WorkflowTemplatePatch{
		Name:         payload.Name,
		DepartmentID: payload.DepartmentID,
		Stages:       payload.Stages,
		IsActive:     payload.IsActive,
	}
	if err := s.repo.UpdateWorkflowTemplate(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.repo.FindWorkflowTemplateByID(ctx, id)
}

func (s *WorkflowTemplateService) DeleteWorkflowTemplate(ctx context.Context, id uint64) error {
	return s.repo.DeleteWorkflowTemplate(ctx, id)
}
