package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"efiling-system/internal/authz"
	"efiling-system/internal/dto"
	"efiling-system/internal/entities"
	"efiling-system/internal/repositories"
	"efiling-system/pkg/constants"
	apperrors "efiling-system/pkg/errors"
	"efiling-system/pkg/types"
	"efiling-system/pkg/utils"
)

type FileService struct {
	repo     repositories.FileRepositoryInterface
	userRepo repositories.UserRepositoryInterface
	slaRepo  repositories.SLAMatrixRepositoryInterface
	logger   *zap.Logger
	now      func() time.Time
}

func NewFileService(
	repo repositories.FileRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	slaRepo repositories.SLAMatrixRepositoryInterface,
	logger *zap.Logger,
) *FileService {
	return &FileService{repo: repo, userRepo: userRepo, slaRepo: slaRepo, logger: logger, now: time.Now}
}

func (s *FileService) resolveScope(ctx context.Context) (uint64, *entities.User, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return 0, nil, apperrors.ErrUnauthorized
	}
	actor, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.logger.Warn("caller profile not resolved, using own-files scope",
			zap.Uint64("user_id", userID), zap.Error(err))
		actor = nil
	}
	return userID, actor, nil
}

func (s *FileService) GetFiles(ctx context.Context, filter types.Filter) ([]entities.File, uint64, error) {
	userID, actor, err := s.resolveScope(ctx)
	if err != nil {
		return nil, 0, err
	}
	scope := authz.BuildFileScope(actor, userID)
	return s.repo.GetFiles(ctx, filter, scope)
}

func (s *FileService) FindFileByID(ctx context.Context, id uint64) (*entities.File, error) {
	userID, actor, err := s.resolveScope(ctx)
	if err != nil {
		return nil, err
	}
	scope := authz.BuildFileScope(actor, userID)
	return s.repo.FindFileByID(ctx, id, scope)
}

// CreateFile stamps the SLA deadline from the matrix row matching the file's
// department and priority. A missing matrix row leaves the deadline empty.
func (s *FileService) CreateFile(ctx context.Context, payload dto.CreateFileDTO) (*entities.File, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	priority := payload.Priority
	if priority == "" {
		priority = constants.PriorityNormal
	}

	file := entities.File{
		FileNumber:   s.generateFileNumber(),
		Subject:      payload.Subject,
		Status:       constants.StatusDraft,
		Priority:     priority,
		Category:     payload.Category,
		DepartmentID: payload.DepartmentID,
		DistrictID:   payload.DistrictID,
		TownID:       payload.TownID,
		DivisionID:   payload.DivisionID,
		AssignedTo:   payload.AssignedTo,
		CreatedBy:    userID,
	}

	hours, err := s.slaRepo.ResolveResolutionHours(ctx, payload.DepartmentID, priority)
	switch {
	case err == nil:
		deadline := s.now().Add(time.Duration(hours) * time.Hour)
		file.SLADeadline = &deadline
	case errors.Is(err, apperrors.ErrNotFound):
		s.logger.Warn("no sla matrix row for file, deadline left empty",
			zap.Any("department_id", payload.DepartmentID), zap.String("priority", priority))
	default:
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, "failed to resolve sla deadline", err)
	}

	id, err := s.repo.CreateFile(ctx, file)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, "failed to create file", err)
	}
	return s.repo.FindFileByID(ctx, id, nil)
}

func (s *FileService) UpdateFile(ctx context.Context, id uint64, payload dto.UpdateFileDTO) (*entities.File, error) {
	userID, actor, err := s.resolveScope(ctx)
	if err != nil {
		return nil, err
	}
	scope := authz.BuildFileScope(actor, userID)

	// Visibility check before the write; a file outside the caller's scope
	// behaves as if it does not exist.
	if _, err := s.repo.FindFileByID(ctx, id, scope); err != nil {
		return nil, err
	}

	patch := repositories.FilePatch{
		Subject:      payload.Subject,
		Status:       payload.Status,
		Priority:     payload.Priority,
		Category:     payload.Category,
		DepartmentID: payload.DepartmentID,
		DistrictID:   payload.DistrictID,
		TownID:       payload.TownID,
		DivisionID:   payload.DivisionID,
		AssignedTo:   payload.AssignedTo,
		SLAPaused:    payload.SLAPaused,
	}
	if err := s.repo.UpdateFile(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.repo.FindFileByID(ctx, id, nil)
}

// DeleteFile is admin-only; scoped users cannot remove files they merely see.
func (s *FileService) DeleteFile(ctx context.Context, id uint64) error {
	_, actor, err := s.resolveScope(ctx)
	if err != nil {
		return err
	}
	if actor == nil || !actor.IsAdmin() {
		return apperrors.ErrForbidden
	}
	return s.repo.DeleteFile(ctx, id)
}

func (s *FileService) generateFileNumber() string {
	now := s.now()
	return fmt.Sprintf("EF/%d/%02d/%d", now.Year(), int(now.Month()), now.UnixNano()%1000000)
}
