package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"efiling-system/internal/dto"
	"efiling-system/internal/entities"
	"efiling-system/internal/repositories"
	"efiling-system/pkg/constants"
	apperrors "efiling-system/pkg/errors"
	"efiling-system/pkg/types"
	"efiling-system/pkg/utils"
)

type DaakService struct {
	repo   repositories.DaakRepositoryInterface
	logger *zap.Logger
	now    func() time.Time
}

func NewDaakService(repo repositories.DaakRepositoryInterface, logger *zap.Logger) *DaakService {
	return &DaakService{repo: repo, logger: logger, now: time.Now}
}

func (s *DaakService) GetDaaks(ctx context.Context, filter types.Filter) ([]entities.Daak, uint64, error) {
	return s.repo.GetDaaks(ctx, filter)
}

func (s *DaakService) FindDaakByID(ctx context.Context, id uint64) (*entities.Daak, error) {
	return s.repo.FindDaakByID(ctx, id)
}

func (s *DaakService) CreateDaak(ctx context.Context, payload dto.CreateDaakDTO) (*entities.Daak, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	receivedAt := payload.ReceivedAt
	if receivedAt == nil && payload.Direction == constants.DaakInward {
		now := s.now()
		receivedAt = &now
	}

	daak := entities.Daak{
		ReferenceNo:  s.generateReferenceNo(payload.Direction),
		Direction:    payload.Direction,
		Subject:      payload.Subject,
		Sender:       payload.Sender,
		Recipient:    payload.Recipient,
		FileID:       payload.FileID,
		DepartmentID: payload.DepartmentID,
		ReceivedAt:   receivedAt,
		CreatedBy:    userID,
	}

	id, err := s.repo.CreateDaak(ctx, daak)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, "failed to register daak entry", err)
	}
	return s.repo.FindDaakByID(ctx, id)
}

func (s *DaakService) UpdateDaak(ctx context.Context, id uint64, payload dto.UpdateDaakDTO) (*entities.Daak, error) {
	patch := repositories.DaakPatch{
		Subject:      payload.Subject,
		Sender:       payload.Sender,
		Recipient:    payload.Recipient,
		FileID:       payload.FileID,
		DepartmentID: payload.DepartmentID,
		ReceivedAt:   payload.ReceivedAt,
	}
	if err := s.repo.UpdateDaak(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.repo.FindDaakByID(ctx, id)
}

func (s *DaakService) DeleteDaak(ctx context.Context, id uint64) error {
	return s.repo.DeleteDaak(ctx, id)
}

// Reference numbers look like IN/2026/4F9A2C1B. The uuid fragment keeps them
// unique without a counter table.
func (s *DaakService) generateReferenceNo(direction string) string {
	prefix := "IN"
	if direction == constants.DaakOutward {
		prefix = "OUT"
	}
	fragment := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s/%d/%s", prefix, s.now().Year(), fragment)
}
