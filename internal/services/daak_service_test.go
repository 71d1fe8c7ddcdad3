package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"efiling-system/internal/dto"
	"efiling-system/internal/entities"
	"efiling-system/internal/repositories"
	"efiling-system/pkg/constants"
	apperrors "efiling-system/pkg/errors"
	"efiling-system/pkg/types"
)

type stubDaakRepo struct {
	created *entities.Daak
}

func (s *stubDaakRepo) GetDaaks(context.Context, types.Filter) ([]entities.Daak, uint64, error) {
	return nil, 0, nil
}

func (s *stubDaakRepo) FindDaakByID(_ context.Context, id uint64) (*entities.Daak, error) {
	if s.created != nil {
		return s.created, nil
	}
	return &entities.Daak{ID: id}, nil
}

func (s *stubDaakRepo) CreateDaak(_ context.Context, daak entities.Daak) (uint64, error) {
	s.created = &daak
	return 11, nil
}

func (s *stubDaakRepo) UpdateDaak(context.Context, uint64, repositories.DaakPatch) error {
	return nil
}

func (s *stubDaakRepo) DeleteDaak(context.Context, uint64) error { return nil }

func TestCreateDaak_GeneratesReferenceNumber(t *testing.T) {
	repo := &stubDaakRepo{}
	svc := NewDaakService(repo, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC) }

	_, err := svc.CreateDaak(authedCtx(4), dto.CreateDaakDTO{
		Direction: constants.DaakOutward,
		Subject:   "tender notice",
		Sender:    "Public Works",
		Recipient: "Gazette Office",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)

	assert.Regexp(t, regexp.MustCompile(`^OUT/2026/[0-9A-F]{8}$`), repo.created.ReferenceNo)
	assert.Equal(t, uint64(4), repo.created.CreatedBy)
	assert.Nil(t, repo.created.ReceivedAt, "outward mail has no received timestamp by default")
}

func TestCreateDaak_InwardDefaultsReceivedAt(t *testing.T) {
	repo := &stubDaakRepo{}
	svc := NewDaakService(repo, zap.NewNop())
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	_, err := svc.CreateDaak(authedCtx(4), dto.CreateDaakDTO{
		Direction: constants.DaakInward,
		Subject:   "citizen petition",
		Sender:    "Resident",
		Recipient: "Town Planning",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created.ReceivedAt)
	assert.Equal(t, now, *repo.created.ReceivedAt)
	assert.Regexp(t, regexp.MustCompile(`^IN/2026/`), repo.created.ReferenceNo)
}

func TestCreateDaak_Unauthenticated(t *testing.T) {
	svc := NewDaakService(&stubDaakRepo{}, zap.NewNop())
	_, err := svc.CreateDaak(context.Background(), dto.CreateDaakDTO{Direction: constants.DaakInward})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
