package services

import (
	"context"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
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

type stubFileRepo struct {
	created    *entities.File
	deletedID  uint64
	lastScope  sq.Sqlizer
	findResult *entities.File
	findErr    error
}

func (s *stubFileRepo) GetFiles(_ context.Context, _ types.Filter, scope sq.Sqlizer) ([]entities.File, uint64, error) {
	s.lastScope = scope
	return []entities.File{}, 0, nil
}

func (s *stubFileRepo) FindFileByID(_ context.Context, id uint64, scope sq.Sqlizer) (*entities.File, error) {
	s.lastScope = scope
	if s.findErr != nil {
		return nil, s.findErr
	}
	if s.findResult != nil {
		return s.findResult, nil
	}
	return &entities.File{ID: id}, nil
}

func (s *stubFileRepo) CreateFile(_ context.Context, file entities.File) (uint64, error) {
	s.created = &file
	return 99, nil
}

func (s *stubFileRepo) UpdateFile(context.Context, uint64, repositories.FilePatch) error {
	return nil
}

func (s *stubFileRepo) DeleteFile(_ context.Context, id uint64) error {
	s.deletedID = id
	return nil
}

type stubSLARepo struct {
	hours int
	err   error
}

func (s *stubSLARepo) GetSLAMatrices(context.Context) ([]entities.SLAMatrix, error) { return nil, nil }
func (s *stubSLARepo) FindSLAMatrixByID(context.Context, uint64) (*entities.SLAMatrix, error) {
	return nil, apperrors.ErrNotFound
}
func (s *stubSLARepo) ResolveResolutionHours(context.Context, *uint64, string) (int, error) {
	return s.hours, s.err
}
func (s *stubSLARepo) CreateSLAMatrix(context.Context, entities.SLAMatrix) (uint64, error) {
	return 0, nil
}
func (s *stubSLARepo) UpdateSLAMatrix(context.Context, uint64, repositories.SLAMatrixPatch) error {
	return nil
}
func (s *stubSLARepo) DeleteSLAMatrix(context.Context, uint64) error { return nil }

func newFileService(repo *stubFileRepo, userRepo *stubUserRepo, slaRepo *stubSLARepo) *FileService {
	return NewFileService(repo, userRepo, slaRepo, zap.NewNop())
}

func TestCreateFile_StampsSLADeadlineFromMatrix(t *testing.T) {
	repo := &stubFileRepo{}
	svc := newFileService(repo, &stubUserRepo{user: &entities.User{ID: 3}}, &stubSLARepo{hours: 72})

	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	_, err := svc.CreateFile(authedCtx(3), dto.CreateFileDTO{Subject: "road repair estimate"})
	require.NoError(t, err)
	require.NotNil(t, repo.created)

	assert.Equal(t, constants.StatusDraft, repo.created.Status)
	assert.Equal(t, constants.PriorityNormal, repo.created.Priority)
	assert.Equal(t, uint64(3), repo.created.CreatedBy)
	require.NotNil(t, repo.created.SLADeadline)
	assert.Equal(t, now.Add(72*time.Hour), *repo.created.SLADeadline)
	assert.NotEmpty(t, repo.created.FileNumber)
}

func TestCreateFile_NoMatrixRowLeavesDeadlineEmpty(t *testing.T) {
	repo := &stubFileRepo{}
	svc := newFileService(repo, &stubUserRepo{user: &entities.User{ID: 3}}, &stubSLARepo{err: apperrors.ErrNotFound})

	_, err := svc.CreateFile(authedCtx(3), dto.CreateFileDTO{Subject: "no matrix here"})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Nil(t, repo.created.SLADeadline)
}

func TestCreateFile_Unauthenticated(t *testing.T) {
	svc := newFileService(&stubFileRepo{}, &stubUserRepo{}, &stubSLARepo{})
	_, err := svc.CreateFile(context.Background(), dto.CreateFileDTO{Subject: "x"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestGetFiles_AppliesCallerScope(t *testing.T) {
	deptID := uint64(4)
	repo := &stubFileRepo{}
	svc := newFileService(repo, &stubUserRepo{user: &entities.User{ID: 8, DepartmentID: &deptID}}, &stubSLARepo{})

	_, _, err := svc.GetFiles(authedCtx(8), types.Filter{})
	require.NoError(t, err)
	require.NotNil(t, repo.lastScope, "non-admin callers must get a visibility scope")

	sql, _, err := repo.lastScope.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "f.department_id")
	assert.Contains(t, sql, "f.created_by")
}

func TestGetFiles_AdminScopeIsNil(t *testing.T) {
	repo := &stubFileRepo{}
	svc := newFileService(repo, &stubUserRepo{user: &entities.User{ID: 1, Admin: true}}, &stubSLARepo{})

	_, _, err := svc.GetFiles(authedCtx(1), types.Filter{})
	require.NoError(t, err)
	assert.Nil(t, repo.lastScope)
}

func TestDeleteFile_RequiresAdmin(t *testing.T) {
	repo := &stubFileRepo{}
	svc := newFileService(repo, &stubUserRepo{user: &entities.User{ID: 2}}, &stubSLARepo{})

	err := svc.DeleteFile(authedCtx(2), 10)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.Zero(t, repo.deletedID)

	svcAdmin := newFileService(repo, &stubUserRepo{user: &entities.User{ID: 1, Admin: true}}, &stubSLARepo{})
	require.NoError(t, svcAdmin.DeleteFile(authedCtx(1), 10))
	assert.Equal(t, uint64(10), repo.deletedID)
}
