package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"efiling-system/internal/entities"
	apperrors "efiling-system/pkg/errors"
)

type SLAMatrixRepositoryInterface interface {
	GetSLAMatrices(ctx context.Context) ([]entities.SLAMatrix, error)
	FindSLAMatrixByID(ctx context.Context, id uint64) (*entities.SLAMatrix, error)
	// ResolveResolutionHours picks the matrix row for a department and
	// priority, falling back to the department-agnostic row.
	ResolveResolutionHours(ctx context.Context, departmentID *uint64, priority string) (int, error)
	CreateSLAMatrix(ctx context.Context, matrix entities.SLAMatrix) (uint64, error)
	UpdateSLAMatrix(ctx context.Context, id uint64, patch SLAMatrixPatch) error
	DeleteSLAMatrix(ctx context.Context, id uint64) error
}

type SLAMatrixPatch struct {
	DepartmentID    *uint64
	Priority        *string
	ResolutionHours *int
}

type SLAMatrixRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewSLAMatrixRepository(storage *pgxpool.Pool, logger *zap.Logger) SLAMatrixRepositoryInterface {
	return &SLAMatrixRepository{storage: storage, logger: logger}
}

const slaMatrixColumns = `id, department_id, priority, resolution_hours, created_at, updated_at`

func (r *SLAMatrixRepository) GetSLAMatrices(ctx context.Context) ([]entities.SLAMatrix, error) {
	query := fmt.Sprintf(`SELECT %s FROM sla_matrices WHERE deleted_at IS NULL
		ORDER BY department_id ASC NULLS FIRST, priority ASC`, slaMatrixColumns)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	matrices, err := pgx.CollectRows(rows, pgx.RowToStructByName[entities.SLAMatrix])
	if err != nil {
		return nil, fmt.Errorf("collecting sla matrices: %w", err)
	}
	return matrices, nil
}

func (r *SLAMatrixRepository) FindSLAMatrixByID(ctx context.Context, id uint64) (*entities.SLAMatrix, error) {
	query := fmt.Sprintf("SELECT %s FROM sla_matrices WHERE id = $1 AND deleted_at IS NULL", slaMatrixColumns)
	rows, err := r.storage.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	matrix, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[entities.SLAMatrix])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("collecting sla matrix: %w", err)
	}
	return &matrix, nil
}

func (r *SLAMatrixRepository) ResolveResolutionHours(ctx context.Context, departmentID *uint64, priority string) (int, error) {
	// Department-specific rows win over the global default row.
	query := `SELECT resolution_hours FROM sla_matrices
		WHERE deleted_at IS NULL
			AND priority = $1
			AND (department_id = $2 OR department_id IS NULL)
		ORDER BY department_id ASC NULLS LAST
		LIMIT 1`

	var hours int
	err := r.storage.QueryRow(ctx, query, priority, departmentID).Scan(&hours)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, apperrors.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("resolving sla hours: %w", err)
	}
	return hours, nil
}

func (r *SLAMatrixRepository) CreateSLAMatrix(ctx context.Context, matrix entities.SLAMatrix) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO sla_matrices (department_id, priority, resolution_hours, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW()) RETURNING id`,
		matrix.DepartmentID, matrix.Priority, matrix.ResolutionHours,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting sla matrix: %w", err)
	}
	return id, nil
}

func (r *SLAMatrixRepository) UpdateSLAMatrix(ctx context.Context, id uint64, patch SLAMatrixPatch) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE sla_matrices SET
			department_id = COALESCE($2, department_id),
			priority = COALESCE($3, priority),
			resolution_hours = COALESCE($4, resolution_hours),
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`,
		id, patch.DepartmentID, patch.Priority, patch.ResolutionHours)
	if err != nil {
		return fmt.Errorf("updating sla matrix: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *SLAMatrixRepository) DeleteSLAMatrix(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE sla_matrices SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("deleting sla matrix: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
