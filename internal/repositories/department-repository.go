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
	"efiling-system/pkg/types"
)

type DepartmentRepositoryInterface interface {
	GetDepartments(ctx context.Context, filter types.Filter) ([]entities.Department, uint64, error)
	FindDepartmentByID(ctx context.Context, id uint64) (*entities.Department, error)
	CreateDepartment(ctx context.Context, department entities.Department) (uint64, error)
	UpdateDepartment(ctx context.Context, id uint64, name, code *string) error
	DeleteDepartment(ctx context.Context, id uint64) error
}

type DepartmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDepartmentRepository(storage *pgxpool.Pool, logger *zap.Logger) DepartmentRepositoryInterface {
	return &DepartmentRepository{storage: storage, logger: logger}
}

func (r *DepartmentRepository) GetDepartments(ctx context.Context, filter types.Filter) ([]entities.Department, uint64, error) {
	args := []interface{}{}
	where := "WHERE deleted_at IS NULL"
	if filter.Search != "" {
		where += " AND (name ILIKE $1 OR code ILIKE $1)"
		args = append(args, "%"+filter.Search+"%")
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, "SELECT COUNT(*) FROM departments "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Department{}, 0, nil
	}

	query := fmt.Sprintf(`SELECT id, name, code, created_at, updated_at
		FROM departments %s ORDER BY name ASC`, where)
	if filter.WithPagination {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", filter.Limit, filter.Offset)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	departments, err := pgx.CollectRows(rows, pgx.RowToStructByName[entities.Department])
	if err != nil {
		return nil, 0, fmt.Errorf("collecting departments: %w", err)
	}
	return departments, total, nil
}

func (r *DepartmentRepository) FindDepartmentByID(ctx context.Context, id uint64) (*entities.Department, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT id, name, code, created_at, updated_at
		FROM departments WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return nil, err
	}
	department, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[entities.Department])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("collecting department: %w", err)
	}
	return &department, nil
}

func (r *DepartmentRepository) CreateDepartment(ctx context.Context, department entities.Department) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO departments (name, code, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW()) RETURNING id`,
		department.Name, department.Code,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting department: %w", err)
	}
	return id, nil
}

func (r *DepartmentRepository) UpdateDepartment(ctx context.Context, id uint64, name, code *string) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE departments SET
			name = COALESCE($2, name),
			code = COALESCE($3, code),
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`,
		id, name, code)
	if err != nil {
		return fmt.Errorf("updating department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *DepartmentRepository) DeleteDepartment(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE departments SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("deleting department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
