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

type WorkflowTemplateRepositoryInterface interface {
	GetWorkflowTemplates(ctx context.Context, filter types.Filter) ([]entities.WorkflowTemplate, uint64, error)
	FindWorkflowTemplateByID(ctx context.Context, id uint64) (*entities.WorkflowTemplate, error)
	CreateWorkflowTemplate(ctx context.Context, template entities.WorkflowTemplate) (uint64, error)
	UpdateWorkflowTemplate(ctx context.Context, id uint64, patch WorkflowTemplatePatch) error
	DeleteWorkflowTemplate(ctx context.Context, id uint64) error
}

type WorkflowTemplatePatch struct {
	Name         *string
	DepartmentID *uint64
	Stages       []byte
	IsActive     *bool
}

type WorkflowTemplateRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewWorkflowTemplateRepository(storage *pgxpool.Pool, logger *zap.Logger) WorkflowTemplateRepositoryInterface {
	return &WorkflowTemplateRepository{storage: storage, logger: logger}
}

const workflowTemplateColumns = `id, name, department_id, stages, is_active, created_at, updated_at`

func (r *WorkflowTemplateRepository) GetWorkflowTemplates(ctx context.Context, filter types.Filter) ([]entities.WorkflowTemplate, uint64, error) {
	args := []interface{}{}
	where := "WHERE deleted_at IS NULL"
	argCounter := 1
	if filter.Search != "" {
		where += fmt.Sprintf(" AND name ILIKE $%d", argCounter)
		args = append(args, "%"+filter.Search+"%")
		argCounter++
	}
	if departmentID, ok := filter.Filter["department_id"]; ok {
		where += fmt.Sprintf(" AND department_id = $%d", argCounter)
		args = append(args, departmentID)
		argCounter++
	}
	if isActive, ok := filter.Filter["is_active"]; ok {
		where += fmt.Sprintf(" AND is_active = $%d", argCounter)
		args = append(args, isActive)
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, "SELECT COUNT(*) FROM workflow_templates "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.WorkflowTemplate{}, 0, nil
	}

	query := fmt.Sprintf("SELECT %s FROM workflow_templates %s ORDER BY name ASC", workflowTemplateColumns, where)
	if filter.WithPagination {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", filter.Limit, filter.Offset)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	templates, err := pgx.CollectRows(rows, pgx.RowToStructByName[entities.WorkflowTemplate])
	if err != nil {
		return nil, 0, fmt.Errorf("collecting workflow templates: %w", err)
	}
	return templates, total, nil
}

func (r *WorkflowTemplateRepository) FindWorkflowTemplateByID(ctx context.Context, id uint64) (*entities.WorkflowTemplate, error) {
	query := fmt.Sprintf("SELECT %s FROM workflow_templates WHERE id = $1 AND deleted_at IS NULL", workflowTemplateColumns)
	rows, err := r.storage.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	template, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[entities.WorkflowTemplate])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("collecting workflow template: %w", err)
	}
	return &template, nil
}

func (r *WorkflowTemplateRepository) CreateWorkflowTemplate(ctx context.Context, template entities.WorkflowTemplate) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO workflow_templates (name, department_id, stages, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW()) RETURNING id`,
		template.Name, template.DepartmentID, template.Stages, template.IsActive,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting workflow template: %w", err)
	}
	return id, nil
}

func (r *WorkflowTemplateRepository) UpdateWorkflowTemplate(ctx context.Context, id uint64, patch WorkflowTemplatePatch) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE workflow_templates SET
			name = COALESCE($2, name),
			department_id = COALESCE($3, department_id),
			stages = COALESCE($4, stages),
			is_active = COALESCE($5, is_active),
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`,
		id, patch.Name, patch.DepartmentID, patch.Stages, patch.IsActive)
	if err != nil {
		return fmt.Errorf("updating workflow template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *WorkflowTemplateRepository) DeleteWorkflowTemplate(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE workflow_templates SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("deleting workflow template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
