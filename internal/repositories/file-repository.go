package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"efiling-system/internal/entities"
	apperrors "efiling-system/pkg/errors"
	"efiling-system/pkg/types"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var fileAllowedFilterFields = map[string]string{
	"status":         "f.status",
	"priority":       "f.priority",
	"category":       "f.category",
	"department_id":  "f.department_id",
	"district_id":    "f.district_id",
	"town_id":        "f.town_id",
	"division_id":    "f.division_id",
	"assigned_to":    "f.assigned_to",
	"created_by":     "f.created_by",
	"sla_breached":   "f.sla_breached",
	"workflow_state": "ws.state",
}

var fileAllowedSortFields = map[string]string{
	"created_at":   "f.created_at",
	"updated_at":   "f.updated_at",
	"sla_deadline": "f.sla_deadline",
	"file_number":  "f.file_number",
	"priority":     "f.priority",
}

type FileRepositoryInterface interface {
	GetFiles(ctx context.Context, filter types.Filter, scope sq.Sqlizer) ([]entities.File, uint64, error)
	FindFileByID(ctx context.Context, id uint64, scope sq.Sqlizer) (*entities.File, error)
	CreateFile(ctx context.Context, file entities.File) (uint64, error)
	UpdateFile(ctx context.Context, id uint64, patch FilePatch) error
	DeleteFile(ctx context.Context, id uint64) error
}

// FilePatch carries only the columns the caller wants changed.
type FilePatch struct {
	Subject      *string
	Status       *string
	Priority     *string
	Category     *string
	DepartmentID *uint64
	DistrictID   *uint64
	TownID       *uint64
	DivisionID   *uint64
	AssignedTo   *uint64
	SLADeadline  *time.Time
	SLAPaused    *bool
}

type FileRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewFileRepository(storage *pgxpool.Pool, logger *zap.Logger) FileRepositoryInterface {
	return &FileRepository{storage: storage, logger: logger}
}

func fileSelect() sq.SelectBuilder {
	return psql.Select(
		"f.id", "f.file_number", "f.subject", "f.status", "f.priority", "f.category",
		"f.department_id", "f.district_id", "f.town_id", "f.division_id",
		"f.assigned_to", "f.created_by",
		"COALESCE(ws.state, '') AS workflow_state",
		"f.sla_deadline", "f.sla_breached", "f.sla_paused",
		"d.name AS department_name",
		"a.full_name AS assignee_name",
		"c.full_name AS creator_name",
		"f.created_at", "f.updated_at", "f.deleted_at",
	).
		From("files f").
		LeftJoin("workflow_states ws ON ws.file_id = f.id").
		LeftJoin("departments d ON f.department_id = d.id").
		LeftJoin("users a ON f.assigned_to = a.id").
		LeftJoin("users c ON f.created_by = c.id").
		Where(sq.Eq{"f.deleted_at": nil})
}

func (r *FileRepository) GetFiles(ctx context.Context, filter types.Filter, scope sq.Sqlizer) ([]entities.File, uint64, error) {
	conditions := sq.And{sq.Eq{"f.deleted_at": nil}}
	if scope != nil {
		conditions = append(conditions, scope)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		conditions = append(conditions, sq.Or{
			sq.ILike{"f.file_number": like},
			sq.ILike{"f.subject": like},
		})
	}
	for key, value := range filter.Filter {
		if column, ok := fileAllowedFilterFields[key]; ok {
			conditions = append(conditions, sq.Eq{column: value})
		}
	}

	countQuery, countArgs, err := psql.Select("COUNT(*)").
		From("files f").
		LeftJoin("workflow_states ws ON ws.file_id = f.id").
		Where(conditions).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("building file count query: %w", err)
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.File{}, 0, nil
	}

	builder := fileSelect().Where(conditions)

	orderBy := "f.created_at DESC"
	for key, direction := range filter.Sort {
		if column, ok := fileAllowedSortFields[key]; ok {
			if direction != "asc" && direction != "desc" {
				direction = "desc"
			}
			orderBy = column + " " + direction
			break
		}
	}
	builder = builder.OrderBy(orderBy)

	if filter.WithPagination {
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("building file list query: %w", err)
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	files, err := pgx.CollectRows(rows, pgx.RowToStructByName[entities.File])
	if err != nil {
		return nil, 0, fmt.Errorf("collecting files: %w", err)
	}
	return files, total, nil
}

func (r *FileRepository) FindFileByID(ctx context.Context, id uint64, scope sq.Sqlizer) (*entities.File, error) {
	builder := fileSelect().Where(sq.Eq{"f.id": id})
	if scope != nil {
		builder = builder.Where(scope)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building file query: %w", err)
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	file, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[entities.File])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("collecting file: %w", err)
	}
	return &file, nil
}

func (r *FileRepository) CreateFile(ctx context.Context, file entities.File) (uint64, error) {
	query := `INSERT INTO files (
			file_number, subject, status, priority, category,
			department_id, district_id, town_id, division_id,
			assigned_to, created_by, sla_deadline, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id`

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		file.FileNumber, file.Subject, file.Status, file.Priority, file.Category,
		file.DepartmentID, file.DistrictID, file.TownID, file.DivisionID,
		file.AssignedTo, file.CreatedBy, file.SLADeadline,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting file: %w", err)
	}
	return id, nil
}

func (r *FileRepository) UpdateFile(ctx context.Context, id uint64, patch FilePatch) error {
	builder := psql.Update("files").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "deleted_at": nil})

	if patch.Subject != nil {
		builder = builder.Set("subject", *patch.Subject)
	}
	if patch.Status != nil {
		builder = builder.Set("status", *patch.Status)
	}
	if patch.Priority != nil {
		builder = builder.Set("priority", *patch.Priority)
	}
	if patch.Category != nil {
		builder = builder.Set("category", *patch.Category)
	}
	if patch.DepartmentID != nil {
		builder = builder.Set("department_id", *patch.DepartmentID)
	}
	if patch.DistrictID != nil {
		builder = builder.Set("district_id", *patch.DistrictID)
	}
	if patch.TownID != nil {
		builder = builder.Set("town_id", *patch.TownID)
	}
	if patch.DivisionID != nil {
		builder = builder.Set("division_id", *patch.DivisionID)
	}
	if patch.AssignedTo != nil {
		builder = builder.Set("assigned_to", *patch.AssignedTo)
	}
	if patch.SLADeadline != nil {
		builder = builder.Set("sla_deadline", *patch.SLADeadline)
	}
	if patch.SLAPaused != nil {
		builder = builder.Set("sla_paused", *patch.SLAPaused)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("building file update query: %w", err)
	}
	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating file: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *FileRepository) DeleteFile(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE files SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("deleting file: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
