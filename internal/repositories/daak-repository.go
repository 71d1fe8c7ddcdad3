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

var daakAllowedFilterFields = map[string]string{
	"direction":     "direction",
	"file_id":       "file_id",
	"department_id": "department_id",
	"created_by":    "created_by",
}

type DaakRepositoryInterface interface {
	GetDaaks(ctx context.Context, filter types.Filter) ([]entities.Daak, uint64, error)
	FindDaakByID(ctx context.Context, id uint64) (*entities.Daak, error)
	CreateDaak(ctx context.Context, daak entities.Daak) (uint64, error)
	UpdateDaak(ctx context.Context, id uint64, patch DaakPatch) error
	DeleteDaak(ctx context.Context, id uint64) error
}

type DaakPatch struct {
	Subject      *string
	Sender       *string
	Recipient    *string
	FileID       *uint64
	DepartmentID *uint64
	ReceivedAt   *time.Time
}

type DaakRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDaakRepository(storage *pgxpool.Pool, logger *zap.Logger) DaakRepositoryInterface {
	return &DaakRepository{storage: storage, logger: logger}
}

const daakSelectColumns = `id, reference_no, direction, subject, sender, recipient,
	file_id, department_id, received_at, created_by, created_at, updated_at, deleted_at`

func (r *DaakRepository) GetDaaks(ctx context.Context, filter types.Filter) ([]entities.Daak, uint64, error) {
	conditions := sq.And{sq.Eq{"deleted_at": nil}}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		conditions = append(conditions, sq.Or{
			sq.ILike{"reference_no": like},
			sq.ILike{"subject": like},
			sq.ILike{"sender": like},
		})
	}
	for key, value := range filter.Filter {
		if column, ok := daakAllowedFilterFields[key]; ok {
			conditions = append(conditions, sq.Eq{column: value})
		}
	}

	countQuery, countArgs, err := psql.Select("COUNT(*)").From("daaks").Where(conditions).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("building daak count query: %w", err)
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Daak{}, 0, nil
	}

	builder := psql.Select(daakSelectColumns).From("daaks").Where(conditions).
		OrderBy("created_at DESC")
	if filter.WithPagination {
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("building daak list query: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	daaks, err := pgx.CollectRows(rows, pgx.RowToStructByName[entities.Daak])
	if err != nil {
		return nil, 0, fmt.Errorf("collecting daak entries: %w", err)
	}
	return daaks, total, nil
}

func (r *DaakRepository) FindDaakByID(ctx context.Context, id uint64) (*entities.Daak, error) {
	query := fmt.Sprintf("SELECT %s FROM daaks WHERE id = $1 AND deleted_at IS NULL", daakSelectColumns)
	rows, err := r.storage.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	daak, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[entities.Daak])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("collecting daak entry: %w", err)
	}
	return &daak, nil
}

func (r *DaakRepository) CreateDaak(ctx context.Context, daak entities.Daak) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO daaks (reference_no, direction, subject, sender, recipient,
			file_id, department_id, received_at, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW()) RETURNING id`,
		daak.ReferenceNo, daak.Direction, daak.Subject, daak.Sender, daak.Recipient,
		daak.FileID, daak.DepartmentID, daak.ReceivedAt, daak.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting daak entry: %w", err)
	}
	return id, nil
}

func (r *DaakRepository) UpdateDaak(ctx context.Context, id uint64, patch DaakPatch) error {
	builder := psql.Update("daaks").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "deleted_at": nil})

	if patch.Subject != nil {
		builder = builder.Set("subject", *patch.Subject)
	}
	if patch.Sender != nil {
		builder = builder.Set("sender", *patch.Sender)
	}
	if patch.Recipient != nil {
		builder = builder.Set("recipient", *patch.Recipient)
	}
	if patch.FileID != nil {
		builder = builder.Set("file_id", *patch.FileID)
	}
	if patch.DepartmentID != nil {
		builder = builder.Set("department_id", *patch.DepartmentID)
	}
	if patch.ReceivedAt != nil {
		builder = builder.Set("received_at", *patch.ReceivedAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("building daak update query: %w", err)
	}
	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating daak entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *DaakRepository) DeleteDaak(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE daaks SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("deleting daak entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
