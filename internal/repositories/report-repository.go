package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"efiling-system/internal/entities"
)

type ReportRepositoryInterface interface {
	GetFileRegister(ctx context.Context, filter entities.ReportFilter, scope sq.Sqlizer) ([]entities.FileReportItem, uint64, error)
}

type ReportRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewReportRepository(storage *pgxpool.Pool, logger *zap.Logger) ReportRepositoryInterface {
	return &ReportRepository{storage: storage, logger: logger}
}

func reportConditions(filter entities.ReportFilter, scope sq.Sqlizer) sq.And {
	conditions := sq.And{sq.Eq{"f.deleted_at": nil}}
	if scope != nil {
		conditions = append(conditions, scope)
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, sq.GtOrEq{"f.created_at": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		conditions = append(conditions, sq.LtOrEq{"f.created_at": *filter.DateTo})
	}
	if len(filter.DepartmentIDs) > 0 {
		conditions = append(conditions, sq.Eq{"f.department_id": filter.DepartmentIDs})
	}
	if len(filter.DistrictIDs) > 0 {
		conditions = append(conditions, sq.Eq{"f.district_id": filter.DistrictIDs})
	}
	if len(filter.Statuses) > 0 {
		conditions = append(conditions, sq.Eq{"f.status": filter.Statuses})
	}
	return conditions
}

// reportSelect is the register column set. Priority falls back to 'normal'
// for legacy rows where it is NULL or empty.
func reportSelect() sq.SelectBuilder {
	return psql.Select(
		"f.id AS file_id", "f.file_number", "f.subject", "f.status",
		"COALESCE(NULLIF(f.priority, ''), 'normal') AS priority",
		"d.name AS department_name",
		"di.name AS district_name",
		"c.full_name AS creator_name",
		"a.full_name AS assignee_name",
		"f.created_at",
		"f.sla_deadline",
		`CASE
			WHEN f.sla_breached THEN 'BREACHED'
			WHEN f.sla_paused THEN 'PAUSED'
			WHEN f.sla_deadline IS NULL THEN 'NO_SLA'
			ELSE 'ON_TRACK'
		END AS sla_status`,
		"EXTRACT(EPOCH FROM (f.sla_deadline - NOW())) / 3600.0 AS hours_to_deadline",
	).
		From("files f").
		LeftJoin("departments d ON f.department_id = d.id").
		LeftJoin("districts di ON f.district_id = di.id").
		LeftJoin("users c ON f.created_by = c.id").
		LeftJoin("users a ON f.assigned_to = a.id")
}

func (r *ReportRepository) GetFileRegister(ctx context.Context, filter entities.ReportFilter, scope sq.Sqlizer) ([]entities.FileReportItem, uint64, error) {
	conditions := reportConditions(filter, scope)

	countQuery, countArgs, err := psql.Select("COUNT(*)").
		From("files f").
		Where(conditions).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("building report count query: %w", err)
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.FileReportItem{}, 0, nil
	}

	builder := reportSelect().Where(conditions).OrderBy("f.created_at DESC")

	if filter.PerPage > 0 {
		offset := 0
		if filter.Page > 1 {
			offset = (filter.Page - 1) * filter.PerPage
		}
		builder = builder.Limit(uint64(filter.PerPage)).Offset(uint64(offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("building report query: %w", err)
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[entities.FileReportItem])
	if err != nil {
		return nil, 0, fmt.Errorf("collecting report rows: %w", err)
	}
	return items, total, nil
}
