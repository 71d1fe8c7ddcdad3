package repositories

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"efiling-system/pkg/types"
)

// drilldownLimit bounds every explained file list.
const drilldownLimit = 50

// DashboardFileRecord is the raw drill-down row before reason annotation.
type DashboardFileRecord struct {
	ID             int64
	FileNumber     string
	Subject        string
	Status         string
	Priority       string
	DepartmentName *string
	AssigneeName   *string
	AssigneeRole   *string
	WorkflowState  *string
	ApprovedBy     *string
	SLADeadline    *time.Time
	CreatedAt      time.Time
}

type DashboardRepositoryInterface interface {
	GetOverallCounts(ctx context.Context, scope sq.Sqlizer) (*types.DashboardOverall, error)
	GetCountByWorkflowState(ctx context.Context, scope sq.Sqlizer) ([]types.DashboardCountByGroup, error)
	GetDepartmentStats(ctx context.Context, scope sq.Sqlizer) ([]types.DashboardRegionStat, error)
	GetTownStats(ctx context.Context, scope sq.Sqlizer) ([]types.DashboardRegionStat, error)
	GetDivisionStats(ctx context.Context, scope sq.Sqlizer) ([]types.DashboardRegionStat, error)
	GetDistrictStats(ctx context.Context, scope sq.Sqlizer) ([]types.DashboardRegionStat, error)
	GetAssignedRoleStats(ctx context.Context, scope sq.Sqlizer) ([]types.DashboardRoleStat, error)
	GetCountByStatus(ctx context.Context, scope sq.Sqlizer) ([]types.DashboardCountByGroup, error)
	GetCountByPriority(ctx context.Context, scope sq.Sqlizer) ([]types.DashboardCountByGroup, error)
	GetCountByCategory(ctx context.Context, scope sq.Sqlizer) ([]types.DashboardCountByGroup, error)
	GetRecentActivity(ctx context.Context, scope sq.Sqlizer) ([]types.DashboardActivityPoint, error)
	GetWorkflowStateStats(ctx context.Context, scope sq.Sqlizer) ([]types.DashboardWorkflowStateStat, error)
	GetSLASummary(ctx context.Context, scope sq.Sqlizer) (*types.DashboardSLASummary, error)
	GetFilesByStatus(ctx context.Context, scope sq.Sqlizer, status string) ([]DashboardFileRecord, error)
	GetPendingFiles(ctx context.Context, scope sq.Sqlizer) ([]DashboardFileRecord, error)
	GetApprovedFiles(ctx context.Context, scope sq.Sqlizer) ([]DashboardFileRecord, error)
	GetOverdueFiles(ctx context.Context, scope sq.Sqlizer) ([]DashboardFileRecord, error)
	GetAtRiskFiles(ctx context.Context, scope sq.Sqlizer) ([]DashboardFileRecord, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDashboardRepository(storage *pgxpool.Pool, logger *zap.Logger) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage, logger: logger}
}

// applyScope attaches the caller's visibility predicate. A nil scope means
// the caller is an admin and sees everything.
func applyScope(b sq.SelectBuilder, scope sq.Sqlizer) sq.SelectBuilder {
	if scope != nil {
		return b.Where(scope)
	}
	return b
}

func (r *DashboardRepository) GetOverallCounts(ctx context.Context, scope sq.Sqlizer) (*types.DashboardOverall, error) {
	// at_risk here is the "deadline already passed but breach flag not set"
	// inconsistency bucket; the at_risk drill-down uses a different window.
	b := sq.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE f.status = 'DRAFT')",
		"COUNT(*) FILTER (WHERE f.status = 'IN_PROGRESS')",
		"COUNT(*) FILTER (WHERE f.status = 'PENDING_APPROVAL')",
		"COUNT(*) FILTER (WHERE f.status = 'APPROVED')",
		"COUNT(*) FILTER (WHERE f.status = 'COMPLETED')",
		"COUNT(*) FILTER (WHERE f.sla_breached)",
		"COUNT(*) FILTER (WHERE f.sla_deadline IS NOT NULL AND NOT f.sla_breached AND f.sla_deadline < NOW())",
	).From("files f").
		Where(sq.Eq{"f.deleted_at": nil})

	b = applyScope(b, scope)
	query, args, err := b.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	overall := &types.DashboardOverall{}
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&overall.TotalFiles, &overall.DraftFiles, &overall.InProgressFiles,
		&overall.PendingApprovalFiles, &overall.ApprovedFiles, &overall.CompletedFiles,
		&overall.OverdueFiles, &overall.AtRiskFiles,
	)
	return overall, err
}

func (r *DashboardRepository) GetCountByWorkflowState(ctx context.Context, scope sq.Sqlizer) ([]types.DashboardCountByGroup, error) {
	// A file without a workflow_states row is implicitly TEAM_INTERNAL.
	b := sq.Select(
		"COALESCE(ws.state, 'TEAM_INTERNAL') as group_name",
		"COUNT(f.id) as count",
	).From("files f").
		LeftJoin("workflow_states ws ON ws.file_id = f.id").
		Where(sq.Eq{"f.deleted_at": nil}).
		GroupBy("COALESCE(ws.state, 'TEAM_INTERNAL')").
		OrderBy("count DESC")

	return r.collectCountByGroup(ctx, applyScope(b, scope))
}

func (r *DashboardRepository) GetDepartmentStats(ctx context.Context, scope sq.Sqlizer) ([]types.DashboardRegionStat, error) {
	b := sq.Select(
		"d.name as name",
		"COUNT(f.id) as count",
		"COUNT(f.id) FILTER (WHERE f.status = 'IN_PROGRESS') as in_progress_count",
	).From("files f").
		Join("departments d ON f.department_id = d.id").
		Where(sq.Eq{"f.deleted_at": nil}).
		GroupBy("d.name").
		OrderBy("count DESC")

	return r.collectRegionStats(ctx, applyScope(b, scope))
}

// Town, division and district resolution uses the fallback chain: the file's
// own location, else the creator's.

func (r *DashboardRepository) GetTownStats(ctx context.Context, scope sq.Sqlizer) ([]types.DashboardRegionStat, error) {
	b := sq.Select(
		"t.name as name",
		"COUNT(f.id) as count",
		"COUNT(f.id) FILTER (WHERE f.status = 'IN_PROGRESS') as in_progress_count",
	).From("files f").
		LeftJoin("users cu ON f.created_by = cu.id").
		Join("towns t ON t.id = COALESCE(f.town_id, cu.town_id)").
		Where(sq.Eq{"f.deleted_at": nil}).
		GroupBy("t.name").
		OrderBy("count DESC").
		Limit(20)

	return r.collectRegionStats(ctx, applyScope(b, scope))
}

func (r *DashboardRepository) GetDivisionStats(ctx context.Context, scope sq.Sqlizer) ([]types.DashboardRegionStat, error) {
	b := sq.Select(
		"dv.name as name",
		"COUNT(f.id) as count",
		"COUNT(f.id) FILTER (WHERE f.status = 'IN_PROGRESS') as in_progress_count",
	).From("files f").
		LeftJoin("users cu ON f.created_by = cu.id").
		Join("divisions dv ON dv.id = COALESCE(f.division_id, cu.division_id)").
		Where(sq.Eq{"f.deleted_at": nil}).
		GroupBy("dv.name").
		OrderBy("count DESC").
		Limit(20)

	return r.collectRegionStats(ctx, applyScope(b, scope))
}

func (r *DashboardRepository) GetDistrictStats(ctx context.Context, scope sq.Sqlizer) ([]types.DashboardRegionStat, error) {
	b := sq.Select(
		"ds.name as name",
		"COUNT(f.id) as count",
		"COUNT(f.id) FILTER (WHERE f.status = 'IN_PROGRESS') as in_progress_count",
	).From("files f").
		LeftJoin("users cu ON f.created_by = cu.id").
		Join("districts ds ON ds.id = COALESCE(f.district_id, cu.district_id)").
		Where(sq.Eq{"f.deleted_at": nil}).
		GroupBy("ds.name").
		OrderBy("count DESC")

	return r.collectRegionStats(ctx, applyScope(b, scope))
}

func (r *DashboardRepository) GetAssignedRoleStats(ctx context.Context, scope sq.Sqlizer) ([]types.DashboardRoleStat, error) {
	// Only assigned files participate in the role breakdown.
	b := sq.Select(
		"ro.code as role_code",
		"ro.name as role_name",
		"COUNT(f.id) as count",
		"COUNT(f.id) FILTER (WHERE f.status = 'IN_PROGRESS') as in_progress_count",
		"COUNT(f.id) FILTER (WHERE ws.state = 'EXTERNAL') as external_count",
	).From("files f").
		Join("users a ON f.assigned_to = a.id").
		Join("roles ro ON a.role_id = ro.id").
		LeftJoin("workflow_states ws ON ws.file_id = f.id").
		Where(sq.Eq{"f.deleted_at": nil}).
		Where("f.assigned_to IS NOT NULL").
		GroupBy("ro.code", "ro.name").
		OrderBy("count DESC")

	b = applyScope(b, scope)
	query, args, err := b.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return pgx.CollectRows(rows, pgx.RowToStructByNameLax[types.DashboardRoleStat])
}

func (r *DashboardRepository) GetCountByStatus(ctx context.Context, scope sq.Sqlizer) ([]types.DashboardCountByGroup, error) {
	b := sq.Select("f.status as group_name", "COUNT(f.id) as count").
		From("files f").
		Where(sq.Eq{"f.deleted_at": nil}).
		GroupBy("f.status").
		OrderBy("count DESC")

	return r.collectCountByGroup(ctx, applyScope(b, scope))
}

func (r *DashboardRepository) GetCountByPriority(ctx context.Context, scope sq.Sqlizer) ([]types.DashboardCountByGroup, error) {
	b := sq.Select(
		"COALESCE(NULLIF(f.priority, ''), 'normal') as group_name",
		"COUNT(f.id) as count",
	).From("files f").
		Where(sq.Eq{"f.deleted_at": nil}).
		GroupBy("COALESCE(NULLIF(f.priority, ''), 'normal')").
		OrderBy("count DESC")

	return r.collectCountByGroup(ctx, applyScope(b, scope))
}

func (r *DashboardRepository) GetCountByCategory(ctx context.Context, scope sq.Sqlizer) ([]types.DashboardCountByGroup, error) {
	b := sq.Select("f.category as group_name", "COUNT(f.id) as count").
		From("files f").
		Where(sq.Eq{"f.deleted_at": nil}).
		Where("f.category IS NOT NULL AND f.category != ''").
		GroupBy("f.category").
		OrderBy("count DESC")

	return r.collectCountByGroup(ctx, applyScope(b, scope))
}

func (r *DashboardRepository) GetRecentActivity(ctx context.Context, scope sq.Sqlizer) ([]types.DashboardActivityPoint, error) {
	b := sq.Select(
		"to_char(date_trunc('day', f.created_at AT TIME ZONE 'UTC'), 'DD.MM') as label",
		"COUNT(*) as value",
	).From("files f").
		Where("f.created_at >= NOW() - INTERVAL '7 days'").
		Where(sq.Eq{"f.deleted_at": nil}).
		GroupBy("date_trunc('day', f.created_at AT TIME ZONE 'UTC')").
		OrderBy("date_trunc('day', f.created_at AT TIME ZONE 'UTC')")

	b = applyScope(b, scope)
	query, args, err := b.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return pgx.CollectRows(rows, pgx.RowToStructByName[types.DashboardActivityPoint])
}

func (r *DashboardRepository) GetWorkflowStateStats(ctx context.Context, scope sq.Sqlizer) ([]types.DashboardWorkflowStateStat, error) {
	b := sq.Select(
		"COALESCE(ws.state, 'TEAM_INTERNAL') as state",
		"COUNT(f.id) as total",
		"COUNT(f.id) FILTER (WHERE f.status = 'IN_PROGRESS') as in_progress",
	).From("files f").
		LeftJoin("workflow_states ws ON ws.file_id = f.id").
		Where(sq.Eq{"f.deleted_at": nil}).
		GroupBy("COALESCE(ws.state, 'TEAM_INTERNAL')").
		OrderBy("total DESC")

	b = applyScope(b, scope)
	query, args, err := b.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return pgx.CollectRows(rows, pgx.RowToStructByName[types.DashboardWorkflowStateStat])
}

func (r *DashboardRepository) GetSLASummary(ctx context.Context, scope sq.Sqlizer) (*types.DashboardSLASummary, error) {
	// Deadline comparison uses "<" for "passed" throughout, so a deadline of
	// exactly NOW() lands in on_track and nowhere else.
	b := sq.Select(
		"COUNT(*) FILTER (WHERE f.sla_deadline IS NOT NULL)",
		"COUNT(*) FILTER (WHERE f.sla_breached)",
		"COUNT(*) FILTER (WHERE f.sla_deadline IS NOT NULL AND NOT f.sla_breached AND NOT f.sla_paused AND f.sla_deadline >= NOW())",
		"COUNT(*) FILTER (WHERE f.sla_paused)",
		"COALESCE(AVG(EXTRACT(EPOCH FROM (f.sla_deadline - NOW())) / 3600.0) FILTER (WHERE f.sla_deadline IS NOT NULL AND NOT f.sla_breached), 0)",
	).From("files f").
		Where(sq.Eq{"f.deleted_at": nil})

	b = applyScope(b, scope)
	query, args, err := b.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	summary := &types.DashboardSLASummary{}
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&summary.FilesWithSLA, &summary.Breached, &summary.OnTrack,
		&summary.Paused, &summary.AvgHoursRemaining,
	)
	return summary, err
}

// drilldownSelect is the shared column set and joins of every drill-down.
func drilldownSelect() sq.SelectBuilder {
	return sq.Select(
		"f.id",
		"f.file_number",
		"f.subject",
		"f.status",
		"COALESCE(NULLIF(f.priority, ''), 'normal')",
		"d.name",
		"a.full_name",
		"ro.code",
		"ws.state",
		"f.sla_deadline",
		"f.created_at",
	).From("files f").
		LeftJoin("departments d ON f.department_id = d.id").
		LeftJoin("users a ON f.assigned_to = a.id").
		LeftJoin("roles ro ON a.role_id = ro.id").
		LeftJoin("workflow_states ws ON ws.file_id = f.id").
		Where(sq.Eq{"f.deleted_at": nil}).
		Limit(drilldownLimit)
}

func (r *DashboardRepository) collectFileRecords(ctx context.Context, b sq.SelectBuilder, withApprover bool) ([]DashboardFileRecord, error) {
	query, args, err := b.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []DashboardFileRecord
	for rows.Next() {
		var rec DashboardFileRecord
		dest := []interface{}{
			&rec.ID, &rec.FileNumber, &rec.Subject, &rec.Status, &rec.Priority,
			&rec.DepartmentName, &rec.AssigneeName, &rec.AssigneeRole,
			&rec.WorkflowState, &rec.SLADeadline, &rec.CreatedAt,
		}
		if withApprover {
			dest = append(dest, &rec.ApprovedBy)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *DashboardRepository) GetFilesByStatus(ctx context.Context, scope sq.Sqlizer, status string) ([]DashboardFileRecord, error) {
	b := drilldownSelect().
		Where(sq.Eq{"f.status": status}).
		OrderBy("f.created_at DESC")
	return r.collectFileRecords(ctx, applyScope(b, scope), false)
}

func (r *DashboardRepository) GetPendingFiles(ctx context.Context, scope sq.Sqlizer) ([]DashboardFileRecord, error) {
	b := drilldownSelect().
		Where(sq.Eq{"f.status": "PENDING_APPROVAL"}).
		OrderBy("f.created_at DESC")
	return r.collectFileRecords(ctx, applyScope(b, scope), false)
}

func (r *DashboardRepository) GetApprovedFiles(ctx context.Context, scope sq.Sqlizer) ([]DashboardFileRecord, error) {
	// One approver per file: the most recent active signature.
	b := drilldownSelect().
		Column(`(SELECT su.full_name FROM file_signatures fs
			JOIN users su ON fs.signed_by = su.id
			WHERE fs.file_id = f.id AND fs.is_active
			ORDER BY fs.signed_at DESC LIMIT 1)`).
		Where(sq.Eq{"f.status": "APPROVED"}).
		OrderBy("f.created_at DESC")
	return r.collectFileRecords(ctx, applyScope(b, scope), true)
}

func (r *DashboardRepository) GetOverdueFiles(ctx context.Context, scope sq.Sqlizer) ([]DashboardFileRecord, error) {
	b := drilldownSelect().
		Where("f.sla_breached").
		OrderBy("f.sla_deadline ASC NULLS LAST")
	return r.collectFileRecords(ctx, applyScope(b, scope), false)
}

func (r *DashboardRepository) GetAtRiskFiles(ctx context.Context, scope sq.Sqlizer) ([]DashboardFileRecord, error) {
	// Drill-down window: deadline strictly in the future, inside 72 hours,
	// breach flag not set. Intentionally different from the overall at_risk
	// counter.
	b := drilldownSelect().
		Where("f.sla_deadline IS NOT NULL").
		Where("NOT f.sla_breached").
		Where("f.sla_deadline > NOW()").
		Where("f.sla_deadline < NOW() + INTERVAL '72 hours'").
		OrderBy("f.sla_deadline ASC")
	return r.collectFileRecords(ctx, applyScope(b, scope), false)
}

func (r *DashboardRepository) collectCountByGroup(ctx context.Context, b sq.SelectBuilder) ([]types.DashboardCountByGroup, error) {
	query, args, err := b.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return pgx.CollectRows(rows, pgx.RowToStructByName[types.DashboardCountByGroup])
}

func (r *DashboardRepository) collectRegionStats(ctx context.Context, b sq.SelectBuilder) ([]types.DashboardRegionStat, error) {
	query, args, err := b.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return pgx.CollectRows(rows, pgx.RowToStructByName[types.DashboardRegionStat])
}
