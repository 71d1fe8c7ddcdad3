package services

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"efiling-system/internal/authz"
	"efiling-system/internal/repositories"
	"efiling-system/pkg/constants"
	apperrors "efiling-system/pkg/errors"
	"efiling-system/pkg/types"
	"efiling-system/pkg/utils"
)

type DashboardService struct {
	repo     repositories.DashboardRepositoryInterface
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
	now      func() time.Time
}

func NewDashboardService(repo repositories.DashboardRepositoryInterface, userRepo repositories.UserRepositoryInterface, logger *zap.Logger) *DashboardService {
	return &DashboardService{repo: repo, userRepo: userRepo, logger: logger, now: time.Now}
}

// GetDashboardStats runs every breakdown under one shared visibility scope.
// The queries are independent read-only aggregates, so they fan out
// concurrently; any failure aborts the whole response.
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*types.DashboardStats, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	// An unresolved profile degrades the scope instead of failing the call.
	actor, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.logger.Warn("dashboard caller profile not resolved, using own-files scope",
			zap.Uint64("user_id", userID), zap.Error(err))
		actor = nil
	}
	scope := authz.BuildFileScope(actor, userID)

	var (
		overall    *types.DashboardOverall
		byWorkflow []types.DashboardCountByGroup
		byDept     []types.DashboardRegionStat
		byTown     []types.DashboardRegionStat
		byDivision []types.DashboardRegionStat
		byDistrict []types.DashboardRegionStat
		byRole     []types.DashboardRoleStat
		byStatus   []types.DashboardCountByGroup
		byPriority []types.DashboardCountByGroup
		byCategory []types.DashboardCountByGroup
		activity   []types.DashboardActivityPoint
		wfStats    []types.DashboardWorkflowStateStat
		sla        *types.DashboardSLASummary

		inProgressRows []repositories.DashboardFileRecord
		pendingRows    []repositories.DashboardFileRecord
		approvedRows   []repositories.DashboardFileRecord
		overdueRows    []repositories.DashboardFileRecord
		atRiskRows     []repositories.DashboardFileRecord

		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	addTask := func(fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}

	addTask(func() (err error) { overall, err = s.repo.GetOverallCounts(ctx, scope); return })
	addTask(func() (err error) { byWorkflow, err = s.repo.GetCountByWorkflowState(ctx, scope); return })
	addTask(func() (err error) { byDept, err = s.repo.GetDepartmentStats(ctx, scope); return })
	addTask(func() (err error) { byTown, err = s.repo.GetTownStats(ctx, scope); return })
	addTask(func() (err error) { byDivision, err = s.repo.GetDivisionStats(ctx, scope); return })
	addTask(func() (err error) { byDistrict, err = s.repo.GetDistrictStats(ctx, scope); return })
	addTask(func() (err error) { byRole, err = s.repo.GetAssignedRoleStats(ctx, scope); return })
	addTask(func() (err error) { byStatus, err = s.repo.GetCountByStatus(ctx, scope); return })
	addTask(func() (err error) { byPriority, err = s.repo.GetCountByPriority(ctx, scope); return })
	addTask(func() (err error) { byCategory, err = s.repo.GetCountByCategory(ctx, scope); return })
	addTask(func() (err error) { activity, err = s.repo.GetRecentActivity(ctx, scope); return })
	addTask(func() (err error) { wfStats, err = s.repo.GetWorkflowStateStats(ctx, scope); return })
	addTask(func() (err error) { sla, err = s.repo.GetSLASummary(ctx, scope); return })
	addTask(func() (err error) {
		inProgressRows, err = s.repo.GetFilesByStatus(ctx, scope, constants.StatusInProgress)
		return
	})
	addTask(func() (err error) { pendingRows, err = s.repo.GetPendingFiles(ctx, scope); return })
	addTask(func() (err error) { approvedRows, err = s.repo.GetApprovedFiles(ctx, scope); return })
	addTask(func() (err error) { overdueRows, err = s.repo.GetOverdueFiles(ctx, scope); return })
	addTask(func() (err error) { atRiskRows, err = s.repo.GetAtRiskFiles(ctx, scope); return })

	wg.Wait()

	if len(errs) > 0 {
		s.logger.Error("dashboard aggregation failed", zap.Error(errs[0]), zap.Int("failed_queries", len(errs)))
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, "failed to load dashboard statistics", errs[0])
	}

	now := s.now()
	stats := &types.DashboardStats{
		Overall: *overall,
		DetailedBreakdowns: types.DashboardDrilldowns{
			InProgress: annotateRows(inProgressRows, func(rec repositories.DashboardFileRecord, row *types.DashboardFileRow) {}),
			Pending: annotateRows(pendingRows, func(rec repositories.DashboardFileRecord, row *types.DashboardFileRow) {
				row.PendingReason = pendingReason(rec)
			}),
			Approved: annotateRows(approvedRows, func(rec repositories.DashboardFileRecord, row *types.DashboardFileRow) {
				if rec.ApprovedBy != nil {
					row.ApprovedBy = *rec.ApprovedBy
				}
			}),
			Overdue: annotateRows(overdueRows, func(rec repositories.DashboardFileRecord, row *types.DashboardFileRow) {
				row.OverdueReason = overdueReason(rec.SLADeadline, now)
			}),
			AtRisk: annotateRows(atRiskRows, func(rec repositories.DashboardFileRecord, row *types.DashboardFileRow) {
				row.AtRiskReason = atRiskReason(rec.SLADeadline, now)
			}),
		},
		ByWorkflowState: emptyIfNil(byWorkflow),
		ByDepartment:    emptyIfNil(byDept),
		ByTown:          emptyIfNil(byTown),
		ByDivision:      emptyIfNil(byDivision),
		ByDistrict:      emptyIfNil(byDistrict),
		ByAssignedRole:  emptyIfNil(byRole),
		ByLevel:         rollUpLevels(byRole),
		ByStatus:        emptyIfNil(byStatus),
		ByPriority:      emptyIfNil(byPriority),
		ByCategory:      emptyIfNil(byCategory),
		RecentActivity:  fillMissingDays(activity, now),
		WorkflowDetails: buildWorkflowDetails(wfStats),
		SLA:             *sla,
	}
	return stats, nil
}

func emptyIfNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}

func annotateRows(records []repositories.DashboardFileRecord, annotate func(repositories.DashboardFileRecord, *types.DashboardFileRow)) []types.DashboardFileRow {
	rows := make([]types.DashboardFileRow, 0, len(records))
	for _, rec := range records {
		row := types.DashboardFileRow{
			ID:          rec.ID,
			FileNumber:  rec.FileNumber,
			Subject:     rec.Subject,
			Status:      rec.Status,
			Priority:    rec.Priority,
			SLADeadline: rec.SLADeadline,
			CreatedAt:   rec.CreatedAt,
		}
		if rec.DepartmentName != nil {
			row.DepartmentName = *rec.DepartmentName
		}
		if rec.AssigneeName != nil {
			row.AssigneeName = *rec.AssigneeName
		}
		annotate(rec, &row)
		rows = append(rows, row)
	}
	return rows
}

// pendingReason explains why a file waits for approval, in priority order:
// external wait, unassigned, role-specific wording, generic fallback.
func pendingReason(rec repositories.DashboardFileRecord) string {
	if rec.WorkflowState != nil && *rec.WorkflowState == constants.WorkflowExternal {
		return "Waiting for external approval"
	}
	if rec.AssigneeName == nil {
		return "Not yet assigned"
	}
	if rec.AssigneeRole != nil {
		code := *rec.AssigneeRole
		switch code {
		case "COO":
			return "Waiting for COO approval"
		case "CEO":
			return "Waiting for CEO approval"
		}
		switch {
		case strings.HasPrefix(code, "SE"):
			return "Waiting for Superintending Engineer approval"
		case strings.HasPrefix(code, "CE"):
			return "Waiting for Chief Engineer approval"
		}
	}
	return "Waiting for approval"
}

// overdueReason renders the lateness of a breached file. The "within SLA"
// branch should not occur given the drill-down filter but must not crash.
func overdueReason(deadline *time.Time, now time.Time) string {
	if deadline == nil {
		return "No deadline set"
	}
	if deadline.Before(now) {
		hours := int64(math.Round(now.Sub(*deadline).Hours()))
		return fmt.Sprintf("Deadline passed %d hours ago", hours)
	}
	return "Within SLA"
}

// atRiskReason buckets by hours remaining: <24h, <48h, else approaching.
func atRiskReason(deadline *time.Time, now time.Time) string {
	if deadline == nil {
		return "Approaching deadline"
	}
	remaining := deadline.Sub(now).Hours()
	switch {
	case remaining < 24:
		return "Less than 24 hours remaining"
	case remaining < 48:
		return "Less than 48 hours remaining"
	}
	return "Approaching deadline"
}

// rollUpLevels folds per-role counters into seniority tiers and orders them
// by the fixed rank.
func rollUpLevels(roleStats []types.DashboardRoleStat) []types.DashboardLevelStat {
	byLevel := make(map[string]*types.DashboardLevelStat)
	for _, rs := range roleStats {
		level := constants.LevelForRoleCode(rs.RoleCode)
		agg, ok := byLevel[level]
		if !ok {
			agg = &types.DashboardLevelStat{Level: level}
			byLevel[level] = agg
		}
		agg.Count += rs.Count
		agg.InProgressCount += rs.InProgressCount
		agg.ExternalCount += rs.ExternalCount
	}

	out := make([]types.DashboardLevelStat, 0, len(byLevel))
	for _, agg := range byLevel {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool {
		return constants.LevelRank(out[i].Level) < constants.LevelRank(out[j].Level)
	})
	return out
}

func buildWorkflowDetails(stats []types.DashboardWorkflowStateStat) types.DashboardWorkflowDetails {
	details := types.DashboardWorkflowDetails{States: emptyIfNil(stats)}
	for _, st := range stats {
		details.InProgress += st.InProgress
		switch st.State {
		case constants.WorkflowTeamInternal:
			details.WithinTeam = st.Total
		case constants.WorkflowExternal:
			details.External = st.Total
		case constants.WorkflowReturnedToCreator:
			details.ReturnedToCreator = st.Total
		}
	}
	return details
}

// fillMissingDays pads the trailing 7-day chart with zero points so the
// consumer always gets a full week. Labels are generated in UTC to line up
// with the UTC day buckets the repository groups by.
func fillMissingDays(data []types.DashboardActivityPoint, now time.Time) []types.DashboardActivityPoint {
	dataMap := make(map[string]int64, len(data))
	for _, p := range data {
		dataMap[p.Label] = p.Value
	}

	result := make([]types.DashboardActivityPoint, 0, 7)
	start := now.UTC().AddDate(0, 0, -6)
	for i := 0; i < 7; i++ {
		label := start.AddDate(0, 0, i).Format("02.01")
		result = append(result, types.DashboardActivityPoint{Label: label, Value: dataMap[label]})
	}
	return result
}
