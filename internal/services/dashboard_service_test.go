package services

import (
	"context"
	"sync"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"efiling-system/internal/entities"
	"efiling-system/internal/repositories"
	apperrors "efiling-system/pkg/errors"
	"efiling-system/pkg/constants"
	"efiling-system/pkg/contextkeys"
	"efiling-system/pkg/types"
)

// stubDashboardRepo records every scope it is handed so tests can verify the
// predicate is shared across all aggregation passes.
type stubDashboardRepo struct {
	mu     sync.Mutex
	scopes []sq.Sqlizer

	overall   types.DashboardOverall
	roleStats []types.DashboardRoleStat
	wfStats   []types.DashboardWorkflowStateStat
	activity  []types.DashboardActivityPoint
	sla       types.DashboardSLASummary

	pending []repositories.DashboardFileRecord
	overdue []repositories.DashboardFileRecord
	atRisk  []repositories.DashboardFileRecord
}

func (s *stubDashboardRepo) record(scope sq.Sqlizer) {
	s.mu.Lock()
	s.scopes = append(s.scopes, scope)
	s.mu.Unlock()
}

func (s *stubDashboardRepo) GetOverallCounts(_ context.Context, scope sq.Sqlizer) (*types.DashboardOverall, error) {
	s.record(scope)
	o := s.overall
	return &o, nil
}

func (s *stubDashboardRepo) GetCountByWorkflowState(_ context.Context, scope sq.Sqlizer) ([]types.DashboardCountByGroup, error) {
	s.record(scope)
	return nil, nil
}

func (s *stubDashboardRepo) GetDepartmentStats(_ context.Context, scope sq.Sqlizer) ([]types.DashboardRegionStat, error) {
	s.record(scope)
	return nil, nil
}

func (s *stubDashboardRepo) GetTownStats(_ context.Context, scope sq.Sqlizer) ([]types.DashboardRegionStat, error) {
	s.record(scope)
	return nil, nil
}

func (s *stubDashboardRepo) GetDivisionStats(_ context.Context, scope sq.Sqlizer) ([]types.DashboardRegionStat, error) {
	s.record(scope)
	return nil, nil
}

func (s *stubDashboardRepo) GetDistrictStats(_ context.Context, scope sq.Sqlizer) ([]types.DashboardRegionStat, error) {
	s.record(scope)
	return nil, nil
}

func (s *stubDashboardRepo) GetAssignedRoleStats(_ context.Context, scope sq.Sqlizer) ([]types.DashboardRoleStat, error) {
	s.record(scope)
	return s.roleStats, nil
}

func (s *stubDashboardRepo) GetCountByStatus(_ context.Context, scope sq.Sqlizer) ([]types.DashboardCountByGroup, error) {
	s.record(scope)
	return nil, nil
}

func (s *stubDashboardRepo) GetCountByPriority(_ context.Context, scope sq.Sqlizer) ([]types.DashboardCountByGroup, error) {
	s.record(scope)
	return nil, nil
}

func (s *stubDashboardRepo) GetCountByCategory(_ context.Context, scope sq.Sqlizer) ([]types.DashboardCountByGroup, error) {
	s.record(scope)
	return nil, nil
}

func (s *stubDashboardRepo) GetRecentActivity(_ context.Context, scope sq.Sqlizer) ([]types.DashboardActivityPoint, error) {
	s.record(scope)
	return s.activity, nil
}

func (s *stubDashboardRepo) GetWorkflowStateStats(_ context.Context, scope sq.Sqlizer) ([]types.DashboardWorkflowStateStat, error) {
	s.record(scope)
	return s.wfStats, nil
}

func (s *stubDashboardRepo) GetSLASummary(_ context.Context, scope sq.Sqlizer) (*types.DashboardSLASummary, error) {
	s.record(scope)
	sla := s.sla
	return &sla, nil
}

func (s *stubDashboardRepo) GetFilesByStatus(_ context.Context, scope sq.Sqlizer, _ string) ([]repositories.DashboardFileRecord, error) {
	s.record(scope)
	return nil, nil
}

func (s *stubDashboardRepo) GetPendingFiles(_ context.Context, scope sq.Sqlizer) ([]repositories.DashboardFileRecord, error) {
	s.record(scope)
	return s.pending, nil
}

func (s *stubDashboardRepo) GetApprovedFiles(_ context.Context, scope sq.Sqlizer) ([]repositories.DashboardFileRecord, error) {
	s.record(scope)
	return nil, nil
}

func (s *stubDashboardRepo) GetOverdueFiles(_ context.Context, scope sq.Sqlizer) ([]repositories.DashboardFileRecord, error) {
	s.record(scope)
	return s.overdue, nil
}

func (s *stubDashboardRepo) GetAtRiskFiles(_ context.Context, scope sq.Sqlizer) ([]repositories.DashboardFileRecord, error) {
	s.record(scope)
	return s.atRisk, nil
}

type stubUserRepo struct {
	user *entities.User
	err  error
}

func (s *stubUserRepo) GetUsers(context.Context, types.Filter) ([]entities.User, uint64, error) {
	return nil, 0, nil
}

func (s *stubUserRepo) FindUserByID(context.Context, uint64) (*entities.User, error) {
	return s.user, s.err
}

func (s *stubUserRepo) FindUserByEmail(context.Context, string) (*entities.User, error) {
	return s.user, s.err
}

func authedCtx(userID uint64) context.Context {
	return context.WithValue(context.Background(), contextkeys.UserIDKey, userID)
}

func strptr(s string) *string       { return &s }
func timeptr(t time.Time) *time.Time { return &t }

func TestGetDashboardStats_SharedScopeAcrossAllQueries(t *testing.T) {
	deptID := uint64(5)
	repo := &stubDashboardRepo{}
	userRepo := &stubUserRepo{user: &entities.User{ID: 7, DepartmentID: &deptID}}

	svc := NewDashboardService(repo, userRepo, zap.NewNop())
	_, err := svc.GetDashboardStats(authedCtx(7))
	require.NoError(t, err)

	require.Len(t, repo.scopes, 18, "every aggregation pass must run")
	wantSQL, wantArgs, err := repo.scopes[0].ToSql()
	require.NoError(t, err)
	for i, scope := range repo.scopes {
		require.NotNil(t, scope, "non-admin scope must never be nil")
		gotSQL, gotArgs, err := scope.ToSql()
		require.NoError(t, err)
		assert.Equal(t, wantSQL, gotSQL, "query %d must share the scope predicate", i)
		assert.Equal(t, wantArgs, gotArgs)
	}
}

func TestGetDashboardStats_AdminScopeIsNil(t *testing.T) {
	repo := &stubDashboardRepo{}
	userRepo := &stubUserRepo{user: &entities.User{ID: 1, Admin: true}}

	svc := NewDashboardService(repo, userRepo, zap.NewNop())
	stats, err := svc.GetDashboardStats(authedCtx(1))
	require.NoError(t, err)

	for i, scope := range repo.scopes {
		assert.Nil(t, scope, "admin scope must be unconstrained (query %d)", i)
	}
	// empty database: every breakdown present and empty, never null
	assert.Equal(t, int64(0), stats.Overall.TotalFiles)
	assert.NotNil(t, stats.ByDepartment)
	assert.Empty(t, stats.ByDepartment)
	assert.NotNil(t, stats.DetailedBreakdowns.InProgress)
	assert.Empty(t, stats.DetailedBreakdowns.Overdue)
	assert.Len(t, stats.RecentActivity, 7)
}

func TestGetDashboardStats_UnresolvedProfileDegrades(t *testing.T) {
	repo := &stubDashboardRepo{}
	userRepo := &stubUserRepo{err: apperrors.ErrUserNotFound}

	svc := NewDashboardService(repo, userRepo, zap.NewNop())
	_, err := svc.GetDashboardStats(authedCtx(42))
	require.NoError(t, err, "missing profile must degrade, not fail")

	require.NotEmpty(t, repo.scopes)
	sql, args, err := repo.scopes[0].ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "f.created_by")
	assert.Contains(t, sql, "f.assigned_to")
	assert.NotContains(t, sql, "department_id")
	assert.Equal(t, []interface{}{uint64(42), uint64(42)}, args)
}

func TestGetDashboardStats_Unauthenticated(t *testing.T) {
	svc := NewDashboardService(&stubDashboardRepo{}, &stubUserRepo{}, zap.NewNop())
	_, err := svc.GetDashboardStats(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestGetDashboardStats_ReasonAnnotations(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := &stubDashboardRepo{
		pending: []repositories.DashboardFileRecord{
			{ID: 1, FileNumber: "F-1", AssigneeName: strptr("A"), AssigneeRole: strptr("SE-NORTH")},
			{ID: 2, FileNumber: "F-2"},
			{ID: 3, FileNumber: "F-3", AssigneeName: strptr("B"), AssigneeRole: strptr("CEO"),
				WorkflowState: strptr(constants.WorkflowExternal)},
		},
		overdue: []repositories.DashboardFileRecord{
			{ID: 4, FileNumber: "F-4", SLADeadline: timeptr(now.Add(-10 * time.Hour))},
			{ID: 5, FileNumber: "F-5"},
		},
		atRisk: []repositories.DashboardFileRecord{
			{ID: 6, FileNumber: "F-6", SLADeadline: timeptr(now.Add(20 * time.Hour))},
			{ID: 7, FileNumber: "F-7", SLADeadline: timeptr(now.Add(40 * time.Hour))},
			{ID: 8, FileNumber: "F-8", SLADeadline: timeptr(now.Add(70 * time.Hour))},
		},
	}
	userRepo := &stubUserRepo{user: &entities.User{ID: 1, Admin: true}}

	svc := NewDashboardService(repo, userRepo, zap.NewNop())
	svc.now = func() time.Time { return now }

	stats, err := svc.GetDashboardStats(authedCtx(1))
	require.NoError(t, err)

	pending := stats.DetailedBreakdowns.Pending
	require.Len(t, pending, 3)
	assert.Equal(t, "Waiting for Superintending Engineer approval", pending[0].PendingReason)
	assert.Equal(t, "Not yet assigned", pending[1].PendingReason)
	// external wait outranks the role-specific wording
	assert.Equal(t, "Waiting for external approval", pending[2].PendingReason)

	overdue := stats.DetailedBreakdowns.Overdue
	require.Len(t, overdue, 2)
	assert.Equal(t, "Deadline passed 10 hours ago", overdue[0].OverdueReason)
	assert.Equal(t, "No deadline set", overdue[1].OverdueReason)

	atRisk := stats.DetailedBreakdowns.AtRisk
	require.Len(t, atRisk, 3)
	assert.Equal(t, "Less than 24 hours remaining", atRisk[0].AtRiskReason)
	assert.Equal(t, "Less than 48 hours remaining", atRisk[1].AtRiskReason)
	assert.Equal(t, "Approaching deadline", atRisk[2].AtRiskReason)
}

func TestGetDashboardStats_LevelRollupOrdered(t *testing.T) {
	repo := &stubDashboardRepo{
		roleStats: []types.DashboardRoleStat{
			{RoleCode: "CEO", RoleName: "Chief Executive", Count: 2},
			{RoleCode: "SE-NORTH", RoleName: "SE North", Count: 5, InProgressCount: 3},
			{RoleCode: "SE-SOUTH", RoleName: "SE South", Count: 4, ExternalCount: 1},
			{RoleCode: "EE-01", RoleName: "EE 01", Count: 7},
			{RoleCode: "CLERK", RoleName: "Clerk", Count: 1},
		},
	}
	userRepo := &stubUserRepo{user: &entities.User{ID: 1, Admin: true}}

	svc := NewDashboardService(repo, userRepo, zap.NewNop())
	stats, err := svc.GetDashboardStats(authedCtx(1))
	require.NoError(t, err)

	levels := stats.ByLevel
	require.Len(t, levels, 4)
	assert.Equal(t, constants.LevelExecutiveEngineer, levels[0].Level)
	assert.Equal(t, int64(7), levels[0].Count)
	assert.Equal(t, constants.LevelSuperintendingEngineer, levels[1].Level)
	assert.Equal(t, int64(9), levels[1].Count)
	assert.Equal(t, int64(3), levels[1].InProgressCount)
	assert.Equal(t, int64(1), levels[1].ExternalCount)
	assert.Equal(t, constants.LevelCEO, levels[2].Level)
	assert.Equal(t, constants.LevelOther, levels[3].Level)
}

func TestGetDashboardStats_WorkflowDetails(t *testing.T) {
	repo := &stubDashboardRepo{
		wfStats: []types.DashboardWorkflowStateStat{
			{State: constants.WorkflowTeamInternal, Total: 10, InProgress: 4},
			{State: constants.WorkflowExternal, Total: 3, InProgress: 2},
			{State: constants.WorkflowReturnedToCreator, Total: 1},
		},
	}
	userRepo := &stubUserRepo{user: &entities.User{ID: 1, Admin: true}}

	svc := NewDashboardService(repo, userRepo, zap.NewNop())
	stats, err := svc.GetDashboardStats(authedCtx(1))
	require.NoError(t, err)

	details := stats.WorkflowDetails
	assert.Equal(t, int64(10), details.WithinTeam)
	assert.Equal(t, int64(3), details.External)
	assert.Equal(t, int64(1), details.ReturnedToCreator)
	assert.Equal(t, int64(6), details.InProgress)
	assert.Len(t, details.States, 3)
}

func TestFillMissingDays(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	points := fillMissingDays([]types.DashboardActivityPoint{
		{Label: "10.03", Value: 4},
		{Label: "08.03", Value: 2},
	}, now)

	require.Len(t, points, 7)
	assert.Equal(t, "04.03", points[0].Label)
	assert.Equal(t, int64(0), points[0].Value)
	assert.Equal(t, "08.03", points[4].Label)
	assert.Equal(t, int64(2), points[4].Value)
	assert.Equal(t, "10.03", points[6].Label)
	assert.Equal(t, int64(4), points[6].Value)
}

func TestFillMissingDays_LabelsFollowUTC(t *testing.T) {
	// 02:00 on 11.03 in UTC+5 is still 10.03 in UTC; labels must match the
	// UTC day buckets, not the server zone.
	zone := time.FixedZone("UTC+5", 5*60*60)
	now := time.Date(2026, 3, 11, 2, 0, 0, 0, zone)

	points := fillMissingDays([]types.DashboardActivityPoint{{Label: "10.03", Value: 1}}, now)

	require.Len(t, points, 7)
	assert.Equal(t, "04.03", points[0].Label)
	assert.Equal(t, "10.03", points[6].Label)
	assert.Equal(t, int64(1), points[6].Value)
}
