package repositories

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"efiling-system/internal/entities"
)

func registerFilter(from time.Time) entities.ReportFilter {
	filter := entities.ReportFilter{}
	if !from.IsZero() {
		filter.DateFrom = &from
		filter.DepartmentIDs = []uint64{2, 3}
	}
	return filter
}

func TestReportSelect_PriorityFallsBackForLegacyRows(t *testing.T) {
	query, _, err := reportSelect().ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "COALESCE(NULLIF(f.priority, ''), 'normal') AS priority")
}

func TestReportConditions_AppliesScopeAndFilters(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	scope := sq.Eq{"f.created_by": 7}

	query, args, err := reportSelect().
		Where(reportConditions(registerFilter(from), scope)).
		ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "f.deleted_at IS NULL")
	assert.Contains(t, query, "f.created_by =")
	assert.Contains(t, query, "f.created_at >=")
	assert.Contains(t, query, "f.department_id IN")
	assert.Len(t, args, 4)
}

func TestReportConditions_NilScopeAddsNoRestriction(t *testing.T) {
	query, _, err := reportSelect().
		Where(reportConditions(registerFilter(time.Time{}), nil)).
		ToSql()
	require.NoError(t, err)

	assert.NotContains(t, query, "f.created_by")
}
