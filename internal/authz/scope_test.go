package authz

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"efiling-system/internal/entities"
)

func ptr(v uint64) *uint64 { return &v }

func renderScope(t *testing.T, scope sq.Sqlizer) (string, []interface{}) {
	t.Helper()
	b := sq.Select("COUNT(*)").From("files f")
	if scope != nil {
		b = b.Where(scope)
	}
	query, args, err := b.PlaceholderFormat(sq.Dollar).ToSql()
	require.NoError(t, err)
	return query, args
}

func TestBuildFileScope_AdminUnconstrained(t *testing.T) {
	actor := &entities.User{ID: 1, Admin: true, DepartmentID: ptr(5)}
	assert.Nil(t, BuildFileScope(actor, 1))
}

func TestBuildFileScope_FullProfile(t *testing.T) {
	actor := &entities.User{
		ID:           7,
		DepartmentID: ptr(5),
		DistrictID:   ptr(11),
		TownID:       ptr(21),
		DivisionID:   ptr(31),
	}
	query, args := renderScope(t, BuildFileScope(actor, 7))

	assert.Contains(t, query, "f.department_id = $1")
	assert.Contains(t, query, "f.district_id = $2")
	assert.Contains(t, query, "f.town_id = $3")
	assert.Contains(t, query, "f.division_id = $4")
	assert.Contains(t, query, "f.created_by = $5")
	assert.Contains(t, query, "f.assigned_to = $6")
	assert.Contains(t, query, " OR ")
	assert.Equal(t, []interface{}{uint64(5), uint64(11), uint64(21), uint64(31), uint64(7), uint64(7)}, args)
}

// A null geographic field on the caller must be skipped, never rendered as
// IS NULL: a caller with only a department must not see files from other
// departments whose district happens to be null or anything else.
func TestBuildFileScope_NullFieldsSkipped(t *testing.T) {
	actor := &entities.User{ID: 9, DepartmentID: ptr(5)}
	query, args := renderScope(t, BuildFileScope(actor, 9))

	assert.Contains(t, query, "f.department_id = $1")
	assert.NotContains(t, query, "district_id")
	assert.NotContains(t, query, "town_id")
	assert.NotContains(t, query, "division_id")
	assert.NotContains(t, query, "IS NULL")
	assert.Equal(t, []interface{}{uint64(5), uint64(9), uint64(9)}, args)
}

func TestBuildFileScope_UnresolvedProfileDegrades(t *testing.T) {
	query, args := renderScope(t, BuildFileScope(nil, 42))

	assert.Contains(t, query, "f.created_by = $1")
	assert.Contains(t, query, "f.assigned_to = $2")
	assert.NotContains(t, query, "department_id")
	assert.Equal(t, []interface{}{uint64(42), uint64(42)}, args)
}

func TestBuildFileScope_NoGeographyStillSeesOwn(t *testing.T) {
	actor := &entities.User{ID: 3}
	query, _ := renderScope(t, BuildFileScope(actor, 3))
	assert.Contains(t, query, "f.created_by = $1")
	assert.Contains(t, query, "f.assigned_to = $2")
}
