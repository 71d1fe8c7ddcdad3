package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForRoleCode(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"EE-KARACHI", LevelExecutiveEngineer},
		{"XEN-WEST", LevelExecutiveEngineer},
		{"SE-NORTH", LevelSuperintendingEngineer},
		{"SE", LevelSuperintendingEngineer},
		{"CE-HQ", LevelChiefEngineer},
		{"COO", LevelCOO},
		{"CEO", LevelCEO},
		// strict equality for CEO: anything longer falls through to the CE prefix
		{"CEO_ASSISTANT", LevelChiefEngineer},
		{"CFO", LevelCFO},
		{"CFO-FINANCE", LevelCFO},
		{"CLERK", LevelOther},
		{"", LevelOther},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, LevelForRoleCode(tc.code), "code %q", tc.code)
	}
}

func TestLevelRankOrdering(t *testing.T) {
	ordered := []string{
		LevelExecutiveEngineer,
		LevelSuperintendingEngineer,
		LevelChiefEngineer,
		LevelCOO,
		LevelCEO,
		LevelCFO,
		LevelOther,
	}
	for i := 1; i < len(ordered); i++ {
		assert.Less(t, LevelRank(ordered[i-1]), LevelRank(ordered[i]))
	}
	assert.Greater(t, LevelRank("No Such Level"), LevelRank(LevelOther))
}
