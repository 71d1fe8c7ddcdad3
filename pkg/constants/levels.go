package constants

import "strings"

// Engineer seniority tiers derived from role codes. Exact matches are checked
// before prefixes, so "CEO" never falls into the "CE" bucket while
// "CEO_ASSISTANT" does (strict equality fails, prefix "CE" then applies).
const (
	LevelExecutiveEngineer      = "Executive Engineer"
	LevelSuperintendingEngineer = "Superintending Engineer"
	LevelChiefEngineer          = "Chief Engineer"
	LevelCOO                    = "COO"
	LevelCEO                    = "CEO"
	LevelCFO                    = "Chief Financial Officer"
	LevelOther                  = "Other"
)

// levelRanks fixes the seniority order used when sorting by-level breakdowns.
var levelRanks = map[string]int{
	LevelExecutiveEngineer:      1,
	LevelSuperintendingEngineer: 2,
	LevelChiefEngineer:          3,
	LevelCOO:                    4,
	LevelCEO:                    5,
	LevelCFO:                    6,
	LevelOther:                  7,
}

// LevelForRoleCode classifies a role code into a seniority tier.
func LevelForRoleCode(code string) string {
	switch code {
	case "COO":
		return LevelCOO
	case "CEO":
		return LevelCEO
	}
	switch {
	case strings.HasPrefix(code, "EE"), strings.HasPrefix(code, "XEN"):
		return LevelExecutiveEngineer
	case strings.HasPrefix(code, "SE"):
		return LevelSuperintendingEngineer
	case strings.HasPrefix(code, "CFO"):
		return LevelCFO
	case strings.HasPrefix(code, "CE"):
		return LevelChiefEngineer
	}
	return LevelOther
}

// LevelRank returns the sort position of a level; unknown labels sort last.
func LevelRank(level string) int {
	if r, ok := levelRanks[level]; ok {
		return r
	}
	return len(levelRanks) + 1
}
