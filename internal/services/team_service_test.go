package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"efiling-system/internal/entities"
	"efiling-system/pkg/constants"
	"efiling-system/pkg/types"
)

type listUserRepo struct {
	stubUserRepo
	users []entities.User
}

func (s *listUserRepo) GetUsers(context.Context, types.Filter) ([]entities.User, uint64, error) {
	return s.users, uint64(len(s.users)), nil
}

func TestGetTeamByLevel_GroupsAndOrders(t *testing.T) {
	repo := &listUserRepo{users: []entities.User{
		{ID: 1, FullName: "A", RoleCode: "CEO"},
		{ID: 2, FullName: "B", RoleCode: "SE-NORTH"},
		{ID: 3, FullName: "C", RoleCode: "EE-Z1"},
		{ID: 4, FullName: "D", RoleCode: "SE-SOUTH"},
		{ID: 5, FullName: "E", RoleCode: "CLERK"},
		{ID: 6, FullName: "F", RoleCode: "XEN-Z3"},
	}}

	svc := NewTeamService(repo, zap.NewNop())
	groups, err := svc.GetTeamByLevel(context.Background(), types.Filter{})
	require.NoError(t, err)
	require.Len(t, groups, 4)

	// Junior to senior, Other last.
	assert.Equal(t, constants.LevelExecutiveEngineer, groups[0].Level)
	assert.Len(t, groups[0].Members, 2)
	assert.Equal(t, constants.LevelSuperintendingEngineer, groups[1].Level)
	assert.Len(t, groups[1].Members, 2)
	assert.Equal(t, constants.LevelCEO, groups[2].Level)
	assert.Equal(t, constants.LevelOther, groups[3].Level)
}
