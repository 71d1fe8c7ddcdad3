package services

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"efiling-system/internal/entities"
	"efiling-system/internal/repositories"
	"efiling-system/pkg/constants"
	"efiling-system/pkg/types"
)

type TeamLevelGroup struct {
	Level   string          `json:"level"`
	Members []entities.User `json:"members"`
}

type TeamService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewTeamService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) *TeamService {
	return &TeamService{userRepo: userRepo, logger: logger}
}

func (s *TeamService) GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error) {
	return s.userRepo.GetUsers(ctx, filter)
}

func (s *TeamService) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	return s.userRepo.FindUserByID(ctx, id)
}

// GetTeamByLevel groups active users into engineer seniority tiers, ordered
// junior to senior.
func (s *TeamService) GetTeamByLevel(ctx context.Context, filter types.Filter) ([]TeamLevelGroup, error) {
	filter.WithPagination = false
	users, _, err := s.userRepo.GetUsers(ctx, filter)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]entities.User)
	for _, user := range users {
		level := constants.LevelForRoleCode(user.RoleCode)
		grouped[level] = append(grouped[level], user)
	}

	groups := make([]TeamLevelGroup, 0, len(grouped))
	for level, members := range grouped {
		groups = append(groups, TeamLevelGroup{Level: level, Members: members})
	}
	sort.Slice(groups, func(i, j int) bool {
		return constants.LevelRank(groups[i].Level) < constants.LevelRank(groups[j].Level)
	})
	return groups, nil
}
