package services

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"efiling-system/internal/dto"
	"efiling-system/internal/entities"
	"efiling-system/internal/repositories"
	apperrors "efiling-system/pkg/errors"
	"efiling-system/pkg/types"
)

const (
	rolesCacheKey      = "reference:roles"
	roleGroupsCacheKey = "reference:role_groups"
)

// RoleService caches the full role list in Redis; role dictionaries change
// rarely and every request classifies codes against them.
type RoleService struct {
	repo     repositories.RoleRepositoryInterface
	cache    repositories.CacheRepositoryInterface
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewRoleService(repo repositories.RoleRepositoryInterface, cache repositories.CacheRepositoryInterface, cacheTTL time.Duration, logger *zap.Logger) *RoleService {
	return &RoleService{repo: repo, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

func (s *RoleService) GetRoles(ctx context.Context, filter types.Filter) ([]entities.Role, uint64, error) {
	// Only the unfiltered list is cacheable.
	cacheable := filter.Search == "" && len(filter.Filter) == 0 && !filter.WithPagination
	if cacheable && s.cache != nil {
		var cached []entities.Role
		if err := s.cache.Get(ctx, rolesCacheKey, &cached); err == nil {
			return cached, uint64(len(cached)), nil
		}
	}

	roles, total, err := s.repo.GetRoles(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	if cacheable && s.cache != nil {
		if err := s.cache.Set(ctx, rolesCacheKey, roles, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache roles", zap.Error(err))
		}
	}
	return roles, total, nil
}

func (s *RoleService) FindRoleByID(ctx context.Context, id uint64) (*entities.Role, error) {
	return s.repo.FindRoleByID(ctx, id)
}

func (s *RoleService) CreateRole(ctx context.Context, payload dto.CreateRoleDTO) (*entities.Role, error) {
	id, err := s.repo.CreateRole(ctx, entities.Role{
		Name:        payload.Name,
		Code:        payload.Code,
		Description: payload.Description,
		RoleGroupID: payload.RoleGroupID,
		IsAdmin:     payload.IsAdmin,
	})
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, "failed to create role", err)
	}
	s.invalidate(ctx)
	return s.repo.FindRoleByID(ctx, id)
}

func (s *RoleService) UpdateRole(ctx context.Context, id uint64, payload dto.UpdateRoleDTO) (*entities.Role, error) {
	patch := repositories.RolePatch{
		Name:        payload.Name,
		Code:        payload.Code,
		Description: payload.Description,
		RoleGroupID: payload.RoleGroupID,
		IsAdmin:     payload.IsAdmin,
	}
	if err := s.repo.UpdateRole(ctx, id, patch); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.repo.FindRoleByID(ctx, id)
}

func (s *RoleService) DeleteRole(ctx context.Context, id uint64) error {
	if err := s.repo.DeleteRole(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *RoleService) GetRoleGroups(ctx context.Context) ([]entities.RoleGroup, error) {
	if s.cache != nil {
		var cached []entities.RoleGroup
		if err := s.cache.Get(ctx, roleGroupsCacheKey, &cached); err == nil {
			return cached, nil
		}
	}
	groups, err := s.repo.GetRoleGroups(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, roleGroupsCacheKey, groups, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache role groups", zap.Error(err))
		}
	}
	return groups, nil
}

func (s *RoleService) CreateRoleGroup(ctx context.Context, payload dto.CreateRoleGroupDTO) (uint64, error) {
	id, err := s.repo.CreateRoleGroup(ctx, entities.RoleGroup{
		Name:        payload.Name,
		Description: payload.Description,
	})
	if err != nil {
		return 0, apperrors.NewHttpError(http.StatusInternalServerError, "failed to create role group", err)
	}
	s.invalidate(ctx)
	return id, nil
}

func (s *RoleService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, rolesCacheKey, roleGroupsCacheKey); err != nil {
		s.logger.Warn("failed to invalidate role cache", zap.Error(err))
	}
}
