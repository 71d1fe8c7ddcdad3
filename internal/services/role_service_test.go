package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"efiling-system/internal/dto"
	"efiling-system/internal/entities"
	"efiling-system/internal/repositories"
	"efiling-system/pkg/types"
)

type stubRoleRepo struct {
	roles    []entities.Role
	getCalls int
}

func (s *stubRoleRepo) GetRoles(context.Context, types.Filter) ([]entities.Role, uint64, error) {
	s.getCalls++
	return s.roles, uint64(len(s.roles)), nil
}

func (s *stubRoleRepo) FindRoleByID(_ context.Context, id uint64) (*entities.Role, error) {
	return &entities.Role{ID: id}, nil
}

func (s *stubRoleRepo) CreateRole(context.Context, entities.Role) (uint64, error) { return 1, nil }
func (s *stubRoleRepo) UpdateRole(context.Context, uint64, repositories.RolePatch) error {
	return nil
}
func (s *stubRoleRepo) DeleteRole(context.Context, uint64) error { return nil }
func (s *stubRoleRepo) GetRoleGroups(context.Context) ([]entities.RoleGroup, error) {
	return nil, nil
}
func (s *stubRoleRepo) CreateRoleGroup(context.Context, entities.RoleGroup) (uint64, error) {
	return 1, nil
}

// memoryCache is an in-process stand-in for the redis cache repository.
type memoryCache struct {
	store map[string][]byte
}

func newMemoryCache() *memoryCache { return &memoryCache{store: map[string][]byte{}} }

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	payload, ok := c.store[key]
	if !ok {
		return repositories.ErrCacheMiss
	}
	return json.Unmarshal(payload, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = payload
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.store, key)
	}
	return nil
}

func TestGetRoles_CachesUnfilteredList(t *testing.T) {
	repo := &stubRoleRepo{roles: []entities.Role{{ID: 1, Code: "SE-NORTH"}}}
	svc := NewRoleService(repo, newMemoryCache(), time.Minute, zap.NewNop())

	_, total, err := svc.GetRoles(context.Background(), types.Filter{})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)

	_, _, err = svc.GetRoles(context.Background(), types.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.getCalls, "second unfiltered read must hit the cache")
}

func TestGetRoles_FilteredListSkipsCache(t *testing.T) {
	repo := &stubRoleRepo{}
	svc := NewRoleService(repo, newMemoryCache(), time.Minute, zap.NewNop())

	filter := types.Filter{Search: "SE"}
	_, _, err := svc.GetRoles(context.Background(), filter)
	require.NoError(t, err)
	_, _, err = svc.GetRoles(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.getCalls)
}

func TestCreateRole_InvalidatesCache(t *testing.T) {
	repo := &stubRoleRepo{roles: []entities.Role{{ID: 1, Code: "SE-NORTH"}}}
	cache := newMemoryCache()
	svc := NewRoleService(repo, cache, time.Minute, zap.NewNop())

	_, _, err := svc.GetRoles(context.Background(), types.Filter{})
	require.NoError(t, err)
	require.Contains(t, cache.store, rolesCacheKey)

	_, err = svc.CreateRole(context.Background(), dto.CreateRoleDTO{Name: "Chief Engineer East", Code: "CE-EAST"})
	require.NoError(t, err)
	assert.NotContains(t, cache.store, rolesCacheKey)
}
