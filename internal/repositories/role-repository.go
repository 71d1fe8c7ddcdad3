package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"efiling-system/internal/entities"
	apperrors "efiling-system/pkg/errors"
	"efiling-system/pkg/types"
)

type RoleRepositoryInterface interface {
	GetRoles(ctx context.Context, filter types.Filter) ([]entities.Role, uint64, error)
	FindRoleByID(ctx context.Context, id uint64) (*entities.Role, error)
	CreateRole(ctx context.Context, role entities.Role) (uint64, error)
	UpdateRole(ctx context.Context, id uint64, patch RolePatch) error
	DeleteRole(ctx context.Context, id uint64) error

	GetRoleGroups(ctx context.Context) ([]entities.RoleGroup, error)
	CreateRoleGroup(ctx context.Context, group entities.RoleGroup) (uint64, error)
}

type RolePatch struct {
	Name        *string
	Code        *string
	Description *string
	RoleGroupID *uint64
	IsAdmin     *bool
}

type RoleRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRoleRepository(storage *pgxpool.Pool, logger *zap.Logger) RoleRepositoryInterface {
	return &RoleRepository{storage: storage, logger: logger}
}

const roleSelectColumns = `id, name, code, description, role_group_id, is_admin, created_at, updated_at`

func (r *RoleRepository) GetRoles(ctx context.Context, filter types.Filter) ([]entities.Role, uint64, error) {
	args := []interface{}{}
	where := "WHERE deleted_at IS NULL"
	if filter.Search != "" {
		where += " AND (name ILIKE $1 OR code ILIKE $1)"
		args = append(args, "%"+filter.Search+"%")
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, "SELECT COUNT(*) FROM roles "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Role{}, 0, nil
	}

	query := fmt.Sprintf("SELECT %s FROM roles %s ORDER BY code ASC", roleSelectColumns, where)
	if filter.WithPagination {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", filter.Limit, filter.Offset)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	roles, err := pgx.CollectRows(rows, pgx.RowToStructByName[entities.Role])
	if err != nil {
		return nil, 0, fmt.Errorf("collecting roles: %w", err)
	}
	return roles, total, nil
}

func (r *RoleRepository) FindRoleByID(ctx context.Context, id uint64) (*entities.Role, error) {
	query := fmt.Sprintf("SELECT %s FROM roles WHERE id = $1 AND deleted_at IS NULL", roleSelectColumns)
	rows, err := r.storage.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	role, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[entities.Role])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("collecting role: %w", err)
	}
	return &role, nil
}

func (r *RoleRepository) CreateRole(ctx context.Context, role entities.Role) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO roles (name, code, description, role_group_id, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW()) RETURNING id`,
		role.Name, role.Code, role.Description, role.RoleGroupID, role.IsAdmin,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting role: %w", err)
	}
	return id, nil
}

func (r *RoleRepository) UpdateRole(ctx context.Context, id uint64, patch RolePatch) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE roles SET
			name = COALESCE($2, name),
			code = COALESCE($3, code),
			description = COALESCE($4, description),
			role_group_id = COALESCE($5, role_group_id),
			is_admin = COALESCE($6, is_admin),
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`,
		id, patch.Name, patch.Code, patch.Description, patch.RoleGroupID, patch.IsAdmin)
	if err != nil {
		return fmt.Errorf("updating role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RoleRepository) DeleteRole(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE roles SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("deleting role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RoleRepository) GetRoleGroups(ctx context.Context) ([]entities.RoleGroup, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT id, name, description, created_at, updated_at
		FROM role_groups WHERE deleted_at IS NULL ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	groups, err := pgx.CollectRows(rows, pgx.RowToStructByName[entities.RoleGroup])
	if err != nil {
		return nil, fmt.Errorf("collecting role groups: %w", err)
	}
	return groups, nil
}

func (r *RoleRepository) CreateRoleGroup(ctx context.Context, group entities.RoleGroup) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO role_groups (name, description, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW()) RETURNING id`,
		group.Name, group.Description,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting role group: %w", err)
	}
	return id, nil
}
