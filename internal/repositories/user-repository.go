package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"efiling-system/internal/entities"
	apperrors "efiling-system/pkg/errors"
	"efiling-system/pkg/types"
)

const userSelectColumns = `u.id, u.full_name, u.email, u.role_id, r.code, r.is_admin, u.is_active,
	u.department_id, u.district_id, u.town_id, u.division_id, u.created_at, u.updated_at`

var userAllowedFilterFields = map[string]string{
	"role_id":       "u.role_id",
	"department_id": "u.department_id",
	"district_id":   "u.district_id",
	"is_active":     "u.is_active",
}

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error)
	FindUserByID(ctx context.Context, id uint64) (*entities.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(
		&u.ID, &u.FullName, &u.Email, &u.RoleID, &u.RoleCode, &u.Admin, &u.IsActive,
		&u.DepartmentID, &u.DistrictID, &u.TownID, &u.DivisionID,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users u
		JOIN roles r ON u.role_id = r.id
		WHERE u.id = $1 AND u.deleted_at IS NULL`, userSelectColumns)
	return scanUser(r.storage.QueryRow(ctx, query, id))
}

// FindUserByEmail also loads the password hash; it backs the login flow only.
func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := fmt.Sprintf(`SELECT %s, u.password FROM users u
		JOIN roles r ON u.role_id = r.id
		WHERE LOWER(u.email) = LOWER($1) AND u.deleted_at IS NULL`, userSelectColumns)

	var u entities.User
	err := r.storage.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.FullName, &u.Email, &u.RoleID, &u.RoleCode, &u.Admin, &u.IsActive,
		&u.DepartmentID, &u.DistrictID, &u.TownID, &u.DivisionID,
		&u.CreatedAt, &u.UpdatedAt, &u.Password,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error) {
	conditions := []string{"u.deleted_at IS NULL"}
	args := []interface{}{}
	argCounter := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(u.full_name ILIKE $%d OR u.email ILIKE $%d)", argCounter, argCounter))
		args = append(args, "%"+filter.Search+"%")
		argCounter++
	}
	for key, value := range filter.Filter {
		if dbColumn, ok := userAllowedFilterFields[key]; ok {
			conditions = append(conditions, fmt.Sprintf("%s = $%d", dbColumn, argCounter))
			args = append(args, value)
			argCounter++
		}
	}
	whereClause := "WHERE " + strings.Join(conditions, " AND ")

	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM users u %s", whereClause)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.User{}, 0, nil
	}

	limitClause := ""
	if filter.WithPagination {
		limitClause = fmt.Sprintf("LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	query := fmt.Sprintf(`SELECT %s FROM users u
		JOIN roles r ON u.role_id = r.id
		%s ORDER BY u.full_name ASC %s`, userSelectColumns, whereClause, limitClause)

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *u)
	}
	return users, total, rows.Err()
}
