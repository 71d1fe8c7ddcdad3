package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"efiling-system/internal/entities"
	apperrors "efiling-system/pkg/errors"
)

// GeographyRepositoryInterface serves the four location dictionaries. They are
// small reference tables, so list operations return everything unpaginated.
type GeographyRepositoryInterface interface {
	GetZones(ctx context.Context) ([]entities.Zone, error)
	CreateZone(ctx context.Context, zone entities.Zone) (uint64, error)
	UpdateZone(ctx context.Context, id uint64, name, code *string) error
	DeleteZone(ctx context.Context, id uint64) error

	GetDistricts(ctx context.Context, zoneID *uint64) ([]entities.District, error)
	CreateDistrict(ctx context.Context, district entities.District) (uint64, error)
	UpdateDistrict(ctx context.Context, id uint64, name *string, zoneID *uint64) error
	DeleteDistrict(ctx context.Context, id uint64) error

	GetTowns(ctx context.Context, districtID *uint64) ([]entities.Town, error)
	CreateTown(ctx context.Context, town entities.Town) (uint64, error)
	UpdateTown(ctx context.Context, id uint64, name *string, districtID *uint64) error
	DeleteTown(ctx context.Context, id uint64) error

	GetDivisions(ctx context.Context, zoneID *uint64) ([]entities.Division, error)
	CreateDivision(ctx context.Context, division entities.Division) (uint64, error)
	UpdateDivision(ctx context.Context, id uint64, name *string, zoneID *uint64) error
	DeleteDivision(ctx context.Context, id uint64) error
}

type GeographyRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewGeographyRepository(storage *pgxpool.Pool, logger *zap.Logger) GeographyRepositoryInterface {
	return &GeographyRepository{storage: storage, logger: logger}
}

func (r *GeographyRepository) softDelete(ctx context.Context, table string, id uint64) error {
	query := fmt.Sprintf(`UPDATE %s SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, table)
	tag, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *GeographyRepository) GetZones(ctx context.Context) ([]entities.Zone, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT id, name, code, created_at, updated_at
		FROM zones WHERE deleted_at IS NULL ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	zones, err := pgx.CollectRows(rows, pgx.RowToStructByName[entities.Zone])
	if err != nil {
		return nil, fmt.Errorf("collecting zones: %w", err)
	}
	return zones, nil
}

func (r *GeographyRepository) CreateZone(ctx context.Context, zone entities.Zone) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO zones (name, code, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW()) RETURNING id`,
		zone.Name, zone.Code,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting zone: %w", err)
	}
	return id, nil
}

func (r *GeographyRepository) UpdateZone(ctx context.Context, id uint64, name, code *string) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE zones SET
			name = COALESCE($2, name),
			code = COALESCE($3, code),
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`,
		id, name, code)
	if err != nil {
		return fmt.Errorf("updating zone: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *GeographyRepository) DeleteZone(ctx context.Context, id uint64) error {
	return r.softDelete(ctx, "zones", id)
}

func (r *GeographyRepository) GetDistricts(ctx context.Context, zoneID *uint64) ([]entities.District, error) {
	query := `SELECT id, name, zone_id, created_at, updated_at
		FROM districts WHERE deleted_at IS NULL`
	args := []interface{}{}
	if zoneID != nil {
		query += " AND zone_id = $1"
		args = append(args, *zoneID)
	}
	query += " ORDER BY name ASC"

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	districts, err := pgx.CollectRows(rows, pgx.RowToStructByName[entities.District])
	if err != nil {
		return nil, fmt.Errorf("collecting districts: %w", err)
	}
	return districts, nil
}

func (r *GeographyRepository) CreateDistrict(ctx context.Context, district entities.District) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO districts (name, zone_id, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW()) RETURNING id`,
		district.Name, district.ZoneID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting district: %w", err)
	}
	return id, nil
}

func (r *GeographyRepository) UpdateDistrict(ctx context.Context, id uint64, name *string, zoneID *uint64) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE districts SET
			name = COALESCE($2, name),
			zone_id = COALESCE($3, zone_id),
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`,
		id, name, zoneID)
	if err != nil {
		return fmt.Errorf("updating district: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *GeographyRepository) DeleteDistrict(ctx context.Context, id uint64) error {
	return r.softDelete(ctx, "districts", id)
}

func (r *GeographyRepository) GetTowns(ctx context.Context, districtID *uint64) ([]entities.Town, error) {
	query := `SELECT id, name, district_id, created_at, updated_at
		FROM towns WHERE deleted_at IS NULL`
	args := []interface{}{}
	if districtID != nil {
		query += " AND district_id = $1"
		args = append(args, *districtID)
	}
	query += " ORDER BY name ASC"

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	towns, err := pgx.CollectRows(rows, pgx.RowToStructByName[entities.Town])
	if err != nil {
		return nil, fmt.Errorf("collecting towns: %w", err)
	}
	return towns, nil
}

func (r *GeographyRepository) CreateTown(ctx context.Context, town entities.Town) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO towns (name, district_id, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW()) RETURNING id`,
		town.Name, town.DistrictID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting town: %w", err)
	}
	return id, nil
}

func (r *GeographyRepository) UpdateTown(ctx context.Context, id uint64, name *string, districtID *uint64) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE towns SET
			name = COALESCE($2, name),
			district_id = COALESCE($3, district_id),
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`,
		id, name, districtID)
	if err != nil {
		return fmt.Errorf("updating town: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *GeographyRepository) DeleteTown(ctx context.Context, id uint64) error {
	return r.softDelete(ctx, "towns", id)
}

func (r *GeographyRepository) GetDivisions(ctx context.Context, zoneID *uint64) ([]entities.Division, error) {
	query := `SELECT id, name, zone_id, created_at, updated_at
		FROM divisions WHERE deleted_at IS NULL`
	args := []interface{}{}
	if zoneID != nil {
		query += " AND zone_id = $1"
		args = append(args, *zoneID)
	}
	query += " ORDER BY name ASC"

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	divisions, err := pgx.CollectRows(rows, pgx.RowToStructByName[entities.Division])
	if err != nil {
		return nil, fmt.Errorf("collecting divisions: %w", err)
	}
	return divisions, nil
}

func (r *GeographyRepository) CreateDivision(ctx context.Context, division entities.Division) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO divisions (name, zone_id, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW()) RETURNING id`,
		division.Name, division.ZoneID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting division: %w", err)
	}
	return id, nil
}

func (r *GeographyRepository) UpdateDivision(ctx context.Context, id uint64, name *string, zoneID *uint64) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE divisions SET
			name = COALESCE($2, name),
			zone_id = COALESCE($3, zone_id),
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`,
		id, name, zoneID)
	if err != nil {
		return fmt.Errorf("updating division: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *GeographyRepository) DeleteDivision(ctx context.Context, id uint64) error {
	return r.softDelete(ctx, "divisions", id)
}
