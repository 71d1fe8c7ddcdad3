package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedRoles(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding roles...")
	for _, role := range roleData {
		_, err := db.Exec(ctx,
			`INSERT INTO roles (name, code, is_admin, created_at, updated_at)
			VALUES ($1, $2, $3, NOW(), NOW())
			ON CONFLICT (code) DO NOTHING`,
			role.Name, role.Code, role.IsAdmin)
		if err != nil {
			return fmt.Errorf("seeding role %s: %w", role.Code, err)
		}
	}
	return nil
}

func seedDepartments(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding departments...")
	for _, department := range departmentData {
		_, err := db.Exec(ctx,
			`INSERT INTO departments (name, code, created_at, updated_at)
			VALUES ($1, $2, NOW(), NOW())
			ON CONFLICT (code) DO NOTHING`,
			department.Name, department.Code)
		if err != nil {
			return fmt.Errorf("seeding department %s: %w", department.Code, err)
		}
	}
	return nil
}

func seedZones(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding zones...")
	for _, zone := range zoneData {
		_, err := db.Exec(ctx,
			`INSERT INTO zones (name, code, created_at, updated_at)
			VALUES ($1, $2, NOW(), NOW())
			ON CONFLICT (code) DO NOTHING`,
			zone.Name, zone.Code)
		if err != nil {
			return fmt.Errorf("seeding zone %s: %w", zone.Code, err)
		}
	}
	return nil
}

func seedSLAMatrices(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding sla matrices...")
	for _, row := range slaMatrixData {
		var existing uint64
		err := db.QueryRow(ctx,
			`SELECT id FROM sla_matrices
			WHERE department_id IS NULL AND priority = $1 AND deleted_at IS NULL`,
			row.Priority).Scan(&existing)
		if err == nil {
			continue
		}
		_, err = db.Exec(ctx,
			`INSERT INTO sla_matrices (department_id, priority, resolution_hours, created_at, updated_at)
			VALUES (NULL, $1, $2, NOW(), NOW())`,
			row.Priority, row.ResolutionHours)
		if err != nil {
			return fmt.Errorf("seeding sla matrix %s: %w", row.Priority, err)
		}
	}
	return nil
}
