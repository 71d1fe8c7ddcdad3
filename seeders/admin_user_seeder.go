package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

func seedAdminUser(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding admin user...")

	const email = "admin@efiling.local"
	var existing uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&existing)
	if err == nil {
		log.Println("    admin user already exists, skipping")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("checking admin user: %w", err)
	}

	var roleID uint64
	if err := db.QueryRow(ctx, "SELECT id FROM roles WHERE code = 'ADMIN' LIMIT 1").Scan(&roleID); err != nil {
		return fmt.Errorf("admin role not found, seed roles first: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	_, err = db.Exec(ctx,
		`INSERT INTO users (full_name, email, password, role_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, TRUE, NOW(), NOW())`,
		"System Administrator", email, string(hash), roleID)
	if err != nil {
		return fmt.Errorf("inserting admin user: %w", err)
	}
	log.Println("    admin user created (change the default password)")
	return nil
}
