package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunAll seeds the dictionaries and the bootstrap admin account. Every seeder
// is idempotent, so reruns are safe.
func RunAll(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("running seeders...")

	steps := []func(context.Context, *pgxpool.Pool) error{
		seedRoles,
		seedDepartments,
		seedZones,
		seedSLAMatrices,
		seedAdminUser,
	}
	for _, step := range steps {
		if err := step(ctx, db); err != nil {
			return err
		}
	}

	log.Println("seeding complete")
	return nil
}
