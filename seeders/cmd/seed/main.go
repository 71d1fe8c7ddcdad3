package main

import (
	"context"
	"log"

	"efiling-system/pkg/config"
	"efiling-system/pkg/database/postgresql"
	"efiling-system/seeders"
)

func main() {
	cfg := config.New()
	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	if err := seeders.RunAll(context.Background(), db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
}
