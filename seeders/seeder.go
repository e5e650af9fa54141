package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedAll populates a fresh database with a small demo data set: a few
// catalog entries with their units, two employees of each type, one event
// with line items, some service records and payments.
func SeedAll(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding demo data...")

	if err := seedEmployees(ctx, db); err != nil {
		log.Fatalf("failed to seed employees: %v", err)
	}
	if err := seedEquipment(ctx, db); err != nil {
		log.Fatalf("failed to seed equipment: %v", err)
	}
	if err := seedEvents(ctx, db); err != nil {
		log.Fatalf("failed to seed events: %v", err)
	}
	log.Println("demo data seeded")
}
