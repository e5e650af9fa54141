package main

import (
	"log"

	"rental-system/pkg/config"
	"rental-system/pkg/database/postgresql"
	"rental-system/seeders"
)

func main() {
	cfg := config.New()

	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	seeders.SeedAll(db)
	log.Println("done")
}
