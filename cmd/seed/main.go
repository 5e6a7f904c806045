package main

import (
	"log"

	intconfig "busbooking/internal/config"
	intdb "busbooking/internal/db"
	"busbooking/internal/services"
)

// Seeds the catalog with the sample routes for today. Safe to run
// repeatedly: fixtures already present are skipped.
func main() {
	env := intconfig.LoadEnv()
	intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	if err := intdb.EnsureSchema(intconfig.DB); err != nil {
		log.Fatalf("schema setup failed: %v", err)
	}

	svc := services.AdminService{}
	added, err := svc.SeedSampleRoutes()
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	log.Printf("Seeded %d sample routes.", added)
}
