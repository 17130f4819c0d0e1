// Command seed populates the database with development fixtures.
package main

import (
	"log"

	"bloglist/internal/config"
	"bloglist/internal/database"
	"bloglist/internal/seed"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
