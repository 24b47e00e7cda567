package main

import (
	"context"
	"log"

	"alfredoptarigan/ai-recruiter/internal/config"
	"alfredoptarigan/ai-recruiter/internal/repositories"
	"alfredoptarigan/ai-recruiter/internal/services"
)

func main() {
	log.Println("🚀 Starting role seeding...")

	// Load configuration
	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	if err := repositories.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to migrate database: %v", err)
	}

	seeder := services.NewRoleSeeder(repositories.NewRoleRepository(db))

	inserted, err := seeder.Seed(context.Background())
	if err != nil {
		log.Fatalf("❌ Failed to seed roles after %d inserts: %v", inserted, err)
	}

	if inserted == 0 {
		log.Println("✅ Role catalog already populated, nothing to do")
		return
	}

	log.Printf("✅ Seeded %d roles\n", inserted)
}
