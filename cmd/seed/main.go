package main

import (
	"log"

	"github.com/joho/godotenv"

	"adledger/internal/config"
	"adledger/internal/database"
	"adledger/internal/domain/ledger"
)

// Seeds the demo ads the bot has always started with, once, on an empty ads
// table.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment variables directly")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(ledger.Models()...); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	var count int64
	if err := db.Model(&ledger.Ad{}).Count(&count).Error; err != nil {
		log.Fatal("counting ads failed:", err)
	}
	if count > 0 {
		log.Printf("ads table already has %d rows, nothing to seed", count)
		return
	}

	demo := []ledger.Ad{
		{Title: "Demo ad 1", Description: "A trial ad for new users", URL: "https://example.com", Reward: 1.5, IsActive: true},
		{Title: "Demo ad 2", Description: "Another ad to test the system", URL: "https://example.com", Reward: 2.0, IsActive: true},
	}
	if err := db.Create(&demo).Error; err != nil {
		log.Fatal("seeding ads failed:", err)
	}

	log.Printf("seeded %d demo ads", len(demo))
}
