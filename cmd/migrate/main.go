package main

import (
	"log"
	"os"

	"catalog-chatbot-be/internal/model"
	"catalog-chatbot-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Extensions (AutoMigrate doesn't handle these)
	log.Println("Step 1: Setting up pg_trgm extension...")
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm;`).Error; err != nil {
		log.Fatal("Error: Failed to create pg_trgm extension:", err)
	}

	// 4. Tables
	log.Println("Step 2: Migrating tables...")
	if err := db.AutoMigrate(&model.Product{}); err != nil {
		log.Fatal("Error: Failed to migrate products:", err)
	}

	// 5. Trigram index so the % operator doesn't seq-scan the catalog
	log.Println("Step 3: Creating trigram index...")
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_products_name_trgm ON products USING gin (name gin_trgm_ops);`).Error; err != nil {
		log.Fatal("Error: Failed to create trigram index:", err)
	}

	log.Println("✅ Migration complete")
}
