package main

import (
	"log"
	"os"

	"skillras-be/internal/model"
	"skillras-be/pkg/database"

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

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions (Things GORM AutoMigrate doesn't do)
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.EmailVerificationToken{},
		&model.PasswordResetToken{},
		&model.UserRefreshToken{},
		&model.Enrollment{},
		&model.ReferralCode{},
		&model.Certificate{},
		&model.Product{},
		&model.Lead{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: Indexes the webhook and affiliate queries lean on
	log.Println("Step 3: Creating Indexes...")

	postMigrationSQL := []string{
		`CREATE INDEX IF NOT EXISTS idx_enrollments_email_status ON enrollments (email, payment_status);`,
		`CREATE INDEX IF NOT EXISTS idx_enrollments_referral_code ON enrollments (referral_code) WHERE referral_code IS NOT NULL;`,
		`CREATE INDEX IF NOT EXISTS idx_referral_codes_referrer_email ON referral_codes (referrer_email) WHERE referrer_email IS NOT NULL;`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("Success: Database migration completed via GORM.")
}
