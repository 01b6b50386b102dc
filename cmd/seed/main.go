package main

import (
	"log"
	"os"
	"time"

	"skillras-be/internal/model"
	"skillras-be/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	// 1. Admin User
	adminEmail := os.Getenv("SEED_ADMIN_EMAIL")
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Fatal("Error: SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD must be set")
	}

	var existing model.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		log.Printf("Admin user %s already exists, skipping", adminEmail)
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Error: Failed to hash admin password: %v", err)
		}
		hashStr := string(hash)
		admin := model.User{
			Email:         adminEmail,
			PasswordHash:  &hashStr,
			FullName:      "SkillRas Admin",
			Role:          "admin",
			Status:        "active",
			EmailVerified: true,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("Error: Failed to create admin user: %v", err)
		}
		log.Printf("Created admin user %s", adminEmail)
	}

	// 2. Launch Coupon
	validUntil := time.Now().AddDate(0, 3, 0)
	maxUsage := 500
	coupon := model.ReferralCode{
		Code:               "LAUNCH50",
		CodeType:           "coupon",
		DiscountPercentage: 50,
		MaxUsage:           &maxUsage,
		ValidUntil:         &validUntil,
		IsActive:           true,
	}
	var existingCode model.ReferralCode
	if err := db.Where("code = ?", coupon.Code).First(&existingCode).Error; err == nil {
		log.Printf("Coupon %s already exists, skipping", coupon.Code)
	} else if err := db.Create(&coupon).Error; err != nil {
		log.Printf("Warn: Failed to seed coupon %s: %v", coupon.Code, err)
	} else {
		log.Printf("Created coupon %s", coupon.Code)
	}

	// 3. Lead Magnet Product
	product := model.Product{
		Name:     "Digital Marketing Starter Guide",
		Slug:     "digital-marketing-starter-guide",
		FileURL:  "https://cdn.skillras.com/resources/digital-marketing-starter-guide.pdf",
		IsActive: true,
	}
	var existingProduct model.Product
	if err := db.Where("slug = ?", product.Slug).First(&existingProduct).Error; err == nil {
		log.Printf("Product %s already exists, skipping", product.Slug)
	} else if err := db.Create(&product).Error; err != nil {
		log.Printf("Warn: Failed to seed product %s: %v", product.Slug, err)
	} else {
		log.Printf("Created product %s", product.Slug)
	}

	log.Println("Success: Seeding completed.")
}
