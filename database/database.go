package database

import (
	"fmt"
	"log"
	"os"

	"enrollment-app/internal/domain/billing"
	"enrollment-app/internal/domain/payers"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	// The unique index on payers.email is what makes find-or-create safe
	// under concurrency (loser of the insert race re-finds).
	if err := DB.AutoMigrate(
		&payers.Payer{},
		&billing.Charge{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}
