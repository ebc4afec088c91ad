package config

import (
	"fmt"

	"github.com/UpekaFernando/tour-blog-info-final/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := GetEnv("DATABASE_DSN", fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		GetEnv("DB_HOST", "localhost"),
		GetEnv("DB_USER", "postgres"),
		GetEnv("DB_PASSWORD", "postgres"),
		GetEnv("DB_NAME", "srilanka_travel"),
		GetEnv("DB_PORT", "5432"),
	))

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to database: " + err.Error())
	}

	DB = db
}

// Migrate creates/updates all tables. Safe to run on every boot.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.District{},
		&models.Destination{},
		&models.Comment{},
		&models.Rating{},
		&models.LocalService{},
		&models.TravelGuide{},
	)
}
