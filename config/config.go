package config

import (
	"context"
	"os"

	"github.com/joho/godotenv"
)

var Ctx = context.Background()

func LoadEnv() error {
	return godotenv.Load()
}

// GetEnv returns the env value or fallback when unset.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func UploadDir() string {
	return GetEnv("UPLOAD_DIR", "uploads")
}
