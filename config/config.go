package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	JWTSecret  string
	S3Bucket   string
	SMTPAddr   string
	SMTPHost   string
	FromEmail  string
	FromPass   string
	SeedDB     bool
}

// LoadEnv loads variables from a .env file if one is present. Missing files
// are fine in deployed environments where variables come from the process.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment.")
	}
}

func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "8080"),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBName:     getEnv("DB_NAME", "nakama"),
		JWTSecret:  getEnv("JWT_SECRET", ""),
		S3Bucket:   getEnv("S3_BUCKET", "nakama-products"),
		SMTPAddr:   getEnv("SMTP_ADDRESS", ""),
		SMTPHost:   getEnv("FROM_EMAIL_SMTP", ""),
		FromEmail:  getEnv("FROM_EMAIL", ""),
		FromPass:   getEnv("FROM_EMAIL_PASSWORD", ""),
		SeedDB:     getEnv("SEED_DB", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
