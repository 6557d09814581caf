package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// SMTP holds the credentials for outbound query/review mail. Messages are
// delivered to the shop's own inbox, so Email is both sender and recipient.
type SMTP struct {
	Address  string
	Host     string
	Email    string
	Password string
}

type Config struct {
	Port         string
	StoreBackend string

	// mysql backend
	MySQLDSN string

	// sheets backend
	SpreadsheetID string
	SheetsToken   string

	JWTSecret  string
	UploadsDir string
	SMTP       SMTP
}

// Load reads .env (if present) and builds the application configuration.
// It is called once from main; nothing else reads the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	cfg := Config{
		Port:          getEnv("PORT", "8081"),
		StoreBackend:  getEnv("STORE_BACKEND", "mysql"),
		MySQLDSN:      os.Getenv("MYSQL_DSN"),
		SpreadsheetID: os.Getenv("GOOGLE_SPREADSHEET_ID"),
		SheetsToken:   os.Getenv("GOOGLE_SHEETS_TOKEN"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		UploadsDir:    getEnv("UPLOADS_DIR", "uploads"),
		SMTP: SMTP{
			Address:  os.Getenv("SMTP_ADDRESS"),
			Host:     os.Getenv("FROM_EMAIL_SMTP"),
			Email:    os.Getenv("BE_EMAIL"),
			Password: os.Getenv("BE_PASSWORD"),
		},
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
