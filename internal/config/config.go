package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	JWTSecret         string
	MongoURI          string
	DBName            string
	SkipAuth          bool
	Environment       string
	AppId             string
	ExportDir         string // Physical directory for generated export files
	ExportURL         string // URL path prefix for export downloads
	ExportRetention   int    // Days an export file is kept before pruning
	RetentionSchedule string // Cron expression for the retention sweep
	WarehouseDSN      string // Postgres DSN for the warehouse mirror; empty disables
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		JWTSecret:         getEnv("JWT_SECRET", "secret"),
		MongoURI:          getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:            getEnv("DB_NAME", "go-pm"),
		SkipAuth:          getEnv("SKIP_AUTH", "false") == "true",
		Environment:       getEnv("ENVIRONMENT", "development"),
		AppId:             getEnv("APP_ID", "go-pm"),
		ExportDir:         getEnv("EXPORT_DIR", "./exports"),
		ExportURL:         getEnv("EXPORT_URL", "/api/exports"),
		ExportRetention:   getEnvInt("EXPORT_RETENTION_DAYS", 7),
		RetentionSchedule: getEnv("RETENTION_SCHEDULE", "0 3 * * *"),
		WarehouseDSN:      getEnv("WAREHOUSE_DSN", ""),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
