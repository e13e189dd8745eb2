package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	SQLitePath     string
	MigrationsPath string

	// Flash notices
	FlashSecret string
	FlashTTL    time.Duration

	// Document storage
	StorageProvider string
	MediaRoot       string
	GCSBucket       string
	MaxUploadBytes  int64
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		DBDriver:       getEnv("DB_DRIVER", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "dealbook"),
		DBPassword:     getEnv("DB_PASSWORD", "dealbook"),
		DBName:         getEnv("DB_NAME", "dealbook"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		SQLitePath:     getEnv("SQLITE_PATH", "dealbook.db"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),

		FlashSecret: getEnv("FLASH_SECRET", "fallback-flash-secret-for-dev-only"),

		StorageProvider: getEnv("STORAGE_PROVIDER", "local"),
		MediaRoot:       getEnv("MEDIA_ROOT", "media"),
		GCSBucket:       getEnv("GCS_BUCKET", ""),
	}

	ttlStr := getEnv("FLASH_TTL", "5m")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		log.Printf("Warning: invalid FLASH_TTL value '%s', falling back to 5m\n", ttlStr)
		ttl = 5 * time.Minute
	}
	config.FlashTTL = ttl

	maxStr := getEnv("MAX_UPLOAD_MB", "20")
	maxMB, err := strconv.ParseInt(maxStr, 10, 64)
	if err != nil || maxMB <= 0 {
		log.Printf("Warning: invalid MAX_UPLOAD_MB value '%s', falling back to 20\n", maxStr)
		maxMB = 20
	}
	config.MaxUploadBytes = maxMB << 20

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// PostgresURL returns the connection URL used by golang-migrate.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort +
		"/" + c.DBName + "?sslmode=" + c.DBSSLMode
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
