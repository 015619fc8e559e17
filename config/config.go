package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	Host      string
	Port      string
	DBDsn     string
	JWTSecret string
	UploadDir string
	LogLevel  string
}

// NewConfig loads configuration from a .env file when present and the
// environment.
func NewConfig() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Host:      getEnv("HOST", ""),
		Port:      getEnv("PORT", "8081"),
		DBDsn:     getEnv("DB_DSN", ""),
		JWTSecret: getEnv("JWT_SECRET", ""),
		UploadDir: getEnv("UPLOAD_DIRECTORY", "./uploads"),
		LogLevel:  getEnv("LOG_LEVEL", "INFO"),
	}

	if cfg.DBDsn == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
