package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all process configuration, read once at startup.
type Config struct {
	Addr      string
	DBPath    string
	StaticDir string
	LogLevel  string

	JWTSecret     string
	AdminEmail    string
	AdminPassword string
}

// Load reads configuration from the environment, after loading a local
// .env file if one exists. The signing secret and the admin credential
// pair have no fallback: a missing value is a startup failure.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:          getEnv("SURVEY_ADDR", ":8080"),
		DBPath:        getEnv("SURVEY_DB_PATH", "survey.db"),
		StaticDir:     os.Getenv("SURVEY_STATIC_DIR"),
		LogLevel:      getEnv("SURVEY_LOG_LEVEL", "info"),
		JWTSecret:     os.Getenv("SURVEY_JWT_SECRET"),
		AdminEmail:    os.Getenv("SURVEY_ADMIN_EMAIL"),
		AdminPassword: os.Getenv("SURVEY_ADMIN_PASSWORD"),
	}

	var missing []string
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		missing = append(missing, "SURVEY_JWT_SECRET")
	}
	if strings.TrimSpace(cfg.AdminEmail) == "" {
		missing = append(missing, "SURVEY_ADMIN_EMAIL")
	}
	if strings.TrimSpace(cfg.AdminPassword) == "" {
		missing = append(missing, "SURVEY_ADMIN_PASSWORD")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
