package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// AppConfig holds the settings the process wires up at startup. The token
// helpers read JWT_SECRET and JWT_TTL_SECONDS from the environment
// themselves; Load only checks the secret is present so startup fails fast.
type AppConfig struct {
	MongoURI       string
	MongoDatabase  string
	Port           string
	AdminUsername  string
	AdminPassword  string
	AdminEmail     string
	RequestTimeout time.Duration
}

// Load reads the environment and fails when a required variable is missing.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		MongoURI:      os.Getenv("MONGODB_URI"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "navident_clinic"),
		Port:          getEnv("PORT", "8080"),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("missing MONGODB_URI environment variable")
	}
	if os.Getenv("JWT_SECRET") == "" {
		return nil, errors.New("missing JWT_SECRET environment variable")
	}
	if cfg.AdminUsername == "" {
		return nil, errors.New("missing ADMIN_USERNAME environment variable")
	}
	if cfg.AdminPassword == "" {
		return nil, errors.New("missing ADMIN_PASSWORD environment variable")
	}
	if cfg.AdminEmail == "" {
		return nil, errors.New("missing ADMIN_EMAIL environment variable")
	}

	cfg.RequestTimeout = time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 30)) * time.Second

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
