package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string
	MaxPoints int // upper bound on points per analysis run
}

// Load reads configuration from the environment, with defaults.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/tracker/points.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	maxPoints := 50000
	if raw := os.Getenv("MAX_POINTS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			maxPoints = n
		}
	}

	return &Config{
		Port:      port,
		DBPath:    dbPath,
		JWTSecret: jwtSecret,
		MaxPoints: maxPoints,
	}
}
