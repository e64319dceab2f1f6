package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Env              string
	Port             string
	DBURL            string
	JWTSecret        string
	TokenExpiryHours int
	AllowedOrigins   string
	RateLimitMax     int
	LogLevel         string

	// Bootstrap credentials for the default super admin. The account is
	// only created when no admin with this username exists yet.
	AdminUsername string
	AdminPassword string
	AdminEmail    string
}

func Load() *Config {
	return &Config{
		Env:              getEnv("ENV", "development"),
		Port:             getEnv("PORT", "3000"),
		DBURL:            mustGetEnv("DB_URL"),
		JWTSecret:        mustGetEnv("JWT_SECRET"),
		TokenExpiryHours: getEnvAsInt("TOKEN_EXPIRY_HOURS", 24),
		AllowedOrigins:   getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8080"),
		RateLimitMax:     getEnvAsInt("RATE_LIMIT_MAX", 100),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		AdminUsername:    getEnv("ADMIN_USERNAME", ""),
		AdminPassword:    getEnv("ADMIN_PASSWORD", ""),
		AdminEmail:       getEnv("ADMIN_EMAIL", ""),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
