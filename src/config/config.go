package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application.
// The values are loaded from environment variables.
type AppConfig struct {
	// Core settings
	Port         string
	DatabasePath string
	LogLevel     string

	// Security settings
	JWTSecret         string
	AccessTokenExpiry time.Duration
	MaxQuestionLength int

	// Assistant settings
	GeminiModel       string
	DisplayCurrency   string
	DefaultLanguage   string
	FallbackThreshold float64
	Location          *time.Location

	// Answer cache settings
	AnswerCacheTTL     time.Duration
	AnswerCacheCleanup time.Duration

	// History settings
	QueryHistoryLimit int
}

// Cfg is a global instance of the AppConfig.
var Cfg *AppConfig

// LoadConfig loads configuration from environment variables or a .env file.
// It centralizes all configuration logic for the application.
func LoadConfig() {
	// Try the current directory first, then the parent (common when running
	// from /backend).
	errEnv := godotenv.Load()
	if errEnv != nil {
		errEnv = godotenv.Load("../.env")
	}
	if errEnv != nil {
		if os.IsNotExist(errEnv) {
			log.Println("Info: No .env file found. Relying on OS environment variables (expected in production).")
		} else {
			log.Printf("Warning: Error loading .env file: %v. Relying on OS environment variables.", errEnv)
		}
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	jwtSecret := getRequiredEnv("JWT_SECRET")

	timezoneName := getEnv("TIMEZONE", "UTC")
	location, err := time.LoadLocation(timezoneName)
	if err != nil {
		log.Printf("WARNING: Invalid TIMEZONE '%s', falling back to UTC. Error: %v", timezoneName, err)
		location = time.UTC
	}

	Cfg = &AppConfig{
		// Core
		Port:         getEnv("PORT", "8080"),
		DatabasePath: getEnv("DATABASE_PATH", "./finassist.db"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),

		// Security
		JWTSecret:         jwtSecret,
		AccessTokenExpiry: getEnvAsDuration("ACCESS_TOKEN_EXPIRY", 60*time.Minute),
		MaxQuestionLength: getEnvAsInt("MAX_QUESTION_LENGTH", 500),

		// Assistant
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		DisplayCurrency:   getEnv("DISPLAY_CURRENCY", "ILS"),
		DefaultLanguage:   getEnv("DEFAULT_LANGUAGE", "en"),
		FallbackThreshold: getEnvAsFloat("FALLBACK_CONFIDENCE_THRESHOLD", 0.3),
		Location:          location,

		// Answer cache
		AnswerCacheTTL:     getEnvAsDuration("ANSWER_CACHE_TTL", 5*time.Minute),
		AnswerCacheCleanup: getEnvAsDuration("ANSWER_CACHE_CLEANUP", 15*time.Minute),

		// History
		QueryHistoryLimit: getEnvAsInt("QUERY_HISTORY_LIMIT", 50),
	}

	log.Printf("Configuration loaded: Port=%s, LogLevel=%s, DBPath=%s, Currency=%s, DefaultLanguage=%s",
		Cfg.Port, Cfg.LogLevel, Cfg.DatabasePath, Cfg.DisplayCurrency, Cfg.DefaultLanguage)
}

// getEnv retrieves an environment variable or returns a fallback value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}

// getRequiredEnv retrieves an environment variable or terminates the application if not set.
func getRequiredEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		log.Fatalf("FATAL: Required environment variable %s is not set or is empty. Application cannot start securely.", key)
	}
	return value
}

// getEnvAsInt retrieves an environment variable as an integer or returns a fallback.
func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid integer value for %s ('%s'), using default: %d", key, valueStr, fallback)
	return fallback
}

// getEnvAsFloat retrieves an environment variable as a float or returns a fallback.
func getEnvAsFloat(key string, fallback float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	log.Printf("Invalid float value for %s ('%s'), using default: %f", key, valueStr, fallback)
	return fallback
}

// getEnvAsDuration retrieves an environment variable as a time.Duration or returns a fallback.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback.String())
	return fallback
}
