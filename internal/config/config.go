package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction    bool
	ProdOrigins     string
	HTTPAddr        string
	PrefsPath       string
	HeroInterval    time.Duration
	SubmitDelay     time.Duration
	SessionTTL      time.Duration
	RateLimitPerMin int
	RateLimitBurst  int
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origins (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Where the site preference file lives (default: data/preferences.json)
	cfg.PrefsPath = getEnv("PREFS_PATH", "data/preferences.json")

	// Hero carousel auto-advance interval, matching the storefront's 5s rotation.
	cfg.HeroInterval, err = getEnvAsDuration("HERO_INTERVAL", 5*time.Second)
	if err != nil {
		return nil, err
	}

	// Simulated booking confirmation delay.
	cfg.SubmitDelay, err = getEnvAsDuration("SUBMIT_DELAY", 1500*time.Millisecond)
	if err != nil {
		return nil, err
	}

	// Idle wizard sessions are dropped after this long.
	cfg.SessionTTL, err = getEnvAsDuration("SESSION_TTL", 30*time.Minute)
	if err != nil {
		return nil, err
	}

	// Per-IP rate limit for the public form endpoints.
	cfg.RateLimitPerMin, err = getEnvAsInt("RATE_LIMIT_PER_MIN", 30)
	if err != nil {
		return nil, err
	}
	cfg.RateLimitBurst, err = getEnvAsInt("RATE_LIMIT_BURST", 10)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}

// getEnvAsDuration retrieves an environment variable as a time.Duration (e.g. "5s", "30m").
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := time.ParseDuration(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid duration: %w", key, valStr, err)
	}

	return val, nil
}
