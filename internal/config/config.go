package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by LJPW_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("LJPW_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Load main env file (ignore error if file doesn't exist)
	_ = godotenv.Load(envFile)

	// Load secret sidecar if it exists
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

// RedisURL returns the Redis connection string for the ranking cache.
// Empty means the cache is disabled and standings are served from the
// database.
func RedisURL() string {
	return os.Getenv("REDIS_URL")
}

// APIKey returns the operator key guarding mutating routes.
func APIKey() string {
	return os.Getenv("API_KEY")
}

func MigrationsPath() string {
	p := os.Getenv("MIGRATIONS_PATH")
	if p == "" {
		return "migrations"
	}
	return p
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}

// ReclassifyInterval is how often the stale-assessment sweeper runs.
func ReclassifyInterval() time.Duration {
	d, err := time.ParseDuration(os.Getenv("RECLASSIFY_INTERVAL"))
	if err != nil || d <= 0 {
		return 5 * time.Minute
	}
	return d
}

// RankingInterval is how often the standings cache refreshes.
func RankingInterval() time.Duration {
	d, err := time.ParseDuration(os.Getenv("RANKING_INTERVAL"))
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}
