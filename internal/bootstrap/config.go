// Package bootstrap assembles the repositories, use cases, and HTTP
// server from a Config, the way the teacher's cmd/app/main.go wires a
// Service struct before calling NewRoutes.
package bootstrap

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/LerianStudio/midaz-credits/pkg/mlog"
	"github.com/LerianStudio/midaz-credits/pkg/mpostgres"
)

// Config is every environment-controlled knob named in spec.md §6 and
// §9's deployment notes.
type Config struct {
	ServerPort string

	DBHost     string
	DBPort     int
	DBName     string
	DBUser     string
	DBPassword string
	DBPoolMin  int32
	DBPoolMax  int32

	RedisHost string
	RedisPort string

	RateLimitWindowSeconds int
	RateLimitMax           int

	IdempotencyTTL time.Duration

	LogLevel string

	MigrationsPath string
}

// LoadConfig loads .env (if present, ignored when absent) and parses
// the process environment into a Config, applying spec.md §9's stated
// defaults wherever a variable is unset.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		ServerPort: envOr("SERVER_PORT", "8080"),

		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envIntOr("DB_PORT", 5432),
		DBName:     envOr("DB_NAME", "midaz_credits"),
		DBUser:     envOr("DB_USER", "postgres"),
		DBPassword: envOr("DB_PASSWORD", "postgres"),
		DBPoolMin:  int32(envIntOr("DB_POOL_MIN", 2)),
		DBPoolMax:  int32(envIntOr("DB_POOL_MAX", 20)),

		RedisHost: envOr("REDIS_HOST", "localhost"),
		RedisPort: envOr("REDIS_PORT", "6379"),

		RateLimitWindowSeconds: envIntOr("RATE_LIMIT_WINDOW_SECONDS", 1),
		RateLimitMax:           envIntOr("RATE_LIMIT_MAX", 50),

		IdempotencyTTL: time.Duration(envIntOr("IDEMPOTENCY_TTL_HOURS", 24)) * time.Hour,

		LogLevel: envOr("LOG_LEVEL", "info"),

		MigrationsPath: envOr("MIGRATIONS_PATH", "migrations"),
	}
}

// PostgresConfig projects Config into the shape mpostgres.Connect wants.
func (c Config) PostgresConfig() mpostgres.Config {
	return mpostgres.Config{
		Host:            c.DBHost,
		Port:            c.DBPort,
		Name:            c.DBName,
		User:            c.DBUser,
		Password:        c.DBPassword,
		PoolMin:         c.DBPoolMin,
		PoolMax:         c.DBPoolMax,
		AcquireTimeout:  5 * time.Second,
		MaxConnIdleTime: 30 * time.Second,
		MigrationsPath:  c.MigrationsPath,
	}
}

// LogLevelParsed parses LogLevel, defaulting to info on a bad value.
func (c Config) LogLevelParsed() mlog.Level {
	lvl, err := mlog.ParseLevel(c.LogLevel)
	if err != nil {
		return mlog.InfoLevel
	}

	return lvl
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}

	return n
}
