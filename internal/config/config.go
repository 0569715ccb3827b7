package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/xy-planning-network/display/logger"
	"github.com/xy-planning-network/display/postgres"
)

const (
	DefaultAddr         = ":8080"
	DefaultCatalogPath  = "catalog.yml"
	DefaultRateBurst    = 20
	DefaultRateLimit    = 5.0
	DefaultReadTimeout  = 5 * time.Second
	DefaultWriteTimeout = 10 * time.Second
)

// A Config holds everything the application reads from its environment.
type Config struct {
	Env          Environment
	Addr         string
	LogLevel     slog.Level
	SentryDSN    string
	CatalogPath  string
	RateLimit    float64
	RateBurst    int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Postgres is nil unless DATABASE_URL or DATABASE_HOST is set.
	// DATABASE_RESET drops the public schema before migrating; it defaults to true in TESTING.
	Postgres *postgres.CxnConfig
}

// Load reads envFile into the environment with godotenv,
// never overriding variables already set, and builds a Config from the environment.
//
// A missing envFile is not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	env := EnvVarOrEnv("ENVIRONMENT", Development)
	c := Config{
		Env:          env,
		Addr:         EnvVarOrString("ADDR", DefaultAddr),
		LogLevel:     EnvVarOrLogLevel("LOG_LEVEL", slog.LevelInfo),
		SentryDSN:    os.Getenv("SENTRY_DSN"),
		CatalogPath:  EnvVarOrString("CATALOG_PATH", DefaultCatalogPath),
		RateLimit:    EnvVarOrFloat("RATE_LIMIT", DefaultRateLimit),
		RateBurst:    EnvVarOrInt("RATE_BURST", DefaultRateBurst),
		ReadTimeout:  EnvVarOrDuration("SERVER_READ_TIMEOUT", DefaultReadTimeout),
		WriteTimeout: EnvVarOrDuration("SERVER_WRITE_TIMEOUT", DefaultWriteTimeout),
	}

	if os.Getenv("DATABASE_URL") != "" || os.Getenv("DATABASE_HOST") != "" {
		c.Postgres = &postgres.CxnConfig{
			IsTestDB: EnvVarOrBool("DATABASE_RESET", env.IsTesting()),
			Colorful: env.IsLocal(),
			URL:      os.Getenv("DATABASE_URL"),
			Host:     os.Getenv("DATABASE_HOST"),
			Port:     EnvVarOrString("DATABASE_PORT", "5432"),
			Name:     os.Getenv("DATABASE_NAME"),
			User:     os.Getenv("DATABASE_USER"),
			Password: os.Getenv("DATABASE_PASSWORD"),
			SSLMode:  os.Getenv("DATABASE_SSLMODE"),
		}
	}

	return c, nil
}

// Logger constructs the *slog.Logger the Config describes.
// Local environments log colorized text; all others log JSON.
func (c Config) Logger() *slog.Logger {
	return logger.New(
		logger.WithColor(c.Env.IsLocal()),
		logger.WithEnv(c.Env.String()),
		logger.WithLevel(c.LogLevel),
		logger.WithSentryDSN(c.SentryDSN),
	)
}

// EnvVarOrBool gets the environment variable for the provided key and
// returns whether it matches "true" or "false" (after lower casing it)
// or the default value.
func EnvVarOrBool(key string, def bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "true":
		return true
	case "false":
		return false
	default:
		return def
	}
}

// EnvVarOrDuration gets the environment variable for the provided key,
// parses it into a [time.Duration], or, returns
// the default [time.Duration].
func EnvVarOrDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}

	return d
}

// EnvVarOrEnv gets the environment variable for the provided key,
// parses it into an [Environment],
// or returns the provided default [Environment] if key is not a valid [Environment].
func EnvVarOrEnv(key string, def Environment) Environment {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	env, err := ParseEnvironment(val)
	if err != nil {
		return def
	}

	return env
}

// EnvVarOrFloat gets the environment variable for the provided key,
// creates a float64 from the retrieved value,
// or returns the provided default
// if the value is not a valid float64.
func EnvVarOrFloat(key string, def float64) float64 {
	val, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return def
	}

	return val
}

// EnvVarOrInt gets the environment variable for the provided key,
// creates an int from the retrieved value,
// or returns the provided default
// if the value is not a valid int.
func EnvVarOrInt(key string, def int) int {
	val, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}

	return val
}

// EnvVarOrLogLevel gets the environment variable for the provided key,
// creates a [log/slog.Level] from the retrieved value,
// or returns the provided default [log/slog.Level].
func EnvVarOrLogLevel(key string, def slog.Level) slog.Level {
	return logger.ParseLevel(os.Getenv(key), def)
}

// EnvVarOrString gets the environment variable for the provided key or the provided default string.
func EnvVarOrString(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	return val
}
