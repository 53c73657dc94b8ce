package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
)

var ErrSeedInProduction = errors.New("RAND_SEED must not be set in production environment")

type Config struct {
	Port           string
	Env            string
	LogLevel       slog.Level
	LogFile        string
	RateLimitRPS   float64
	RateLimitBurst int

	// RandSeed makes generation reproducible when set. Nil means crypto/rand.
	RandSeed *uint64
}

func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       getEnvLevel("LOG_LEVEL", slog.LevelInfo),
		LogFile:        os.Getenv("LOG_FILE"),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 20),
	}

	if v := os.Getenv("RAND_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			slog.Warn("ignoring invalid RAND_SEED", "value", v, "error", err)
		} else {
			cfg.RandSeed = &seed
		}
	}

	if cfg.IsProduction() && cfg.RandSeed != nil {
		return Config{}, ErrSeedInProduction
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
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
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		slog.Warn("invalid number in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}

func getEnvLevel(key string, fallback slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		slog.Warn("invalid log level in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return level
}
