package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port                    string
	JWTSecret               string
	TokenLifetime           time.Duration
	TokenCacheTTL           time.Duration
	TokenCacheSweepInterval time.Duration
	OperatorWorkers         int
	LogLevel                string
	SeedFile                string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Defaults match the local development setup.
	env := Config{
		Port:                    "5001",
		JWTSecret:               "your-super-secret-jwt-key-change-in-production",
		TokenLifetime:           24 * time.Hour,
		TokenCacheTTL:           5 * time.Minute,
		TokenCacheSweepInterval: time.Minute,
		OperatorWorkers:         1,
		LogLevel:                "info",
	}

	if v := os.Getenv("PORT"); len(v) != 0 {
		env.Port = v
	}

	if v := os.Getenv("JWT_SECRET"); len(v) != 0 {
		env.JWTSecret = v
	}

	if v := os.Getenv("LOG_LEVEL"); len(v) != 0 {
		env.LogLevel = v
	}

	if v := os.Getenv("SEED_FILE"); len(v) != 0 {
		env.SeedFile = v
	}

	durations := []struct {
		name string
		dst  *time.Duration
	}{
		{"TOKEN_TTL", &env.TokenLifetime},
		{"TOKEN_CACHE_TTL", &env.TokenCacheTTL},
		{"TOKEN_CACHE_SWEEP_INTERVAL", &env.TokenCacheSweepInterval},
	}
	for _, d := range durations {
		v := os.Getenv(d.name)
		if len(v) == 0 {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", d.name, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("config: %s must be positive, got %s", d.name, v)
		}
		*d.dst = parsed
	}

	if v := os.Getenv("OPERATOR_WORKERS"); len(v) != 0 {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config: OPERATOR_WORKERS: %w", err)
		}
		env.OperatorWorkers = workers
	}

	return &env, nil
}
