// Package config loads process-level settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the CLI.
type Config struct {
	// DBPath overrides the default database location. Empty means use the
	// standard resolution order.
	DBPath string

	// LearnerID selects the profile to operate on.
	LearnerID string

	// Seed fixes the pipeline RNG for reproducible picks. Zero means seed
	// from the clock.
	Seed int64

	// TopN overrides how many ranked candidates the pick phase considers.
	// Zero means the pipeline default.
	TopN int
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first if present; missing files are not an
// error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DBPath:    os.Getenv("WAKEPREP_DB"),
		LearnerID: envDefault("WAKEPREP_LEARNER", "default"),
	}

	if v := os.Getenv("WAKEPREP_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse WAKEPREP_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv("WAKEPREP_TOP_N"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse WAKEPREP_TOP_N: %w", err)
		}
		if n < 1 {
			return Config{}, fmt.Errorf("WAKEPREP_TOP_N must be at least 1, got %d", n)
		}
		cfg.TopN = n
	}

	return cfg, nil
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
