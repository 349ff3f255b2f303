package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the demo's settings.
type Config struct {
	Columns int    // grid column count
	Rows    int    // grid row count
	Seed    uint64 // random-sample seed; 0 means clock-seeded
	Sample  bool   // print one random-sample pass after the grid
}

// loadConfig reads an optional .env file, then the MAZE_* environment variables.
func loadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}
	return configFromEnv()
}

// configFromEnv builds a Config from the process environment alone.
func configFromEnv() (Config, error) {
	var (
		cfg Config
		err error
	)
	if cfg.Columns, err = getEnvAsInt("MAZE_COLUMNS", 2); err != nil {
		return Config{}, err
	}
	if cfg.Rows, err = getEnvAsInt("MAZE_ROWS", 2); err != nil {
		return Config{}, err
	}
	if cfg.Columns < 0 || cfg.Rows < 0 {
		return Config{}, fmt.Errorf("grid dimensions must be non-negative, got %dx%d", cfg.Columns, cfg.Rows)
	}
	seed := getEnvWithDefault("MAZE_SEED", "0")
	if cfg.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
		return Config{}, fmt.Errorf("environment variable MAZE_SEED must be an unsigned integer: %w", err)
	}
	sample := getEnvWithDefault("MAZE_SAMPLE", "false")
	if cfg.Sample, err = strconv.ParseBool(sample); err != nil {
		return Config{}, fmt.Errorf("environment variable MAZE_SAMPLE must be a boolean: %w", err)
	}
	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer, or defaultValue if not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}
