package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/lomacy/vdbatch"
)

const configFile = ".vdbatch.toml"

// loadConfig resolves configuration in order: .env file, TOML config
// file, environment variable overrides. A missing config file falls back
// to defaults.
func loadConfig() (*vdbatch.Config, error) {
	// A missing .env file is fine; only the variables matter.
	_ = godotenv.Load()

	cfg, err := vdbatch.LoadConfig(configFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = vdbatch.DefaultConfig()
	}

	// Env vars override TOML values.
	if v := os.Getenv("VDB_DATA"); v != "" {
		cfg.Data.Dir = v
	}
	if v := os.Getenv("VDB_INDEX_DIR"); v != "" {
		cfg.Index.Dir = v
	}
	if v := os.Getenv("VDB_SITE_URL"); v != "" {
		cfg.Site.BaseURL = v
	}
	if v := os.Getenv("VDB_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}

	return cfg, nil
}
