package vdbatch

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Default configuration values.
const (
	DefaultIndexName  = "vdb"
	DefaultIndexDir   = "./search"
	DefaultDataDir    = "./data"
	DefaultSitemapOut = "./sitemap.xml"
	DefaultRedisAddr  = "localhost:6379"
)

// Config holds the batch tool configuration loaded from a TOML file.
type Config struct {
	Data    DataConfig    `toml:"data"`
	Index   IndexConfig   `toml:"index"`
	Site    SiteConfig    `toml:"site"`
	Sitemap SitemapConfig `toml:"sitemap"`
	Redis   RedisConfig   `toml:"redis"`
}

// DataConfig locates the entity record files.
type DataConfig struct {
	Dir string `toml:"dir"` // default: "./data"
}

// IndexConfig names and locates the search index.
type IndexConfig struct {
	Name string `toml:"name"` // default: "vdb"
	Dir  string `toml:"dir"`  // default: "./search"
}

// SiteConfig configures public URL computation.
type SiteConfig struct {
	BaseURL string `toml:"base_url"`
}

// SitemapConfig configures sitemap output.
type SitemapConfig struct {
	Out string `toml:"out"` // default: "./sitemap.xml"
}

// RedisConfig configures the key-value database connection.
type RedisConfig struct {
	Addr     string `toml:"addr"`     // default: "localhost:6379"
	Password string `toml:"password"` // supports ${ENV_VAR} expansion
	DB       int    `toml:"db"`
}

// LoadConfig reads a TOML file at path and returns a parsed Config with
// defaults applied. The redis password supports ${VAR_NAME} expansion
// from the environment.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.Redis.Password = expandEnvVars(cfg.Redis.Password)
	cfg.applyDefaults()

	return &cfg, nil
}

// DefaultConfig returns a Config with only defaults set.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Data.Dir == "" {
		c.Data.Dir = DefaultDataDir
	}
	if c.Index.Name == "" {
		c.Index.Name = DefaultIndexName
	}
	if c.Index.Dir == "" {
		c.Index.Dir = DefaultIndexDir
	}
	if c.Sitemap.Out == "" {
		c.Sitemap.Out = DefaultSitemapOut
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = DefaultRedisAddr
	}
}

// expandEnvVars replaces ${VAR_NAME} patterns in s with the corresponding
// environment variable values.
func expandEnvVars(s string) string {
	return os.Expand(s, func(key string) string {
		return os.Getenv(key)
	})
}
