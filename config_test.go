package vdbatch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".vdbatch.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[data]
dir = "/srv/vdb/data"

[index]
name = "villagerdb"
dir = "/srv/vdb/search"

[site]
base_url = "https://villagerdb.com"

[sitemap]
out = "/srv/vdb/sitemap.xml"

[redis]
addr = "redis.internal:6379"
db = 2
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Data.Dir != "/srv/vdb/data" {
		t.Errorf("unexpected data dir %q", cfg.Data.Dir)
	}
	if cfg.Index.Name != "villagerdb" || cfg.Index.Dir != "/srv/vdb/search" {
		t.Errorf("unexpected index config %+v", cfg.Index)
	}
	if cfg.Site.BaseURL != "https://villagerdb.com" {
		t.Errorf("unexpected base url %q", cfg.Site.BaseURL)
	}
	if cfg.Redis.Addr != "redis.internal:6379" || cfg.Redis.DB != 2 {
		t.Errorf("unexpected redis config %+v", cfg.Redis)
	}
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Index.Name != DefaultIndexName {
		t.Errorf("expected default index name, got %q", cfg.Index.Name)
	}
	if cfg.Data.Dir != DefaultDataDir {
		t.Errorf("expected default data dir, got %q", cfg.Data.Dir)
	}
	if cfg.Redis.Addr != DefaultRedisAddr {
		t.Errorf("expected default redis addr, got %q", cfg.Redis.Addr)
	}
}

func TestLoadConfigExpandsRedisPassword(t *testing.T) {
	t.Setenv("VDB_TEST_REDIS_PASSWORD", "hunter2")
	cfg, err := LoadConfig(writeConfig(t, `
[redis]
password = "${VDB_TEST_REDIS_PASSWORD}"
`))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Redis.Password != "hunter2" {
		t.Errorf("expected expanded password, got %q", cfg.Redis.Password)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "not [valid toml")); err == nil {
		t.Fatal("expected parse error")
	}
}
