package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"todosync/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TODOSYNC_BACKEND", "TODOSYNC_BASE_URL", "TODOSYNC_CACHE", "TODOSYNC_CACHE_SLOT",
		"TODOSYNC_REDIS_URL", "TODOSYNC_TIMEOUT", "TODOSYNC_TOKEN", "TODOIST_API_TOKEN",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte(body), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend != config.BackendTodoist {
		t.Errorf("expected backend %q, got %q", config.BackendTodoist, cfg.Backend)
	}
	if cfg.BaseURL != config.DefaultBaseURL {
		t.Errorf("expected base url %q, got %q", config.DefaultBaseURL, cfg.BaseURL)
	}
	if cfg.Cache != config.CacheFile || cfg.CacheSlot != "todos" {
		t.Errorf("unexpected cache settings: %q %q", cfg.Cache, cfg.CacheSlot)
	}
	if cfg.Timeout != config.DefaultTimeout {
		t.Errorf("expected timeout %v, got %v", config.DefaultTimeout, cfg.Timeout)
	}
	if filepath.Base(cfg.CachePath()) != "todos.json" {
		t.Errorf("unexpected cache path %q", cfg.CachePath())
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `
backend = "googletasks"
cache = "redis"
redis_url = "redis://localhost:6379/0"
timeout = "3s"
`)
	t.Setenv("TODOSYNC_TIMEOUT", "7s")

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend != config.BackendGoogleTasks {
		t.Errorf("expected googletasks backend, got %q", cfg.Backend)
	}
	if cfg.Cache != config.CacheRedis || cfg.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("unexpected cache settings: %q %q", cfg.Cache, cfg.RedisURL)
	}
	if cfg.Timeout != 7*time.Second {
		t.Errorf("env should override file timeout, got %v", cfg.Timeout)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown backend", `backend = "trello"`},
		{"redis without url", `cache = "redis"`},
		{"bad timeout", `timeout = "soon"`},
		{"slot with separator", `cache_slot = "../x"`},
		{"not toml", `backend = `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			dir := t.TempDir()
			writeConfig(t, dir, tt.body)
			if _, err := config.Load(dir); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCredential_LookupOrder(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `token = "from-file"`)
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if tok, _ := cfg.Credential(); tok != "from-file" {
		t.Errorf("expected file token, got %q", tok)
	}

	t.Setenv("TODOIST_API_TOKEN", "from-todoist-env")
	if tok, _ := cfg.Credential(); tok != "from-todoist-env" {
		t.Errorf("expected TODOIST_API_TOKEN, got %q", tok)
	}

	t.Setenv("TODOSYNC_TOKEN", "from-env")
	if tok, _ := cfg.Credential(); tok != "from-env" {
		t.Errorf("expected TODOSYNC_TOKEN, got %q", tok)
	}
}

func TestCredential_Missing(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := cfg.Credential(); !errors.Is(err, config.ErrNoCredential) {
		t.Errorf("expected ErrNoCredential, got %v", err)
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := config.DefaultConfigDir(); got != filepath.Join("/tmp/xdg", config.AppName) {
		t.Errorf("unexpected dir %q", got)
	}
}
