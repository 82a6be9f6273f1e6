package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors config.toml. Empty values leave defaults untouched.
type fileConfig struct {
	Backend   string `toml:"backend"`
	BaseURL   string `toml:"base_url"`
	Token     string `toml:"token"`
	Cache     string `toml:"cache"`
	CacheSlot string `toml:"cache_slot"`
	RedisURL  string `toml:"redis_url"`
	Timeout   string `toml:"timeout"`
}

// Load builds a Config in priority order:
// 1. Defaults
// 2. config.toml in the config directory
// 3. Environment variables
// Flags are applied by the caller afterwards.
func Load(configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}

	if err := loadConfigFile(cfg, cfg.ConfigPath()); err != nil {
		return nil, fmt.Errorf("loading config file %s: %w", cfg.ConfigPath(), err)
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadConfigFile(cfg *Config, path string) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	setString(&cfg.Backend, fc.Backend)
	setString(&cfg.BaseURL, fc.BaseURL)
	setString(&cfg.Token, fc.Token)
	setString(&cfg.Cache, fc.Cache)
	setString(&cfg.CacheSlot, fc.CacheSlot)
	setString(&cfg.RedisURL, fc.RedisURL)
	return setDuration(&cfg.Timeout, "timeout", fc.Timeout)
}

func loadFromEnv(cfg *Config) error {
	setString(&cfg.Backend, os.Getenv("TODOSYNC_BACKEND"))
	setString(&cfg.BaseURL, os.Getenv("TODOSYNC_BASE_URL"))
	setString(&cfg.Cache, os.Getenv("TODOSYNC_CACHE"))
	setString(&cfg.CacheSlot, os.Getenv("TODOSYNC_CACHE_SLOT"))
	setString(&cfg.RedisURL, os.Getenv("TODOSYNC_REDIS_URL"))
	return setDuration(&cfg.Timeout, "TODOSYNC_TIMEOUT", os.Getenv("TODOSYNC_TIMEOUT"))
}

func (c *Config) validate() error {
	switch c.Backend {
	case BackendTodoist, BackendGoogleTasks:
	default:
		return fmt.Errorf("unknown backend: %s", c.Backend)
	}
	switch c.Cache {
	case CacheFile:
	case CacheRedis:
		if c.RedisURL == "" {
			return errors.New("cache = \"redis\" requires redis_url")
		}
	default:
		return fmt.Errorf("unknown cache: %s", c.Cache)
	}
	if strings.ContainsAny(c.CacheSlot, `/\`) {
		return fmt.Errorf("invalid cache_slot: %s", c.CacheSlot)
	}
	return nil
}

// Credential returns the API token for the todoist backend.
// Lookup order: TODOSYNC_TOKEN, TODOIST_API_TOKEN, then token in config.toml.
func (c *Config) Credential() (string, error) {
	for _, key := range []string{"TODOSYNC_TOKEN", "TODOIST_API_TOKEN"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v, nil
		}
	}
	if v := strings.TrimSpace(c.Token); v != "" {
		return v, nil
	}
	return "", ErrNoCredential
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, name, v string) error {
	if v = strings.TrimSpace(v); v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fmt.Errorf("invalid %s: %q", name, v)
	}
	*dst = d
	return nil
}
