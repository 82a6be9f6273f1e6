// Package config handles the XDG configuration directory, the config file and
// credential lookup.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"
)

const (
	// AppName is the application directory name.
	AppName = "todosync"

	// ConfigFile is the optional TOML configuration filename.
	ConfigFile = "config.toml"

	// OAuthClientFile is the Google OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored Google OAuth token filename.
	TokenFile = "token.json"

	// IDMapFile maps Google Tasks ids to integer task ids.
	IDMapFile = "google_ids.json"
)

// Backend names.
const (
	BackendTodoist     = "todoist"
	BackendGoogleTasks = "googletasks"
)

// Cache kinds.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
)

const (
	DefaultBaseURL   = "https://api.todoist.com/rest/v2"
	DefaultCacheSlot = "todos"
	DefaultTimeout   = 10 * time.Second
)

var (
	// ErrNoCredential is returned when no API token is configured.
	ErrNoCredential = errors.New("no API token configured (set TODOSYNC_TOKEN)")

	// ErrNoOAuthClient is returned when oauth_client.json is missing or unusable.
	ErrNoOAuthClient = errors.New("oauth client unavailable")

	// ErrNotLoggedIn is returned when token.json is missing or unusable.
	ErrNotLoggedIn = errors.New("not logged in (run: todosync login)")
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// AssumeYes answers every confirmation prompt with yes.
	AssumeYes bool

	Backend   string
	BaseURL   string
	Token     string
	Cache     string
	CacheSlot string
	RedisURL  string
	Timeout   time.Duration
}

// New creates a Config with defaults and the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todosync or $HOME/.config/todosync.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:       dir,
		Backend:   BackendTodoist,
		BaseURL:   DefaultBaseURL,
		Cache:     CacheFile,
		CacheSlot: DefaultCacheSlot,
		Timeout:   DefaultTimeout,
	}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to the TOML config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// CachePath returns the path of the file-backed cache slot.
func (c *Config) CachePath() string {
	return filepath.Join(c.Dir, c.CacheSlot+".json")
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// IDMapPath returns the path to the Google Tasks id map.
func (c *Config) IDMapPath() string {
	return filepath.Join(c.Dir, IDMapFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
