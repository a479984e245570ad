// Package config loads taskdesk settings from YAML, a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/thenoetrevino/taskdesk/internal/config/colors"
	"github.com/thenoetrevino/taskdesk/internal/models"
	"gopkg.in/yaml.v3"
)

// Overflow policies for per-user task lists
const (
	OverflowTruncate = "truncate"
	OverflowReject   = "reject"
)

// Owner check modes for MarkComplete and DeleteTask
const (
	OwnerCheckDisabled = "disabled"
	OwnerCheckEnabled  = "enabled"
)

// Password hashers
const (
	HasherBcrypt = "bcrypt"
	HasherSHA256 = "sha256"
)

// Environment variables that override file settings
const (
	EnvDBPath       = "TASKDESK_DB_PATH"
	EnvOwnerCheck   = "TASKDESK_OWNER_CHECK"
	EnvTaskLimit    = "TASKDESK_TASK_LIMIT"
	EnvTaskOverflow = "TASKDESK_TASK_OVERFLOW"
	EnvLogLevel     = "TASKDESK_LOG_LEVEL"
	EnvThemeFile    = "TASKDESK_THEME_FILE"
	EnvPassword     = "TASKDESK_PASSWORD"
)

const defaultBcryptCost = 10

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig     `yaml:"database"`
	Tasks       TaskConfig         `yaml:"tasks"`
	Auth        AuthConfig         `yaml:"auth"`
	Log         LogConfig          `yaml:"log"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// DatabaseConfig locates the SQLite file
type DatabaseConfig struct {
	Path           string `yaml:"path"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// TaskConfig controls task list bounds and ownership enforcement
type TaskConfig struct {
	// Limit caps FetchTasks. nil means the default, 0 means unbounded.
	Limit      *int   `yaml:"limit"`
	Overflow   string `yaml:"overflow"`
	OwnerCheck string `yaml:"owner_check"`
}

// AuthConfig selects how passwords are stored
type AuthConfig struct {
	Hasher              string `yaml:"hasher"`
	BcryptCost          int    `yaml:"bcrypt_cost"`
	UpgradeLegacyHashes *bool  `yaml:"upgrade_legacy_hashes"`
}

// LogConfig controls the file logger
type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// TaskLimit returns the effective cap, 0 meaning unbounded
func (t TaskConfig) TaskLimit() int {
	if t.Limit == nil {
		return models.DefaultTaskLimit
	}
	return max(*t.Limit, 0)
}

// OwnerCheckEnabled reports whether task mutations are scoped to the caller
func (t TaskConfig) OwnerCheckEnabled() bool {
	return t.OwnerCheck == OwnerCheckEnabled
}

// UpgradeLegacy reports whether legacy digests are rehashed on login
func (a AuthConfig) UpgradeLegacy() bool {
	return a.UpgradeLegacyHashes == nil || *a.UpgradeLegacyHashes
}

// Timeout is the per-operation database deadline
func (d DatabaseConfig) Timeout() time.Duration {
	return time.Duration(d.TimeoutSeconds) * time.Second
}

// Default returns a fully populated default configuration
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist. A .env file in the
// working directory is read first; it never overrides variables already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	config := &Config{}

	configPath, err := getConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !errors.Is(readErr, fs.ErrNotExist):
			return nil, readErr
		}
	}

	loadThemeFile(config)

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// loadThemeFile loads and merges theme from TASKDESK_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv overlays TASKDESK_* variables onto the file settings
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDBPath); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(EnvOwnerCheck); v != "" {
		c.Tasks.OwnerCheck = strings.ToLower(v)
	}
	if v := os.Getenv(EnvTaskOverflow); v != "" {
		c.Tasks.Overflow = strings.ToLower(v)
	}
	if v := os.Getenv(EnvTaskLimit); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTaskLimit, err)
		}
		c.Tasks.Limit = &limit
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	return nil
}

// Validate rejects unknown enum values and out of range numbers
func (c *Config) Validate() error {
	switch c.Tasks.Overflow {
	case OverflowTruncate, OverflowReject:
	default:
		return fmt.Errorf("tasks.overflow: unknown policy %q (want %s or %s)", c.Tasks.Overflow, OverflowTruncate, OverflowReject)
	}

	switch c.Tasks.OwnerCheck {
	case OwnerCheckDisabled, OwnerCheckEnabled:
	default:
		return fmt.Errorf("tasks.owner_check: unknown mode %q (want %s or %s)", c.Tasks.OwnerCheck, OwnerCheckDisabled, OwnerCheckEnabled)
	}

	switch c.Auth.Hasher {
	case HasherBcrypt, HasherSHA256:
	default:
		return fmt.Errorf("auth.hasher: unknown hasher %q (want %s or %s)", c.Auth.Hasher, HasherBcrypt, HasherSHA256)
	}

	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost: %d outside 4..31", c.Auth.BcryptCost)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}

	return nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the location Load reads from and Save writes to
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "taskdesk", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "taskdesk", "config.yaml"), nil
}

// DataDir is where the database and logs live by default
func DataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".taskdesk"
	}
	return filepath.Join(homeDir, ".taskdesk")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Database.Path == "" {
		c.Database.Path = filepath.Join(DataDir(), "users.db")
	}
	if c.Database.TimeoutSeconds <= 0 {
		c.Database.TimeoutSeconds = 5
	}
	if c.Tasks.Limit == nil {
		limit := models.DefaultTaskLimit
		c.Tasks.Limit = &limit
	}
	if c.Tasks.Overflow == "" {
		c.Tasks.Overflow = OverflowTruncate
	}
	if c.Tasks.OwnerCheck == "" {
		c.Tasks.OwnerCheck = OwnerCheckDisabled
	}
	if c.Auth.Hasher == "" {
		c.Auth.Hasher = HasherBcrypt
	}
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = defaultBcryptCost
	}
	if c.Auth.UpgradeLegacyHashes == nil {
		upgrade := true
		c.Auth.UpgradeLegacyHashes = &upgrade
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Path == "" {
		c.Log.Path = filepath.Join(DataDir(), "logs", "taskdesk.log")
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
