// ABOUTME: Nutri configuration: initial goals, reminder policy, tick period, catalog, timezone.
// ABOUTME: JSON file at the XDG config path with NUTRI_* environment overrides.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/harperreed/nutri/internal/catalog"
	"github.com/harperreed/nutri/internal/models"
	"github.com/harperreed/nutri/internal/reminder"
	"github.com/harperreed/nutri/internal/session"
	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvReminderPolicy = "NUTRI_REMINDER_POLICY"
	EnvTickSeconds    = "NUTRI_TICK_SECONDS"
	EnvTimezone       = "NUTRI_TIMEZONE"
	EnvCatalogPath    = "NUTRI_CATALOG"
)

// Config stores nutri configuration.
type Config struct {
	// Goals seeds the goal store. Nil means the built-in defaults.
	Goals *models.DailyGoals `json:"goals,omitempty"`

	// ReminderPolicy is "every_tick" (default) or "once_per_hour".
	ReminderPolicy string `json:"reminder_policy,omitempty"`

	// TickSeconds is the reminder check interval. Defaults to 60.
	TickSeconds int `json:"tick_seconds,omitempty"`

	// CatalogPath points at a YAML food catalog replacing the built-in one.
	// Supports ~ expansion.
	CatalogPath string `json:"catalog_path,omitempty"`

	// Timezone is an IANA zone name for calendar days and reminder hours.
	// Empty means the system local zone.
	Timezone string `json:"timezone,omitempty"`
}

// GetGoals returns the configured initial goals, defaulting to
// models.DefaultGoals.
func (c *Config) GetGoals() models.DailyGoals {
	if c.Goals == nil {
		return models.DefaultGoals()
	}
	return *c.Goals
}

// GetReminderPolicy returns the parsed reminder policy.
func (c *Config) GetReminderPolicy() (reminder.Policy, error) {
	return reminder.ParsePolicy(c.ReminderPolicy)
}

// GetTickPeriod returns the reminder tick period, defaulting to 60s.
func (c *Config) GetTickPeriod() time.Duration {
	if c.TickSeconds <= 0 {
		return reminder.DefaultPeriod
	}
	return time.Duration(c.TickSeconds) * time.Second
}

// GetLocation resolves Timezone, defaulting to time.Local.
func (c *Config) GetLocation() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// GetCatalog loads the configured catalog, or the built-in one.
func (c *Config) GetCatalog() (*catalog.Catalog, error) {
	if c.CatalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(ExpandPath(c.CatalogPath))
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenSession builds a Session from the configuration.
func (c *Config) OpenSession(logger *log.Logger) (*session.Session, error) {
	policy, err := c.GetReminderPolicy()
	if err != nil {
		return nil, err
	}
	loc, err := c.GetLocation()
	if err != nil {
		return nil, err
	}
	cat, err := c.GetCatalog()
	if err != nil {
		return nil, err
	}
	goals := c.GetGoals()

	return session.New(session.Options{
		Catalog:        cat,
		Goals:          &goals,
		Location:       loc,
		Logger:         logger,
		ReminderPolicy: policy,
		TickPeriod:     c.GetTickPeriod(),
	}), nil
}

// ApplyEnv overrides fields from NUTRI_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvReminderPolicy); v != "" {
		c.ReminderPolicy = v
	}
	if v := os.Getenv(EnvTickSeconds); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTickSeconds, err)
		}
		c.TickSeconds = n
	}
	if v := os.Getenv(EnvTimezone); v != "" {
		c.Timezone = v
	}
	if v := os.Getenv(EnvCatalogPath); v != "" {
		c.CatalogPath = v
	}
	return nil
}

// LoadDotenv loads KEY=value pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "nutri", "config.json")
}

// Load reads config from disk and applies environment overrides.
func Load() (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(GetConfigPath())
	switch {
	case err == nil:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
	default:
		return nil, err
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
