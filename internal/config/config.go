package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the spacetime application
type Config struct {
	Database    DatabaseConfig
	Session     SessionConfig
	Report      ReportConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"ST_DB_DIR"`
	Filename       string        `env:"ST_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"ST_DB_QUERY_TIMEOUT"`
	DirPermissions uint32        `env:"ST_DB_DIR_PERMISSIONS"`
}

// SessionConfig holds active-session persistence configuration
type SessionConfig struct {
	Filename string `env:"ST_SESSION_FILENAME"`
}

// ReportConfig holds summary report configuration
type ReportConfig struct {
	ExpectedHoursPerDay float64 `env:"ST_EXPECTED_HOURS_PER_DAY"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"ST_APP_TIMEOUT"`
	Verbose bool          `env:"ST_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".spacetime")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDir,
			Filename:       "spacetime.db",
			QueryTimeout:   10 * time.Second,
			DirPermissions: 0755,
		},
		Session: SessionConfig{
			Filename: "session.yaml",
		},
		Report: ReportConfig{
			ExpectedHoursPerDay: 7.5,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetSessionPath returns the full path to the active-session file
func (c *Config) GetSessionPath() string {
	return filepath.Join(c.Database.Dir, c.Session.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("ST_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("ST_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("ST_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if perms := os.Getenv("ST_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Session configuration
	if filename := os.Getenv("ST_SESSION_FILENAME"); filename != "" {
		c.Session.Filename = filename
	}

	// Report configuration
	if hours := os.Getenv("ST_EXPECTED_HOURS_PER_DAY"); hours != "" {
		if h, err := strconv.ParseFloat(hours, 64); err == nil {
			c.Report.ExpectedHoursPerDay = h
		}
	}

	// Application configuration
	if timeout := os.Getenv("ST_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("ST_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Session.Filename == "" {
		return &ConfigError{Field: "session.filename", Message: "session filename cannot be empty"}
	}
	if c.Report.ExpectedHoursPerDay <= 0 {
		return &ConfigError{Field: "report.expected_hours_per_day", Message: "expected hours per day must be positive"}
	}
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return "config error for " + e.Field + ": " + e.Message
}
