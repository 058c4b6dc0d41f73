package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "spacetime.db", cfg.Database.Filename)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "session.yaml", cfg.Session.Filename)
	assert.InDelta(t, 7.5, cfg.Report.ExpectedHoursPerDay, 0.001)
	assert.Equal(t, 60*time.Second, cfg.Application.Timeout)
	assert.False(t, cfg.Application.Verbose)
	assert.Contains(t, cfg.Database.Dir, ".spacetime")
}

func TestConfig_Paths(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Dir = "/data/st"

	assert.Equal(t, filepath.Join("/data/st", "spacetime.db"), cfg.GetDatabasePath())
	assert.Equal(t, filepath.Join("/data/st", "session.yaml"), cfg.GetSessionPath())
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Run("should override defaults from environment", func(t *testing.T) {
		t.Setenv("ST_DB_DIR", "/custom/dir")
		t.Setenv("ST_DB_FILENAME", "custom.db")
		t.Setenv("ST_DB_QUERY_TIMEOUT", "30s")
		t.Setenv("ST_SESSION_FILENAME", "active.yaml")
		t.Setenv("ST_EXPECTED_HOURS_PER_DAY", "8")
		t.Setenv("ST_APP_TIMEOUT", "2m")
		t.Setenv("ST_APP_VERBOSE", "true")

		cfg := NewConfig()
		require.NoError(t, cfg.LoadFromEnvironment())

		assert.Equal(t, "/custom/dir", cfg.Database.Dir)
		assert.Equal(t, "custom.db", cfg.Database.Filename)
		assert.Equal(t, 30*time.Second, cfg.Database.QueryTimeout)
		assert.Equal(t, "active.yaml", cfg.Session.Filename)
		assert.InDelta(t, 8.0, cfg.Report.ExpectedHoursPerDay, 0.001)
		assert.Equal(t, 2*time.Minute, cfg.Application.Timeout)
		assert.True(t, cfg.Application.Verbose)
	})

	t.Run("should keep defaults for unset variables", func(t *testing.T) {
		t.Setenv("ST_DB_DIR", "")

		cfg := NewConfig()
		require.NoError(t, cfg.LoadFromEnvironment())

		assert.Equal(t, "spacetime.db", cfg.Database.Filename)
		assert.InDelta(t, 7.5, cfg.Report.ExpectedHoursPerDay, 0.001)
	})

	t.Run("should ignore unparseable values", func(t *testing.T) {
		t.Setenv("ST_EXPECTED_HOURS_PER_DAY", "lots")
		t.Setenv("ST_APP_TIMEOUT", "soon")

		cfg := NewConfig()
		require.NoError(t, cfg.LoadFromEnvironment())

		assert.InDelta(t, 7.5, cfg.Report.ExpectedHoursPerDay, 0.001)
		assert.Equal(t, 60*time.Second, cfg.Application.Timeout)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "should accept the defaults",
			mutate:  func(c *Config) {},
			wantErr: "",
		},
		{
			name:    "should reject an empty database dir",
			mutate:  func(c *Config) { c.Database.Dir = "" },
			wantErr: "database.dir",
		},
		{
			name:    "should reject an empty database filename",
			mutate:  func(c *Config) { c.Database.Filename = "" },
			wantErr: "database.filename",
		},
		{
			name:    "should reject a non-positive query timeout",
			mutate:  func(c *Config) { c.Database.QueryTimeout = 0 },
			wantErr: "database.query_timeout",
		},
		{
			name:    "should reject an empty session filename",
			mutate:  func(c *Config) { c.Session.Filename = "" },
			wantErr: "session.filename",
		},
		{
			name:    "should reject non-positive expected hours",
			mutate:  func(c *Config) { c.Report.ExpectedHoursPerDay = -1 },
			wantErr: "report.expected_hours_per_day",
		},
		{
			name:    "should reject a non-positive application timeout",
			mutate:  func(c *Config) { c.Application.Timeout = 0 },
			wantErr: "application.timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
