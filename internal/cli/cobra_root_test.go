package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spacetime/internal/config"
)

func TestNewRootCommand(t *testing.T) {
	app, _ := setupTestApp(t)
	root := NewRootCommand(app, config.NewConfig())

	t.Run("should register all subcommands", func(t *testing.T) {
		var names []string
		for _, cmd := range root.cmd.Commands() {
			names = append(names, cmd.Name())
		}

		for _, want := range []string{"project", "start", "stop", "add", "delete", "current", "summary", "export"} {
			assert.Contains(t, names, want)
		}
	})

	t.Run("should register project subcommands", func(t *testing.T) {
		projectCmd, _, err := root.cmd.Find([]string{"project", "add"})
		require.NoError(t, err)
		assert.Equal(t, "add", projectCmd.Name())

		listCmd, _, err := root.cmd.Find([]string{"project", "list"})
		require.NoError(t, err)
		assert.Equal(t, "list", listCmd.Name())
	})

	t.Run("should apply flag overrides to the config", func(t *testing.T) {
		cfg := config.NewConfig()
		overridden := NewRootCommand(app, cfg)

		flags := overridden.cmd.PersistentFlags()
		require.NoError(t, flags.Set("expected-hours", "8"))
		require.NoError(t, flags.Set("app-timeout", "2m"))
		require.NoError(t, flags.Set("db-dir", "/custom/dir"))

		require.NoError(t, overridden.getConfigFromFlags())

		assert.InDelta(t, 8.0, cfg.Report.ExpectedHoursPerDay, 0.001)
		assert.Equal(t, 2*time.Minute, cfg.Application.Timeout)
		assert.Equal(t, "/custom/dir", cfg.Database.Dir)
	})
}
