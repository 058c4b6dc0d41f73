package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spacetime/internal/domain"
)

func TestStopCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("should log the active session as an entry", func(t *testing.T) {
		app, mock := setupTestApp(t)
		project, err := mock.AddProject(ctx, "Website", "web")
		require.NoError(t, err)

		start := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)
		require.NoError(t, app.sessions.Save(domain.NewSession(*project, start)))
		withFixedTime(t, time.Date(2024, time.March, 15, 12, 30, 0, 0, time.UTC))
		cmd := NewStopCommand(app)

		err = cmd.Execute(ctx, nil)

		require.NoError(t, err)
		entries, err := mock.ListEntries(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "2024-03-15", entries[0].Date)
		assert.Equal(t, "09:00:00", entries[0].StartTime)
		assert.Equal(t, "12:30:00", entries[0].EndTime)

		sess, err := app.sessions.Load()
		require.NoError(t, err)
		assert.Nil(t, sess)
	})

	t.Run("should log a midnight-crossing session against its start date", func(t *testing.T) {
		app := setupTestAppWithRealAPI(t)
		project, err := app.api.AddProject(ctx, "Website", "web")
		require.NoError(t, err)

		start := time.Date(2024, time.March, 14, 23, 0, 0, 0, time.UTC)
		require.NoError(t, app.sessions.Save(domain.NewSession(*project, start)))
		withFixedTime(t, time.Date(2024, time.March, 15, 0, 30, 0, 0, time.UTC))
		cmd := NewStopCommand(app)

		err = cmd.Execute(ctx, nil)

		require.NoError(t, err)
		entries, err := app.api.ListEntries(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "2024-03-14", entries[0].Date)
		assert.Equal(t, "23:00:00", entries[0].StartTime)
		assert.Equal(t, "23:59:59", entries[0].EndTime)

		// The session is cleared, so the next stop or start is not wedged.
		sess, err := app.sessions.Load()
		require.NoError(t, err)
		assert.Nil(t, sess)
	})

	t.Run("should do nothing without an active session", func(t *testing.T) {
		app, mock := setupTestApp(t)
		cmd := NewStopCommand(app)

		err := cmd.Execute(ctx, nil)

		require.NoError(t, err)
		entries, err := mock.ListEntries(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestCurrentCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("should succeed without an active session", func(t *testing.T) {
		app, _ := setupTestApp(t)
		cmd := NewCurrentCommand(app)

		assert.NoError(t, cmd.Execute(ctx, nil))
	})

	t.Run("should succeed with an active session", func(t *testing.T) {
		app, mock := setupTestApp(t)
		project, err := mock.AddProject(ctx, "Website", "web")
		require.NoError(t, err)
		start := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)
		require.NoError(t, app.sessions.Save(domain.NewSession(*project, start)))
		withFixedTime(t, time.Date(2024, time.March, 15, 11, 0, 0, 0, time.UTC))
		cmd := NewCurrentCommand(app)

		assert.NoError(t, cmd.Execute(ctx, nil))
	})
}
