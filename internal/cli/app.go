package cli

import (
	"context"
	"time"

	"spacetime/internal/api"
	"spacetime/internal/config"
	"spacetime/internal/domain"
	"spacetime/internal/logging"
	"spacetime/internal/report"
	"spacetime/internal/session"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	api      api.API
	sessions *session.Store
	config   *config.Config
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, sessions *session.Store, cfg *config.Config) *App {
	return &App{
		api:      apiInstance,
		sessions: sessions,
		config:   cfg,
	}
}

// expectedHoursPerDay returns the configured expected-hours baseline
func (a *App) expectedHoursPerDay() float64 {
	if a.config != nil {
		return a.config.Report.ExpectedHoursPerDay
	}
	return report.DefaultExpectedHoursPerDay
}

// closeActiveSession logs the active session as a completed work entry and
// clears the session file. It returns the previous session, or nil when no
// session was active. The session is loaded and passed through explicitly;
// nothing else reads it as ambient state.
func (a *App) closeActiveSession(ctx context.Context, endTime time.Time) (*domain.Session, error) {
	sess, err := a.sessions.Load()
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}

	entry := sess.ToWorkEntry(endTime)
	logging.Debugf("closing session for %s: %s %s-%s\n", entry.ProjectCode, entry.Date, entry.StartTime, entry.EndTime)

	if _, err := a.api.AddEntry(ctx, entry.ProjectCode, entry.Date, entry.StartTime, entry.EndTime); err != nil {
		return sess, err
	}
	if err := a.sessions.Clear(); err != nil {
		return sess, err
	}
	return sess, nil
}
