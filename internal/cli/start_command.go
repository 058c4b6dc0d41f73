package cli

import (
	"context"
	"fmt"
	"time"

	"spacetime/internal/domain"
	"spacetime/internal/errors"
	"spacetime/internal/validation"
)

// StartCommand handles the start command
type StartCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewStartCommand creates a new start command handler
func NewStartCommand(app *App) *StartCommand {
	return &StartCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the start command. Starting work while another session is
// active logs the previous session first; only one session exists at a time.
func (c *StartCommand) Execute(ctx context.Context, args []string, atClock string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "start", "usage: st start <code> [--at HH:MM]")
	}

	project, err := c.app.api.GetProjectByCode(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("start work", err)
	}

	now := timeNow()
	startTime := now
	if atClock != "" {
		startTime, err = clockOnDay(atClock, now)
		if err != nil {
			return c.errorHandler.Handle("start work", err)
		}
	}

	previous, err := c.app.closeActiveSession(ctx, now)
	if err != nil {
		return c.errorHandler.Handle("stop previous session", err)
	}
	if previous != nil {
		fmt.Printf("Stopped work on '%s'.\n", previous.ProjectName)
	}

	if err := c.app.sessions.Save(domain.NewSession(*project, startTime)); err != nil {
		return c.errorHandler.Handle("start work", err)
	}

	fmt.Printf("Started work on '%s' at %s.\n", project.Name, startTime.Format(domain.TimeLayout))
	return nil
}

// clockOnDay combines an HH:MM clock value with the date of the given day.
func clockOnDay(clockValue string, day time.Time) (time.Time, error) {
	validator := validation.NewEntryValidator()
	if err := validator.ValidateClockTime(clockValue); err != nil {
		return time.Time{}, err
	}

	clock, err := time.Parse(validation.ClockLayout, clockValue)
	if err != nil {
		return time.Time{}, errors.NewInvalidInputError("time", clockValue, "expected HH:MM")
	}
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, day.Location()), nil
}
