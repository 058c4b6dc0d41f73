package cli

import (
	"context"
	"fmt"
	"time"

	"spacetime/internal/domain"
	"spacetime/internal/errors"
	"spacetime/internal/validation"
)

// AddCommand handles the add command for logging completed entries directly
type AddCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 4 {
		return errors.NewInvalidInputError("command", "add", "usage: st add <code> <date> <start> <end>")
	}

	date, err := parseEntryDate(args[1], timeNow())
	if err != nil {
		return c.errorHandler.Handle("add entry", err)
	}
	start, err := parseEntryTime(args[2])
	if err != nil {
		return c.errorHandler.Handle("add entry", err)
	}
	end, err := parseEntryTime(args[3])
	if err != nil {
		return c.errorHandler.Handle("add entry", err)
	}

	entry, err := c.app.api.AddEntry(ctx, args[0], date, start, end)
	if err != nil {
		return c.errorHandler.Handle("add entry", err)
	}

	fmt.Printf("Entry for project '%s' on %s added.\n", entry.ProjectName, entry.Date)
	return nil
}

// parseEntryDate accepts either a full date (2006-01-02) or a short dd:mm
// form, which assumes the year of the reference day.
func parseEntryDate(value string, day time.Time) (string, error) {
	if parsed, err := time.Parse(domain.DateLayout, value); err == nil {
		return parsed.Format(domain.DateLayout), nil
	}

	parsed, err := time.Parse(validation.DayMonthLayout, value)
	if err != nil {
		return "", errors.NewInvalidInputError("date", value, "expected 2006-01-02 or dd:mm")
	}
	return time.Date(day.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC).Format(domain.DateLayout), nil
}

// parseEntryTime accepts either HH:MM:SS or the short HH:MM form.
func parseEntryTime(value string) (string, error) {
	if parsed, err := time.Parse(domain.TimeLayout, value); err == nil {
		return parsed.Format(domain.TimeLayout), nil
	}

	parsed, err := time.Parse(validation.ClockLayout, value)
	if err != nil {
		return "", errors.NewInvalidInputError("time", value, "expected HH:MM or HH:MM:SS")
	}
	return parsed.Format(domain.TimeLayout), nil
}
