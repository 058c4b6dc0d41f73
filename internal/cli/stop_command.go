package cli

import (
	"context"
	"fmt"

	"spacetime/internal/domain"
)

// StopCommand handles the stop command
type StopCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewStopCommand creates a new stop command handler
func NewStopCommand(app *App) *StopCommand {
	return &StopCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the stop command
func (c *StopCommand) Execute(ctx context.Context, args []string) error {
	now := timeNow()

	sess, err := c.app.closeActiveSession(ctx, now)
	if err != nil {
		return c.errorHandler.Handle("stop work", err)
	}
	if sess == nil {
		fmt.Println("No active session.")
		return nil
	}

	fmt.Printf("Stopped work on '%s' at %s. Entry logged.\n", sess.ProjectName, now.Format(domain.TimeLayout))
	return nil
}
