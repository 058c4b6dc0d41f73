package cli

import (
	"context"
	"fmt"

	"spacetime/internal/domain"
)

// CurrentCommand handles the current command
type CurrentCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewCurrentCommand creates a new current command handler
func NewCurrentCommand(app *App) *CurrentCommand {
	return &CurrentCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the current command
func (c *CurrentCommand) Execute(ctx context.Context, args []string) error {
	sess, err := c.app.sessions.Load()
	if err != nil {
		return c.errorHandler.Handle("show current session", err)
	}
	if sess == nil {
		fmt.Println("No active session.")
		return nil
	}

	elapsed := timeNow().Sub(sess.StartTime).Hours()
	fmt.Printf("Working on '%s' (%s) since %s (%.2f hours).\n",
		sess.ProjectName, sess.ProjectCode, sess.StartTime.Format(domain.TimeLayout), elapsed)
	return nil
}
