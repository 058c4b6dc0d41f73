package cli

import (
	"context"
	"fmt"
	"strconv"

	"spacetime/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the delete command. Entry ids are shown in the daily listing
// produced by 'st summary today'.
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: st delete <entry id>")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errors.NewInvalidInputError("entry id", args[0], "expected a numeric entry id")
	}

	entry, err := c.app.api.DeleteEntry(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("delete entry", err)
	}

	fmt.Printf("Deleted entry #%d: %s %s - %s '%s'.\n",
		entry.ID, entry.Date, entry.StartTime, entry.EndTime, entry.ProjectName)
	return nil
}
