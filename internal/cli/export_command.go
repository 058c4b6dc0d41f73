package cli

import (
	"context"
	"encoding/csv"
	"os"
	"strings"

	"spacetime/internal/errors"
)

// ExportCommand handles the export command
type ExportCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the export command, writing the full work log to stdout
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	format := "csv"
	if len(args) > 0 {
		value, ok := strings.CutPrefix(args[0], "format=")
		if !ok {
			return errors.NewInvalidInputError("argument", args[0], "expected format=<format>")
		}
		format = value
	}
	if format != "csv" {
		return errors.NewInvalidInputError("format", format, "only csv is supported")
	}

	entries, err := c.app.api.ListEntries(ctx)
	if err != nil {
		return c.errorHandler.Handle("export entries", err)
	}

	writer := csv.NewWriter(os.Stdout)
	if err := writer.Write([]string{"date", "start_time", "end_time", "project_name", "project_code"}); err != nil {
		return c.errorHandler.Handle("export entries", err)
	}
	for _, entry := range entries {
		record := []string{entry.Date, entry.StartTime, entry.EndTime, entry.ProjectName, entry.ProjectCode}
		if err := writer.Write(record); err != nil {
			return c.errorHandler.Handle("export entries", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return c.errorHandler.Handle("export entries", err)
	}
	return nil
}
