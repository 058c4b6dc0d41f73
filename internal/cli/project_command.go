package cli

import (
	"context"
	"fmt"

	"spacetime/internal/errors"
)

// ProjectAddCommand handles the project add command
type ProjectAddCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewProjectAddCommand creates a new project add command handler
func NewProjectAddCommand(app *App) *ProjectAddCommand {
	return &ProjectAddCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the project add command
func (c *ProjectAddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "project add", "usage: st project add <name> <code>")
	}

	project, err := c.app.api.AddProject(ctx, args[0], args[1])
	if err != nil {
		return c.errorHandler.Handle("add project", err)
	}

	fmt.Printf("Project '%s' with code '%s' added.\n", project.Name, project.Code)
	return nil
}

// ProjectListCommand handles the project list command
type ProjectListCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewProjectListCommand creates a new project list command handler
func NewProjectListCommand(app *App) *ProjectListCommand {
	return &ProjectListCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the project list command
func (c *ProjectListCommand) Execute(ctx context.Context, args []string) error {
	projects, err := c.app.api.ListProjects(ctx)
	if err != nil {
		return c.errorHandler.Handle("list projects", err)
	}

	if len(projects) == 0 {
		fmt.Println("No projects registered.")
		return nil
	}

	for _, project := range projects {
		fmt.Printf("Code: %s - Name: %s\n", project.Code, project.Name)
	}
	return nil
}
