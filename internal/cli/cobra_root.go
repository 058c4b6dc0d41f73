package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"spacetime/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:    app,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "st",
		Short: "A command-line personal time tracker",
		Long: `spacetime (st) is a command-line application for tracking time spent on projects.

EXAMPLES:
  st project add "Website Redesign" web   # Register a project
  st project list                         # List registered projects
  st start web                            # Start working on a project
  st start web --at 09:15                 # Start with an explicit clock time
  st stop                                 # Stop and log the active session
  st add web 2026-09-01 09:00 12:30       # Log a completed entry directly
  st delete 42                            # Delete a logged entry by id
  st current                              # Show the active session
  st summary                              # Day summary for this week
  st summary last_month --project         # Project summary for last month
  st summary today                        # List today's individual entries
  st export format=csv > entries.csv      # Export the work log

PERIODS:
  this_week, last_week, this_month, last_month, this_year, today

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    ST_DB_DIR                  Database directory (default: ~/.spacetime)
    ST_DB_FILENAME             Database filename (default: spacetime.db)
    ST_DB_QUERY_TIMEOUT        Query timeout (default: 10s)
    ST_SESSION_FILENAME        Session filename (default: session.yaml)
    ST_EXPECTED_HOURS_PER_DAY  Expected hours per business day (default: 7.5)
    ST_APP_TIMEOUT             Application timeout (default: 60s)
    ST_APP_VERBOSE             Enable verbose output (default: false)

GETTING HELP:
  st [command] --help          # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides ST_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides ST_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides ST_DB_QUERY_TIMEOUT)")
	flags.String("session-filename", "", "Session filename (overrides ST_SESSION_FILENAME)")
	flags.Float64("expected-hours", 0, "Expected hours per business day (overrides ST_EXPECTED_HOURS_PER_DAY)")
	flags.Duration("app-timeout", 0, "Application timeout (overrides ST_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides ST_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Project commands
	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
		Long:  "Register and list the projects that work entries are logged against.",
	}

	projectAddCmd := &cobra.Command{
		Use:   "add [name] [code]",
		Short: "Register a new project",
		Long:  "Register a new project with a display name and a unique short code.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewProjectAddCommand(r.app).Execute(ctx, args)
		},
	}

	projectListCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewProjectListCommand(r.app).Execute(ctx, args)
		},
	}

	projectCmd.AddCommand(projectAddCmd, projectListCmd)

	// Start command
	startCmd := &cobra.Command{
		Use:   "start [code]",
		Short: "Start working on a project",
		Long:  "Start a work session for a project. If a session is already active, it is stopped and logged first.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			atClock, _ := cmd.Flags().GetString("at")
			return NewStartCommand(r.app).Execute(ctx, args, atClock)
		},
	}
	startCmd.Flags().String("at", "", "Start time as HH:MM instead of now")

	// Stop command
	stopCmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the active session",
		Long:  "Stop the active work session and log it as a completed entry.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewStopCommand(r.app).Execute(ctx, args)
		},
	}

	// Add command
	addCmd := &cobra.Command{
		Use:   "add [code] [date] [start] [end]",
		Short: "Log a completed entry directly",
		Long: `Log a completed work entry without going through a session.

Dates accept 2006-01-02 or the short dd:mm form (current year assumed).
Times accept HH:MM or HH:MM:SS.

Example:
  st add web 2026-09-01 09:00 12:30`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewAddCommand(r.app).Execute(ctx, args)
		},
	}

	// Delete command
	deleteCmd := &cobra.Command{
		Use:   "delete [entry id]",
		Short: "Delete a logged entry",
		Long: `Delete a logged work entry by its id.

Entry ids are shown in the 'st summary today' listing.

Example:
  st delete 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewDeleteCommand(r.app).Execute(ctx, args)
		},
	}

	// Current command
	currentCmd := &cobra.Command{
		Use:   "current",
		Short: "Show the active session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewCurrentCommand(r.app).Execute(ctx, args)
		},
	}

	// Summary command
	summaryCmd := &cobra.Command{
		Use:   "summary [period]",
		Short: "Show a summary of logged hours",
		Long: `Show a summary of logged hours for a period.

Periods: this_week, last_week, this_month, last_month, this_year, today
The default period is this_week.

Day summaries list every business day in the period, compare the total
against the expected-hours baseline, and report the signed buffer.
this_year breaks the year into fixed 7-day windows from January 1.
today lists the day's individual entries instead.

Examples:
  st summary                      # Day summary for this week
  st summary last_month           # Day summary for last month
  st summary this_month --project # Hours per project this month`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			byProject, _ := cmd.Flags().GetBool("project")
			return NewSummaryCommand(r.app).Execute(ctx, args, byProject)
		},
	}
	summaryCmd.Flags().Bool("project", false, "Bucket hours by project instead of by day")

	// Export command
	exportCmd := &cobra.Command{
		Use:   "export format=csv",
		Short: "Export the work log in the specified format",
		Long: `Export the full work log in the specified format.

Supported formats:
  csv - Comma-separated values format

Example:
  st export format=csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewExportCommand(r.app).Execute(ctx, args)
		},
	}

	r.cmd.AddCommand(
		projectCmd,
		startCmd,
		stopCmd,
		addCmd,
		deleteCmd,
		currentCmd,
		summaryCmd,
		exportCmd,
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if queryTimeout, _ := flags.GetDuration("db-query-timeout"); queryTimeout > 0 {
		r.config.Database.QueryTimeout = queryTimeout
	}
	if sessionFilename, _ := flags.GetString("session-filename"); sessionFilename != "" {
		r.config.Session.Filename = sessionFilename
	}
	if expectedHours, _ := flags.GetFloat64("expected-hours"); expectedHours > 0 {
		r.config.Report.ExpectedHoursPerDay = expectedHours
	}
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}
