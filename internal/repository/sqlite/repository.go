package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"spacetime/internal/errors"
	"spacetime/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SearchOptions contains all possible search parameters for work entries.
// Dates are inclusive bounds in 2006-01-02 format.
type SearchOptions struct {
	FromDate    *string
	ToDate      *string
	ProjectCode *string
}

// Repository defines the interface for database operations
type Repository interface {
	// Project operations
	CreateProject(ctx context.Context, project *Project) error
	GetProjectByCode(ctx context.Context, code string) (*Project, error)
	ListProjects(ctx context.Context) ([]*Project, error)

	// Work entry operations
	CreateWorkEntry(ctx context.Context, entry *WorkEntry) error
	GetWorkEntry(ctx context.Context, id int64) (*WorkEntry, error)
	ListWorkEntries(ctx context.Context) ([]*WorkEntry, error)
	SearchWorkEntries(ctx context.Context, opts SearchOptions) ([]*WorkEntry, error)
	DeleteWorkEntry(ctx context.Context, id int64) error

	// Utility
	Close() error
}

// entryColumns selects a work entry with its project code and name.
const entryColumns = `
	work_entries.id, work_entries.entry_date, work_entries.start_time,
	work_entries.end_time, work_entries.project_id, projects.code, projects.name`

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	if err := migrations.Run(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateProject creates a new project
func (r *SQLiteRepository) CreateProject(ctx context.Context, project *Project) error {
	query := `INSERT INTO projects (name, code) VALUES (?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, project.Name, project.Code)
	if err != nil {
		return err
	}

	project.ID = id
	return nil
}

// GetProjectByCode retrieves a project by its code
func (r *SQLiteRepository) GetProjectByCode(ctx context.Context, code string) (*Project, error) {
	query := `SELECT id, name, code FROM projects WHERE code = ?`
	return QuerySingle(ctx, r.db, query, ScanProject, "project", code, code)
}

// ListProjects retrieves all projects in registration order
func (r *SQLiteRepository) ListProjects(ctx context.Context) ([]*Project, error) {
	query := `SELECT id, name, code FROM projects ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, query, ScanProjects, "projects")
}

// CreateWorkEntry creates a new work entry
func (r *SQLiteRepository) CreateWorkEntry(ctx context.Context, entry *WorkEntry) error {
	query := `
	INSERT INTO work_entries (entry_date, start_time, end_time, project_id)
	VALUES (?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, entry.EntryDate, entry.StartTime, entry.EndTime, entry.ProjectID)
	if err != nil {
		return err
	}

	entry.ID = id
	return nil
}

// GetWorkEntry retrieves a work entry by ID
func (r *SQLiteRepository) GetWorkEntry(ctx context.Context, id int64) (*WorkEntry, error) {
	query := `
	SELECT` + entryColumns + `
	FROM work_entries
	JOIN projects ON work_entries.project_id = projects.id
	WHERE work_entries.id = ?`

	return QuerySingle(ctx, r.db, query, ScanWorkEntry, "work entry", fmt.Sprintf("%d", id), id)
}

// ListWorkEntries retrieves all work entries ordered by date and start time
func (r *SQLiteRepository) ListWorkEntries(ctx context.Context) ([]*WorkEntry, error) {
	query := `
	SELECT` + entryColumns + `
	FROM work_entries
	JOIN projects ON work_entries.project_id = projects.id
	ORDER BY work_entries.entry_date ASC, work_entries.start_time ASC`

	return QueryMultiple(ctx, r.db, query, ScanWorkEntries, "work entries")
}

// SearchWorkEntries searches for work entries based on the provided options
func (r *SQLiteRepository) SearchWorkEntries(ctx context.Context, opts SearchOptions) ([]*WorkEntry, error) {
	var conditions []string
	var args []interface{}

	if opts.FromDate != nil {
		conditions = append(conditions, "work_entries.entry_date >= ?")
		args = append(args, *opts.FromDate)
	}
	if opts.ToDate != nil {
		conditions = append(conditions, "work_entries.entry_date <= ?")
		args = append(args, *opts.ToDate)
	}
	if opts.ProjectCode != nil && *opts.ProjectCode != "" {
		conditions = append(conditions, "projects.code = ?")
		args = append(args, *opts.ProjectCode)
	}

	query := `
	SELECT` + entryColumns + `
	FROM work_entries
	JOIN projects ON work_entries.project_id = projects.id`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY work_entries.entry_date ASC, work_entries.start_time ASC"

	return QueryMultiple(ctx, r.db, query, ScanWorkEntries, "work entries", args...)
}

// DeleteWorkEntry deletes a work entry by ID
func (r *SQLiteRepository) DeleteWorkEntry(ctx context.Context, id int64) error {
	query := `DELETE FROM work_entries WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "work entry", fmt.Sprintf("%d", id), id)
}
