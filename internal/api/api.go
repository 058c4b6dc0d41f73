package api

import (
	"context"

	"spacetime/internal/domain"
	"spacetime/internal/errors"
	"spacetime/internal/repository/sqlite"
	"spacetime/internal/validation"
)

// API defines the interface for all project and work entry operations.
type API interface {
	// Project operations
	AddProject(ctx context.Context, name, code string) (*domain.Project, error)
	GetProjectByCode(ctx context.Context, code string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// Work entry operations
	AddEntry(ctx context.Context, code, date, startTime, endTime string) (*domain.WorkEntry, error)
	DeleteEntry(ctx context.Context, id int64) (*domain.WorkEntry, error)
	ListEntries(ctx context.Context) ([]domain.WorkEntry, error)
	SearchEntries(ctx context.Context, opts domain.SearchOptions) ([]domain.WorkEntry, error)
}

type apiImpl struct {
	repo             sqlite.Repository
	mapper           *domain.Mapper
	projectValidator *validation.ProjectValidator
	entryValidator   *validation.EntryValidator
}

// New creates a new API instance.
func New(repo sqlite.Repository) API {
	return &apiImpl{
		repo:             repo,
		mapper:           domain.NewMapper(),
		projectValidator: validation.NewProjectValidator(),
		entryValidator:   validation.NewEntryValidator(),
	}
}

// AddProject registers a new project with a unique code.
func (a *apiImpl) AddProject(ctx context.Context, name, code string) (*domain.Project, error) {
	if err := a.projectValidator.ValidateProjectForCreation(name, code); err != nil {
		return nil, err
	}

	cleanedName, err := a.projectValidator.GetValidProjectName(name)
	if err != nil {
		return nil, err
	}
	cleanedCode, err := a.projectValidator.GetValidProjectCode(code)
	if err != nil {
		return nil, err
	}

	// Reject duplicate codes up front for a friendlier message than the
	// UNIQUE constraint error.
	if _, err := a.repo.GetProjectByCode(ctx, cleanedCode); err == nil {
		return nil, errors.NewInvalidInputError("project code", cleanedCode, "a project with this code already exists")
	} else if !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		return nil, err
	}

	dbProject := &sqlite.Project{Name: cleanedName, Code: cleanedCode}
	if err := a.repo.CreateProject(ctx, dbProject); err != nil {
		return nil, err
	}

	domainProject := a.mapper.Project.FromDatabase(*dbProject)
	return &domainProject, nil
}

// GetProjectByCode looks up a registered project by its code.
func (a *apiImpl) GetProjectByCode(ctx context.Context, code string) (*domain.Project, error) {
	cleanedCode, err := a.projectValidator.GetValidProjectCode(code)
	if err != nil {
		return nil, err
	}

	dbProject, err := a.repo.GetProjectByCode(ctx, cleanedCode)
	if err != nil {
		return nil, err
	}

	domainProject := a.mapper.Project.FromDatabase(*dbProject)
	return &domainProject, nil
}

// ListProjects returns all registered projects in registration order.
func (a *apiImpl) ListProjects(ctx context.Context) ([]domain.Project, error) {
	dbProjects, err := a.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	return a.mapper.Project.FromDatabaseSlice(dbProjects), nil
}

// AddEntry logs a completed work session against a registered project.
// Fields use the wire formats (2006-01-02 and 15:04:05) and must satisfy
// start < end; the aggregation core relies on entries being valid.
func (a *apiImpl) AddEntry(ctx context.Context, code, date, startTime, endTime string) (*domain.WorkEntry, error) {
	if err := a.entryValidator.ValidateEntryForCreation(date, startTime, endTime); err != nil {
		return nil, err
	}

	project, err := a.GetProjectByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	dbEntry := &sqlite.WorkEntry{
		EntryDate: date,
		StartTime: startTime,
		EndTime:   endTime,
		ProjectID: project.ID,
	}
	if err := a.repo.CreateWorkEntry(ctx, dbEntry); err != nil {
		return nil, err
	}

	dbEntry.ProjectCode = project.Code
	dbEntry.ProjectName = project.Name
	domainEntry := a.mapper.WorkEntry.FromDatabase(*dbEntry)
	return &domainEntry, nil
}

// DeleteEntry removes a logged work entry by its identifier and returns the
// removed entry for display.
func (a *apiImpl) DeleteEntry(ctx context.Context, id int64) (*domain.WorkEntry, error) {
	dbEntry, err := a.repo.GetWorkEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := a.repo.DeleteWorkEntry(ctx, id); err != nil {
		return nil, err
	}

	domainEntry := a.mapper.WorkEntry.FromDatabase(*dbEntry)
	return &domainEntry, nil
}

// ListEntries returns the full work log ordered by date and start time.
func (a *apiImpl) ListEntries(ctx context.Context) ([]domain.WorkEntry, error) {
	dbEntries, err := a.repo.ListWorkEntries(ctx)
	if err != nil {
		return nil, err
	}
	return a.mapper.WorkEntry.FromDatabaseSlice(dbEntries), nil
}

// SearchEntries returns the work entries matching the search options.
func (a *apiImpl) SearchEntries(ctx context.Context, opts domain.SearchOptions) ([]domain.WorkEntry, error) {
	dbEntries, err := a.repo.SearchWorkEntries(ctx, a.mapper.SearchOptions.ToDatabase(opts))
	if err != nil {
		return nil, err
	}
	return a.mapper.WorkEntry.FromDatabaseSlice(dbEntries), nil
}
