package domain

import (
	"spacetime/internal/repository/sqlite"
)

// ProjectMapper handles conversion between domain and database Project models.
type ProjectMapper struct{}

// NewProjectMapper creates a new ProjectMapper instance.
func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

// ToDatabase converts a domain Project to a database Project.
func (m *ProjectMapper) ToDatabase(domainProject Project) sqlite.Project {
	return sqlite.Project{
		ID:   domainProject.ID,
		Name: domainProject.Name,
		Code: domainProject.Code,
	}
}

// FromDatabase converts a database Project to a domain Project.
func (m *ProjectMapper) FromDatabase(dbProject sqlite.Project) Project {
	return Project{
		ID:   dbProject.ID,
		Name: dbProject.Name,
		Code: dbProject.Code,
	}
}

// FromDatabaseSlice converts a slice of database Projects to domain Projects.
func (m *ProjectMapper) FromDatabaseSlice(dbProjects []*sqlite.Project) []Project {
	domainProjects := make([]Project, len(dbProjects))
	for i, project := range dbProjects {
		domainProjects[i] = m.FromDatabase(*project)
	}
	return domainProjects
}

// WorkEntryMapper handles conversion between domain and database WorkEntry models.
type WorkEntryMapper struct{}

// NewWorkEntryMapper creates a new WorkEntryMapper instance.
func NewWorkEntryMapper() *WorkEntryMapper {
	return &WorkEntryMapper{}
}

// FromDatabase converts a database WorkEntry to a domain WorkEntry.
func (m *WorkEntryMapper) FromDatabase(dbEntry sqlite.WorkEntry) WorkEntry {
	return WorkEntry{
		ID:          dbEntry.ID,
		Date:        dbEntry.EntryDate,
		StartTime:   dbEntry.StartTime,
		EndTime:     dbEntry.EndTime,
		ProjectCode: dbEntry.ProjectCode,
		ProjectName: dbEntry.ProjectName,
	}
}

// FromDatabaseSlice converts a slice of database WorkEntries to domain WorkEntries.
func (m *WorkEntryMapper) FromDatabaseSlice(dbEntries []*sqlite.WorkEntry) []WorkEntry {
	domainEntries := make([]WorkEntry, len(dbEntries))
	for i, entry := range dbEntries {
		domainEntries[i] = m.FromDatabase(*entry)
	}
	return domainEntries
}

// SearchOptionsMapper handles conversion between domain and database SearchOptions.
type SearchOptionsMapper struct{}

// NewSearchOptionsMapper creates a new SearchOptionsMapper instance.
func NewSearchOptionsMapper() *SearchOptionsMapper {
	return &SearchOptionsMapper{}
}

// ToDatabase converts domain SearchOptions to database SearchOptions.
func (m *SearchOptionsMapper) ToDatabase(domainOpts SearchOptions) sqlite.SearchOptions {
	return sqlite.SearchOptions{
		FromDate:    domainOpts.FromDate,
		ToDate:      domainOpts.ToDate,
		ProjectCode: domainOpts.ProjectCode,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Project       *ProjectMapper
	WorkEntry     *WorkEntryMapper
	SearchOptions *SearchOptionsMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Project:       NewProjectMapper(),
		WorkEntry:     NewWorkEntryMapper(),
		SearchOptions: NewSearchOptionsMapper(),
	}
}
