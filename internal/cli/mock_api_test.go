package cli

import (
	"context"
	"path/filepath"
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"spacetime/internal/api"
	"spacetime/internal/config"
	"spacetime/internal/domain"
	"spacetime/internal/errors"
	"spacetime/internal/repository/sqlite"
	"spacetime/internal/session"
	"spacetime/internal/validation"
)

// mockAPI implements the api.API interface for testing. Entry fields go
// through the same validator as the real API so handler tests cannot log
// entries the real API would reject.
type mockAPI struct {
	projects       []*domain.Project
	entries        []domain.WorkEntry
	nextProjectID  int64
	nextEntryID    int64
	entryValidator *validation.EntryValidator
}

func newMockAPI() *mockAPI {
	return &mockAPI{
		nextProjectID:  1,
		nextEntryID:    1,
		entryValidator: validation.NewEntryValidator(),
	}
}

func (m *mockAPI) AddProject(ctx context.Context, name, code string) (*domain.Project, error) {
	for _, project := range m.projects {
		if project.Code == code {
			return nil, errors.NewInvalidInputError("project code", code, "a project with this code already exists")
		}
	}

	project := &domain.Project{ID: m.nextProjectID, Name: name, Code: code}
	m.projects = append(m.projects, project)
	m.nextProjectID++
	return project, nil
}

func (m *mockAPI) GetProjectByCode(ctx context.Context, code string) (*domain.Project, error) {
	for _, project := range m.projects {
		if project.Code == code {
			return project, nil
		}
	}
	return nil, errors.NewNotFoundError("project", code)
}

func (m *mockAPI) ListProjects(ctx context.Context) ([]domain.Project, error) {
	result := make([]domain.Project, 0, len(m.projects))
	for _, project := range m.projects {
		result = append(result, *project)
	}
	return result, nil
}

func (m *mockAPI) AddEntry(ctx context.Context, code, date, startTime, endTime string) (*domain.WorkEntry, error) {
	if err := m.entryValidator.ValidateEntryForCreation(date, startTime, endTime); err != nil {
		return nil, err
	}

	project, err := m.GetProjectByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	entry := domain.WorkEntry{
		ID:          m.nextEntryID,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		ProjectCode: project.Code,
		ProjectName: project.Name,
	}
	m.entries = append(m.entries, entry)
	m.nextEntryID++
	return &entry, nil
}

func (m *mockAPI) ListEntries(ctx context.Context) ([]domain.WorkEntry, error) {
	result := make([]domain.WorkEntry, len(m.entries))
	copy(result, m.entries)
	sortEntries(result)
	return result, nil
}

func (m *mockAPI) DeleteEntry(ctx context.Context, id int64) (*domain.WorkEntry, error) {
	for i, entry := range m.entries {
		if entry.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return &entry, nil
		}
	}
	return nil, errors.NewNotFoundError("work entry", strconv.FormatInt(id, 10))
}

func (m *mockAPI) SearchEntries(ctx context.Context, opts domain.SearchOptions) ([]domain.WorkEntry, error) {
	var result []domain.WorkEntry
	for _, entry := range m.entries {
		if opts.FromDate != nil && entry.Date < *opts.FromDate {
			continue
		}
		if opts.ToDate != nil && entry.Date > *opts.ToDate {
			continue
		}
		if opts.ProjectCode != nil && *opts.ProjectCode != "" && entry.ProjectCode != *opts.ProjectCode {
			continue
		}
		result = append(result, entry)
	}
	sortEntries(result)
	return result, nil
}

func sortEntries(entries []domain.WorkEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date < entries[j].Date
		}
		return entries[i].StartTime < entries[j].StartTime
	})
}

var _ api.API = (*mockAPI)(nil)

// setupTestApp creates a test app backed by the mock API and a throwaway
// session file.
func setupTestApp(t *testing.T) (*App, *mockAPI) {
	t.Helper()

	mock := newMockAPI()
	sessions := session.NewStore(filepath.Join(t.TempDir(), "session.yaml"))
	app := NewApp(mock, sessions, config.NewConfig())

	return app, mock
}

// setupTestAppWithRealAPI creates a test app backed by the real API and a
// temp-file sqlite repository, for flows whose behavior depends on the real
// validation and storage path.
func setupTestAppWithRealAPI(t *testing.T) *App {
	t.Helper()

	repo, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	sessions := session.NewStore(filepath.Join(t.TempDir(), "session.yaml"))
	return NewApp(api.New(repo), sessions, config.NewConfig())
}
