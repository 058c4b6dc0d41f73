package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanProject scans a single project from a database row
func ScanProject(scanner Scanner) (*Project, error) {
	project := &Project{}
	err := scanner.Scan(&project.ID, &project.Name, &project.Code)
	if err != nil {
		return nil, err
	}
	return project, nil
}

// ScanProjects scans multiple projects from database rows
func ScanProjects(rows Rows) ([]*Project, error) {
	var projects []*Project
	for rows.Next() {
		project, err := ScanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

// ScanWorkEntry scans a single work entry, including the joined project
// code and name, from a database row
func ScanWorkEntry(scanner Scanner) (*WorkEntry, error) {
	entry := &WorkEntry{}
	err := scanner.Scan(
		&entry.ID,
		&entry.EntryDate,
		&entry.StartTime,
		&entry.EndTime,
		&entry.ProjectID,
		&entry.ProjectCode,
		&entry.ProjectName,
	)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ScanWorkEntries scans multiple work entries from database rows
func ScanWorkEntries(rows Rows) ([]*WorkEntry, error) {
	var entries []*WorkEntry
	for rows.Next() {
		entry, err := ScanWorkEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
