package sqlite

// Project represents a registered project row.
type Project struct {
	ID   int64
	Name string
	Code string
}

// WorkEntry represents a single logged work session row.
// Date and time columns are stored as TEXT in the wire formats the
// aggregation core consumes (2006-01-02 and 15:04:05). ProjectCode and
// ProjectName are populated from the projects table on reads.
type WorkEntry struct {
	ID          int64
	EntryDate   string
	StartTime   string
	EndTime     string
	ProjectID   int64
	ProjectCode string
	ProjectName string
}
