package domain

import (
	"time"
)

// Session represents the active work session, if any. It is persisted by the
// session store between invocations and passed explicitly to the closing
// operation; the core never reads it as ambient state.
type Session struct {
	ProjectCode string    `yaml:"project_code"`
	ProjectName string    `yaml:"project_name"`
	StartTime   time.Time `yaml:"start_time"`
}

// NewSession creates a new Session for the given project starting at startTime.
func NewSession(project Project, startTime time.Time) Session {
	return Session{
		ProjectCode: project.Code,
		ProjectName: project.Name,
		StartTime:   startTime,
	}
}

// ToWorkEntry closes the session at endTime and returns the resulting entry.
// The entry's date is taken from the session's start time. Entries never span
// midnight, so an end time past the start date is clamped to the last second
// of that date.
func (s Session) ToWorkEntry(endTime time.Time) WorkEntry {
	dayEnd := time.Date(s.StartTime.Year(), s.StartTime.Month(), s.StartTime.Day(), 23, 59, 59, 0, s.StartTime.Location())
	if endTime.After(dayEnd) {
		endTime = dayEnd
	}
	return WorkEntry{
		Date:        s.StartTime.Format(DateLayout),
		StartTime:   s.StartTime.Format(TimeLayout),
		EndTime:     endTime.Format(TimeLayout),
		ProjectCode: s.ProjectCode,
		ProjectName: s.ProjectName,
	}
}
