package domain

import (
	"time"
)

const (
	// DateLayout is the wire format for entry dates (ISO 8601 calendar date).
	DateLayout = "2006-01-02"
	// TimeLayout is the wire format for entry start/end times (24-hour clock).
	TimeLayout = "15:04:05"
)

// WorkEntry represents one logged work session in the domain model.
// Date and time fields are kept in their wire formats; entries never span
// midnight, so start and end times are same-day values.
type WorkEntry struct {
	ID          int64
	Date        string // 2006-01-02
	StartTime   string // 15:04:05
	EndTime     string // 15:04:05
	ProjectCode string
	ProjectName string
}

// NewWorkEntry creates a new WorkEntry for the given project.
func NewWorkEntry(date, startTime, endTime, projectCode, projectName string) WorkEntry {
	return WorkEntry{
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		ProjectCode: projectCode,
		ProjectName: projectName,
	}
}

// ParseDate parses the entry's calendar date.
func (we WorkEntry) ParseDate() (time.Time, error) {
	return time.Parse(DateLayout, we.Date)
}

// ParseTimes parses the entry's start and end times of day.
func (we WorkEntry) ParseTimes() (time.Time, time.Time, error) {
	start, err := time.Parse(TimeLayout, we.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(TimeLayout, we.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// IsValid checks if the work entry has valid data.
func (we WorkEntry) IsValid() bool {
	if we.ProjectCode == "" {
		return false
	}
	if _, err := we.ParseDate(); err != nil {
		return false
	}
	start, end, err := we.ParseTimes()
	if err != nil {
		return false
	}
	return start.Before(end)
}
