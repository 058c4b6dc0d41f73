package report

import (
	"time"

	"spacetime/internal/domain"
	"spacetime/internal/period"
)

// ProjectHours is the accumulated hours for one project.
type ProjectHours struct {
	Code  string
	Name  string
	Hours float64
}

// ProjectSummary is a project-bucketed summary over a date range. Projects
// appear in first-seen order and only when at least one entry matched; there
// is no zero-fill and no expected-hours baseline for project buckets.
type ProjectSummary struct {
	Range    period.Range
	Projects []ProjectHours
}

// SummarizeByProject filters entries to the range and accumulates hours per
// project code.
func SummarizeByProject(entries []domain.WorkEntry, rng period.Range) (*ProjectSummary, error) {
	b, err := aggregate(entries, rng, func(entry domain.WorkEntry, date time.Time) string {
		return entry.ProjectCode
	})
	if err != nil {
		return nil, err
	}

	// First-seen project name per code, for display.
	names := make(map[string]string)
	for _, entry := range entries {
		if _, matched := b.hours[entry.ProjectCode]; !matched {
			continue
		}
		if _, seen := names[entry.ProjectCode]; !seen {
			names[entry.ProjectCode] = entry.ProjectName
		}
	}

	summary := &ProjectSummary{Range: rng}
	for _, code := range b.order {
		summary.Projects = append(summary.Projects, ProjectHours{
			Code:  code,
			Name:  names[code],
			Hours: b.hours[code],
		})
	}
	return summary, nil
}
