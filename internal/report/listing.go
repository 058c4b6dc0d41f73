package report

import (
	"sort"
	"time"

	"spacetime/internal/domain"
	"spacetime/internal/errors"
	"spacetime/internal/period"
)

// EntryDetail is one work entry prepared for the daily listing view. The ID
// is carried through so entries can be referred to for deletion.
type EntryDetail struct {
	ID          int64
	StartTime   string
	EndTime     string
	ProjectCode string
	ProjectName string
	Hours       float64
}

// DailyListing lists the individual entries of a single date in ascending
// start-time order, with a grand total. This is a distinct presentation from
// the bucketed summaries: entries are listed, not aggregated.
type DailyListing struct {
	Date       time.Time
	Entries    []EntryDetail
	TotalHours float64
}

// ListEntriesForDate filters entries to the exact date and computes each
// entry's duration along with the day's total.
func ListEntriesForDate(entries []domain.WorkEntry, date time.Time) (*DailyListing, error) {
	day := period.Day(date)
	listing := &DailyListing{Date: day}

	type detailWithStart struct {
		detail EntryDetail
		start  time.Time
	}
	var matched []detailWithStart

	for _, entry := range entries {
		entryDate, err := entry.ParseDate()
		if err != nil {
			return nil, errors.NewMalformedEntryError(entry.ProjectCode, entry.Date, err)
		}
		if !entryDate.Equal(day) {
			continue
		}

		start, end, err := entry.ParseTimes()
		if err != nil {
			return nil, errors.NewMalformedEntryError(entry.ProjectCode, entry.Date, err)
		}

		hours := end.Sub(start).Seconds() / 3600
		matched = append(matched, detailWithStart{
			detail: EntryDetail{
				ID:          entry.ID,
				StartTime:   entry.StartTime,
				EndTime:     entry.EndTime,
				ProjectCode: entry.ProjectCode,
				ProjectName: entry.ProjectName,
				Hours:       hours,
			},
			start: start,
		})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].start.Before(matched[j].start)
	})

	for _, m := range matched {
		listing.Entries = append(listing.Entries, m.detail)
		listing.TotalHours += m.detail.Hours
	}
	return listing, nil
}
