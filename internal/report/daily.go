package report

import (
	"time"

	"spacetime/internal/domain"
	"spacetime/internal/period"
)

// DefaultExpectedHoursPerDay is the expected-hours baseline per business day.
const DefaultExpectedHoursPerDay = 7.5

// DayHours is the accumulated hours for one calendar day.
type DayHours struct {
	Date  time.Time
	Hours float64
}

// DailySummary is a day-bucketed summary over a date range, in ascending
// date order. Every business day in the range is present even with zero
// logged hours; weekend days appear only when an entry exists for them.
type DailySummary struct {
	Range period.Range
	Days  []DayHours
}

// Totals holds the whole-period comparison of actual against expected hours.
// TimeBuffer is signed; negative means under target.
type Totals struct {
	TotalHours    float64
	ExpectedHours float64
	TimeBuffer    float64
}

// SummarizeByDay filters entries to the range, accumulates hours per
// calendar day, and zero-fills business days with no logged work. The range
// is clipped to the reference date first, so yearly week windows that extend
// past today neither filter nor zero-fill beyond it.
func SummarizeByDay(entries []domain.WorkEntry, rng period.Range, today time.Time) (*DailySummary, error) {
	rng = rng.Clip(period.Day(today))

	b, err := aggregate(entries, rng, func(entry domain.WorkEntry, date time.Time) string {
		return date.Format(domain.DateLayout)
	})
	if err != nil {
		return nil, err
	}

	summary := &DailySummary{Range: rng}
	for date := rng.Start; !date.After(rng.End); date = date.AddDate(0, 0, 1) {
		hours, logged := b.hours[date.Format(domain.DateLayout)]
		if logged || isWeekday(date) {
			summary.Days = append(summary.Days, DayHours{Date: date, Hours: hours})
		}
	}
	return summary, nil
}

// TotalHours returns the sum over all days in the summary.
func (s *DailySummary) TotalHours() float64 {
	var total float64
	for _, day := range s.Days {
		total += day.Hours
	}
	return total
}

// Totals computes the expected-hours baseline and the time buffer for a
// whole-period summary. Expected hours count every business day in the
// summary, since business days are always zero-filled. Callers apply this
// only to whole-period day-bucketed reports, never to the yearly per-week
// breakdown or to project summaries.
func (s *DailySummary) Totals(hoursPerDay float64) Totals {
	var total float64
	weekdays := 0
	for _, day := range s.Days {
		total += day.Hours
		if isWeekday(day.Date) {
			weekdays++
		}
	}
	expected := hoursPerDay * float64(weekdays)
	return Totals{
		TotalHours:    total,
		ExpectedHours: expected,
		TimeBuffer:    total - expected,
	}
}
