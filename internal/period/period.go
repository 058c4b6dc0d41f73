package period

import (
	"fmt"
	"time"

	"spacetime/internal/errors"
)

// Period is a named calendar range keyword resolved relative to a reference date.
type Period int

const (
	ThisWeek Period = iota
	LastWeek
	ThisMonth
	LastMonth
	ThisYear
	Today
)

// keywords maps the recognized period keywords to their variants.
var keywords = map[string]Period{
	"this_week":  ThisWeek,
	"last_week":  LastWeek,
	"this_month": ThisMonth,
	"last_month": LastMonth,
	"this_year":  ThisYear,
	"today":      Today,
}

// Parse converts a period keyword into its Period variant.
// Unrecognized keywords fail with an invalid period error.
func Parse(keyword string) (Period, error) {
	p, ok := keywords[keyword]
	if !ok {
		return 0, errors.NewInvalidPeriodError(keyword)
	}
	return p, nil
}

// Keyword returns the exact keyword string for the period.
func (p Period) Keyword() string {
	switch p {
	case ThisWeek:
		return "this_week"
	case LastWeek:
		return "last_week"
	case ThisMonth:
		return "this_month"
	case LastMonth:
		return "last_month"
	case ThisYear:
		return "this_year"
	case Today:
		return "today"
	default:
		return "unknown"
	}
}

// String returns the display name of the period.
func (p Period) String() string {
	switch p {
	case ThisWeek:
		return "This week"
	case LastWeek:
		return "Last week"
	case ThisMonth:
		return "This month"
	case LastMonth:
		return "Last month"
	case ThisYear:
		return "This year"
	case Today:
		return "Today"
	default:
		return "Unknown"
	}
}

// Range represents a closed calendar date range [Start, End] with a
// human-readable label. Start and End are dates at midnight UTC.
type Range struct {
	Start time.Time
	End   time.Time
	Label string
}

// Contains returns true if the date falls within the range, inclusive both ends.
func (r Range) Contains(date time.Time) bool {
	return !date.Before(r.Start) && !date.After(r.End)
}

// Clip returns a copy of the range with End capped at the given date.
// Yearly week windows are emitted as fixed 7-day spans, so the last
// window may extend past the reference date and must be clipped before
// filtering or zero-filling.
func (r Range) Clip(date time.Time) Range {
	if r.End.After(date) {
		return Range{Start: r.Start, End: date, Label: r.Label}
	}
	return r
}

// Resolution is the result of resolving a period keyword against a
// reference date. Range always holds the whole-period range. Weeks is
// non-nil only for ThisYear, where the day-bucketed view iterates fixed
// 7-day windows instead of the whole-year range.
type Resolution struct {
	Period Period
	Range  Range
	Weeks  *WeekIterator
}

// Resolve maps a period keyword and a reference date to its concrete
// date range, and for ThisYear additionally to its week-window sequence.
// The resolver performs no I/O and cannot fail for a recognized keyword.
func Resolve(keyword string, today time.Time) (*Resolution, error) {
	p, err := Parse(keyword)
	if err != nil {
		return nil, err
	}

	day := Day(today)
	res := &Resolution{Period: p}

	switch p {
	case ThisWeek:
		start := day.AddDate(0, 0, -weekdayIndex(day))
		res.Range = Range{Start: start, End: day, Label: p.String()}
	case LastWeek:
		start := day.AddDate(0, 0, -weekdayIndex(day)-7)
		res.Range = Range{Start: start, End: start.AddDate(0, 0, 6), Label: p.String()}
	case ThisMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		res.Range = Range{Start: start, End: day, Label: p.String()}
	case LastMonth:
		firstOfMonth := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		start := firstOfMonth.AddDate(0, -1, 0)
		res.Range = Range{Start: start, End: firstOfMonth.AddDate(0, 0, -1), Label: p.String()}
	case ThisYear:
		start := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		res.Range = Range{Start: start, End: day, Label: p.String()}
		res.Weeks = &WeekIterator{next: start, today: day}
	case Today:
		res.Range = Range{Start: day, End: day, Label: p.String()}
	}

	return res, nil
}

// WeekIterator yields consecutive fixed 7-day windows starting January 1,
// while the window start does not exceed the reference date. The sequence
// is finite and consumed once; it is not restartable.
//
// Windows deliberately do not align to Monday the way the other periods
// do: window N is [Jan1+7N, Jan1+7N+6] regardless of weekday.
type WeekIterator struct {
	next  time.Time
	today time.Time
}

// Next returns the next 7-day window, or false when the sequence is exhausted.
func (it *WeekIterator) Next() (Range, bool) {
	if it.next.After(it.today) {
		return Range{}, false
	}
	r := Range{
		Start: it.next,
		End:   it.next.AddDate(0, 0, 6),
		Label: fmt.Sprintf("Week of %s", it.next.Format("2006-01-02")),
	}
	it.next = it.next.AddDate(0, 0, 7)
	return r, true
}

// Day normalizes a time to its calendar date at midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// weekdayIndex returns the ISO weekday index with Monday = 0.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
