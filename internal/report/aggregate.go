// Package report computes hour summaries from a flat sequence of work
// entries: per-day buckets with business-day zero-fill, per-project buckets,
// and the per-entry daily listing. All operations are pure functions of
// (entries, range); the package never reads or writes storage.
package report

import (
	"time"

	"spacetime/internal/domain"
	"spacetime/internal/errors"
	"spacetime/internal/period"
)

// bucket accumulates hours per key, preserving first-seen key order.
type bucket struct {
	order []string
	hours map[string]float64
}

func newBucket() *bucket {
	return &bucket{hours: make(map[string]float64)}
}

func (b *bucket) add(key string, hours float64) {
	if _, ok := b.hours[key]; !ok {
		b.order = append(b.order, key)
	}
	b.hours[key] += hours
}

// entryHours computes the duration of a single entry in hours. Entries never
// span midnight, so this is plain same-day arithmetic.
func entryHours(entry domain.WorkEntry) (float64, error) {
	start, end, err := entry.ParseTimes()
	if err != nil {
		return 0, errors.NewMalformedEntryError(entry.ProjectCode, entry.Date, err)
	}
	return end.Sub(start).Seconds() / 3600, nil
}

// aggregate filters entries to the range (inclusive both ends) and
// accumulates their durations into a bucket keyed by the extractor. The day
// and project views differ only in the key they extract, so both share this
// one routine. An entry whose date or times do not parse fails the whole
// aggregation; entries are a pre-validated input and silently skipping a bad
// row would under-report logged time.
func aggregate(entries []domain.WorkEntry, rng period.Range, keyFunc func(entry domain.WorkEntry, date time.Time) string) (*bucket, error) {
	b := newBucket()
	for _, entry := range entries {
		date, err := entry.ParseDate()
		if err != nil {
			return nil, errors.NewMalformedEntryError(entry.ProjectCode, entry.Date, err)
		}
		if !rng.Contains(date) {
			continue
		}

		hours, err := entryHours(entry)
		if err != nil {
			return nil, err
		}
		b.add(keyFunc(entry, date), hours)
	}
	return b, nil
}

// isWeekday returns true for Monday through Friday.
func isWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday != time.Saturday && weekday != time.Sunday
}
