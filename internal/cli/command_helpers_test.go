package cli

import (
	"testing"
	"time"
)

// withFixedTime pins the clock used by command handlers for the duration of
// a test.
func withFixedTime(t *testing.T, fixed time.Time) {
	t.Helper()

	original := timeNow
	timeNow = func() time.Time { return fixed }
	t.Cleanup(func() { timeNow = original })
}
