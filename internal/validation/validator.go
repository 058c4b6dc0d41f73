package validation

import (
	"regexp"
	"strings"
	"time"

	"spacetime/internal/domain"
)

// ClockLayout is the short time-of-day input format accepted on the CLI.
const ClockLayout = "15:04"

// DayMonthLayout is the short date input format from the original log tool;
// the year is assumed to be the current one.
const DayMonthLayout = "02:01"

// Validator provides common validation utilities
type Validator struct {
	projectCodeRegex *regexp.Regexp
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		projectCodeRegex: regexp.MustCompile(`^[a-zA-Z0-9_-]+$`),
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidProjectCode checks if a project code contains only allowed characters
func (v *Validator) IsValidProjectCode(code string) bool {
	return v.projectCodeRegex.MatchString(code)
}

// IsValidEntryDate checks if a date string matches the entry date layout
func (v *Validator) IsValidEntryDate(date string) bool {
	_, err := time.Parse(domain.DateLayout, date)
	return err == nil
}

// IsValidEntryTime checks if a time string matches the entry time layout
func (v *Validator) IsValidEntryTime(value string) bool {
	_, err := time.Parse(domain.TimeLayout, value)
	return err == nil
}

// IsValidClockTime checks if a time string matches the short HH:MM input layout
func (v *Validator) IsValidClockTime(value string) bool {
	_, err := time.Parse(ClockLayout, value)
	return err == nil
}

// IsValidTimeOrder checks that a start time falls strictly before an end time.
// Both values must already be valid entry times.
func (v *Validator) IsValidTimeOrder(startTime, endTime string) bool {
	start, err := time.Parse(domain.TimeLayout, startTime)
	if err != nil {
		return false
	}
	end, err := time.Parse(domain.TimeLayout, endTime)
	if err != nil {
		return false
	}
	return start.Before(end)
}

// TrimString trims whitespace and returns the cleaned string
func (v *Validator) TrimString(s string) string {
	return strings.TrimSpace(s)
}
