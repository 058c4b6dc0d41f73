package validation

import (
	"spacetime/internal/domain"
)

// EntryValidator validates work entry data before it reaches storage.
// The aggregation core assumes entries are well-formed, so this is the
// gate that enforces the start < end invariant at entry-creation time.
type EntryValidator struct {
	validator *Validator
}

// NewEntryValidator creates a new entry validator
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{
		validator: NewValidator(),
	}
}

// ValidateEntryForCreation validates the wire-format fields of a new entry
func (ev *EntryValidator) ValidateEntryForCreation(date, startTime, endTime string) error {
	ve := NewValidationError()

	if !ev.validator.IsNonEmptyString(date) {
		ve.AddRequiredError("date")
	} else if !ev.validator.IsValidEntryDate(date) {
		ve.AddInvalidFormatError("date", date, domain.DateLayout)
	}

	if !ev.validator.IsNonEmptyString(startTime) {
		ve.AddRequiredError("start time")
	} else if !ev.validator.IsValidEntryTime(startTime) {
		ve.AddInvalidFormatError("start time", startTime, domain.TimeLayout)
	}

	if !ev.validator.IsNonEmptyString(endTime) {
		ve.AddRequiredError("end time")
	} else if !ev.validator.IsValidEntryTime(endTime) {
		ve.AddInvalidFormatError("end time", endTime, domain.TimeLayout)
	}

	if ve.HasErrors() {
		return ve
	}

	if !ev.validator.IsValidTimeOrder(startTime, endTime) {
		ve.AddInvalidRangeError("start time", startTime, "start time must be before end time")
		return ve
	}

	return nil
}

// ValidateClockTime validates a short HH:MM time-of-day input
func (ev *EntryValidator) ValidateClockTime(value string) error {
	ve := NewValidationError()

	if !ev.validator.IsNonEmptyString(value) {
		ve.AddRequiredError("time")
	} else if !ev.validator.IsValidClockTime(value) {
		ve.AddInvalidFormatError("time", value, ClockLayout)
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
