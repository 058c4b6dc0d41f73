package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError(t *testing.T) {
	t.Run("should format message without cause", func(t *testing.T) {
		err := NewNotFoundError("project", "web")

		assert.Equal(t, "not_found: project not found: web", err.Error())
	})

	t.Run("should include the cause in the message", func(t *testing.T) {
		cause := fmt.Errorf("disk full")
		err := NewDatabaseError("create project", cause)

		assert.Contains(t, err.Error(), "disk full")
		assert.Equal(t, cause, err.Unwrap())
	})

	t.Run("should match errors by type and code", func(t *testing.T) {
		err := NewNotFoundError("project", "web")

		assert.True(t, err.Is(NewNotFoundError("entry", "42")))
		assert.False(t, err.Is(NewDatabaseError("query", nil)))
	})

	t.Run("should carry added context", func(t *testing.T) {
		err := NewValidationError("bad input", nil).WithContext("field", "name")

		value, exists := err.GetContext("field")
		assert.True(t, exists)
		assert.Equal(t, "name", value)

		_, exists = err.GetContext("missing")
		assert.False(t, exists)
	})
}

func TestNewInvalidPeriodError(t *testing.T) {
	err := NewInvalidPeriodError("fortnight")

	assert.True(t, err.IsType(ErrorTypeInvalidPeriod))
	assert.Equal(t, "INVALID_PERIOD", err.Code)
	assert.Contains(t, err.Message, "fortnight")

	keyword, exists := err.GetContext("keyword")
	require.True(t, exists)
	assert.Equal(t, "fortnight", keyword)
}

func TestNewMalformedEntryError(t *testing.T) {
	cause := fmt.Errorf("parsing time")
	err := NewMalformedEntryError("web", "01/01/2024", cause)

	assert.True(t, err.IsType(ErrorTypeMalformedEntry))
	assert.Equal(t, "MALFORMED_ENTRY", err.Code)
	assert.Equal(t, cause, err.Unwrap())

	code, exists := err.GetContext("project_code")
	require.True(t, exists)
	assert.Equal(t, "web", code)

	date, exists := err.GetContext("date")
	require.True(t, exists)
	assert.Equal(t, "01/01/2024", date)
}

func TestIsErrorType(t *testing.T) {
	t.Run("should recognize wrapped app errors", func(t *testing.T) {
		wrapped := fmt.Errorf("context: %w", NewNotFoundError("project", "web"))

		assert.True(t, IsErrorType(wrapped, ErrorTypeNotFound))
		assert.False(t, IsErrorType(wrapped, ErrorTypeDatabase))
	})

	t.Run("should reject plain errors", func(t *testing.T) {
		assert.False(t, IsErrorType(fmt.Errorf("plain"), ErrorTypeNotFound))
	})
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "should pass through user-facing error messages",
			err:  NewInvalidPeriodError("fortnight"),
			want: `unrecognized period keyword: "fortnight"`,
		},
		{
			name: "should hide database details",
			err:  NewDatabaseError("query", fmt.Errorf("syntax error")),
			want: "A database error occurred. Please try again.",
		},
		{
			name: "should hide session details",
			err:  NewSessionError("read session file", fmt.Errorf("permission denied")),
			want: "A session error occurred. Please try again.",
		},
		{
			name: "should fall back to the raw message for plain errors",
			err:  fmt.Errorf("plain failure"),
			want: "plain failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetUserMessage(tt.err))
		})
	}
}

func TestShouldLogError(t *testing.T) {
	assert.False(t, ShouldLogError(NewInvalidPeriodError("x")))
	assert.False(t, ShouldLogError(NewNotFoundError("project", "web")))
	assert.True(t, ShouldLogError(NewMalformedEntryError("web", "bad", nil)))
	assert.True(t, ShouldLogError(NewDatabaseError("query", nil)))
	assert.True(t, ShouldLogError(fmt.Errorf("plain")))
}
