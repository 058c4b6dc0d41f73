package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectValidator_ValidateProjectForCreation(t *testing.T) {
	pv := NewProjectValidator()

	t.Run("should accept a valid project", func(t *testing.T) {
		err := pv.ValidateProjectForCreation("Website Redesign", "web")
		assert.NoError(t, err)
	})

	t.Run("should reject an empty name", func(t *testing.T) {
		err := pv.ValidateProjectForCreation("", "web")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "project name")
	})

	t.Run("should reject an overlong name", func(t *testing.T) {
		err := pv.ValidateProjectForCreation(strings.Repeat("a", ProjectNameMaxLength+1), "web")
		assert.Error(t, err)
	})

	t.Run("should reject an empty code", func(t *testing.T) {
		err := pv.ValidateProjectForCreation("Website", "")
		assert.Error(t, err)
	})

	t.Run("should reject a code with invalid characters", func(t *testing.T) {
		err := pv.ValidateProjectForCreation("Website", "web site")
		assert.Error(t, err)
	})

	t.Run("should reject an overlong code", func(t *testing.T) {
		err := pv.ValidateProjectForCreation("Website", strings.Repeat("x", ProjectCodeMaxLength+1))
		assert.Error(t, err)
	})

	t.Run("should collect errors for both fields", func(t *testing.T) {
		err := pv.ValidateProjectForCreation("", "")

		require.Error(t, err)
		ve, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Len(t, ve.Errors, 2)
	})
}

func TestProjectValidator_GetValidProjectName(t *testing.T) {
	pv := NewProjectValidator()

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		name, err := pv.GetValidProjectName("  Website Redesign  ")

		require.NoError(t, err)
		assert.Equal(t, "Website Redesign", name)
	})

	t.Run("should fail on an empty name", func(t *testing.T) {
		_, err := pv.GetValidProjectName("   ")
		assert.Error(t, err)
	})
}

func TestProjectValidator_GetValidProjectCode(t *testing.T) {
	pv := NewProjectValidator()

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		code, err := pv.GetValidProjectCode(" web ")

		require.NoError(t, err)
		assert.Equal(t, "web", code)
	})

	t.Run("should fail on invalid characters", func(t *testing.T) {
		_, err := pv.GetValidProjectCode("web!")
		assert.Error(t, err)
	})
}
