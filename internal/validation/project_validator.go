package validation

const (
	// ProjectNameMinLength is the minimum project name length
	ProjectNameMinLength = 1
	// ProjectNameMaxLength is the maximum project name length
	ProjectNameMaxLength = 255
	// ProjectCodeMaxLength is the maximum project code length
	ProjectCodeMaxLength = 32
)

// ProjectValidator validates project data
type ProjectValidator struct {
	validator *Validator
}

// NewProjectValidator creates a new project validator
func NewProjectValidator() *ProjectValidator {
	return &ProjectValidator{
		validator: NewValidator(),
	}
}

// ValidateProjectForCreation validates a project name and code for creation
func (pv *ProjectValidator) ValidateProjectForCreation(name, code string) error {
	ve := NewValidationError()

	if !pv.validator.IsNonEmptyString(name) {
		ve.AddRequiredError("project name")
	} else if !pv.validator.IsValidStringLength(name, ProjectNameMinLength, ProjectNameMaxLength) {
		ve.AddInvalidLengthError("project name", name, ProjectNameMinLength, ProjectNameMaxLength)
	}

	if !pv.validator.IsNonEmptyString(code) {
		ve.AddRequiredError("project code")
	} else {
		trimmed := pv.validator.TrimString(code)
		if !pv.validator.IsValidStringLength(trimmed, 1, ProjectCodeMaxLength) {
			ve.AddInvalidLengthError("project code", code, 1, ProjectCodeMaxLength)
		} else if !pv.validator.IsValidProjectCode(trimmed) {
			ve.AddInvalidValueError("project code", code, "only letters, digits, hyphens and underscores are allowed")
		}
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}

// ValidateProjectCode validates a standalone project code
func (pv *ProjectValidator) ValidateProjectCode(code string) error {
	ve := NewValidationError()

	if !pv.validator.IsNonEmptyString(code) {
		ve.AddRequiredError("project code")
	} else if !pv.validator.IsValidProjectCode(pv.validator.TrimString(code)) {
		ve.AddInvalidValueError("project code", code, "only letters, digits, hyphens and underscores are allowed")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}

// GetValidProjectName returns the cleaned project name
func (pv *ProjectValidator) GetValidProjectName(name string) (string, error) {
	ve := NewValidationError()
	if !pv.validator.IsNonEmptyString(name) {
		ve.AddRequiredError("project name")
		return "", ve
	}
	if !pv.validator.IsValidStringLength(name, ProjectNameMinLength, ProjectNameMaxLength) {
		ve.AddInvalidLengthError("project name", name, ProjectNameMinLength, ProjectNameMaxLength)
		return "", ve
	}
	return pv.validator.TrimString(name), nil
}

// GetValidProjectCode returns the cleaned project code
func (pv *ProjectValidator) GetValidProjectCode(code string) (string, error) {
	if err := pv.ValidateProjectCode(code); err != nil {
		return "", err
	}
	return pv.validator.TrimString(code), nil
}
