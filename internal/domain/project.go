package domain

// Project represents a registered project in the domain model.
// This is a pure domain model without database-specific concerns.
type Project struct {
	ID   int64
	Name string
	Code string
}

// NewProject creates a new Project with the given name and code.
func NewProject(name, code string) Project {
	return Project{
		Name: name,
		Code: code,
	}
}

// IsValid checks if the project has valid data.
func (p Project) IsValid() bool {
	return p.Name != "" && p.Code != ""
}

// String returns the project code and name for display purposes.
func (p Project) String() string {
	return p.Code + " - " + p.Name
}
