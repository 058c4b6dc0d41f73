package domain

// SearchOptions represents search criteria for work entries.
// This is a domain model that mirrors the database search options
// but belongs to the domain layer for proper separation of concerns.
type SearchOptions struct {
	FromDate    *string // inclusive, 2006-01-02
	ToDate      *string // inclusive, 2006-01-02
	ProjectCode *string
}
