package store

import "fmt"

// NotFoundError reports a missing note or catalog.
type NotFoundError struct {
	Entity string // "Note", "Catalog"
	Name   string
}

func (e *NotFoundError) Error() string {
	if e.Entity == "Note" {
		return fmt.Sprintf("Note not found: %s", e.Name)
	}
	return fmt.Sprintf("%s '%s' does not exist", e.Entity, e.Name)
}

// ConflictError reports a duplicate catalog name or a duplicate item id
// within a catalog.
type ConflictError struct {
	Entity  string // "Catalog", "Item"
	Name    string
	Catalog string // set for items
}

func (e *ConflictError) Error() string {
	if e.Catalog != "" {
		return fmt.Sprintf("%s '%s' already exists in catalog '%s'", e.Entity, e.Name, e.Catalog)
	}
	return fmt.Sprintf("%s '%s' already exists", e.Entity, e.Name)
}
