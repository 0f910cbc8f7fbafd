package entity

import "github.com/google/uuid"

// InstitutionType represents an institution type for data transfer between layers.
type InstitutionType struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Deleted bool      `json:"deleted"`
}
