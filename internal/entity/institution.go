package entity

import (
	"time"

	"github.com/google/uuid"
)

// Institution represents an institution for data transfer between layers.
type Institution struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	TypeID     *uuid.UUID `json:"type_id,omitempty"`
	TypeName   string     `json:"type_name,omitempty"`
	City       string     `json:"city,omitempty"`
	Country    string     `json:"country,omitempty"`
	PostalCode string     `json:"postal_code,omitempty"`
	Deleted    bool       `json:"deleted"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
