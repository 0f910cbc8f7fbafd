package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRule represents a user rule for data transfer between layers.
type UserRule struct {
	ID          uuid.UUID `json:"id"`
	RuleName    string    `json:"rule_name"`
	Description string    `json:"description,omitempty"`
	Enabled     bool      `json:"enabled"`
	Deleted     bool      `json:"deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
