package entity

import (
	"time"

	"github.com/google/uuid"
)

// StandardItem represents a BNCC curriculum standard for data transfer between layers.
type StandardItem struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	Subject      string    `json:"subject"`
	Description  string    `json:"description"`
	GradeLevel   string    `json:"grade_level,omitempty"`
	ThematicUnit string    `json:"thematic_unit,omitempty"`
	Deleted      bool      `json:"deleted"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
