// Package brands implements the brand domain for BrandGuard.
// A brand is the owning entity for guideline documents and analysis reports.
package brands

import (
	"time"

	"github.com/google/uuid"
)

// Brand represents a registered brand.
type Brand struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommand carries the data needed to register a new brand.
type CreateCommand struct {
	Name   string `json:"name"`
	UserID string `json:"user_id"`
}
