// Package guidelines implements the brand-guidelines domain for BrandGuard.
// Each row references an uploaded guidelines PDF and carries its extracted
// text. One row per brand is active at a time; saving a new version
// deactivates the prior rows and bumps the version counter in the same
// transaction.
package guidelines

import (
	"time"

	"github.com/google/uuid"
)

// Guideline represents a stored brand-guidelines version.
// Content is nil until extraction has completed for the referenced file.
type Guideline struct {
	ID        uuid.UUID `json:"id"`
	BrandID   uuid.UUID `json:"brand_id"`
	FilePath  string    `json:"file_path"`
	Content   *string   `json:"content"`
	Active    bool      `json:"active"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}

// SaveCommand carries the data needed to persist a new active guideline version.
type SaveCommand struct {
	BrandID  uuid.UUID
	FilePath string
	Content  string
}
