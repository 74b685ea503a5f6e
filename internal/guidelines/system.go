package guidelines

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for guideline domain operations.
type System interface {
	Handler() *Handler

	// SaveActive persists a new guideline version for the brand and marks it
	// active, deactivating any prior active version in the same transaction.
	SaveActive(ctx context.Context, cmd SaveCommand) (*Guideline, error)

	// FindActive returns the brand's current active guideline version.
	FindActive(ctx context.Context, brandID uuid.UUID) (*Guideline, error)

	// ListByBrand returns all guideline versions for a brand, newest first.
	ListByBrand(ctx context.Context, brandID uuid.UUID) ([]Guideline, error)
}
