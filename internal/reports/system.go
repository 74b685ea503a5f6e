package reports

import (
	"context"

	"github.com/google/uuid"

	"github.com/brandguard/brandguard/pkg/pagination"
)

// System defines the public contract for report domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Report], error)

	Find(ctx context.Context, id uuid.UUID) (*Report, error)
	Create(ctx context.Context, cmd CreateCommand) (*Report, error)
}
