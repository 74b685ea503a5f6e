package brands

import (
	"context"

	"github.com/google/uuid"

	"github.com/brandguard/brandguard/pkg/pagination"
)

// System defines the public contract for brand domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Brand], error)

	Find(ctx context.Context, id uuid.UUID) (*Brand, error)
	Create(ctx context.Context, cmd CreateCommand) (*Brand, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
