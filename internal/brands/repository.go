package brands

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/brandguard/brandguard/pkg/pagination"
	"github.com/brandguard/brandguard/pkg/query"
	"github.com/brandguard/brandguard/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a brand repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "brands"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Brand], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count brands: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanBrand)
	if err != nil {
		return nil, fmt.Errorf("query brands: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Brand, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	b, err := repository.QueryOne(ctx, r.db, q, args, scanBrand)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &b, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Brand, error) {
	if strings.TrimSpace(cmd.Name) == "" || strings.TrimSpace(cmd.UserID) == "" {
		return nil, ErrInvalidBrand
	}

	q := `
		INSERT INTO brands(id, name, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, user_id, created_at`

	b, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Brand, error) {
		return repository.QueryOne(ctx, tx, q, []any{uuid.New(), cmd.Name, cmd.UserID}, scanBrand)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("brand created", "id", b.ID, "name", b.Name)
	return &b, nil
}

// Delete removes a brand. Guideline versions and reports cascade with it.
func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := `DELETE FROM brands WHERE id = $1`

	if err := repository.ExecExpectOne(ctx, r.db, q, id); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("brand deleted", "id", id)
	return nil
}
