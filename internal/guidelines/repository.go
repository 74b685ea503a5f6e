package guidelines

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/brandguard/brandguard/pkg/query"
	"github.com/brandguard/brandguard/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a guideline repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "guidelines"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) SaveActive(ctx context.Context, cmd SaveCommand) (*Guideline, error) {
	if cmd.BrandID == uuid.Nil || cmd.FilePath == "" {
		return nil, ErrInvalidGuideline
	}

	insertQ := `
		INSERT INTO brand_guidelines(id, brand_id, file_path, content, active, version)
		VALUES ($1, $2, $3, $4, TRUE,
			(SELECT COALESCE(MAX(version), 0) + 1 FROM brand_guidelines WHERE brand_id = $2))
		RETURNING id, brand_id, file_path, content, active, version, created_at`

	g, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Guideline, error) {
		if _, err := tx.ExecContext(
			ctx,
			"UPDATE brand_guidelines SET active = FALSE WHERE brand_id = $1 AND active",
			cmd.BrandID,
		); err != nil {
			return Guideline{}, fmt.Errorf("deactivate prior versions: %w", err)
		}

		return repository.QueryOne(
			ctx, tx, insertQ,
			[]any{uuid.New(), cmd.BrandID, cmd.FilePath, cmd.Content},
			scanGuideline,
		)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("guideline saved",
		"id", g.ID,
		"brand_id", g.BrandID,
		"version", g.Version,
	)
	return &g, nil
}

func (r *repo) FindActive(ctx context.Context, brandID uuid.UUID) (*Guideline, error) {
	q, args := query.
		NewBuilder(projection).
		WhereEquals("BrandID", brandID).
		WhereEquals("Active", true).
		BuildSingleOrNull()

	g, err := repository.QueryOne(ctx, r.db, q, args, scanGuideline)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &g, nil
}

func (r *repo) ListByBrand(ctx context.Context, brandID uuid.UUID) ([]Guideline, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("BrandID", brandID).
		Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanGuideline)
	if err != nil {
		return nil, fmt.Errorf("query guidelines: %w", err)
	}
	return items, nil
}
