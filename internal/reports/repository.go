package reports

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

// New creates a report repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "reports"),
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
) (*pagination.PageResult[Report], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "MaterialFilePath", "UserID")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count reports: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanReport)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Report, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	report, err := repository.QueryOne(ctx, r.db, q, args, scanReport)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	issues, err := r.findIssues(ctx, report.ID)
	if err != nil {
		return nil, fmt.Errorf("query report issues: %w", err)
	}

	report.Issues = issues
	return &report, nil
}

// Create persists a report and its issues in a single transaction.
// Issue positions record submission order so findings read back in the
// order the analysis produced them.
func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Report, error) {
	if err := validateCreate(cmd); err != nil {
		return nil, err
	}

	reportSQL := `
		INSERT INTO analysis_reports(id, brand_id, material_file_path, score, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, brand_id, material_file_path, score, user_id, created_at`

	issueSQL := `
		INSERT INTO analysis_issues(id, report_id, severity, category, description, recommendation, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, report_id, severity, category, description, recommendation, position`

	report, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Report, error) {
		args := []any{uuid.New(), cmd.BrandID, cmd.MaterialFilePath, cmd.Score, cmd.UserID}
		rep, err := repository.QueryOne(ctx, tx, reportSQL, args, scanReport)
		if err != nil {
			return Report{}, err
		}

		rep.Issues = make([]Issue, 0, len(cmd.Issues))
		for pos, ic := range cmd.Issues {
			args := []any{
				uuid.New(), rep.ID,
				ic.Severity, ic.Category, ic.Description, ic.Recommendation,
				pos,
			}
			issue, err := repository.QueryOne(ctx, tx, issueSQL, args, scanIssue)
			if err != nil {
				return Report{}, err
			}
			rep.Issues = append(rep.Issues, issue)
		}

		return rep, nil
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("report created",
		"id", report.ID,
		"brand_id", report.BrandID,
		"score", report.Score,
		"issues", len(report.Issues),
	)
	return &report, nil
}

func (r *repo) findIssues(ctx context.Context, reportID uuid.UUID) ([]Issue, error) {
	q := `
		SELECT id, report_id, severity, category, description, recommendation, position
		FROM analysis_issues
		WHERE report_id = $1
		ORDER BY position`

	return repository.QueryMany(ctx, r.db, q, []any{reportID}, scanIssue)
}

func validateCreate(cmd CreateCommand) error {
	if cmd.BrandID == uuid.Nil {
		return fmt.Errorf("%w: brand id is required", ErrInvalidReport)
	}
	if strings.TrimSpace(cmd.UserID) == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidReport)
	}
	if strings.TrimSpace(cmd.MaterialFilePath) == "" {
		return fmt.Errorf("%w: material file path is required", ErrInvalidReport)
	}
	if cmd.Score < 0 || cmd.Score > 100 {
		return fmt.Errorf("%w: score %d out of range", ErrInvalidReport, cmd.Score)
	}
	return nil
}
