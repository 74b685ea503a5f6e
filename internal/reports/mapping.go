package reports

import (
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/brandguard/brandguard/pkg/query"
	"github.com/brandguard/brandguard/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "analysis_reports", "r").
	Project("id", "ID").
	Project("brand_id", "BrandID").
	Project("material_file_path", "MaterialFilePath").
	Project("score", "Score").
	Project("user_id", "UserID").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for report queries.
// Nil fields are ignored. MinScore and MaxScore bound the stored
// compliance score inclusively.
type Filters struct {
	BrandID  *uuid.UUID `json:"brand_id,omitempty"`
	UserID   *string    `json:"user_id,omitempty"`
	MinScore *int       `json:"min_score,omitempty"`
	MaxScore *int       `json:"max_score,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.
		WhereEquals("BrandID", f.BrandID).
		WhereEquals("UserID", f.UserID)

	if f.MinScore != nil {
		b.WhereCompare("Score", ">=", *f.MinScore)
	}

	if f.MaxScore != nil {
		b.WhereCompare("Score", "<=", *f.MaxScore)
	}

	return b
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if b := values.Get("brand_id"); b != "" {
		if id, err := uuid.Parse(b); err == nil {
			f.BrandID = &id
		}
	}

	if u := values.Get("user_id"); u != "" {
		f.UserID = &u
	}

	if m := values.Get("min_score"); m != "" {
		if v, err := strconv.Atoi(m); err == nil {
			f.MinScore = &v
		}
	}

	if m := values.Get("max_score"); m != "" {
		if v, err := strconv.Atoi(m); err == nil {
			f.MaxScore = &v
		}
	}

	return f
}

func scanReport(s repository.Scanner) (Report, error) {
	var r Report
	err := s.Scan(
		&r.ID,
		&r.BrandID,
		&r.MaterialFilePath,
		&r.Score,
		&r.UserID,
		&r.CreatedAt,
	)
	return r, err
}

func scanIssue(s repository.Scanner) (Issue, error) {
	var i Issue
	err := s.Scan(
		&i.ID,
		&i.ReportID,
		&i.Severity,
		&i.Category,
		&i.Description,
		&i.Recommendation,
		&i.Position,
	)
	return i, err
}
