package brands

import (
	"net/url"

	"github.com/brandguard/brandguard/pkg/query"
	"github.com/brandguard/brandguard/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "brands", "b").
	Project("id", "ID").
	Project("name", "Name").
	Project("user_id", "UserID").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for brand queries.
// Nil fields are ignored. UserID uses exact matching; Name uses
// case-insensitive contains matching.
type Filters struct {
	Name   *string `json:"name,omitempty"`
	UserID *string `json:"user_id,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("Name", f.Name).
		WhereEquals("UserID", f.UserID)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if n := values.Get("name"); n != "" {
		f.Name = &n
	}

	if u := values.Get("user_id"); u != "" {
		f.UserID = &u
	}

	return f
}

func scanBrand(s repository.Scanner) (Brand, error) {
	var b Brand
	err := s.Scan(
		&b.ID,
		&b.Name,
		&b.UserID,
		&b.CreatedAt,
	)
	return b, err
}
