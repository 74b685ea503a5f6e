package guidelines

import (
	"github.com/brandguard/brandguard/pkg/query"
	"github.com/brandguard/brandguard/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "brand_guidelines", "g").
	Project("id", "ID").
	Project("brand_id", "BrandID").
	Project("file_path", "FilePath").
	Project("content", "Content").
	Project("active", "Active").
	Project("version", "Version").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "Version",
	Descending: true,
}

func scanGuideline(s repository.Scanner) (Guideline, error) {
	var g Guideline
	err := s.Scan(
		&g.ID,
		&g.BrandID,
		&g.FilePath,
		&g.Content,
		&g.Active,
		&g.Version,
		&g.CreatedAt,
	)
	return g, err
}
