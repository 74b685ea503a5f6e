// Package reports implements the analysis report domain for BrandGuard.
// A report records the compliance score for one marketing material checked
// against a brand's guidelines, together with its ordered issue findings.
// Reports are created exactly once per successful pipeline run and are
// immutable thereafter.
package reports

import (
	"time"

	"github.com/google/uuid"
)

// Report represents a stored compliance analysis report.
// Issues are populated on Find, ordered as submitted at creation.
type Report struct {
	ID               uuid.UUID `json:"id"`
	BrandID          uuid.UUID `json:"brand_id"`
	MaterialFilePath string    `json:"material_file_path"`
	Score            int       `json:"score"`
	UserID           string    `json:"user_id"`
	CreatedAt        time.Time `json:"created_at"`
	Issues           []Issue   `json:"issues,omitempty"`
}

// Issue is a stored compliance discrepancy finding owned by a report.
type Issue struct {
	ID             uuid.UUID `json:"id"`
	ReportID       uuid.UUID `json:"report_id"`
	Severity       string    `json:"severity"`
	Category       string    `json:"category"`
	Description    string    `json:"description"`
	Recommendation string    `json:"recommendation"`
	Position       int       `json:"position"`
}

// IssueCommand carries one issue finding for report creation.
type IssueCommand struct {
	Severity       string `json:"severity"`
	Category       string `json:"category"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

// CreateCommand carries the data needed to persist a report with its issues.
type CreateCommand struct {
	BrandID          uuid.UUID      `json:"brand_id"`
	MaterialFilePath string         `json:"material_file_path"`
	Score            int            `json:"score"`
	UserID           string         `json:"user_id"`
	Issues           []IssueCommand `json:"issues"`
}
