package analyzer

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Severity categorizes how badly an issue deviates from the guidelines.
type Severity string

// Valid issue severities.
const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
)

var severities = []Severity{SeverityHigh, SeverityMedium, SeverityLow}

// Severities returns the list of valid issue severities.
func Severities() []Severity {
	return severities
}

// UnmarshalJSON validates that the decoded string is a known severity value.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Severity(raw)
	if !slices.Contains(severities, v) {
		return fmt.Errorf("%w: %q", ErrInvalidSeverity, raw)
	}
	*s = v
	return nil
}

// Issue is a single compliance discrepancy finding.
type Issue struct {
	Severity       Severity `json:"severity"`
	Category       string   `json:"category"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
}

// Result is the structured outcome of a compliance analysis.
// Issues are ordered; the order is preserved through persistence.
type Result struct {
	Score   int     `json:"score"`
	Summary string  `json:"summary"`
	Issues  []Issue `json:"issues"`
}

// Validate checks the result invariants: score within [0,100] and every
// issue severity a known value.
func (r *Result) Validate() error {
	if r.Score < 0 || r.Score > 100 {
		return fmt.Errorf("%w: score %d out of range", ErrInvalidResult, r.Score)
	}
	for i, issue := range r.Issues {
		if !slices.Contains(severities, issue.Severity) {
			return fmt.Errorf("%w: issue %d has severity %q", ErrInvalidResult, i, issue.Severity)
		}
	}
	return nil
}
