// Package analyzer implements the compliance analyzer: given a brand's
// guideline text and a marketing material's text, it produces a compliance
// score in [0,100] and an ordered list of issues.
//
// Two interchangeable implementations exist: an openai-backed analyzer that
// calls a chat completion API and parses its JSON response, and a stub that
// synthesizes a deterministic placeholder result. The mode is selected once
// by configuration; the openai analyzer never substitutes stub output on
// failure.
package analyzer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/brandguard/brandguard/internal/config"
)

// Analyzer compares guideline text against material text.
type Analyzer interface {
	Analyze(ctx context.Context, guidelineText, materialText string) (*Result, error)
}

// New creates the analyzer selected by cfg.Mode.
func New(cfg *config.AnalyzerConfig, logger *slog.Logger) (Analyzer, error) {
	switch cfg.Mode {
	case config.AnalyzerModeOpenAI:
		return NewOpenAI(cfg, logger), nil
	case config.AnalyzerModeStub:
		return NewStub(logger), nil
	default:
		return nil, fmt.Errorf("unknown analyzer mode: %q", cfg.Mode)
	}
}
