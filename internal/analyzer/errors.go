package analyzer

import "errors"

// Analyzer errors.
var (
	ErrAnalysis        = errors.New("compliance analysis failed")
	ErrInvalidResult   = errors.New("analysis result violates invariants")
	ErrInvalidSeverity = errors.New("invalid issue severity")
)
