package pipeline

import (
	"errors"
	"net/http"

	"github.com/brandguard/brandguard/internal/extract"
)

// Phase errors for compliance check runs. Every error returned by Run
// wraps exactly one of these, with the underlying cause chained behind it.
var (
	ErrValidation  = errors.New("invalid compliance check request")
	ErrStorage     = errors.New("file storage failed")
	ErrExtraction  = errors.New("text extraction failed")
	ErrAnalysis    = errors.New("compliance analysis failed")
	ErrPersistence = errors.New("report persistence failed")
)

// MapHTTPStatus maps pipeline errors to appropriate HTTP status codes.
// Validation failures are client errors, unreadable or oversized PDFs are
// unprocessable, and everything downstream is a server-side failure.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}
	if errors.Is(err, extract.ErrTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrExtraction) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
