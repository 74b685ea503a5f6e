package guidelines

import (
	"errors"
	"net/http"
)

// Domain errors for guideline operations.
var (
	ErrNotFound         = errors.New("guideline not found")
	ErrDuplicate        = errors.New("guideline already exists")
	ErrInvalidGuideline = errors.New("invalid guideline")
)

// MapHTTPStatus maps guideline domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidGuideline) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
