package extract

import (
	"errors"
	"net/http"
)

// Extraction errors.
var (
	ErrTooLarge   = errors.New("payload exceeds maximum size")
	ErrInvalidPDF = errors.New("payload is not a valid PDF")
	ErrEmptyText  = errors.New("no extractable text in PDF")
)

// MapHTTPStatus maps extraction errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrInvalidPDF) || errors.Is(err, ErrEmptyText) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
