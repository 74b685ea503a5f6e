// Package extract implements plain-text extraction from uploaded PDF payloads.
// Extraction is deterministic: a failure for a given payload is permanent and
// is never retried.
package extract

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/brandguard/brandguard/pkg/formatting"
)

// Extractor converts a PDF binary into plain text.
type Extractor interface {
	Extract(data []byte) (string, error)
}

type extractor struct {
	maxSize int64
	logger  *slog.Logger
}

// New creates an Extractor that rejects payloads larger than maxSize bytes.
func New(maxSize int64, logger *slog.Logger) Extractor {
	return &extractor{
		maxSize: maxSize,
		logger:  logger.With("system", "extract"),
	}
}

// Extract validates the payload as a well-formed PDF and returns its
// concatenated page text. Fails with ErrTooLarge, ErrInvalidPDF, or
// ErrEmptyText.
func (e *extractor) Extract(data []byte) (string, error) {
	if int64(len(data)) > e.maxSize {
		return "", fmt.Errorf(
			"%w: payload is %s, ceiling is %s",
			ErrTooLarge,
			formatting.FormatBytes(int64(len(data)), 1),
			formatting.FormatBytes(e.maxSize, 1),
		)
	}

	pageCount, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPDF, err)
	}
	if pageCount == 0 {
		return "", fmt.Errorf("%w: zero pages", ErrInvalidPDF)
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("%w: open document: %w", ErrInvalidPDF, err)
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < pageCount; i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %w", ErrInvalidPDF, i+1, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrEmptyText
	}

	e.logger.Debug("text extracted", "pages", pageCount, "chars", len(text))
	return text, nil
}
