package api

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/brandguard/brandguard/internal/pipeline"
	"github.com/brandguard/brandguard/pkg/handlers"
	"github.com/brandguard/brandguard/pkg/routes"
)

// Multipart form field names for the analyze endpoint.
const (
	fieldBrandBook = "brandBook"
	fieldMaterial  = "marketingMaterial"
	fieldBrandID   = "brandId"
	fieldUserID    = "userId"
)

type analyzeHandler struct {
	pipeline      *pipeline.Pipeline
	logger        *slog.Logger
	maxUploadSize int64
}

func newAnalyzeHandler(p *pipeline.Pipeline, logger *slog.Logger, maxUploadSize int64) *analyzeHandler {
	return &analyzeHandler{
		pipeline:      p,
		logger:        logger.With("handler", "analyze"),
		maxUploadSize: maxUploadSize,
	}
}

func (h *analyzeHandler) routes() routes.Group {
	return routes.Group{
		Prefix: "/analyze",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.analyze},
		},
	}
}

// analyze accepts a multipart form with a brand guidelines PDF, a marketing
// material PDF, a brand id, and a user id, runs the compliance check
// synchronously, and returns the persisted report.
func (h *analyzeHandler) analyze(w http.ResponseWriter, r *http.Request) {
	// Both files plus form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, 2*h.maxUploadSize+1024)

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest,
			fmt.Errorf("%w: malformed multipart form", pipeline.ErrValidation))
		return
	}
	defer r.MultipartForm.RemoveAll()

	brandID, err := uuid.Parse(r.FormValue(fieldBrandID))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest,
			fmt.Errorf("%w: invalid brand id", pipeline.ErrValidation))
		return
	}

	guideline, err := readFormFile(r, fieldBrandBook)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	material, err := readFormFile(r, fieldMaterial)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	report, err := h.pipeline.Run(r.Context(), pipeline.CheckCommand{
		BrandID:   brandID,
		UserID:    r.FormValue(fieldUserID),
		Guideline: guideline,
		Material:  material,
	})
	if err != nil {
		handlers.RespondError(w, h.logger, pipeline.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}

func readFormFile(r *http.Request, field string) ([]byte, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("%w: missing file %q", pipeline.ErrValidation, field)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: read file %q", pipeline.ErrValidation, field)
	}
	return data, nil
}
