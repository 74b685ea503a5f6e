package guidelines

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/brandguard/brandguard/pkg/handlers"
	"github.com/brandguard/brandguard/pkg/routes"
)

// Handler provides HTTP endpoints for reading guideline versions.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "guidelines"),
	}
}

// Routes returns the route group definition for guideline endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/brands/{brandId}/guidelines",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.ListByBrand},
			{Method: "GET", Pattern: "/active", Handler: h.FindActive},
		},
	}
}

// ListByBrand returns all guideline versions for the brand path parameter.
func (h *Handler) ListByBrand(w http.ResponseWriter, r *http.Request) {
	brandID, err := uuid.Parse(r.PathValue("brandId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidGuideline)
		return
	}

	items, err := h.sys.ListByBrand(r.Context(), brandID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, items)
}

// FindActive returns the brand's current active guideline version.
func (h *Handler) FindActive(w http.ResponseWriter, r *http.Request) {
	brandID, err := uuid.Parse(r.PathValue("brandId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidGuideline)
		return
	}

	g, err := h.sys.FindActive(r.Context(), brandID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, g)
}
