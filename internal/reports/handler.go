package reports

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/brandguard/brandguard/pkg/handlers"
	"github.com/brandguard/brandguard/pkg/pagination"
	"github.com/brandguard/brandguard/pkg/routes"
)

// Handler provides HTTP endpoints for report operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "reports"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for report endpoints.
// Reports are created by the analysis pipeline, not directly over HTTP,
// so the group exposes only read operations.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/reports",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "POST", Pattern: "/search", Handler: h.Search},
		},
	}
}

// BrandRoutes returns the brand-scoped report listing group. It is a
// separate group because its prefix lives under /brands, not /reports.
func (h *Handler) BrandRoutes() routes.Group {
	return routes.Group{
		Prefix: "/brands/{brandId}/reports",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.ListByBrand},
		},
	}
}

// List returns a paginated list of reports with optional query parameter filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// ListByBrand returns a paginated list of reports for the brand path
// parameter, combined with any query parameter filters.
func (h *Handler) ListByBrand(w http.ResponseWriter, r *http.Request) {
	brandID, err := uuid.Parse(r.PathValue("brandId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidReport)
		return
	}

	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())
	filters.BrandID = &brandID

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single report with its issues by UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidReport)
		return
	}

	report, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}

// SearchRequest carries pagination and filters for body-driven report searches.
type SearchRequest struct {
	Page    pagination.PageRequest `json:"page"`
	Filters Filters                `json:"filters"`
}

// Search returns a paginated list of reports using a JSON request body,
// which allows filter shapes that do not map cleanly to query strings.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidReport)
		return
	}

	result, err := h.sys.List(r.Context(), req.Page, req.Filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
