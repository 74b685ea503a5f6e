package api

import (
	"net/http"

	"github.com/brandguard/brandguard/internal/config"
	"github.com/brandguard/brandguard/pkg/handlers"
	"github.com/brandguard/brandguard/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	routes.Register(
		mux,
		domain.Brands.Handler().Routes(),
		domain.Guidelines.Handler().Routes(),
		domain.Reports.Handler().Routes(),
		domain.Reports.Handler().BrandRoutes(),
		newAnalyzeHandler(domain.Pipeline, runtime.Logger, cfg.API.MaxUploadSizeBytes()).routes(),
		newStorageHandler(runtime.Storage, runtime.Logger).routes(),
	)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"version": cfg.Version,
		})
	})
}
