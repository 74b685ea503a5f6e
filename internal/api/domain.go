package api

import (
	"fmt"

	"github.com/brandguard/brandguard/internal/analyzer"
	"github.com/brandguard/brandguard/internal/brands"
	"github.com/brandguard/brandguard/internal/config"
	"github.com/brandguard/brandguard/internal/extract"
	"github.com/brandguard/brandguard/internal/guidelines"
	"github.com/brandguard/brandguard/internal/pipeline"
	"github.com/brandguard/brandguard/internal/reports"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Brands     brands.System
	Guidelines guidelines.System
	Reports    reports.System
	Pipeline   *pipeline.Pipeline
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(cfg *config.Config, runtime *Runtime) (*Domain, error) {
	brandsSystem := brands.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	guidelinesSystem := guidelines.New(
		runtime.Database.Connection(),
		runtime.Logger,
	)

	reportsSystem := reports.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	an, err := analyzer.New(&cfg.Analyzer, runtime.Logger)
	if err != nil {
		return nil, fmt.Errorf("analyzer init failed: %w", err)
	}

	checkPipeline := pipeline.New(
		runtime.Storage,
		extract.New(cfg.API.MaxUploadSizeBytes(), runtime.Logger),
		an,
		guidelinesSystem,
		reportsSystem,
		runtime.Logger,
	)

	return &Domain{
		Brands:     brandsSystem,
		Guidelines: guidelinesSystem,
		Reports:    reportsSystem,
		Pipeline:   checkPipeline,
	}, nil
}
