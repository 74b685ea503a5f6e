// Package pipeline orchestrates a compliance check run: store both uploaded
// PDFs, extract their text, save the guideline version, analyze the material
// against the guidelines, and persist the resulting report with its issues.
//
// Each run is a forward-only state machine. A failure in any phase stops the
// run; phases downstream of the failure never execute, so an upload failure
// leaves no database rows and an extraction failure never reaches the
// analyzer. The guideline version is saved before analysis, so a failed
// analysis can leave a newer guideline version behind without a report.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/brandguard/brandguard/internal/analyzer"
	"github.com/brandguard/brandguard/internal/extract"
	"github.com/brandguard/brandguard/internal/guidelines"
	"github.com/brandguard/brandguard/internal/reports"
)

const pdfContentType = "application/pdf"

// Uploader stores a file payload under a key.
type Uploader interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) error
}

// GuidelineStore persists guideline versions.
type GuidelineStore interface {
	SaveActive(ctx context.Context, cmd guidelines.SaveCommand) (*guidelines.Guideline, error)
}

// ReportStore persists analysis reports with their issues.
type ReportStore interface {
	Create(ctx context.Context, cmd reports.CreateCommand) (*reports.Report, error)
}

// CheckCommand carries the inputs for one compliance check run.
type CheckCommand struct {
	BrandID   uuid.UUID
	UserID    string
	Guideline []byte
	Material  []byte
}

// Pipeline runs compliance checks end to end.
type Pipeline struct {
	store      Uploader
	extractor  extract.Extractor
	analyzer   analyzer.Analyzer
	guidelines GuidelineStore
	reports    ReportStore
	logger     *slog.Logger
	now        func() time.Time
}

// New creates a Pipeline wired to the given collaborators.
func New(
	store Uploader,
	extractor extract.Extractor,
	an analyzer.Analyzer,
	gs GuidelineStore,
	rs ReportStore,
	logger *slog.Logger,
) *Pipeline {
	return &Pipeline{
		store:      store,
		extractor:  extractor,
		analyzer:   an,
		guidelines: gs,
		reports:    rs,
		logger:     logger.With("system", "pipeline"),
		now:        time.Now,
	}
}

// Run executes one compliance check and returns the persisted report.
// Every returned error wraps one of the package phase errors.
func (p *Pipeline) Run(ctx context.Context, cmd CheckCommand) (*reports.Report, error) {
	run := &run{id: uuid.New(), state: StateIdle, logger: p.logger}

	if err := validate(cmd); err != nil {
		return nil, run.fail(err)
	}

	run.advance(StateUploading)
	guidelineKey := p.key(cmd.BrandID, "guidelines")
	materialKey := p.key(cmd.BrandID, "materials")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return p.store.Upload(gctx, guidelineKey, bytes.NewReader(cmd.Guideline), pdfContentType)
	})
	g.Go(func() error {
		return p.store.Upload(gctx, materialKey, bytes.NewReader(cmd.Material), pdfContentType)
	})
	if err := g.Wait(); err != nil {
		return nil, run.fail(fmt.Errorf("%w: %w", ErrStorage, err))
	}

	run.advance(StateExtracting)
	var guidelineText, materialText string

	g, _ = errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		guidelineText, err = p.extractor.Extract(cmd.Guideline)
		if err != nil {
			return fmt.Errorf("guidelines: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		materialText, err = p.extractor.Extract(cmd.Material)
		if err != nil {
			return fmt.Errorf("material: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, run.fail(fmt.Errorf("%w: %w", ErrExtraction, err))
	}

	run.advance(StateAnalyzing)
	guideline, err := p.guidelines.SaveActive(ctx, guidelines.SaveCommand{
		BrandID:  cmd.BrandID,
		FilePath: guidelineKey,
		Content:  guidelineText,
	})
	if err != nil {
		return nil, run.fail(fmt.Errorf("%w: save guideline: %w", ErrPersistence, err))
	}
	run.logger.Info("guideline version saved",
		"run", run.id,
		"guideline", guideline.ID,
		"version", guideline.Version,
	)

	result, err := p.analyzer.Analyze(ctx, guidelineText, materialText)
	if err != nil {
		return nil, run.fail(fmt.Errorf("%w: %w", ErrAnalysis, err))
	}

	run.advance(StatePersisting)
	report, err := p.reports.Create(ctx, reports.CreateCommand{
		BrandID:          cmd.BrandID,
		MaterialFilePath: materialKey,
		Score:            result.Score,
		UserID:           cmd.UserID,
		Issues:           issueCommands(result.Issues),
	})
	if err != nil {
		return nil, run.fail(fmt.Errorf("%w: %w", ErrPersistence, err))
	}

	run.advance(StateComplete)
	run.logger.Info("compliance check complete",
		"run", run.id,
		"report", report.ID,
		"score", report.Score,
		"issues", len(report.Issues),
	)
	return report, nil
}

func (p *Pipeline) key(brandID uuid.UUID, kind string) string {
	return fmt.Sprintf("brands/%s/%s/%d-%s.pdf", brandID, kind, p.now().UnixMilli(), uuid.New())
}

func validate(cmd CheckCommand) error {
	if cmd.BrandID == uuid.Nil {
		return fmt.Errorf("%w: brand id is required", ErrValidation)
	}
	if strings.TrimSpace(cmd.UserID) == "" {
		return fmt.Errorf("%w: user id is required", ErrValidation)
	}
	if len(cmd.Guideline) == 0 {
		return fmt.Errorf("%w: guidelines file is empty", ErrValidation)
	}
	if len(cmd.Material) == 0 {
		return fmt.Errorf("%w: marketing material file is empty", ErrValidation)
	}
	return nil
}

func issueCommands(issues []analyzer.Issue) []reports.IssueCommand {
	cmds := make([]reports.IssueCommand, len(issues))
	for i, issue := range issues {
		cmds[i] = reports.IssueCommand{
			Severity:       string(issue.Severity),
			Category:       issue.Category,
			Description:    issue.Description,
			Recommendation: issue.Recommendation,
		}
	}
	return cmds
}

// run tracks a single check's progress through the state machine.
type run struct {
	id     uuid.UUID
	state  State
	logger *slog.Logger
}

func (r *run) advance(s State) {
	r.logger.Debug("pipeline state change", "run", r.id, "from", r.state, "to", s)
	r.state = s
}

func (r *run) fail(err error) error {
	r.logger.Error("compliance check failed", "run", r.id, "state", r.state, "error", err)
	r.state = StateFailed
	return err
}
