package service

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ludo-technologies/solidscan/domain"
	"github.com/ludo-technologies/solidscan/internal/analyzer"
	"github.com/ludo-technologies/solidscan/internal/config"
	"github.com/ludo-technologies/solidscan/internal/parser"
	"github.com/ludo-technologies/solidscan/internal/version"
)

// SolidServiceImpl implements domain.SolidService
type SolidServiceImpl struct {
	cfg       *config.Config
	progress  domain.ProgressManager
	explainer domain.Explainer
}

// NewSolidService creates a new SOLID analysis service
func NewSolidService(cfg *config.Config) *SolidServiceImpl {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &SolidServiceImpl{cfg: cfg}
}

// NewSolidServiceWithProgress creates a service with progress tracking
func NewSolidServiceWithProgress(cfg *config.Config, pm domain.ProgressManager) *SolidServiceImpl {
	svc := NewSolidService(cfg)
	svc.progress = pm
	return svc
}

// WithExplainer sets the explainer used for the explanation step
func (s *SolidServiceImpl) WithExplainer(explainer domain.Explainer) *SolidServiceImpl {
	s.explainer = explainer
	return s
}

// parsedFile pairs a file with its parse result so the parallel parse
// phase can be merged back into path order before aggregation
type parsedFile struct {
	path    string
	unit    *parser.Unit
	skipped string
}

// Analyze runs the full pipeline: parse each file, run the checkers over
// every declaration in source order, aggregate evidence into one violation
// per principle, then fold in explanations.
//
// Files are always visited in lexicographic path order. Parsing may fan
// out across goroutines, but results are merged back into that order
// before any evidence reaches the store, so the aggregation the caller
// observes is deterministic.
func (s *SolidServiceImpl) Analyze(ctx context.Context, req domain.SolidRequest) (*domain.SolidResponse, error) {
	if len(req.Paths) == 0 {
		return nil, domain.NewInvalidInputError("no input files", nil)
	}

	files := append([]string(nil), req.Paths...)
	sort.Strings(files)

	parsed, err := s.parseFiles(ctx, files)
	if err != nil {
		return nil, err
	}

	store := analyzer.NewViolationStore()
	checkers := analyzer.DefaultCheckers(&s.cfg.Solid)

	summary := domain.SolidSummary{}
	var warnings []string

	for _, pf := range parsed {
		if pf.skipped != "" {
			summary.FilesSkipped++
			warnings = append(warnings, pf.skipped)
			continue
		}
		summary.FilesAnalyzed++

		analyzer.CheckUnit(store, checkers, pf.unit)
		for _, decl := range pf.unit.Declarations {
			switch decl.Kind {
			case parser.DeclClass:
				summary.ClassesChecked++
			case parser.DeclInterface:
				summary.InterfacesChecked++
			}
		}
	}

	violations := store.Violations()

	if req.Explain && s.explainer != nil {
		violations = ExplainViolations(ctx, s.explainer, violations)
	}

	summary.TotalEvidences = store.TotalEvidences()
	summary.ViolatedPrinciples = len(violations)

	return &domain.SolidResponse{
		Violations:  violations,
		Summary:     summary,
		Warnings:    warnings,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Version:     version.Version,
	}, nil
}

// parseFiles parses all files, fanning out across goroutines. Parse
// failures are recorded as skips, never returned as errors.
func (s *SolidServiceImpl) parseFiles(ctx context.Context, files []string) ([]parsedFile, error) {
	maxConcurrency := s.cfg.Performance.MaxGoroutines
	if maxConcurrency <= 0 {
		maxConcurrency = runtime.NumCPU()
	}

	if timeout := s.cfg.Performance.TimeoutSeconds; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
		defer cancel()
	}

	var task domain.TaskProgress = noopTask{}
	if s.progress != nil {
		task = s.progress.StartTask("Parsing files", len(files))
	}
	defer task.Complete()

	results := make([]parsedFile, len(files))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrency)

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			default:
			}

			results[i] = s.parseOne(path)
			task.Increment(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, domain.NewAnalysisError("analysis cancelled", err)
	}

	return results, nil
}

// parseOne reads and parses a single file. Unreadable or unparseable
// files become skips.
func (s *SolidServiceImpl) parseOne(path string) parsedFile {
	content, err := os.ReadFile(path)
	if err != nil {
		return parsedFile{path: path, skipped: fmt.Sprintf("skipped %s: %v", path, err)}
	}

	unit, err := parser.ParseSource(path, content)
	if err != nil {
		return parsedFile{path: path, skipped: fmt.Sprintf("skipped %s: %v", path, err)}
	}

	return parsedFile{path: path, unit: unit}
}

type noopTask struct{}

func (noopTask) Increment(int)   {}
func (noopTask) Describe(string) {}
func (noopTask) Complete()       {}
