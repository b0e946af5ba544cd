package usecase

import (
	"fmt"

	"github.com/wafdocs/wafctl/internal/config"
	"github.com/wafdocs/wafctl/internal/generate"
	"github.com/wafdocs/wafctl/internal/log"
	"github.com/wafdocs/wafctl/internal/manifest"
	platformfs "github.com/wafdocs/wafctl/internal/platform/fs"
)

// GenerateAction represents the outcome for one generated page.
type GenerateAction string

const (
	GenerateActionCreated     GenerateAction = "created"
	GenerateActionOverwritten GenerateAction = "overwritten"
	GenerateActionSkipped     GenerateAction = "skipped"
	GenerateActionError       GenerateAction = "error"
)

// GenerateResult represents the outcome for one page.
type GenerateResult struct {
	Path   string
	Action GenerateAction
	Error  error
}

// GenerateOptions contains options for page generation.
type GenerateOptions struct {
	// DryRun only shows what would be done without making changes
	DryRun bool
	// Force overwrites pages that already exist
	Force bool
}

// GenerateService renders docs pages from a manifest.
type GenerateService struct {
	fs   platformfs.FileSystem
	cfg  *config.Config
	root string
}

// NewGenerateService creates a new generate service.
func NewGenerateService(fsys platformfs.FileSystem, cfg *config.Config, root string) *GenerateService {
	return &GenerateService{fs: fsys, cfg: cfg, root: root}
}

// Run generates index, question, and best practice pages for every pillar
// in the manifest. Existing pages are skipped unless Force is set.
func (s *GenerateService) Run(manifestPath string, opts GenerateOptions) ([]GenerateResult, error) {
	m, err := manifest.Load(s.fs, resolvePath(s.fs, s.root, manifestPath))
	if err != nil {
		return nil, err
	}

	var results []GenerateResult
	for _, p := range m.Pillars {
		dir := s.fs.Join(s.cfg.DocsPath(s.fs, s.root), p.Dir)
		if !opts.DryRun {
			if err := s.fs.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create pillar directory %s: %w", dir, err)
			}
		}

		results = append(results, s.writePage(
			s.fs.Join(dir, config.IndexFileName),
			func() (string, error) { return generate.RenderPillarIndex(p) },
			opts,
		))

		for qi, q := range p.Questions {
			q, qi := q, qi
			results = append(results, s.writePage(
				s.fs.Join(dir, q.ID+".md"),
				func() (string, error) { return generate.RenderQuestion(p, q, qi+1) },
				opts,
			))

			for bi, bp := range q.BestPractices {
				bp, bi := bp, bi
				results = append(results, s.writePage(
					s.fs.Join(dir, bp.ID+".md"),
					func() (string, error) { return generate.RenderBestPractice(p, q, bp, bi+1) },
					opts,
				))
			}
		}
	}

	return results, nil
}

func (s *GenerateService) writePage(path string, render func() (string, error), opts GenerateOptions) GenerateResult {
	exists := s.fs.Exists(path)
	if exists && !opts.Force {
		log.Debugf("page %s already exists, skipping", path)
		return GenerateResult{Path: path, Action: GenerateActionSkipped}
	}

	content, err := render()
	if err != nil {
		return GenerateResult{Path: path, Action: GenerateActionError, Error: err}
	}

	action := GenerateActionCreated
	if exists {
		action = GenerateActionOverwritten
	}
	if opts.DryRun {
		return GenerateResult{Path: path, Action: action}
	}

	if err := s.fs.WriteFile(path, []byte(content), 0o644); err != nil {
		return GenerateResult{Path: path, Action: GenerateActionError, Error: fmt.Errorf("failed to write %s: %w", path, err)}
	}
	return GenerateResult{Path: path, Action: action}
}
