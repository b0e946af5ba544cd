package usecase

import (
	"fmt"

	"github.com/wafdocs/wafctl/internal/config"
	"github.com/wafdocs/wafctl/internal/log"
	"github.com/wafdocs/wafctl/internal/markdown"
	platformfs "github.com/wafdocs/wafctl/internal/platform/fs"
)

// StyleOptions contains options for the style transform.
type StyleOptions struct {
	// DryRun only shows what would be done without making changes
	DryRun bool
	// Pillars limits the run to specific pillars by dir or prefix
	// (empty for all).
	Pillars []string
}

// StyleResult represents the outcome for a single page.
type StyleResult struct {
	Path    string
	Changed bool
	Error   error
}

// StyleService converts question pages to the styled format.
type StyleService struct {
	fs   platformfs.FileSystem
	cfg  *config.Config
	root string
}

// NewStyleService creates a new style service.
func NewStyleService(fsys platformfs.FileSystem, cfg *config.Config, root string) *StyleService {
	return &StyleService{fs: fsys, cfg: cfg, root: root}
}

// Run applies the styled-format transform to every question and best
// practice page in the selected pillars. Index pages are left alone.
func (s *StyleService) Run(opts StyleOptions) ([]StyleResult, error) {
	pillars, err := s.selectPillars(opts.Pillars)
	if err != nil {
		return nil, err
	}

	var results []StyleResult
	for _, p := range pillars {
		dir := s.cfg.PillarPath(s.fs, s.root, p)
		if !s.fs.IsDir(dir) {
			log.Debugf("pillar directory %s does not exist, skipping", dir)
			continue
		}

		entries, err := s.fs.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read pillar directory %s: %w", dir, err)
		}

		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || name == config.IndexFileName || !isMarkdown(name) {
				continue
			}
			path := s.fs.Join(dir, name)
			results = append(results, s.styleFile(path, opts.DryRun))
		}
	}

	return results, nil
}

func (s *StyleService) styleFile(path string, dryRun bool) StyleResult {
	content, err := s.fs.ReadFile(path)
	if err != nil {
		return StyleResult{Path: path, Error: fmt.Errorf("failed to read %s: %w", path, err)}
	}

	styled, changed := markdown.ApplyStyling(content)
	if !changed {
		return StyleResult{Path: path}
	}
	if dryRun {
		return StyleResult{Path: path, Changed: true}
	}

	if err := s.fs.WriteFile(path, styled, 0o644); err != nil {
		return StyleResult{Path: path, Error: fmt.Errorf("failed to write %s: %w", path, err)}
	}
	return StyleResult{Path: path, Changed: true}
}

func (s *StyleService) selectPillars(keys []string) ([]config.Pillar, error) {
	if len(keys) == 0 {
		return s.cfg.Pillars, nil
	}
	pillars := make([]config.Pillar, 0, len(keys))
	for _, key := range keys {
		p, ok := s.cfg.FindPillar(key)
		if !ok {
			return nil, fmt.Errorf("unknown pillar: %s", key)
		}
		pillars = append(pillars, p)
	}
	return pillars, nil
}

func isMarkdown(name string) bool {
	return len(name) > 3 && name[len(name)-3:] == ".md"
}
