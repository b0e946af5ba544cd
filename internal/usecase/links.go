package usecase

import (
	"fmt"
	"strings"

	"github.com/wafdocs/wafctl/internal/config"
	"github.com/wafdocs/wafctl/internal/log"
	"github.com/wafdocs/wafctl/internal/markdown"
	platformfs "github.com/wafdocs/wafctl/internal/platform/fs"
)

// LinkOptions contains options for link rewriting.
type LinkOptions struct {
	// DryRun only shows what would be done without making changes
	DryRun bool
}

// LinkResult represents the outcome for a single page.
type LinkResult struct {
	Path    string
	Changed bool
	Error   error
}

// LinkService rewrites intra-site links across the docs tree.
type LinkService struct {
	fs   platformfs.FileSystem
	cfg  *config.Config
	root string
}

// NewLinkService creates a new link service.
func NewLinkService(fsys platformfs.FileSystem, cfg *config.Config, root string) *LinkService {
	return &LinkService{fs: fsys, cfg: cfg, root: root}
}

// Run rewrites links in every Markdown file under the docs directory:
// extension-less question links gain .html, and same-pillar links gain a
// ./ prefix. A file is written only when its content changed.
func (s *LinkService) Run(opts LinkOptions) ([]LinkResult, error) {
	docsDir := s.cfg.DocsPath(s.fs, s.root)
	if !s.fs.IsDir(docsDir) {
		return nil, fmt.Errorf("docs directory not found: %s", docsDir)
	}

	paths, err := walkMarkdown(s.fs, docsDir)
	if err != nil {
		return nil, err
	}

	results := make([]LinkResult, 0, len(paths))
	for _, path := range paths {
		results = append(results, s.fixFile(path, opts.DryRun))
	}
	return results, nil
}

func (s *LinkService) fixFile(path string, dryRun bool) LinkResult {
	content, err := s.fs.ReadFile(path)
	if err != nil {
		return LinkResult{Path: path, Error: fmt.Errorf("failed to read %s: %w", path, err)}
	}

	updated, changed := markdown.AddHTMLExtensions(content)
	if p, ok := s.pillarFor(path); ok {
		var relChanged bool
		updated, relChanged = markdown.RelativizeLinks(updated, p.Prefix)
		changed = changed || relChanged
	}

	if !changed {
		return LinkResult{Path: path}
	}
	if dryRun {
		return LinkResult{Path: path, Changed: true}
	}

	if err := s.fs.WriteFile(path, updated, 0o644); err != nil {
		return LinkResult{Path: path, Error: fmt.Errorf("failed to write %s: %w", path, err)}
	}
	log.Debugf("rewrote links in %s", path)
	return LinkResult{Path: path, Changed: true}
}

// pillarFor matches a page to its pillar by the directory it lives in.
func (s *LinkService) pillarFor(path string) (config.Pillar, bool) {
	dir := s.fs.Base(s.fs.Dir(path))
	for _, p := range s.cfg.Pillars {
		if strings.EqualFold(dir, p.Dir) {
			return p, true
		}
	}
	return config.Pillar{}, false
}
