package usecase

import (
	"fmt"

	"github.com/wafdocs/wafctl/internal/config"
	"github.com/wafdocs/wafctl/internal/markdown"
	platformfs "github.com/wafdocs/wafctl/internal/platform/fs"
)

// NavAction represents the outcome for one pillar index.
type NavAction string

const (
	NavActionUpdated   NavAction = "updated"
	NavActionUnchanged NavAction = "unchanged"
	NavActionMissing   NavAction = "missing"
	NavActionNoField   NavAction = "no-field"
	NavActionError     NavAction = "error"
)

// NavResult represents the outcome of a nav_order rewrite.
type NavResult struct {
	Pillar string
	Path   string
	Order  int
	Action NavAction
	Error  error
}

// NavOptions contains options for the nav rewrite.
type NavOptions struct {
	// DryRun only shows what would be done without making changes
	DryRun bool
}

// NavService aligns pillar index nav_order fields with the configuration.
type NavService struct {
	fs   platformfs.FileSystem
	cfg  *config.Config
	root string
}

// NewNavService creates a new nav service.
func NewNavService(fsys platformfs.FileSystem, cfg *config.Config, root string) *NavService {
	return &NavService{fs: fsys, cfg: cfg, root: root}
}

// Run rewrites nav_order in each pillar's index page. A missing index page
// is reported and skipped, never fatal.
func (s *NavService) Run(opts NavOptions) []NavResult {
	results := make([]NavResult, 0, len(s.cfg.Pillars))
	for _, p := range s.cfg.Pillars {
		path := s.fs.Join(s.cfg.PillarPath(s.fs, s.root, p), config.IndexFileName)
		result := NavResult{Pillar: p.Dir, Path: path, Order: p.NavOrder}

		if !s.fs.Exists(path) {
			result.Action = NavActionMissing
			results = append(results, result)
			continue
		}

		content, err := s.fs.ReadFile(path)
		if err != nil {
			result.Action = NavActionError
			result.Error = fmt.Errorf("failed to read %s: %w", path, err)
			results = append(results, result)
			continue
		}

		updated, found := markdown.SetNavOrder(content, p.NavOrder)
		switch {
		case !found:
			result.Action = NavActionNoField
		case string(updated) == string(content):
			result.Action = NavActionUnchanged
		case opts.DryRun:
			result.Action = NavActionUpdated
		default:
			if err := s.fs.WriteFile(path, updated, 0o644); err != nil {
				result.Action = NavActionError
				result.Error = fmt.Errorf("failed to write %s: %w", path, err)
			} else {
				result.Action = NavActionUpdated
			}
		}
		results = append(results, result)
	}
	return results
}
