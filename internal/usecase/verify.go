package usecase

import (
	"fmt"
	"sort"

	"github.com/wafdocs/wafctl/internal/config"
	"github.com/wafdocs/wafctl/internal/manifest"
	"github.com/wafdocs/wafctl/internal/markdown"
	platformfs "github.com/wafdocs/wafctl/internal/platform/fs"
)

// VerifyResult represents the comparison of one pillar against the
// manifest.
type VerifyResult struct {
	Pillar     string
	DirMissing bool
	// Missing question IDs present in the manifest with no page on disk.
	Missing []string
	// Extra question IDs on disk that the manifest does not know.
	Extra []string
}

// InSync reports whether the pillar's docs tree matches the manifest.
func (r *VerifyResult) InSync() bool {
	return !r.DirMissing && len(r.Missing) == 0 && len(r.Extra) == 0
}

// VerifyService compares the docs tree against a manifest.
type VerifyService struct {
	fs   platformfs.FileSystem
	cfg  *config.Config
	root string
}

// NewVerifyService creates a new verify service.
func NewVerifyService(fsys platformfs.FileSystem, cfg *config.Config, root string) *VerifyService {
	return &VerifyService{fs: fsys, cfg: cfg, root: root}
}

// Run set-compares the manifest's question IDs against the question pages
// on disk, per pillar.
func (s *VerifyService) Run(manifestPath string) ([]VerifyResult, error) {
	m, err := manifest.Load(s.fs, resolvePath(s.fs, s.root, manifestPath))
	if err != nil {
		return nil, err
	}

	results := make([]VerifyResult, 0, len(m.Pillars))
	for _, p := range m.Pillars {
		result := VerifyResult{Pillar: p.Dir}
		dir := s.fs.Join(s.cfg.DocsPath(s.fs, s.root), p.Dir)

		if !s.fs.IsDir(dir) {
			result.DirMissing = true
			result.Missing = append(result.Missing, p.QuestionIDs()...)
			results = append(results, result)
			continue
		}

		local, err := s.localQuestionIDs(dir)
		if err != nil {
			return nil, err
		}

		want := make(map[string]bool, len(p.Questions))
		for _, q := range p.Questions {
			want[q.ID] = true
			if !local[q.ID] {
				result.Missing = append(result.Missing, q.ID)
			}
		}
		for id := range local {
			if !want[id] {
				result.Extra = append(result.Extra, id)
			}
		}
		sort.Strings(result.Missing)
		sort.Strings(result.Extra)
		results = append(results, result)
	}

	return results, nil
}

func (s *VerifyService) localQuestionIDs(dir string) (map[string]bool, error) {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read pillar directory %s: %w", dir, err)
	}

	ids := make(map[string]bool)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if id, kind := markdown.PageID(entry.Name()); kind == markdown.KindQuestion {
			ids[id] = true
		}
	}
	return ids, nil
}
