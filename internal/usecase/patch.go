package usecase

import (
	"fmt"

	"github.com/wafdocs/wafctl/internal/config"
	"github.com/wafdocs/wafctl/internal/log"
	"github.com/wafdocs/wafctl/internal/patch"
	platformfs "github.com/wafdocs/wafctl/internal/platform/fs"
)

// PatchOptions contains options for a patch run.
type PatchOptions struct {
	// DryRun only shows what would be done without making changes
	DryRun bool
}

// PatchService applies rules files to the docs tree.
type PatchService struct {
	fs      platformfs.FileSystem
	cfg     *config.Config
	root    string
	patcher *patch.Patcher
}

// NewPatchService creates a new patch service.
func NewPatchService(fsys platformfs.FileSystem, cfg *config.Config, root string) *PatchService {
	return &PatchService{
		fs:      fsys,
		cfg:     cfg,
		root:    root,
		patcher: patch.New(fsys),
	}
}

// Run loads a rules file and applies every rule. Per-file failures never
// abort the batch; callers decide what the summary means.
func (s *PatchService) Run(rulesPath string, opts PatchOptions) ([]patch.Result, error) {
	rs, err := patch.LoadRules(s.fs, resolvePath(s.fs, s.root, rulesPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}

	// Rule file entries are relative to the repository root.
	for i := range rs.Rules {
		for j, path := range rs.Rules[i].Files {
			rs.Rules[i].Files[j] = resolvePath(s.fs, s.root, path)
		}
	}

	log.Debugf("running %d patch rule(s) against %s", len(rs.Rules), s.root)
	return s.patcher.Run(rs, patch.Options{DryRun: opts.DryRun}), nil
}
