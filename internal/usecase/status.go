package usecase

import (
	"fmt"

	"github.com/wafdocs/wafctl/internal/config"
	"github.com/wafdocs/wafctl/internal/markdown"
	platformfs "github.com/wafdocs/wafctl/internal/platform/fs"
)

// PillarStatus summarizes one pillar's docs directory.
type PillarStatus struct {
	Pillar        string
	Title         string
	DirMissing    bool
	HasIndex      bool
	Questions     int
	BestPractices int
	OtherPages    int
	TotalBytes    int64
}

// StatusService reports an overview of the docs tree.
type StatusService struct {
	fs   platformfs.FileSystem
	cfg  *config.Config
	root string
}

// NewStatusService creates a new status service.
func NewStatusService(fsys platformfs.FileSystem, cfg *config.Config, root string) *StatusService {
	return &StatusService{fs: fsys, cfg: cfg, root: root}
}

// Run collects per-pillar page counts and sizes.
func (s *StatusService) Run() ([]PillarStatus, error) {
	statuses := make([]PillarStatus, 0, len(s.cfg.Pillars))
	for _, p := range s.cfg.Pillars {
		status := PillarStatus{Pillar: p.Dir, Title: p.Title}
		dir := s.cfg.PillarPath(s.fs, s.root, p)

		if !s.fs.IsDir(dir) {
			status.DirMissing = true
			statuses = append(statuses, status)
			continue
		}

		entries, err := s.fs.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read pillar directory %s: %w", dir, err)
		}

		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || !isMarkdown(name) {
				continue
			}

			switch _, kind := markdown.PageID(name); {
			case name == config.IndexFileName:
				status.HasIndex = true
			case kind == markdown.KindQuestion:
				status.Questions++
			case kind == markdown.KindBestPractice:
				status.BestPractices++
			default:
				status.OtherPages++
			}

			if info, err := s.fs.Stat(s.fs.Join(dir, name)); err == nil {
				status.TotalBytes += info.Size()
			}
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
