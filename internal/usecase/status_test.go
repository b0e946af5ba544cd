package usecase_test

import (
	"testing"

	"github.com/wafdocs/wafctl/internal/config"
	"github.com/wafdocs/wafctl/internal/usecase"
)

func TestStatusCountsPages(t *testing.T) {
	mock := setupRepo()
	mock.Files["/repo/docs/security/index.md"] = []byte("12345")
	mock.Files["/repo/docs/security/SEC01.md"] = []byte("1234567890")
	mock.Files["/repo/docs/security/SEC02.md"] = []byte("12345")
	mock.Files["/repo/docs/security/SEC01-BP01.md"] = []byte("123")
	mock.Files["/repo/docs/security/notes.md"] = []byte("12")
	mock.Files["/repo/docs/security/diagram.png"] = []byte("xxxx")

	svc := usecase.NewStatusService(mock, config.DefaultConfig(), testRoot)
	statuses, err := svc.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(statuses) != 6 {
		t.Fatalf("Run() returned %d statuses, want one per pillar", len(statuses))
	}

	byPillar := make(map[string]usecase.PillarStatus)
	for _, s := range statuses {
		byPillar[s.Pillar] = s
	}

	sec := byPillar["security"]
	if !sec.HasIndex {
		t.Error("HasIndex = false, want true")
	}
	if sec.Questions != 2 {
		t.Errorf("Questions = %d, want 2", sec.Questions)
	}
	if sec.BestPractices != 1 {
		t.Errorf("BestPractices = %d, want 1", sec.BestPractices)
	}
	if sec.OtherPages != 1 {
		t.Errorf("OtherPages = %d, want 1", sec.OtherPages)
	}
	if sec.TotalBytes != 25 {
		t.Errorf("TotalBytes = %d, want 25", sec.TotalBytes)
	}

	rel := byPillar["reliability"]
	if rel.DirMissing || rel.Questions != 0 {
		t.Errorf("empty pillar dir = %+v, want zero counts", rel)
	}

	cost := byPillar["cost-optimization"]
	if !cost.DirMissing {
		t.Error("DirMissing = false for absent pillar dir, want true")
	}
}
