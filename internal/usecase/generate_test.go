package usecase_test

import (
	"strings"
	"testing"

	"github.com/wafdocs/wafctl/internal/config"
	"github.com/wafdocs/wafctl/internal/usecase"
)

const testManifest = `version: 1
pillars:
  - name: Security
    abbr: SEC
    dir: security
    questions:
      - id: SEC1
        title: How do you securely operate your workload?
        bestPractices:
          - id: SEC1-BP01
            title: Separate workloads using accounts
      - id: SEC2
        title: How do you manage identities?
  - name: Reliability
    abbr: REL
    dir: reliability
    questions:
      - id: REL1
        title: How do you manage service quotas?
`

func TestGenerateCreatesPages(t *testing.T) {
	mock := setupRepo()
	mock.Files["/repo/manifest.yaml"] = []byte(testManifest)

	svc := usecase.NewGenerateService(mock, config.DefaultConfig(), testRoot)
	results, err := svc.Run("manifest.yaml", usecase.GenerateOptions{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// 2 index pages, 3 question pages, 1 best practice page.
	if len(results) != 6 {
		t.Fatalf("Run() returned %d results, want 6", len(results))
	}
	for _, r := range results {
		if r.Action != usecase.GenerateActionCreated {
			t.Errorf("%s action = %v, want %v", r.Path, r.Action, usecase.GenerateActionCreated)
		}
	}

	for _, path := range []string{
		"/repo/docs/security/index.md",
		"/repo/docs/security/SEC1.md",
		"/repo/docs/security/SEC1-BP01.md",
		"/repo/docs/security/SEC2.md",
		"/repo/docs/reliability/index.md",
		"/repo/docs/reliability/REL1.md",
	} {
		if !mock.Exists(path) {
			t.Errorf("%s was not generated", path)
		}
	}

	question := string(mock.Files["/repo/docs/security/SEC1.md"])
	if !strings.Contains(question, "SEC1: How do you securely operate your workload?") {
		t.Errorf("question page missing heading:\n%s", question)
	}
	if !strings.Contains(question, "nav_order: 1") {
		t.Errorf("question page missing nav_order:\n%s", question)
	}
}

func TestGenerateSkipsExistingPages(t *testing.T) {
	mock := setupRepo()
	mock.Files["/repo/manifest.yaml"] = []byte(testManifest)
	mock.Files["/repo/docs/security/SEC1.md"] = []byte("hand-edited\n")

	svc := usecase.NewGenerateService(mock, config.DefaultConfig(), testRoot)
	results, err := svc.Run("manifest.yaml", usecase.GenerateOptions{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for _, r := range results {
		if r.Path == "/repo/docs/security/SEC1.md" && r.Action != usecase.GenerateActionSkipped {
			t.Errorf("action = %v, want %v", r.Action, usecase.GenerateActionSkipped)
		}
	}
	if got := string(mock.Files["/repo/docs/security/SEC1.md"]); got != "hand-edited\n" {
		t.Errorf("existing page overwritten without --force: %q", got)
	}
}

func TestGenerateForceOverwrites(t *testing.T) {
	mock := setupRepo()
	mock.Files["/repo/manifest.yaml"] = []byte(testManifest)
	mock.Files["/repo/docs/security/SEC1.md"] = []byte("hand-edited\n")

	svc := usecase.NewGenerateService(mock, config.DefaultConfig(), testRoot)
	results, err := svc.Run("manifest.yaml", usecase.GenerateOptions{Force: true})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for _, r := range results {
		if r.Path == "/repo/docs/security/SEC1.md" && r.Action != usecase.GenerateActionOverwritten {
			t.Errorf("action = %v, want %v", r.Action, usecase.GenerateActionOverwritten)
		}
	}
	if got := string(mock.Files["/repo/docs/security/SEC1.md"]); got == "hand-edited\n" {
		t.Error("page not overwritten with Force set")
	}
}

func TestGenerateDryRunWritesNothing(t *testing.T) {
	mock := setupRepo()
	mock.Files["/repo/manifest.yaml"] = []byte(testManifest)

	svc := usecase.NewGenerateService(mock, config.DefaultConfig(), testRoot)
	results, err := svc.Run("manifest.yaml", usecase.GenerateOptions{DryRun: true})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(results) != 6 {
		t.Fatalf("Run() returned %d results, want 6", len(results))
	}
	if mock.Exists("/repo/docs/security/SEC1.md") {
		t.Error("dry run wrote a page")
	}
}

func TestGenerateRejectsBadManifest(t *testing.T) {
	mock := setupRepo()
	mock.Files["/repo/manifest.yaml"] = []byte("pillars: []\n")

	svc := usecase.NewGenerateService(mock, config.DefaultConfig(), testRoot)
	if _, err := svc.Run("manifest.yaml", usecase.GenerateOptions{}); err == nil {
		t.Error("Run() error = nil, want schema error for empty pillars")
	}
}
