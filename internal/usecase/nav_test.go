package usecase_test

import (
	"strings"
	"testing"

	"github.com/wafdocs/wafctl/internal/config"
	"github.com/wafdocs/wafctl/internal/usecase"
)

const securityIndex = `---
title: Security
nav_order: 99
has_children: true
---

# Security Pillar
`

func TestNavRewritesIndexOrder(t *testing.T) {
	mock := setupRepo()
	mock.Files["/repo/docs/security/index.md"] = []byte(securityIndex)

	svc := usecase.NewNavService(mock, config.DefaultConfig(), testRoot)
	results := svc.Run(usecase.NavOptions{})

	if len(results) != 6 {
		t.Fatalf("Run() returned %d results, want one per pillar", len(results))
	}

	byPillar := make(map[string]usecase.NavResult)
	for _, r := range results {
		byPillar[r.Pillar] = r
	}

	sec := byPillar["security"]
	if sec.Action != usecase.NavActionUpdated {
		t.Errorf("security action = %v, want %v", sec.Action, usecase.NavActionUpdated)
	}
	if sec.Order != 2 {
		t.Errorf("security order = %d, want 2", sec.Order)
	}
	if rel := byPillar["reliability"]; rel.Action != usecase.NavActionMissing {
		t.Errorf("reliability action = %v, want %v", rel.Action, usecase.NavActionMissing)
	}

	got := string(mock.Files["/repo/docs/security/index.md"])
	if !strings.Contains(got, "nav_order: 2\n") {
		t.Errorf("index.md missing rewritten nav_order:\n%s", got)
	}
	if strings.Contains(got, "nav_order: 99") {
		t.Errorf("index.md still has old nav_order:\n%s", got)
	}
}

func TestNavUnchangedWhenOrderMatches(t *testing.T) {
	mock := setupRepo()
	mock.Files["/repo/docs/security/index.md"] = []byte(
		strings.Replace(securityIndex, "nav_order: 99", "nav_order: 2", 1))

	svc := usecase.NewNavService(mock, config.DefaultConfig(), testRoot)
	results := svc.Run(usecase.NavOptions{})

	for _, r := range results {
		if r.Pillar == "security" && r.Action != usecase.NavActionUnchanged {
			t.Errorf("action = %v, want %v", r.Action, usecase.NavActionUnchanged)
		}
	}
}

func TestNavNoFieldReported(t *testing.T) {
	mock := setupRepo()
	mock.Files["/repo/docs/security/index.md"] = []byte("---\ntitle: Security\n---\n\nbody\n")

	svc := usecase.NewNavService(mock, config.DefaultConfig(), testRoot)
	results := svc.Run(usecase.NavOptions{})

	for _, r := range results {
		if r.Pillar == "security" && r.Action != usecase.NavActionNoField {
			t.Errorf("action = %v, want %v", r.Action, usecase.NavActionNoField)
		}
	}
}

func TestNavDryRun(t *testing.T) {
	mock := setupRepo()
	mock.Files["/repo/docs/security/index.md"] = []byte(securityIndex)

	svc := usecase.NewNavService(mock, config.DefaultConfig(), testRoot)
	results := svc.Run(usecase.NavOptions{DryRun: true})

	for _, r := range results {
		if r.Pillar == "security" && r.Action != usecase.NavActionUpdated {
			t.Errorf("action = %v, want %v", r.Action, usecase.NavActionUpdated)
		}
	}
	if got := string(mock.Files["/repo/docs/security/index.md"]); got != securityIndex {
		t.Error("dry run modified the index page")
	}
}
