package generate_test

import (
	"strings"
	"testing"

	"github.com/wafdocs/wafctl/internal/generate"
	"github.com/wafdocs/wafctl/internal/manifest"
)

func securityPillar() manifest.Pillar {
	return manifest.Pillar{
		Name:     "Security",
		Abbr:     "SEC",
		Dir:      "security",
		NavOrder: 2,
		Questions: []manifest.Question{
			{
				ID:    "SEC01",
				Title: "How do you securely operate your workload?",
				BestPractices: []manifest.BestPractice{
					{ID: "SEC01-BP01", Title: "Separate workloads using accounts", Description: "Establish common guardrails."},
					{ID: "SEC01-BP02", Title: "Secure account root user"},
				},
			},
			{ID: "SEC02", Title: "How do you manage authentication for people and machines?"},
		},
	}
}

func TestRenderQuestion(t *testing.T) {
	p := securityPillar()
	out, err := generate.RenderQuestion(p, p.Questions[0], 1)
	if err != nil {
		t.Fatalf("RenderQuestion() error = %v", err)
	}

	for _, want := range []string{
		"title: SEC01 - How do you securely operate your workload?",
		"parent: Security",
		"nav_order: 1",
		"<h1>SEC01: How do you securely operate your workload?</h1>",
		"*This page contains guidance for addressing this question from the AWS Well-Architected Framework.*",
		`<h4><a href="./SEC01-BP01.html">Separate workloads using accounts</a></h4>`,
		"<p>Establish common guardrails.</p>",
		`<h4><a href="./SEC01-BP02.html">Secure account root user</a></h4>`,
		"https://docs.aws.amazon.com/wellarchitected/latest/security-pillar/welcome.html",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderQuestion() output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderQuestionWithoutBestPractices(t *testing.T) {
	p := securityPillar()
	out, err := generate.RenderQuestion(p, p.Questions[1], 2)
	if err != nil {
		t.Fatalf("RenderQuestion() error = %v", err)
	}

	if !strings.Contains(out, "<h4>Best Practice 1</h4>") {
		t.Errorf("RenderQuestion() missing placeholder best practice:\n%s", out)
	}
	if !strings.Contains(out, "nav_order: 2") {
		t.Errorf("RenderQuestion() missing nav_order:\n%s", out)
	}
}

func TestRenderBestPractice(t *testing.T) {
	p := securityPillar()
	q := p.Questions[0]
	out, err := generate.RenderBestPractice(p, q, q.BestPractices[0], 1)
	if err != nil {
		t.Fatalf("RenderBestPractice() error = %v", err)
	}

	for _, want := range []string{
		"title: SEC01-BP01 - Separate workloads using accounts",
		"parent: SEC01 - How do you securely operate your workload?",
		"grand_parent: Security",
		"<h1>SEC01-BP01: Separate workloads using accounts</h1>",
		"<p>Establish common guardrails.</p>",
		`<a href="./SEC01.html">SEC01: How do you securely operate your workload?</a>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderBestPractice() output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderPillarIndex(t *testing.T) {
	p := securityPillar()
	out, err := generate.RenderPillarIndex(p)
	if err != nil {
		t.Fatalf("RenderPillarIndex() error = %v", err)
	}

	for _, want := range []string{
		"title: Security",
		"nav_order: 2",
		"has_children: true",
		"permalink: /docs/security",
		"<h1>Security Pillar</h1>",
		"The security pillar of the AWS Well-Architected Framework.",
		`<h3><a href="./SEC01.html">SEC01</a></h3>`,
		`<h3><a href="./SEC02.html">SEC02</a></h3>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderPillarIndex() output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderPillarIndexFrontMatterParses(t *testing.T) {
	p := securityPillar()
	out, err := generate.RenderPillarIndex(p)
	if err != nil {
		t.Fatalf("RenderPillarIndex() error = %v", err)
	}

	if !strings.HasPrefix(out, "---\n") {
		t.Errorf("RenderPillarIndex() does not start with front matter:\n%s", out)
	}
}
