package markdown

import (
	"strings"
	"testing"
)

const styledInput = `---
title: SEC01 - How do you securely operate your workload?
layout: default
---

# SEC01: How do you securely operate your workload?

To operate your workload securely, you must apply overarching best practices.

## Best Practices

### Separate workloads using accounts
Establish common guardrails and isolation between environments.

### Secure account root user
Secure access to your accounts.

## Implementation Guidance

1. **Establish guardrails**: Use AWS Organizations.
2. **Automate testing**: Validate security controls continuously.

## AWS Services to Consider

- **AWS Organizations** - Centrally manage your environment.
- **AWS Control Tower** - Set up a landing zone.

## Related Resources

- [Security Pillar](https://docs.aws.amazon.com/wellarchitected/latest/security-pillar/welcome.html)
- [AWS Security Blog](https://aws.amazon.com/blogs/security/)
`

const styledWant = `---
title: SEC01 - How do you securely operate your workload?
layout: default
---
<div class="pillar-header">
  <h1>SEC01: How do you securely operate your workload?</h1>
  <p>To operate your workload securely, you must apply overarching best practices.</p>
</div>


## Best Practices

<div class="best-practice">
  <h4>Separate workloads using accounts</h4>
  <p>Establish common guardrails and isolation between environments.</p>
</div>

<div class="best-practice">
  <h4>Secure account root user</h4>
  <p>Secure access to your accounts.</p>
</div>

## Implementation Guidance

<div class="implementation-step">
  <h4>1. Establish guardrails</h4>
  <p>Use AWS Organizations.</p>
</div>

<div class="implementation-step">
  <h4>2. Automate testing</h4>
  <p>Validate security controls continuously.</p>
</div>

## AWS Services to Consider

<div class="aws-service">
  <div class="aws-service-content">
    <h4>AWS Organizations</h4>
    <p>Centrally manage your environment.</p>
  </div>
</div>

<div class="aws-service">
  <div class="aws-service-content">
    <h4>AWS Control Tower</h4>
    <p>Set up a landing zone.</p>
  </div>
</div>

<div class="related-resources">
  <h2>Related Resources</h2>
  <ul>
    <li><a href="https://docs.aws.amazon.com/wellarchitected/latest/security-pillar/welcome.html">Security Pillar</a></li>
    <li><a href="https://aws.amazon.com/blogs/security/">AWS Security Blog</a></li>
  </ul>
</div>
`

func TestApplyStyling(t *testing.T) {
	got, changed := ApplyStyling([]byte(styledInput))
	if !changed {
		t.Fatal("ApplyStyling() changed = false, want true")
	}
	if string(got) != styledWant {
		t.Errorf("ApplyStyling() mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, styledWant)
	}
}

func TestApplyStylingPassThrough(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no front matter", "# SEC01: Question?\n\nBody.\n"},
		{"no question heading", "---\ntitle: Security\n---\n\n# Security Pillar\n\nOverview.\n"},
	}

	for _, tt := range tests {
		got, changed := ApplyStyling([]byte(tt.content))
		if changed {
			t.Errorf("%s: ApplyStyling() changed = true, want false", tt.name)
		}
		if string(got) != tt.content {
			t.Errorf("%s: content modified: %q", tt.name, got)
		}
	}
}

func TestApplyStylingDefaultDescription(t *testing.T) {
	content := "---\ntitle: x\n---\n\n# SEC05: How do you protect your network resources?\n\n## Best Practices\n\nText only.\n"

	got, changed := ApplyStyling([]byte(content))
	if !changed {
		t.Fatal("ApplyStyling() changed = false, want true")
	}
	if !strings.Contains(string(got), "<p>"+defaultDescription+"</p>") {
		t.Errorf("ApplyStyling() missing default description:\n%s", got)
	}
	if !strings.Contains(string(got), "<h4>Best Practice</h4>\n  <p>Text only.</p>") {
		t.Errorf("ApplyStyling() missing unstructured best-practice fallback:\n%s", got)
	}
}

func TestApplyStylingNumberedFallbacks(t *testing.T) {
	content := "---\ntitle: x\n---\n\n# OPS01: How do you determine priorities?\n\nLead paragraph.\n\n" +
		"## Implementation Guidance\n\n1. Review business goals.\n2. Involve stakeholders.\n\n" +
		"## AWS Services to Consider\n\n- AWS Trusted Advisor\n- AWS Compute Optimizer\n\n" +
		"## Related Resources\n\n- Operational excellence whitepaper\n"

	got, changed := ApplyStyling([]byte(content))
	if !changed {
		t.Fatal("ApplyStyling() changed = false, want true")
	}
	out := string(got)

	for _, want := range []string{
		"<h4>Step 1</h4>\n  <p>Review business goals.</p>",
		"<h4>Step 2</h4>\n  <p>Involve stakeholders.</p>",
		"<h4>AWS Trusted Advisor</h4>\n    <p>AWS service for this question.</p>",
		"<li>Operational excellence whitepaper</li>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ApplyStyling() output missing %q:\n%s", want, out)
		}
	}
}

func TestApplyStylingIdempotentSections(t *testing.T) {
	// A page already in styled form has no recognizable plain sections left
	// to rewrite except the heading blocks, which stay stable.
	once, _ := ApplyStyling([]byte(styledInput))
	twice, _ := ApplyStyling(once)
	if string(once) != string(twice) {
		t.Errorf("second ApplyStyling() diverged:\n--- first ---\n%s\n--- second ---\n%s", once, twice)
	}
}
