package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// defaultDescription is used when a question page has no paragraph after
// its heading.
const defaultDescription = "*This page contains guidance for addressing this question from the AWS Well-Architected Framework.*"

var (
	questionHeadingRe = regexp.MustCompile(`(?m)^# ([A-Z]+\d+): (.*)$`)
	h3Re              = regexp.MustCompile(`(?m)^### (.*)$`)
	numberedItemRe    = regexp.MustCompile(`(?m)^\d+\.\s`)
	boldStepRe        = regexp.MustCompile(`(?s)^\d+\.\s+\*\*(.*?)\*\*:\s*(.*)$`)
	listItemRe        = regexp.MustCompile(`(?m)^- `)
	boldServiceRe     = regexp.MustCompile(`(?s)^\*\*(.*?)\*\* - (.*)$`)
	resourceLinkRe    = regexp.MustCompile(`- \[(.*?)\]\((.*?)\)`)
)

// ApplyStyling converts a standard question page into the styled format:
// the question heading and lead paragraph become a pillar-header block, and
// the recognized sections are rewritten as styled HTML blocks. Pages
// without front matter or without a question heading are returned
// unchanged.
func ApplyStyling(content []byte) ([]byte, bool) {
	fm, body, ok := SplitFrontMatter(content)
	if !ok {
		return content, false
	}

	s := string(body)
	loc := questionHeadingRe.FindStringSubmatchIndex(s)
	if loc == nil {
		return content, false
	}
	id := s[loc[2]:loc[3]]
	title := s[loc[4]:loc[5]]

	before := s[:loc[0]]
	rest := s[loc[1]:]

	// The first paragraph after the heading becomes the header description.
	desc := defaultDescription
	remainder := strings.TrimPrefix(rest, "\n")
	if para, after, found := strings.Cut(strings.TrimPrefix(rest, "\n\n"), "\n\n"); found && strings.HasPrefix(rest, "\n\n") && !strings.HasPrefix(para, "#") {
		desc = para
		remainder = after
	}

	header := fmt.Sprintf("<div class=\"pillar-header\">\n  <h1>%s: %s</h1>\n  <p>%s</p>\n</div>\n\n", id, title, desc)

	styled := before + remainder
	styled = styleBestPractices(styled)
	styled = styleImplementationGuidance(styled)
	styled = styleServices(styled)
	styled = styleResources(styled)

	out := append(append([]byte{}, fm...), []byte(header+styled)...)
	return out, string(out) != string(content)
}

// findSection locates a "## Heading" section. The returned end index is the
// start of the next H2 heading or the end of the document; content is
// s[bodyStart:end].
func findSection(s, heading string) (start, bodyStart, end int, ok bool) {
	marker := heading + "\n\n"
	if strings.HasPrefix(s, marker) {
		start = 0
	} else {
		idx := strings.Index(s, "\n"+marker)
		if idx < 0 {
			return 0, 0, 0, false
		}
		start = idx + 1
	}
	bodyStart = start + len(marker)

	if next := strings.Index(s[bodyStart:], "\n## "); next >= 0 {
		end = bodyStart + next
	} else {
		end = len(s)
	}
	return start, bodyStart, end, true
}

// replaceSection swaps out s[start:end] for blocks, normalizing the section
// boundary to a single blank line.
func replaceSection(s string, start, end int, blocks string) string {
	blocks = strings.TrimRight(blocks, "\n") + "\n"
	return s[:start] + blocks + s[end:]
}

type h3Item struct {
	title string
	body  string
}

func splitH3Items(sec string) []h3Item {
	matches := h3Re.FindAllStringSubmatchIndex(sec, -1)
	items := make([]h3Item, 0, len(matches))
	for i, m := range matches {
		bodyEnd := len(sec)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}
		items = append(items, h3Item{
			title: sec[m[2]:m[3]],
			body:  sec[m[1]:bodyEnd],
		})
	}
	return items
}

// splitChunks cuts sec into chunks starting at each match of startRe.
func splitChunks(sec string, startRe *regexp.Regexp) []string {
	starts := startRe.FindAllStringIndex(sec, -1)
	chunks := make([]string, 0, len(starts))
	for i, m := range starts {
		end := len(sec)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		chunks = append(chunks, sec[m[0]:end])
	}
	return chunks
}

func styleBestPractices(s string) string {
	start, bodyStart, end, ok := findSection(s, "## Best Practices")
	if !ok {
		return s
	}
	sec := s[bodyStart:end]

	var b strings.Builder
	b.WriteString("## Best Practices\n\n")

	items := splitH3Items(sec)
	if len(items) > 0 {
		for _, it := range items {
			fmt.Fprintf(&b, "<div class=\"best-practice\">\n  <h4>%s</h4>\n  <p>%s</p>\n</div>\n\n", it.title, strings.TrimSpace(it.body))
		}
	} else {
		fmt.Fprintf(&b, "<div class=\"best-practice\">\n  <h4>Best Practice</h4>\n  <p>%s</p>\n</div>\n\n", strings.TrimSpace(sec))
	}

	return replaceSection(s, start, end, b.String())
}

func styleImplementationGuidance(s string) string {
	start, bodyStart, end, ok := findSection(s, "## Implementation Guidance")
	if !ok {
		return s
	}
	sec := s[bodyStart:end]

	var b strings.Builder
	b.WriteString("## Implementation Guidance\n\n")

	chunks := splitChunks(sec, numberedItemRe)

	var boldSteps [][]string
	for _, chunk := range chunks {
		if m := boldStepRe.FindStringSubmatch(strings.TrimSpace(chunk)); m != nil {
			boldSteps = append(boldSteps, m)
		}
	}

	switch {
	case len(boldSteps) > 0:
		for i, m := range boldSteps {
			fmt.Fprintf(&b, "<div class=\"implementation-step\">\n  <h4>%d. %s</h4>\n  <p>%s</p>\n</div>\n\n", i+1, m[1], strings.TrimSpace(m[2]))
		}
	case len(chunks) > 0:
		for i, chunk := range chunks {
			text := numberedItemRe.ReplaceAllString(strings.TrimSpace(chunk), "")
			fmt.Fprintf(&b, "<div class=\"implementation-step\">\n  <h4>Step %d</h4>\n  <p>%s</p>\n</div>\n\n", i+1, text)
		}
	default:
		fmt.Fprintf(&b, "<div class=\"implementation-step\">\n  <h4>Implementation Guidance</h4>\n  <p>%s</p>\n</div>\n\n", strings.TrimSpace(sec))
	}

	return replaceSection(s, start, end, b.String())
}

func styleServices(s string) string {
	start, bodyStart, end, ok := findSection(s, "## AWS Services to Consider")
	if !ok {
		return s
	}
	sec := s[bodyStart:end]

	var b strings.Builder
	b.WriteString("## AWS Services to Consider\n\n")

	writeService := func(name, desc string) {
		fmt.Fprintf(&b, "<div class=\"aws-service\">\n  <div class=\"aws-service-content\">\n    <h4>%s</h4>\n    <p>%s</p>\n  </div>\n</div>\n\n", name, desc)
	}

	chunks := splitChunks(sec, listItemRe)

	var structured [][]string
	for _, chunk := range chunks {
		item := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(chunk), "- "))
		if m := boldServiceRe.FindStringSubmatch(item); m != nil {
			structured = append(structured, m)
		}
	}

	switch {
	case len(structured) > 0:
		for _, m := range structured {
			writeService(m[1], strings.TrimSpace(m[2]))
		}
	case len(chunks) > 0:
		for _, chunk := range chunks {
			item := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(chunk), "- "))
			writeService(item, "AWS service for this question.")
		}
	default:
		writeService("AWS Services", "Add relevant AWS services for this question.")
	}

	return replaceSection(s, start, end, b.String())
}

func styleResources(s string) string {
	start, bodyStart, end, ok := findSection(s, "## Related Resources")
	if !ok {
		return s
	}
	sec := s[bodyStart:end]

	var b strings.Builder
	b.WriteString("<div class=\"related-resources\">\n  <h2>Related Resources</h2>\n  <ul>\n")

	links := resourceLinkRe.FindAllStringSubmatch(sec, -1)
	switch {
	case len(links) > 0:
		for _, m := range links {
			fmt.Fprintf(&b, "    <li><a href=\"%s\">%s</a></li>\n", m[2], m[1])
		}
	default:
		chunks := splitChunks(sec, listItemRe)
		if len(chunks) > 0 {
			for _, chunk := range chunks {
				item := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(chunk), "- "))
				fmt.Fprintf(&b, "    <li>%s</li>\n", item)
			}
		} else {
			b.WriteString("    <li>Add related resources for this question.</li>\n")
		}
	}

	b.WriteString("  </ul>\n</div>\n")

	return replaceSection(s, start, end, b.String())
}
