// Package markdown holds the text-level operations wafctl performs on the
// docs tree: front matter edits, link rewriting, page ID parsing, and the
// styled-block transform for question pages.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var frontMatterDelim = []byte("---\n")

// SplitFrontMatter splits a page into its front matter block (including
// both delimiter lines) and the remaining body. ok is false when the page
// has no front matter.
func SplitFrontMatter(content []byte) (fm, body []byte, ok bool) {
	if !bytes.HasPrefix(content, frontMatterDelim) {
		return nil, content, false
	}
	rest := content[len(frontMatterDelim):]
	end := bytes.Index(rest, []byte("\n---\n"))
	if end < 0 {
		return nil, content, false
	}
	fmEnd := len(frontMatterDelim) + end + len("\n---\n")
	return content[:fmEnd], content[fmEnd:], true
}

// Field returns a scalar front matter field as a string.
func Field(content []byte, key string) (string, bool) {
	fm, _, ok := SplitFrontMatter(content)
	if !ok {
		return "", false
	}

	var fields map[string]interface{}
	if err := yaml.Unmarshal(fm, &fields); err != nil {
		return "", false
	}
	v, ok := fields[key]
	if !ok || v == nil {
		return "", false
	}
	return fmt.Sprintf("%v", v), true
}

// SetNavOrder rewrites the nav_order field inside the front matter block.
// Returns the updated content and whether a nav_order line was found.
func SetNavOrder(content []byte, order int) ([]byte, bool) {
	fm, body, ok := SplitFrontMatter(content)
	if !ok {
		return content, false
	}

	lines := strings.Split(string(fm), "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "nav_order:") {
			lines[i] = fmt.Sprintf("nav_order: %d", order)
			return append([]byte(strings.Join(lines, "\n")), body...), true
		}
	}
	return content, false
}
