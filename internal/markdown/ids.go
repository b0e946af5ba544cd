package markdown

import (
	"regexp"
	"strings"
)

// PageKind classifies a docs page by its file name.
type PageKind int

const (
	// KindOther is any page that is not a question or best practice.
	KindOther PageKind = iota
	// KindQuestion is a question page, e.g. SEC01.md.
	KindQuestion
	// KindBestPractice is a best practice page, e.g. SEC01-BP02.md.
	KindBestPractice
)

var (
	questionIDRe = regexp.MustCompile(`^[A-Z]+\d+$`)
	bpIDRe       = regexp.MustCompile(`^[A-Z]+\d+-BP\d+$`)
)

// PageID parses a Markdown file name into its question or best practice ID.
func PageID(filename string) (string, PageKind) {
	id, found := strings.CutSuffix(filename, ".md")
	if !found {
		return "", KindOther
	}
	switch {
	case questionIDRe.MatchString(id):
		return id, KindQuestion
	case bpIDRe.MatchString(id):
		return id, KindBestPractice
	default:
		return "", KindOther
	}
}
