package markdown

import (
	"bytes"
	"regexp"
)

// Links like href="./SEC01" or href="./SEC01-BP02" that are missing the
// rendered .html extension.
var bareLinkRe = regexp.MustCompile(`href="\./([A-Z]+\d+(?:-BP\d+)?)"`)

// AddHTMLExtensions rewrites extension-less question and best practice
// links to their rendered .html form. Returns whether anything changed.
func AddHTMLExtensions(content []byte) ([]byte, bool) {
	updated := bareLinkRe.ReplaceAll(content, []byte(`href="$1.html"`))
	return updated, !bytes.Equal(content, updated)
}

// RelativizeLinks prefixes same-pillar .html links with ./ so they resolve
// inside the pillar directory. prefix is the pillar's question prefix,
// e.g. SEC.
func RelativizeLinks(content []byte, prefix string) ([]byte, bool) {
	re := regexp.MustCompile(`href="(` + regexp.QuoteMeta(prefix) + `\d+(?:-BP\d+)?\.html)"`)
	updated := re.ReplaceAll(content, []byte(`href="./$1"`))
	return updated, !bytes.Equal(content, updated)
}
