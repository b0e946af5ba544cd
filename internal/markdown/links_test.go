package markdown

import "testing"

func TestAddHTMLExtensions(t *testing.T) {
	content := []byte(`<a href="./SEC01">Q1</a> <a href="./SEC01-BP02">BP</a> <a href="./other">skip</a>`)

	updated, changed := AddHTMLExtensions(content)
	if !changed {
		t.Fatal("AddHTMLExtensions() changed = false, want true")
	}

	want := `<a href="SEC01.html">Q1</a> <a href="SEC01-BP02.html">BP</a> <a href="./other">skip</a>`
	if string(updated) != want {
		t.Errorf("AddHTMLExtensions() = %q, want %q", updated, want)
	}
}

func TestAddHTMLExtensionsNoMatch(t *testing.T) {
	content := []byte(`<a href="SEC01.html">already done</a>`)
	updated, changed := AddHTMLExtensions(content)
	if changed {
		t.Errorf("AddHTMLExtensions() changed = true, want false (got %q)", updated)
	}
}

func TestRelativizeLinks(t *testing.T) {
	content := []byte(`<a href="SEC01.html">Q</a> <a href="SEC01-BP03.html">BP</a> <a href="REL01.html">other pillar</a> <a href="./SEC02.html">done</a>`)

	updated, changed := RelativizeLinks(content, "SEC")
	if !changed {
		t.Fatal("RelativizeLinks() changed = false, want true")
	}

	want := `<a href="./SEC01.html">Q</a> <a href="./SEC01-BP03.html">BP</a> <a href="REL01.html">other pillar</a> <a href="./SEC02.html">done</a>`
	if string(updated) != want {
		t.Errorf("RelativizeLinks() = %q, want %q", updated, want)
	}
}
