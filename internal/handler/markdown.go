package handler

import (
	"net/url"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// linkSchemes are the only absolute link targets rendered as anchors.
var linkSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
}

// renderMarkdown turns the model's markdown summary into HTML for the
// output pane. Raw HTML in the summary is dropped and links are limited to
// safe schemes, since the summary echoes untrusted pasted text.
func renderMarkdown(md string) string {
	if md == "" {
		return ""
	}

	// parsers keep state, so one per call
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.NoEmptyLineBeforeBlock)
	doc := p.Parse([]byte(md))

	htmlFlags := mdhtml.CommonFlags | mdhtml.SkipHTML | mdhtml.Safelink | mdhtml.HrefTargetBlank
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: htmlFlags})
	renderer.IsSafeURLOverride = safeLink

	return string(markdown.Render(doc, renderer))
}

// safeLink accepts relative targets and the schemes in linkSchemes.
// Anything url.Parse rejects (control characters, stray colons) is unsafe.
func safeLink(dest []byte) bool {
	u, err := url.Parse(string(dest))
	if err != nil {
		return false
	}
	if u.Scheme == "" {
		return u.Opaque == ""
	}
	return linkSchemes[u.Scheme]
}
