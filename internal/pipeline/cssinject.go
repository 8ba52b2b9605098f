package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// InjectCSS appends css as a <style> block to <head>, after any styles
// pandoc emitted, so it takes precedence. Fragments get the block prepended.
// Empty css is a no-op.
func (p *Page) InjectCSS(css string) {
	if css == "" {
		return
	}

	style := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Style,
		Data:     "style",
	}
	style.AppendChild(&html.Node{Type: html.TextNode, Data: sanitizeCSS(css)})

	if head := findElement(p.root, atom.Head); head != nil {
		head.AppendChild(style)
		return
	}
	p.root.InsertBefore(style, p.root.FirstChild)
}

// sanitizeCSS escapes "</" so the stylesheet cannot close the <style>
// element early; style text is rendered verbatim.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
