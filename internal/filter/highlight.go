package filter

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-html2pdf/internal/ast"
)

// DefaultHighlightStyle is the chroma style used by the built-in highlight-code filter.
const DefaultHighlightStyle = "github"

// htmlFormats are the pandoc writers whose output embeds raw HTML blocks.
var htmlFormats = map[string]bool{
	"chunkedhtml": true,
	"dzslides":    true,
	"epub":        true,
	"epub2":       true,
	"epub3":       true,
	"html":        true,
	"html4":       true,
	"html5":       true,
	"revealjs":    true,
	"s5":          true,
	"slideous":    true,
	"slidy":       true,
}

// IsHTMLFormat reports whether a pandoc writer name, with or without
// +ext/-ext suffixes, produces HTML.
func IsHTMLFormat(format string) bool {
	if i := strings.IndexAny(format, "+-"); i >= 0 {
		format = format[:i]
	}
	return htmlFormats[strings.ToLower(format)]
}

// HighlightCode replaces fenced code blocks with syntax-highlighted raw HTML
// when the tree is headed for an HTML writer. The language is the block's
// first class. Blocks in an unknown language, and every block for non-HTML
// writers, are left unchanged.
//
// Colors are inlined so the output needs no extra stylesheet, which matters
// for PDF engines that render the HTML in isolation.
func HighlightCode(styleName string) Filter {
	h := &highlighter{
		style:     styles.Get(styleName),
		formatter: chromahtml.New(chromahtml.WithClasses(false), chromahtml.TabWidth(4)),
	}
	return Filter{
		Name:        NameHighlightCode,
		Kind:        ast.KindCodeBlock,
		Description: "syntax-highlight code blocks for HTML output (chroma)",
		Rewrite:     h.rewrite,
	}
}

type highlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

func (h *highlighter) rewrite(n *ast.Node, format string) (bool, error) {
	attr, err := n.Attr()
	if err != nil {
		return false, err
	}
	items, err := n.Items()
	if err != nil {
		return false, err
	}
	if len(items) != 2 {
		return false, &ast.ShapeError{Kind: n.Kind, Reason: "contents are not an [attr, text] pair"}
	}
	code, ok := ast.Text(items[1])
	if !ok {
		return false, &ast.ShapeError{Kind: n.Kind, Reason: "code text is not a string"}
	}

	if !IsHTMLFormat(format) || len(attr.Classes) == 0 {
		return false, nil
	}
	lexer := lexers.Get(attr.Classes[0])
	if lexer == nil {
		return false, nil
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return false, fmt.Errorf("tokenising %s code block: %w", attr.Classes[0], err)
	}

	var buf strings.Builder
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return false, fmt.Errorf("formatting %s code block: %w", attr.Classes[0], err)
	}

	n.Kind = ast.KindRawBlock
	n.Contents = ast.Strings("html", buf.String())
	return true, nil
}
