// Package filter implements pandoc document-tree filters.
//
// A Filter matches one node kind and rewrites matching nodes in place; every
// other node passes through untouched. Filters compose into a Pipeline where
// each filter makes its own full pass over the tree and sees only the
// previous filter's output.
//
// The package is usable two ways: in-process through Pipeline.Apply, or as a
// pandoc --filter executable through Main, which reads the tree on stdin and
// writes it back on stdout.
package filter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/alnah/go-html2pdf/internal/ast"
)

// RewriteFunc mutates a matched node in place. format is the pandoc writer
// the tree is headed for ("html5", "latex", ...). changed reports whether the
// node was modified; an unchanged node is not an error.
type RewriteFunc func(n *ast.Node, format string) (changed bool, err error)

// Filter rewrites every node of one kind.
type Filter struct {
	Name        string
	Kind        ast.Kind
	Description string
	Rewrite     RewriteFunc
}

// Stats summarizes one filter pass.
type Stats struct {
	Matched   int
	Rewritten int
}

// Apply runs f over doc in a single depth-first pass.
// A ShapeError names the filter that hit the malformed node.
func (f Filter) Apply(doc *ast.Document, format string) (Stats, error) {
	var stats Stats

	err := doc.Walk(func(n *ast.Node) error {
		if n.Kind != f.Kind {
			return nil
		}
		stats.Matched++

		changed, err := f.Rewrite(n, format)
		if err != nil {
			var shapeErr *ast.ShapeError
			if errors.As(err, &shapeErr) && shapeErr.Filter == "" {
				shapeErr.Filter = f.Name
			}
			return err
		}
		if changed {
			stats.Rewritten++
		}
		return nil
	})

	return stats, err
}

// Pipeline applies filters strictly in order.
type Pipeline struct {
	filters []Filter
	logger  *slog.Logger
}

// NewPipeline creates a pipeline. A nil logger uses slog.Default().
func NewPipeline(logger *slog.Logger, filters ...Filter) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{filters: filters, logger: logger}
}

// Filters returns the pipeline's filters in application order.
func (p *Pipeline) Filters() []Filter {
	return p.filters
}

// Apply runs every filter over doc. The first failure aborts the pipeline;
// doc may then be partially rewritten and must not be emitted.
func (p *Pipeline) Apply(doc *ast.Document, format string) error {
	if v := doc.APIVersion(); len(v) > 0 && v[0] != SupportedAPIMajor {
		p.logger.Warn("unexpected pandoc API version", "version", v, "supported_major", SupportedAPIMajor)
	}

	for _, f := range p.filters {
		stats, err := f.Apply(doc, format)
		if err != nil {
			return err
		}
		p.logger.Debug("filter applied",
			"filter", f.Name,
			"kind", f.Kind,
			"format", format,
			"matched", stats.Matched,
			"rewritten", stats.Rewritten)
	}
	return nil
}

// Run decodes a tree from r, applies the pipeline and writes the result to w.
// Nothing is written unless every filter succeeds.
func (p *Pipeline) Run(r io.Reader, w io.Writer, format string) error {
	doc, err := ast.Decode(r)
	if err != nil {
		return err
	}

	if err := p.Apply(doc, format); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := doc.Encode(&buf); err != nil {
		return err
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

// Bytes applies the pipeline to an encoded tree and returns the encoded result.
func (p *Pipeline) Bytes(in []byte, format string) ([]byte, error) {
	doc, err := ast.Parse(in)
	if err != nil {
		return nil, err
	}
	if err := p.Apply(doc, format); err != nil {
		return nil, err
	}
	return append(doc.Marshal(), '\n'), nil
}

// SupportedAPIMajor is the pandoc-types major version the filters target.
const SupportedAPIMajor = 1
