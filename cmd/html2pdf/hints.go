package main

import (
	"context"
	"errors"

	html2pdf "github.com/alnah/go-html2pdf"
	"github.com/alnah/go-html2pdf/internal/assets"
	"github.com/alnah/go-html2pdf/internal/ast"
	"github.com/alnah/go-html2pdf/internal/config"
	"github.com/alnah/go-html2pdf/internal/filter"
	"github.com/alnah/go-html2pdf/internal/hints"
)

// hintError appends a hint to an error's message. errors.Is and errors.As
// still see the wrapped error.
type hintError struct {
	err  error
	hint string
}

func (e *hintError) Error() string { return e.err.Error() + e.hint }
func (e *hintError) Unwrap() error { return e.err }

// withHint attaches hint to err. An empty hint returns err unchanged.
func withHint(err error, hint string) error {
	if err == nil || hint == "" {
		return err
	}
	return &hintError{err: err, hint: hint}
}

// convertHint picks the hint for a conversion failure.
func convertHint(err error, cfg *config.Config, styles []string) string {
	switch {
	case errors.Is(err, html2pdf.ErrPandocNotFound):
		return hints.ForPandocNotFound()
	case errors.Is(err, html2pdf.ErrEngineNotFound):
		return hints.ForEngineNotFound(cfg.Render.Engine)
	case errors.Is(err, html2pdf.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, assets.ErrStyleNotFound):
		return hints.ForStyleNotFound(styles)
	case errors.Is(err, html2pdf.ErrFilterNotFound):
		return hints.ForUnknownFilter(filter.Names())
	case errors.Is(err, ast.ErrShape):
		return hints.ForShapeError()
	case errors.Is(err, html2pdf.ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

// hintForConfig suggests where a config name is looked up.
func hintForConfig(name string) string {
	return hints.ForConfigNotFound(config.SearchPaths(name))
}
