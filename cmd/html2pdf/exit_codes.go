package main

import (
	"errors"
	"os"

	flag "github.com/spf13/pflag"

	html2pdf "github.com/alnah/go-html2pdf"
	"github.com/alnah/go-html2pdf/internal/assets"
	"github.com/alnah/go-html2pdf/internal/ast"
	"github.com/alnah/go-html2pdf/internal/config"
	"github.com/alnah/go-html2pdf/internal/filter"
)

// Exit codes for the html2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
// Parse and shape codes match the ones the filter executables use.
const (
	ExitSuccess  = 0 // Successful conversion
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or validation
	ExitIO       = 3 // File not found, permission denied
	ExitRenderer = 4 // pandoc, PDF engine or browser errors
	ExitParse    = filter.ExitParse
	ExitShape    = filter.ExitShape
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}

	// Document tree errors (exit 5, 6)
	if errors.Is(err, ast.ErrParse) {
		return ExitParse
	}
	if errors.Is(err, ast.ErrShape) {
		return ExitShape
	}

	// Renderer errors (exit 4)
	if errors.Is(err, html2pdf.ErrPandocNotFound) ||
		errors.Is(err, html2pdf.ErrPandoc) ||
		errors.Is(err, html2pdf.ErrEngineNotFound) ||
		errors.Is(err, html2pdf.ErrBrowserConnect) ||
		errors.Is(err, html2pdf.ErrPageCreate) ||
		errors.Is(err, html2pdf.ErrPageLoad) ||
		errors.Is(err, html2pdf.ErrPDFGeneration) {
		return ExitRenderer
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, html2pdf.ErrInputNotFound) ||
		errors.Is(err, html2pdf.ErrWriteOutput) ||
		errors.Is(err, ErrOutputExists) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, html2pdf.ErrNoInput) ||
		errors.Is(err, html2pdf.ErrNoOutput) ||
		errors.Is(err, html2pdf.ErrInvalidFormat) ||
		errors.Is(err, html2pdf.ErrInvalidEngine) ||
		errors.Is(err, html2pdf.ErrFilterNotFound) ||
		errors.Is(err, html2pdf.ErrStyleResolution) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, filter.ErrUnknownFilter) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
