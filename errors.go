package html2pdf

import "errors"

// Sentinel errors for conversion failures.
var (
	ErrNoInput         = errors.New("no input document")
	ErrInputNotFound   = errors.New("input document not found")
	ErrNoOutput        = errors.New("no output path")
	ErrInvalidFormat   = errors.New("invalid pandoc format")
	ErrInvalidEngine   = errors.New("unsupported PDF engine")
	ErrPandocNotFound  = errors.New("pandoc executable not found")
	ErrPandoc          = errors.New("pandoc failed")
	ErrEngineNotFound  = errors.New("PDF engine not found")
	ErrFilterNotFound  = errors.New("filter not found")
	ErrFilterStage     = errors.New("filter failed")
	ErrStyleResolution = errors.New("stylesheet could not be resolved")
	ErrWriteOutput     = errors.New("writing output failed")

	// Chrome engine errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)
