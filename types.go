package html2pdf

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/alnah/go-html2pdf/internal/config"
	"github.com/alnah/go-html2pdf/internal/logging"
)

// Input describes one conversion.
type Input struct {
	Path         string   // Source document (required)
	From         string   // pandoc reader (default: "html")
	To           string   // pandoc writer (default: "pdf")
	Output       string   // Output file (required)
	ResourcePath []string // Directories searched for images and linked files
	CSS          string   // Stylesheet path or style name; empty for none
	Engine       string   // PDF engine (default: "wkhtmltopdf"); ignored for non-PDF targets
	Filters      []string // Built-in filter names or executables, applied in order
}

// Result reports a finished conversion.
type Result struct {
	Output   string        // Path of the written file
	Format   string        // Writer format the filters were given
	Filters  []string      // Filter stages, in application order
	Size     int64         // Output size in bytes
	Duration time.Duration // Wall time of the whole conversion
}

// formatPattern matches a pandoc format name with optional +ext/-ext suffixes.
var formatPattern = regexp.MustCompile(`^[A-Za-z0-9_]+([+-][A-Za-z0-9_]+)*$`)

// withDefaults fills unset formats and engine.
func (in Input) withDefaults() Input {
	if in.From == "" {
		in.From = config.DefaultSourceFormat
	}
	if in.To == "" {
		in.To = config.DefaultOutputFormat
	}
	if in.Engine == "" && IsPDF(in.To) {
		in.Engine = config.DefaultEngine
	}
	return in
}

// Validate checks required fields, format names and, for PDF targets, the engine.
//
// This is the trust boundary for library callers building Input by hand;
// CLI input has already passed config.Validate.
func (in Input) Validate() error {
	if in.Path == "" {
		return ErrNoInput
	}
	if in.Output == "" {
		return ErrNoOutput
	}
	for _, f := range [...]struct{ field, value string }{{"from", in.From}, {"to", in.To}} {
		if f.value != "" && !formatPattern.MatchString(f.value) {
			return fmt.Errorf("%w: %s: %q", ErrInvalidFormat, f.field, f.value)
		}
	}
	if IsPDF(in.To) {
		return ValidateEngine(in.Engine)
	}
	return nil
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	pandoc    string
	timeout   time.Duration
	assetPath string
}

// WithTimeout bounds each conversion, every stage included.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("html2pdf: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithPandoc sets the pandoc executable (name on PATH or path).
func WithPandoc(path string) Option {
	return func(c *Converter) {
		if path != "" {
			c.cfg.pandoc = path
		}
	}
}

// WithAssetPath sets a directory whose styles/{name}.css override the
// built-in styles.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithRunner replaces the subprocess runner used for pandoc and external filters.
func WithRunner(r CommandRunner) Option {
	return func(c *Converter) {
		c.runner = r
	}
}

// WithRenderer replaces the headless Chrome renderer used by the chrome engine.
func WithRenderer(r PDFRenderer) Option {
	return func(c *Converter) {
		c.renderer = r
	}
}

// ContextWithLogger returns a copy of ctx carrying logger. Convert logs
// through the context's logger, falling back to slog.Default.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return logging.NewContext(ctx, logger)
}
