package html2pdf

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alnah/go-html2pdf/internal/filter"
)

// EngineChrome renders standalone HTML with headless Chrome instead of a
// pandoc PDF engine.
const EngineChrome = "chrome"

// Intermediate writer formats.
const (
	formatHTML    = "html5"
	formatLaTeX   = "latex"
	formatConTeXt = "context"
	formatMS      = "ms"
	formatTypst   = "typst"
)

// engines maps each supported PDF engine to the writer pandoc feeds it.
var engines = map[string]string{
	EngineChrome:  formatHTML,
	"wkhtmltopdf": formatHTML,
	"weasyprint":  formatHTML,
	"pagedjs-cli": formatHTML,
	"prince":      formatHTML,
	"pdflatex":    formatLaTeX,
	"xelatex":     formatLaTeX,
	"lualatex":    formatLaTeX,
	"latexmk":     formatLaTeX,
	"tectonic":    formatLaTeX,
	"context":     formatConTeXt,
	"pdfroff":     formatMS,
	"groff":       formatMS,
	"typst":       formatTypst,
}

// Engines returns the supported engine names, sorted.
func Engines() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// engineName strips a directory and extension from an engine given as a path
// ("/opt/bin/wkhtmltopdf.exe" is wkhtmltopdf). Both separators are accepted
// whatever the host OS.
func engineName(engine string) string {
	base := engine
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	if ext := filepath.Ext(base); strings.EqualFold(ext, ".exe") {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

// ValidateEngine checks that engine, or the base name of an engine path, is
// supported. chrome is not run by pandoc, so it must be given by name; the
// browser binary is chosen with ROD_BROWSER_BIN.
func ValidateEngine(engine string) error {
	name := engineName(engine)
	if _, ok := engines[name]; !ok {
		return fmt.Errorf("%w: %q (supported: %s)", ErrInvalidEngine, engine, strings.Join(Engines(), ", "))
	}
	if name == EngineChrome && engine != EngineChrome {
		return fmt.Errorf("%w: %q: use --engine %s and set ROD_BROWSER_BIN for a custom browser", ErrInvalidEngine, engine, EngineChrome)
	}
	return nil
}

// IsChrome reports whether engine selects the headless Chrome renderer.
func IsChrome(engine string) bool {
	return engine == EngineChrome
}

// IsPDF reports whether the pandoc target format is PDF.
func IsPDF(to string) bool {
	return strings.EqualFold(baseFormat(to), "pdf")
}

// IntermediateFormat returns the writer format filters are told about: the
// engine's input format for PDF targets, the target itself otherwise.
func IntermediateFormat(to, engine string) string {
	if !IsPDF(to) {
		return to
	}
	if f, ok := engines[engineName(engine)]; ok {
		return f
	}
	return formatLaTeX
}

// usesCSS reports whether a stylesheet has any effect on the output.
func usesCSS(to, engine string) bool {
	if IsPDF(to) {
		return IntermediateFormat(to, engine) == formatHTML
	}
	return filter.IsHTMLFormat(to)
}

// baseFormat strips +ext/-ext suffixes from a format name.
func baseFormat(format string) string {
	if i := strings.IndexAny(format, "+-"); i >= 0 {
		return format[:i]
	}
	return format
}
