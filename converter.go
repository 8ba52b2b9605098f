package html2pdf

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-html2pdf/internal/assets"
	"github.com/alnah/go-html2pdf/internal/config"
	"github.com/alnah/go-html2pdf/internal/fileutil"
	"github.com/alnah/go-html2pdf/internal/logging"
	"github.com/alnah/go-html2pdf/internal/pipeline"
)

// Converter runs the read, filter and render stages for one document at a
// time. Create with NewConverter, call Convert, and Close when done.
type Converter struct {
	cfg      converterConfig
	runner   CommandRunner
	renderer PDFRenderer
	styles   *assets.Resolver
}

// NewConverter creates a Converter. The Chrome renderer is only started by
// conversions that use the chrome engine.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			pandoc:  config.DefaultPandoc,
			timeout: config.DefaultTimeout,
		},
		runner: &ExecRunner{},
	}

	for _, opt := range opts {
		opt(c)
	}

	styles, err := assets.NewResolver(c.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStyleResolution, err)
	}
	c.styles = styles

	if c.renderer == nil {
		c.renderer = newRodRenderer(c.cfg.timeout)
	}
	return c, nil
}

// Styles lists the style names usable as Input.CSS.
func (c *Converter) Styles() []string {
	return c.styles.Styles()
}

// Close releases the headless browser, if one was started.
func (c *Converter) Close() error {
	if c.renderer != nil {
		return c.renderer.Close()
	}
	return nil
}

// Convert reads input.Path with pandoc, runs the filters in order and
// renders the result to input.Output. The output file is replaced only when
// every stage succeeds. The logger is taken from ctx (see logging.NewContext).
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	start := time.Now()
	input = input.withDefaults()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	absInput, err := filepath.Abs(input.Path)
	if err != nil || !fileutil.FileExists(absInput) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, input.Path)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	logger := logging.FromContext(ctx).With("input", input.Path)
	format := IntermediateFormat(input.To, input.Engine)

	stages, err := buildStages(input.Filters, c.runner, logger)
	if err != nil {
		return nil, err
	}

	// Read
	tree, err := c.runPandoc(ctx, logger, nil, readArgs(absInput, input.From)...)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", input.Path, err)
	}
	logger.Debug("document read", "from", input.From, "bytes", len(tree))

	// Filter
	names := make([]string, 0, len(stages))
	for _, stage := range stages {
		stageStart := time.Now()
		tree, err = stage.Apply(ctx, tree, format)
		if err != nil {
			return nil, err
		}
		names = append(names, stage.Name())
		logger.Debug("filter stage done", "stage", stage.Name(), "format", format, "elapsed", time.Since(stageStart))
	}

	// Render
	if err := os.MkdirAll(filepath.Dir(input.Output), 0o750); err != nil {
		return nil, fmt.Errorf("%w: creating output directory: %v", ErrWriteOutput, err)
	}

	style, cleanup, err := c.prepareStyle(input, logger)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	if IsPDF(input.To) && IsChrome(input.Engine) {
		err = c.renderChrome(ctx, logger, tree, input, style)
	} else {
		err = c.renderPandoc(ctx, logger, tree, input, style)
	}
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(input.Output)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	res := &Result{
		Output:   input.Output,
		Format:   format,
		Filters:  names,
		Size:     info.Size(),
		Duration: time.Since(start),
	}
	logger.Info("converted", "output", res.Output, "engine", input.Engine, "bytes", res.Size, "elapsed", res.Duration)
	return res, nil
}

// renderPandoc writes the filtered tree with pandoc into a temporary file
// next to the output and renames it into place.
func (c *Converter) renderPandoc(ctx context.Context, logger *slog.Logger, tree []byte, input Input, style assets.Style) error {
	ext := strings.TrimPrefix(filepath.Ext(input.Output), ".")
	if ext == "" {
		ext = "out"
	}
	tmpPath, cleanup, err := fileutil.WriteTempFile(filepath.Dir(input.Output), nil, ext)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	defer cleanup()

	_, err = c.runPandoc(ctx, logger, tree, writeArgs(writeOptions{
		to:           input.To,
		output:       tmpPath,
		engine:       input.Engine,
		css:          style.Path,
		resourcePath: input.ResourcePath,
	})...)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", input.Output, err)
	}

	if err := os.Rename(tmpPath, input.Output); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// renderChrome writes standalone HTML with pandoc, inlines the stylesheet,
// resolves resource paths and prints the page with headless Chrome.
func (c *Converter) renderChrome(ctx context.Context, logger *slog.Logger, tree []byte, input Input, style assets.Style) error {
	htmlContent, err := c.runPandoc(ctx, logger, tree, writeArgs(writeOptions{to: formatHTML})...)
	if err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}

	page, err := pipeline.Parse(string(htmlContent))
	if err != nil {
		return fmt.Errorf("parsing rendered HTML: %w", err)
	}
	if style.Content != "" {
		page.InjectCSS(style.Content)
	}

	dirs := input.ResourcePath
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	rewritten, err := page.RewriteResourcePaths(dirs)
	if err != nil {
		return fmt.Errorf("resolving resource paths: %w", err)
	}
	logger.Debug("resource paths resolved", "rewritten", rewritten, "resource_path", dirs)

	rendered, err := page.Render()
	if err != nil {
		return fmt.Errorf("serializing HTML: %w", err)
	}

	htmlPath, cleanup, err := fileutil.WriteTempFile("", []byte(rendered), "html")
	if err != nil {
		return err
	}
	defer cleanup()

	pdf, err := c.renderer.RenderFromFile(ctx, htmlPath)
	if err != nil {
		return fmt.Errorf("rendering PDF: %w", err)
	}

	if err := fileutil.WriteFileAtomic(input.Output, pdf, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// prepareStyle resolves input.CSS. pandoc engines need a file, so a named
// style is written to a temporary .css file; the returned cleanup removes it.
// A stylesheet path that does not exist falls back to the built-in default
// style with a warning.
func (c *Converter) prepareStyle(input Input, logger *slog.Logger) (assets.Style, func(), error) {
	noop := func() {}
	if input.CSS == "" || !usesCSS(input.To, input.Engine) {
		return assets.Style{}, noop, nil
	}

	style, err := c.styles.Resolve(input.CSS)
	if errors.Is(err, assets.ErrStyleNotFound) && fileutil.IsFilePath(input.CSS) {
		logger.Warn("stylesheet not found, using built-in style", "css", input.CSS, "style", assets.DefaultStyleName)
		style, err = c.styles.Resolve(assets.DefaultStyleName)
	}
	if err != nil {
		return assets.Style{}, noop, fmt.Errorf("%w: %w", ErrStyleResolution, err)
	}

	if style.Path != "" || IsChrome(input.Engine) {
		return style, noop, nil
	}

	path, cleanup, err := fileutil.WriteTempFile("", []byte(style.Content), "css")
	if err != nil {
		return assets.Style{}, noop, fmt.Errorf("%w: %v", ErrStyleResolution, err)
	}
	style.Path = path
	return style, cleanup, nil
}
