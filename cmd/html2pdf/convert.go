package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	html2pdf "github.com/alnah/go-html2pdf"
	"github.com/alnah/go-html2pdf/internal/config"
	"github.com/alnah/go-html2pdf/internal/fileutil"
	"github.com/alnah/go-html2pdf/internal/logging"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage        = errors.New("invalid usage")
	ErrOutputExists = errors.New("file already exists")
)

// runConvert converts one document with the merged configuration.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, fs, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, fs, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	switch len(positional) {
	case 0:
		return fmt.Errorf("%w: pass an input document", html2pdf.ErrNoInput)
	case 1:
	default:
		return fmt.Errorf("%w: expected one input document, got %d", ErrUsage, len(positional))
	}

	logger := newLogger(cfg.Log, flags.common, env.Stderr)
	ctx = logging.NewContext(ctx, logger)

	conv, err := env.NewConverter(
		html2pdf.WithTimeout(cfg.Render.TimeoutDuration()),
		html2pdf.WithPandoc(cfg.Render.Pandoc),
		html2pdf.WithAssetPath(cfg.Render.AssetPath),
	)
	if err != nil {
		return withHint(err, convertHint(err, cfg, nil))
	}
	defer func() { _ = conv.Close() }()

	input := buildInput(positional[0], cfg)
	result, err := conv.Convert(ctx, input)
	if err != nil {
		return withHint(err, convertHint(err, cfg, conv.Styles()))
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "%s -> %s (%s, %s)\n",
			input.Path, result.Output, formatSize(result.Size), result.Duration.Round(time.Millisecond))
	}
	return nil
}

// loadConfig loads the config named by the flag, then the environment.
// Without either the defaults apply.
func loadConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		hint := ""
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			hint = hintForConfig(name)
		}
		return nil, withHint(fmt.Errorf("loading config: %w", err), hint)
	}
	return cfg, nil
}

// mergeFlags applies explicitly set CLI flags to cfg (CLI wins).
func mergeFlags(flags *convertFlags, fs *flag.FlagSet, cfg *config.Config) {
	setString(&cfg.Source.Format, flags.source.from)
	setString(&cfg.Output.Format, flags.render.to)
	setString(&cfg.Output.Path, flags.output)
	setString(&cfg.Render.Engine, flags.render.engine)
	setString(&cfg.Render.CSS, flags.render.css)
	setString(&cfg.Render.AssetPath, flags.render.assetPath)
	setString(&cfg.Render.Pandoc, flags.render.pandoc)
	setString(&cfg.Render.Timeout, flags.render.timeout)
	setString(&cfg.Log.Level, flags.log.level)
	setString(&cfg.Log.Format, flags.log.format)

	if fs.Changed("resource-path") {
		cfg.Source.ResourcePath = flags.source.resourcePath
	}
	if fs.Changed("filter") {
		cfg.Filters = flags.filters.names
	}
	if flags.filters.noFilters {
		cfg.Filters = nil
	}
	if flags.render.noStyle {
		cfg.Render.CSS = ""
	}
}

// newLogger builds the conversion logger. --verbose forces debug and
// --quiet forces error, whatever the configured level.
func newLogger(cfg config.LogConfig, common commonFlags, w io.Writer) *slog.Logger {
	switch {
	case common.verbose:
		cfg.Level = config.LogLevelDebug
	case common.quiet:
		cfg.Level = config.LogLevelError
	}
	return logging.New(cfg, w)
}

// buildInput maps the merged configuration onto a conversion request.
func buildInput(path string, cfg *config.Config) html2pdf.Input {
	to := cfg.Output.Format
	return html2pdf.Input{
		Path:         path,
		From:         cfg.Source.Format,
		To:           to,
		Output:       resolveOutputPath(cfg.Output.Path, path, to),
		ResourcePath: cfg.Source.ResourcePath,
		CSS:          cfg.Render.CSS,
		Engine:       cfg.Render.Engine,
		Filters:      cfg.Filters,
	}
}

// resolveOutputPath places the output inside output when it names a
// directory, using the input's base name and the target's extension.
func resolveOutputPath(output, input, to string) string {
	if output == "" {
		output = config.DefaultOutputPath
	}
	if !fileutil.DirExists(output) && !strings.HasSuffix(output, "/") && !strings.HasSuffix(output, `\`) {
		return output
	}
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(output, stem+extensionFor(to))
}

// extensionFor returns the usual file extension for a pandoc writer.
func extensionFor(to string) string {
	base := strings.ToLower(to)
	if i := strings.IndexAny(base, "+-"); i >= 0 {
		base = base[:i]
	}
	switch base {
	case "", "pdf":
		return ".pdf"
	case "html", "html4", "html5":
		return ".html"
	case "latex":
		return ".tex"
	case "markdown", "gfm", "commonmark", "commonmark_x":
		return ".md"
	case "plain":
		return ".txt"
	case "epub2", "epub3":
		return ".epub"
	case "typst":
		return ".typ"
	default:
		return "." + base
	}
}

// formatSize renders a byte count for humans.
func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
