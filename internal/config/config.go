package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/alnah/go-html2pdf/internal/fileutil"
	"github.com/alnah/go-html2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxFormatLength = 64   // "html+raw_html-native_divs"
	MaxPathLength   = 4096 // PATH_MAX on Linux
	MaxEngineLength = 64   // "wkhtmltopdf", "pagedjs-cli"
	MaxFilters      = 32
)

// Log settings.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"

	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Defaults reproduce the original conversion script.
const (
	DefaultSourceFormat = "html"
	DefaultOutputFormat = "pdf"
	DefaultOutputPath   = "output.pdf"
	DefaultResourcePath = "assets/images"
	DefaultCSS          = "pdf_styles.css"
	DefaultEngine       = "wkhtmltopdf"
	DefaultPandoc       = "pandoc"
	DefaultTimeout      = 2 * time.Minute
	DefaultFilter       = "strip-image-slash"
)

// formatPattern matches a pandoc format name with optional +ext/-ext suffixes.
var formatPattern = regexp.MustCompile(`^[A-Za-z0-9_]+([+-][A-Za-z0-9_]+)*$`)

// Config holds the conversion pipeline configuration.
type Config struct {
	Source  SourceConfig `yaml:"source"`
	Output  OutputConfig `yaml:"output"`
	Render  RenderConfig `yaml:"render"`
	Filters []string     `yaml:"filters"` // Built-in filter names or executable paths, in order
	Log     LogConfig    `yaml:"log"`
}

// SourceConfig defines how the input document is read.
type SourceConfig struct {
	Format       string   `yaml:"format"`       // pandoc reader (default: "html")
	ResourcePath []string `yaml:"resourcePath"` // Directories searched for images
}

// OutputConfig defines the output document.
type OutputConfig struct {
	Format string `yaml:"format"` // pandoc writer (default: "pdf")
	Path   string `yaml:"path"`   // Output file (default: "output.pdf")
}

// RenderConfig defines the rendering backend.
type RenderConfig struct {
	Engine    string `yaml:"engine"`    // PDF engine, "chrome" renders with headless Chrome
	CSS       string `yaml:"css"`       // Stylesheet path or style name
	AssetPath string `yaml:"assetPath"` // Directory with styles/{name}.css overriding built-in styles
	Pandoc    string `yaml:"pandoc"`    // pandoc executable (default: "pandoc")
	Timeout   string `yaml:"timeout"`   // Go duration (default: "2m")
}

// LogConfig defines logging options.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// TimeoutDuration returns the parsed render timeout, or DefaultTimeout when unset.
// Validate guarantees the value parses.
func (r RenderConfig) TimeoutDuration() time.Duration {
	if r.Timeout == "" {
		return DefaultTimeout
	}
	d, err := time.ParseDuration(r.Timeout)
	if err != nil || d <= 0 {
		return DefaultTimeout
	}
	return d
}

// Validate checks formats, lengths and enumerated values.
// Called automatically by LoadConfig, but available for callers who
// construct or override a Config in code.
func (c *Config) Validate() error {
	if err := validateFormat("source.format", c.Source.Format); err != nil {
		return err
	}
	if err := validateFormat("output.format", c.Output.Format); err != nil {
		return err
	}
	if err := validateFieldLength("output.path", c.Output.Path, MaxPathLength); err != nil {
		return err
	}
	for i, p := range c.Source.ResourcePath {
		if err := validateFieldLength(fmt.Sprintf("source.resourcePath[%d]", i), p, MaxPathLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("render.engine", c.Render.Engine, MaxEngineLength); err != nil {
		return err
	}
	if strings.ContainsAny(c.Render.Engine, " \t") {
		return fmt.Errorf("%w: render.engine: %q contains whitespace", ErrInvalidValue, c.Render.Engine)
	}
	if err := validateFieldLength("render.css", c.Render.CSS, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.assetPath", c.Render.AssetPath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.pandoc", c.Render.Pandoc, MaxPathLength); err != nil {
		return err
	}
	if c.Render.Timeout != "" {
		d, err := time.ParseDuration(c.Render.Timeout)
		if err != nil {
			return fmt.Errorf("%w: render.timeout: %v", ErrInvalidValue, err)
		}
		if d <= 0 {
			return fmt.Errorf("%w: render.timeout: must be positive, got %s", ErrInvalidValue, d)
		}
	}

	if len(c.Filters) > MaxFilters {
		return fmt.Errorf("%w: filters: %d entries (max %d)", ErrInvalidValue, len(c.Filters), MaxFilters)
	}
	for i, f := range c.Filters {
		field := fmt.Sprintf("filters[%d]", i)
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("%w: %s: empty filter", ErrInvalidValue, field)
		}
		if err := validateFieldLength(field, f, MaxPathLength); err != nil {
			return err
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "", LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return fmt.Errorf("%w: log.level: %q (must be debug, info, warn, or error)", ErrInvalidValue, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: log.format: %q (must be text or json)", ErrInvalidValue, c.Log.Format)
	}

	return nil
}

func validateFormat(fieldName, value string) error {
	if value == "" {
		return nil
	}
	if err := validateFieldLength(fieldName, value, MaxFormatLength); err != nil {
		return err
	}
	if !formatPattern.MatchString(value) {
		return fmt.Errorf("%w: %s: %q is not a pandoc format", ErrInvalidValue, fieldName, value)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the pipeline of the original conversion script:
// HTML in, PDF out through wkhtmltopdf, with the image slash filter.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Format:       DefaultSourceFormat,
			ResourcePath: []string{DefaultResourcePath},
		},
		Output: OutputConfig{
			Format: DefaultOutputFormat,
			Path:   DefaultOutputPath,
		},
		Render: RenderConfig{
			Engine:  DefaultEngine,
			CSS:     DefaultCSS,
			Pandoc:  DefaultPandoc,
			Timeout: DefaultTimeout.String(),
		},
		Filters: []string{DefaultFilter},
		Log: LogConfig{
			Level:  LogLevelInfo,
			Format: LogFormatText,
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal renders cfg as YAML, the format LoadConfig reads.
func Marshal(cfg *Config) ([]byte, error) {
	return yamlutil.Marshal(cfg)
}

// SearchPaths lists where a config name is looked up, in order.
// Tries extensions .yaml then .yml, first in the current directory,
// then in ~/.config/go-html2pdf/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-html2pdf", name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in SearchPaths order.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
