package main

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/alnah/go-html2pdf/internal/config"
)

// ---------------------------------------------------------------------------
// TestMergeFlags - CLI flags override config
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "no flags keeps config",
			args: nil,
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Render.Engine != config.DefaultEngine || len(cfg.Filters) != 1 {
					t.Errorf("config changed: %+v", cfg)
				}
			},
		},
		{
			name: "string flags",
			args: []string{"-f", "markdown", "-T", "docx", "-e", "xelatex", "--css", "compact", "--pandoc", "/opt/pandoc", "-t", "30s"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Source.Format != "markdown" || cfg.Output.Format != "docx" || cfg.Render.Engine != "xelatex" {
					t.Errorf("formats/engine = %s %s %s", cfg.Source.Format, cfg.Output.Format, cfg.Render.Engine)
				}
				if cfg.Render.CSS != "compact" || cfg.Render.Pandoc != "/opt/pandoc" || cfg.Render.Timeout != "30s" {
					t.Errorf("render = %+v", cfg.Render)
				}
			},
		},
		{
			name: "repeatable filters replace config list",
			args: []string{"-F", "link-new-window", "--filter", "strip-image-slash"},
			check: func(t *testing.T, cfg *config.Config) {
				want := []string{"link-new-window", "strip-image-slash"}
				if !slices.Equal(cfg.Filters, want) {
					t.Errorf("Filters = %v, want %v", cfg.Filters, want)
				}
			},
		},
		{
			name: "resource path",
			args: []string{"-r", "img", "-r", "static"},
			check: func(t *testing.T, cfg *config.Config) {
				if !slices.Equal(cfg.Source.ResourcePath, []string{"img", "static"}) {
					t.Errorf("ResourcePath = %v", cfg.Source.ResourcePath)
				}
			},
		},
		{
			name: "no-filters and no-style",
			args: []string{"--no-filters", "--no-style"},
			check: func(t *testing.T, cfg *config.Config) {
				if len(cfg.Filters) != 0 || cfg.Render.CSS != "" {
					t.Errorf("Filters = %v, CSS = %q", cfg.Filters, cfg.Render.CSS)
				}
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags, fs, _, err := parseConvertFlags(tt.args, os.Stderr)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			cfg := config.DefaultConfig()
			mergeFlags(flags, fs, cfg)
			tt.check(t, cfg)
		})
	}
}

// ---------------------------------------------------------------------------
// TestPrecedence - flags > env > config file > defaults
// ---------------------------------------------------------------------------

func TestPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "custom.yaml")
	yaml := "render:\n  engine: weasyprint\n  css: compact\noutput:\n  format: html5\n"
	if err := os.WriteFile(cfgPath, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("HTML2PDF_CONFIG", cfgPath)
	t.Setenv("HTML2PDF_ENGINE", "prince")
	t.Setenv("HTML2PDF_TO", "pdf")

	mock := &mockConverter{}
	env, _, stderr := testEnv(mock)
	input := writeHTML(t, dir)

	err := runConvert(context.Background(), []string{input, "-e", "xelatex", "-o", filepath.Join(dir, "o.pdf")}, env)
	if err != nil {
		t.Fatalf("runConvert() error: %v (stderr: %s)", err, stderr)
	}

	got := mock.getInputs()[0]
	if got.Engine != "xelatex" {
		t.Errorf("Engine = %q, want flag value xelatex", got.Engine)
	}
	if got.To != "pdf" {
		t.Errorf("To = %q, want env value pdf", got.To)
	}
	if got.CSS != "compact" {
		t.Errorf("CSS = %q, want config value compact", got.CSS)
	}
	if got.From != "html" {
		t.Errorf("From = %q, want default html", got.From)
	}
}

func TestRunConvert_InvalidMergedConfig(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv(&mockConverter{})
	err := runConvert(context.Background(), []string{"in.html", "--log-level", "loud"}, env)
	if exitCodeFor(err) != ExitUsage {
		t.Errorf("error %v should be a usage error", err)
	}
}

func TestRunConvert_TooManyInputs(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv(&mockConverter{})
	err := runConvert(context.Background(), []string{"a.html", "b.html"}, env)
	if exitCodeFor(err) != ExitUsage {
		t.Errorf("error %v should be a usage error", err)
	}
}

// ---------------------------------------------------------------------------
// TestResolveOutputPath
// ---------------------------------------------------------------------------

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name   string
		output string
		input  string
		to     string
		want   string
	}{
		{"file kept", "out/report.pdf", "index.html", "pdf", "out/report.pdf"},
		{"empty uses default", "", "index.html", "pdf", config.DefaultOutputPath},
		{"existing directory", dir, "site/index.html", "pdf", filepath.Join(dir, "index.pdf")},
		{"trailing slash", "build/", "page.htm", "docx", filepath.Join("build", "page.docx")},
		{"html target", dir, "a.html", "html5", filepath.Join(dir, "a.html")},
	}

	for _, tt := range tests {
		if got := resolveOutputPath(tt.output, tt.input, tt.to); got != tt.want {
			t.Errorf("%s: resolveOutputPath() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestExtensionFor(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"pdf":            ".pdf",
		"html5":          ".html",
		"latex":          ".tex",
		"markdown+smart": ".md",
		"epub3":          ".epub",
		"docx":           ".docx",
		"typst":          ".typ",
		"rtf":            ".rtf",
	}
	for to, want := range tests {
		if got := extensionFor(to); got != want {
			t.Errorf("extensionFor(%q) = %q, want %q", to, got, want)
		}
	}
}

func TestFormatSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
	}
	for _, tt := range tests {
		if got := formatSize(tt.n); got != tt.want {
			t.Errorf("formatSize(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
