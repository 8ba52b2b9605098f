package hints

// Notes:
// - ForBrowserConnect tests cannot use t.Parallel(): they call t.Setenv and
//   swap the package-level IsInContainer.

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestForBrowserConnect - Environment-dependent hints
// ---------------------------------------------------------------------------

func TestForBrowserConnect(t *testing.T) {
	tests := []struct {
		name        string
		inContainer bool
		env         map[string]string
		wantSandbox bool
		wantBin     bool
	}{
		{
			name:        "CI without sandbox override",
			env:         map[string]string{"CI": "true"},
			wantSandbox: true,
			wantBin:     true,
		},
		{
			name:        "container",
			inContainer: true,
			wantSandbox: true,
			wantBin:     true,
		},
		{
			name:        "sandbox already disabled",
			inContainer: true,
			env:         map[string]string{"ROD_NO_SANDBOX": "1"},
			wantBin:     true,
		},
		{
			name: "browser bin set outside CI",
			env:  map[string]string{"ROD_BROWSER_BIN": "/usr/bin/chromium"},
		},
		{
			name:        "fully configured",
			inContainer: true,
			env:         map[string]string{"CI": "true", "ROD_NO_SANDBOX": "1", "ROD_BROWSER_BIN": "/usr/bin/chromium"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := IsInContainer
			defer func() { IsInContainer = orig }()
			IsInContainer = func() bool { return tt.inContainer }

			for _, key := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "ROD_NO_SANDBOX", "ROD_BROWSER_BIN"} {
				t.Setenv(key, tt.env[key])
			}

			hint := ForBrowserConnect()

			if got := strings.Contains(hint, "ROD_NO_SANDBOX"); got != tt.wantSandbox {
				t.Errorf("sandbox hint = %v, want %v (%q)", got, tt.wantSandbox, hint)
			}
			if got := strings.Contains(hint, "ROD_BROWSER_BIN"); got != tt.wantBin {
				t.Errorf("browser bin hint = %v, want %v (%q)", got, tt.wantBin, hint)
			}
			if !tt.wantSandbox && !tt.wantBin && hint != "" {
				t.Errorf("expected empty hint, got %q", hint)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestStaticHints
// ---------------------------------------------------------------------------

func TestStaticHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hint string
		want string
	}{
		{"pandoc not found", ForPandocNotFound(), "HTML2PDF_PANDOC"},
		{"engine not found", ForEngineNotFound("weasyprint"), "install weasyprint"},
		{"timeout", ForTimeout(), "--timeout"},
		{"output directory", ForOutputDirectory(), "writable"},
		{"shape error", ForShapeError(), "pandoc --version"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.hint, "\n  hint: ") {
				t.Errorf("hint %q lacks the hint prefix", tt.hint)
			}
			if !strings.Contains(tt.hint, tt.want) {
				t.Errorf("hint %q should contain %q", tt.hint, tt.want)
			}
		})
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	t.Run("suggests user config path", func(t *testing.T) {
		t.Parallel()

		hint := ForConfigNotFound([]string{"work.yaml", "/home/u/.config/go-html2pdf/work.yaml"})
		if !strings.Contains(hint, "create /home/u/.config/go-html2pdf/work.yaml") {
			t.Errorf("unexpected hint %q", hint)
		}
	})

	t.Run("local paths only", func(t *testing.T) {
		t.Parallel()

		hint := ForConfigNotFound([]string{"work.yaml"})
		if !strings.Contains(hint, "--config") || strings.Contains(hint, "create") {
			t.Errorf("unexpected hint %q", hint)
		}
	})
}

func TestListHints(t *testing.T) {
	t.Parallel()

	if got := ForStyleNotFound(nil); got != "" {
		t.Errorf("ForStyleNotFound(nil) = %q, want empty", got)
	}
	if got := ForStyleNotFound([]string{"compact", "default"}); !strings.Contains(got, "compact, default") {
		t.Errorf("ForStyleNotFound() = %q", got)
	}
	if got := ForUnknownFilter(nil); got != "" {
		t.Errorf("ForUnknownFilter(nil) = %q, want empty", got)
	}
	if got := ForUnknownFilter([]string{"link-new-window", "strip-image-slash"}); !strings.Contains(got, "link-new-window, strip-image-slash") {
		t.Errorf("ForUnknownFilter() = %q", got)
	}
	if got := ForEngineNotFound(""); got != "" {
		t.Errorf("ForEngineNotFound(\"\") = %q, want empty", got)
	}
}
