package html2pdf

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-html2pdf/internal/ast"
	"github.com/alnah/go-html2pdf/internal/logging"
)

const imageTree = `{"pandoc-api-version":[1,23,1],"meta":{},"blocks":[{"t":"Para","c":[{"t":"Image","c":[["",[],[]],[],["/img/a.png",""]]}]}]}`

// stubLookPath replaces lookPath for the duration of the test.
// Tests using it must not run in parallel.
func stubLookPath(t *testing.T, found map[string]string) {
	t.Helper()
	orig := lookPath
	lookPath = func(name string) (string, error) {
		if p, ok := found[name]; ok {
			return p, nil
		}
		return "", exec.ErrNotFound
	}
	t.Cleanup(func() { lookPath = orig })
}

// ---------------------------------------------------------------------------
// TestBuildStages - grouping and resolution
// ---------------------------------------------------------------------------

func TestBuildStages(t *testing.T) {
	stubLookPath(t, map[string]string{"pandoc-crossref": "/usr/bin/pandoc-crossref"})

	tests := []struct {
		name      string
		entries   []string
		wantNames []string
	}{
		{
			name:      "none",
			entries:   nil,
			wantNames: []string{},
		},
		{
			name:      "adjacent built-ins share a stage",
			entries:   []string{"strip-image-slash", "link-new-window"},
			wantNames: []string{"strip-image-slash,link-new-window"},
		},
		{
			name:      "external filter splits built-ins",
			entries:   []string{"strip-image-slash", "pandoc-crossref", "link-new-window"},
			wantNames: []string{"strip-image-slash", "/usr/bin/pandoc-crossref", "link-new-window"},
		},
		{
			name:      "blank entries skipped",
			entries:   []string{" ", "strip-image-slash"},
			wantNames: []string{"strip-image-slash"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stages, err := buildStages(tt.entries, newMockRunner(""), logging.Discard())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(stages) != len(tt.wantNames) {
				t.Fatalf("got %d stages, want %d", len(stages), len(tt.wantNames))
			}
			for i, s := range stages {
				if s.Name() != tt.wantNames[i] {
					t.Errorf("stage %d = %q, want %q", i, s.Name(), tt.wantNames[i])
				}
			}
		})
	}
}

func TestBuildStages_UnknownFilter(t *testing.T) {
	stubLookPath(t, nil)

	_, err := buildStages([]string{"strip-image-slash", "nope"}, newMockRunner(""), logging.Discard())
	if !errors.Is(err, ErrFilterNotFound) {
		t.Fatalf("error = %v, want ErrFilterNotFound", err)
	}
	if !strings.Contains(err.Error(), "strip-image-slash") {
		t.Errorf("error %q should list built-in filters", err)
	}
}

func TestResolveFilterPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	script := filepath.Join(dir, "filter.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\ncat\n"), 0o700); err != nil {
		t.Fatal(err)
	}

	got, err := resolveFilterPath(script)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("path %q should be absolute", got)
	}

	_, err = resolveFilterPath(filepath.Join(dir, "missing.sh"))
	if !errors.Is(err, ErrFilterNotFound) {
		t.Errorf("error = %v, want ErrFilterNotFound", err)
	}
}

// ---------------------------------------------------------------------------
// TestBuiltinStage
// ---------------------------------------------------------------------------

func TestBuiltinStage_Apply(t *testing.T) {
	stubLookPath(t, nil)

	stages, err := buildStages([]string{"strip-image-slash"}, newMockRunner(""), logging.Discard())
	if err != nil {
		t.Fatal(err)
	}

	out, err := stages[0].Apply(context.Background(), []byte(imageTree), "html5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), `["img/a.png",""]`) {
		t.Errorf("leading slash not stripped: %s", out)
	}
}

func TestBuiltinStage_ShapeError(t *testing.T) {
	stubLookPath(t, nil)

	stages, err := buildStages([]string{"strip-image-slash"}, newMockRunner(""), logging.Discard())
	if err != nil {
		t.Fatal(err)
	}

	bad := `{"pandoc-api-version":[1,23],"meta":{},"blocks":[{"t":"Para","c":[{"t":"Image","c":[]}]}]}`
	_, err = stages[0].Apply(context.Background(), []byte(bad), "html5")
	if !errors.Is(err, ErrFilterStage) {
		t.Errorf("error = %v, want ErrFilterStage", err)
	}
	var shapeErr *ast.ShapeError
	if !errors.As(err, &shapeErr) {
		t.Errorf("error %v should carry *ast.ShapeError", err)
	}
}

func TestBuiltinStage_CancelledContext(t *testing.T) {
	stubLookPath(t, nil)

	stages, err := buildStages([]string{"strip-image-slash"}, newMockRunner(""), logging.Discard())
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := stages[0].Apply(ctx, []byte(imageTree), "html5"); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// TestExecStage - external filter protocol
// ---------------------------------------------------------------------------

func TestExecStage_Apply(t *testing.T) {
	t.Parallel()

	runner := newMockRunner("")
	stage := &execStage{path: "/usr/bin/my-filter", runner: runner, logger: logging.Discard()}

	out, err := stage.Apply(context.Background(), []byte(imageTree), "latex")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != imageTree {
		t.Errorf("output = %s, want input echoed", out)
	}

	calls := runner.getCalls()
	if len(calls) != 1 {
		t.Fatalf("got %d calls, want 1", len(calls))
	}
	if calls[0].Name != "/usr/bin/my-filter" || len(calls[0].Args) != 1 || calls[0].Args[0] != "latex" {
		t.Errorf("filter invoked as %s %v, want format as only argument", calls[0].Name, calls[0].Args)
	}
}

func TestExecStage_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		stdout  string
		stderr  string
		err     error
		wantMsg string
	}{
		{"non-zero exit", "", "boom", &exitError{code: 3}, "boom"},
		{"empty output", "  \n", "", nil, "no output"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			runner := newMockRunner("")
			runner.runFunc = func(context.Context, []byte, string, ...string) ([]byte, []byte, error) {
				return []byte(tt.stdout), []byte(tt.stderr), tt.err
			}
			stage := &execStage{path: "/bin/f", runner: runner, logger: logging.Discard()}

			_, err := stage.Apply(context.Background(), []byte(imageTree), "html5")
			if !errors.Is(err, ErrFilterStage) {
				t.Fatalf("error = %v, want ErrFilterStage", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should contain %q", err, tt.wantMsg)
			}
		})
	}
}
