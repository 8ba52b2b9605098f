package html2pdf

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestPrintOptions(t *testing.T) {
	t.Parallel()

	opts := printOptions()
	if opts.PaperWidth == nil || *opts.PaperWidth != paperWidthInches {
		t.Errorf("PaperWidth = %v, want %v", opts.PaperWidth, paperWidthInches)
	}
	if opts.PaperHeight == nil || *opts.PaperHeight != paperHeightInches {
		t.Errorf("PaperHeight = %v, want %v", opts.PaperHeight, paperHeightInches)
	}
	if !opts.PrintBackground {
		t.Error("PrintBackground should be true")
	}
	if !opts.PreferCSSPageSize {
		t.Error("PreferCSSPageSize should be true so @page rules win")
	}
}

func TestFileURL(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}

	tests := []struct {
		path string
		want string
	}{
		{"/tmp/doc.html", "file:///tmp/doc.html"},
		{"/tmp/with space.html", "file:///tmp/with%20space.html"},
	}

	for _, tt := range tests {
		if got := fileURL(tt.path); got != tt.want {
			t.Errorf("fileURL(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}

	if got := fileURL("rel.html"); !strings.HasPrefix(got, "file:///") {
		t.Errorf("relative path should become absolute, got %q", got)
	}
}

func TestRodRenderer_CancelledContext(t *testing.T) {
	t.Parallel()

	r := newRodRenderer(time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.RenderFromFile(ctx, "/tmp/doc.html")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if r.browser != nil {
		t.Error("browser should not be launched for a cancelled context")
	}
}

func TestRodRenderer_CloseWithoutBrowser(t *testing.T) {
	t.Parallel()

	if err := newRodRenderer(time.Second).Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}
