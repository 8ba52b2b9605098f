package html2pdf

import (
	"errors"
	"testing"
)

func TestInput_WithDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         Input
		wantFrom   string
		wantTo     string
		wantEngine string
	}{
		{"empty", Input{}, "html", "pdf", "wkhtmltopdf"},
		{"explicit kept", Input{From: "markdown", To: "pdf", Engine: "xelatex"}, "markdown", "pdf", "xelatex"},
		{"non-pdf target gets no engine", Input{To: "docx"}, "html", "docx", ""},
	}

	for _, tt := range tests {
		got := tt.in.withDefaults()
		if got.From != tt.wantFrom || got.To != tt.wantTo || got.Engine != tt.wantEngine {
			t.Errorf("%s: withDefaults() = from %q to %q engine %q, want %q %q %q",
				tt.name, got.From, got.To, got.Engine, tt.wantFrom, tt.wantTo, tt.wantEngine)
		}
	}
}

func TestInput_Validate(t *testing.T) {
	t.Parallel()

	valid := Input{Path: "in.html", Output: "out.pdf", From: "html", To: "pdf", Engine: "wkhtmltopdf"}

	tests := []struct {
		name    string
		mutate  func(*Input)
		wantErr error
	}{
		{"valid", func(*Input) {}, nil},
		{"format extensions", func(in *Input) { in.From = "html+raw_html-native_divs" }, nil},
		{"missing path", func(in *Input) { in.Path = "" }, ErrNoInput},
		{"missing output", func(in *Input) { in.Output = "" }, ErrNoOutput},
		{"bad from", func(in *Input) { in.From = "../html" }, ErrInvalidFormat},
		{"bad to", func(in *Input) { in.To = "pdf docx" }, ErrInvalidFormat},
		{"bad engine", func(in *Input) { in.Engine = "word" }, ErrInvalidEngine},
		{"chrome given as a path", func(in *Input) { in.Engine = "/usr/bin/chrome" }, ErrInvalidEngine},
		{"engine ignored for docx", func(in *Input) { in.To = "docx"; in.Engine = "word" }, nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := valid
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
