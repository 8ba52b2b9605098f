package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGenerateCompletion - Script content per shell
// ---------------------------------------------------------------------------

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shell Shell
		want  []string
	}{
		{ShellBash, []string{"complete -F", "doctor", "--engine", "--filter", "strip-image-slash", "weasyprint"}},
		{ShellZsh, []string{"#compdef html2pdf", "doctor", "--engine", "link-new-window", "_files"}},
		{ShellFish, []string{"complete -c html2pdf", "doctor", "-l engine", "highlight-code"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.shell), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion: %v", err)
			}
			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("%s script missing %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletion_Unsupported(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := GenerateCompletion(&buf, Shell("powershell"))
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Fatalf("error = %v, want ErrUnsupportedShell", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written for an unsupported shell")
	}
}

func TestExtractFlagsFromFlagSet(t *testing.T) {
	t.Parallel()

	flags := extractFlagsFromFlagSet(buildConvertFlagSet())
	byName := map[string]flagDef{}
	for _, f := range flags {
		byName[f.Long] = f
	}

	tests := []struct {
		name      string
		wantShort string
		wantBool  bool
		wantVals  bool
		wantGlob  string
		wantDir   bool
	}{
		{name: "engine", wantShort: "e", wantVals: true},
		{name: "filter", wantShort: "F", wantVals: true},
		{name: "quiet", wantShort: "q", wantBool: true},
		{name: "no-filters", wantBool: true},
		{name: "css", wantGlob: "*.css"},
		{name: "config", wantShort: "c", wantGlob: "*.yaml,*.yml"},
		{name: "resource-path", wantShort: "r", wantDir: true},
		{name: "output", wantShort: "o"},
	}

	for _, tt := range tests {
		f, ok := byName[tt.name]
		if !ok {
			t.Errorf("flag --%s missing", tt.name)
			continue
		}
		if f.Short != tt.wantShort || f.Bool != tt.wantBool || (len(f.Values) > 0) != tt.wantVals ||
			f.FileGlob != tt.wantGlob || f.IsDir != tt.wantDir {
			t.Errorf("--%s = %+v", tt.name, f)
		}
	}
}

func TestRunCompletion_NoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv(&mockConverter{})
	if err := runCompletion(nil, env); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout.String(), "Usage: html2pdf completion <shell>") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestEscapes(t *testing.T) {
	t.Parallel()

	if got := zshEscape("it's [a]:b"); got != `it'\''s \[a\]\:b` {
		t.Errorf("zshEscape = %q", got)
	}
	if got := fishEscape("it's"); got != `it\'s` {
		t.Errorf("fishEscape = %q", got)
	}
}
