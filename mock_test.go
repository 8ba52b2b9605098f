package html2pdf

import (
	"context"
	"errors"
	"os"
	"slices"
	"strconv"
	"sync"
)

// runCall records one CommandRunner.Run invocation.
type runCall struct {
	Name  string
	Args  []string
	Stdin []byte
}

// mockRunner is a CommandRunner that plays pandoc and external filters.
//   - "-t json" commands return tree.
//   - Commands with "-o path" write output to path.
//   - Other pandoc commands return html.
//   - Any other executable echoes its stdin.
//
// Set inspect to observe arguments, runFunc to take over completely.
type mockRunner struct {
	mu      sync.Mutex
	calls   []runCall
	tree    string
	html    string
	output  string
	inspect func(args []string) // called before the default behavior
	runFunc func(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, []byte, error)
}

func newMockRunner(tree string) *mockRunner {
	return &mockRunner{
		tree:   tree,
		html:   "<!DOCTYPE html><html><head><title>t</title></head><body><p>hi</p></body></html>",
		output: "%PDF-1.4 mock",
	}
}

func (m *mockRunner) Run(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, []byte, error) {
	m.mu.Lock()
	m.calls = append(m.calls, runCall{Name: name, Args: slices.Clone(args), Stdin: slices.Clone(stdin)})
	m.mu.Unlock()

	if m.runFunc != nil {
		return m.runFunc(ctx, stdin, name, args...)
	}
	if m.inspect != nil {
		m.inspect(args)
	}
	if name != "pandoc" {
		return stdin, nil, nil
	}
	if i := slices.Index(args, "-t"); i >= 0 && i+1 < len(args) && args[i+1] == "json" {
		return []byte(m.tree), nil, nil
	}
	if i := slices.Index(args, "-o"); i >= 0 && i+1 < len(args) {
		return nil, nil, os.WriteFile(args[i+1], []byte(m.output), 0o600)
	}
	return []byte(m.html), nil, nil
}

func (m *mockRunner) getCalls() []runCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.calls)
}

// mockRenderer is a PDFRenderer that records the HTML it was given.
type mockRenderer struct {
	mu     sync.Mutex
	html   []string
	err    error
	closed bool
}

func (m *mockRenderer) RenderFromFile(_ context.Context, filePath string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.html = append(m.html, string(data))
	m.mu.Unlock()
	return []byte("%PDF-1.7 chrome"), nil
}

func (m *mockRenderer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// exitError mimics *exec.ExitError for error classification.
type exitError struct{ code int }

func (e *exitError) Error() string { return "exit status " + strconv.Itoa(e.code) }
func (e *exitError) ExitCode() int { return e.code }

var errMock = errors.New("mock failure")
