package filter

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/alnah/go-html2pdf/internal/ast"
)

// Exit codes of a filter process. pandoc aborts the conversion on any
// non-zero status.
const (
	ExitSuccess = 0
	ExitGeneral = 1
	ExitParse   = 5 // input is not a pandoc JSON document
	ExitShape   = 6 // a matched node has unexpected contents
)

// ExitCode maps a filter error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ast.ErrParse):
		return ExitParse
	case errors.Is(err, ast.ErrShape):
		return ExitShape
	default:
		return ExitGeneral
	}
}

// Main runs filters as a pandoc filter process: pandoc passes the target
// writer as the first argument, the tree on stdin, and expects the tree on
// stdout. On failure stdout is left empty, the error goes to stderr and the
// returned exit code is non-zero.
func Main(args []string, stdin io.Reader, stdout, stderr io.Writer, logger *slog.Logger, filters ...Filter) int {
	format := ""
	if len(args) > 1 {
		format = args[1]
	}

	if err := NewPipeline(logger, filters...).Run(stdin, stdout, format); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName(args), err)
		return ExitCode(err)
	}
	return ExitSuccess
}

func programName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return "filter"
	}
	return filepath.Base(args[0])
}
