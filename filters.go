package html2pdf

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/alnah/go-html2pdf/internal/fileutil"
	"github.com/alnah/go-html2pdf/internal/filter"
)

// filterStage transforms an encoded document tree.
type filterStage interface {
	Name() string
	Apply(ctx context.Context, tree []byte, format string) ([]byte, error)
}

// builtinStage runs consecutive built-in filters in-process. Each filter
// still makes its own pass over the tree, in order.
type builtinStage struct {
	pipeline *filter.Pipeline
}

func (s *builtinStage) Name() string {
	names := make([]string, 0, len(s.pipeline.Filters()))
	for _, f := range s.pipeline.Filters() {
		names = append(names, f.Name)
	}
	return strings.Join(names, ",")
}

func (s *builtinStage) Apply(ctx context.Context, tree []byte, format string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := s.pipeline.Bytes(tree, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFilterStage, s.Name(), err)
	}
	return out, nil
}

// execStage runs an external filter executable with pandoc's filter
// protocol: the writer format as its only argument, tree on stdin and stdout.
type execStage struct {
	path   string
	runner CommandRunner
	logger *slog.Logger
}

func (s *execStage) Name() string {
	return s.path
}

func (s *execStage) Apply(ctx context.Context, tree []byte, format string) ([]byte, error) {
	stdout, stderr, err := s.runner.Run(ctx, tree, s.path, format)
	logToolOutput(s.logger, filepath.Base(s.path), stderr)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %s: %s", ErrFilterStage, s.path, toolMessage(stderr, err))
	}
	if len(bytes.TrimSpace(stdout)) == 0 {
		return nil, fmt.Errorf("%w: %s: no output", ErrFilterStage, s.path)
	}
	return stdout, nil
}

// lookPath resolves filter executables given by name. Replaced in tests.
var lookPath = exec.LookPath

// buildStages turns filter entries into stages. Built-in names are looked up
// first; an entry containing a path separator must be an existing file; any
// other entry is searched on PATH. Adjacent built-ins share one stage so the
// tree is decoded once for them.
func buildStages(entries []string, runner CommandRunner, logger *slog.Logger) ([]filterStage, error) {
	var stages []filterStage
	var pending []filter.Filter

	flush := func() {
		if len(pending) > 0 {
			stages = append(stages, &builtinStage{pipeline: filter.NewPipeline(logger, pending...)})
			pending = nil
		}
	}

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if f, ok := filter.Lookup(entry); ok {
			pending = append(pending, f)
			continue
		}

		path, err := resolveFilterPath(entry)
		if err != nil {
			return nil, err
		}
		flush()
		stages = append(stages, &execStage{path: path, runner: runner, logger: logger})
	}
	flush()

	return stages, nil
}

// resolveFilterPath locates an external filter executable.
func resolveFilterPath(entry string) (string, error) {
	if strings.ContainsAny(entry, `/\`) {
		if !fileutil.FileExists(entry) {
			return "", fmt.Errorf("%w: %s", ErrFilterNotFound, entry)
		}
		abs, err := filepath.Abs(entry)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrFilterNotFound, entry, err)
		}
		return abs, nil
	}

	path, err := lookPath(entry)
	if err != nil {
		return "", fmt.Errorf("%w: %q is neither a built-in filter (%s) nor an executable on PATH",
			ErrFilterNotFound, entry, strings.Join(filter.Names(), ", "))
	}
	return path, nil
}
