package html2pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/alnah/go-html2pdf/internal/process"
)

// CommandRunner abstracts command execution to enable testing without real subprocesses.
type CommandRunner interface {
	// Run executes name with args, feeding stdin when non-nil. A cancelled
	// ctx terminates the command and everything it spawned.
	Run(ctx context.Context, stdin []byte, name string, args ...string) (stdout, stderr []byte, err error)
}

// defaultWaitDelay bounds how long Run waits for output pipes after the
// process group was killed.
const defaultWaitDelay = 5 * time.Second

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

// Run starts the command in its own process group and waits for it.
func (r *ExecRunner) Run(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	process.KillOnCancel(cmd)
	cmd.WaitDelay = defaultWaitDelay

	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil && ctx.Err() != nil {
		err = fmt.Errorf("%w: %v", ctx.Err(), err)
	}
	return stdout.Bytes(), stderr.Bytes(), err
}

var _ CommandRunner = (*ExecRunner)(nil)

// pandoc exit statuses with a dedicated error.
const exitPDFProgramNotFound = 47

// readArgs builds the stage 1 command line: input to JSON tree.
func readArgs(input, from string) []string {
	return []string{"-f", from, "-t", "json", input}
}

// writeOptions are the stage 3 settings passed to pandoc.
type writeOptions struct {
	to           string
	output       string // empty writes to stdout
	engine       string // PDF targets only
	css          string // stylesheet path, empty for none
	resourcePath []string
}

// writeArgs builds the stage 3 command line: JSON tree on stdin to output.
func writeArgs(o writeOptions) []string {
	args := []string{"-f", "json", "-t", o.to}
	if o.output != "" {
		args = append(args, "-o", o.output)
	}
	if IsPDF(o.to) {
		args = append(args, "--pdf-engine="+o.engine)
	} else {
		args = append(args, "--standalone")
	}
	if o.css != "" {
		args = append(args, "--css="+o.css)
	}
	if len(o.resourcePath) > 0 {
		args = append(args, "--resource-path="+strings.Join(o.resourcePath, string(os.PathListSeparator)))
	}
	return args
}

// runPandoc runs pandoc and classifies its failures.
func (c *Converter) runPandoc(ctx context.Context, logger *slog.Logger, stdin []byte, args ...string) ([]byte, error) {
	logger.Debug("running pandoc", "pandoc", c.cfg.pandoc, "args", args)

	stdout, stderr, err := c.runner.Run(ctx, stdin, c.cfg.pandoc, args...)
	logToolOutput(logger, "pandoc", stderr)
	if err == nil {
		return stdout, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrPandocNotFound, c.cfg.pandoc)
	}

	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) && coder.ExitCode() == exitPDFProgramNotFound {
		return nil, fmt.Errorf("%w: %s", ErrEngineNotFound, toolMessage(stderr, err))
	}
	return nil, fmt.Errorf("%w: %s", ErrPandoc, toolMessage(stderr, err))
}

// toolMessage summarizes a failed command: its stderr when it wrote any,
// the exit error otherwise.
func toolMessage(stderr []byte, err error) string {
	if msg := strings.TrimSpace(string(stderr)); msg != "" {
		return msg
	}
	return err.Error()
}

// logToolOutput forwards a tool's stderr to the logger line by line.
// pandoc prefixes warnings with "[WARNING]".
func logToolOutput(logger *slog.Logger, tool string, stderr []byte) {
	for _, line := range strings.Split(string(stderr), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[WARNING]") {
			logger.Warn(strings.TrimSpace(strings.TrimPrefix(line, "[WARNING]")), "tool", tool)
			continue
		}
		logger.Debug(line, "tool", tool)
	}
}
