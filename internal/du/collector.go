package du

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

// ErrNoOutput is returned when du exits cleanly but prints nothing.
var ErrNoOutput = errors.New("du produced no output")

// Collector returns the raw du lines for dir: one per immediate child plus
// dir itself.
type Collector interface {
	Collect(ctx context.Context, dir string) ([]string, error)
}

// CollectError describes a du run that could not be started or exited with
// a non-zero status.
type CollectError struct {
	Dir      string
	ExitCode int    // -1 when the process never ran to completion
	Stderr   string // trimmed standard error of the child
	Err      error
}

func (e *CollectError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return fmt.Sprintf("du %s: %v", e.Dir, e.Err)
}

func (e *CollectError) Unwrap() error { return e.Err }

// ExecCollector runs an external du-compatible binary as
// "Command Args... -d 1 <dir>".
type ExecCollector struct {
	Command string
	Args    []string
	Timeout time.Duration // zero means no limit
}

// Collect runs du and blocks until it exits and both output streams are
// drained. The child is killed if ctx is cancelled or Timeout elapses.
func (c ExecCollector) Collect(ctx context.Context, dir string) ([]string, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.Command, c.args(dir)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		cerr := &CollectError{Dir: dir, ExitCode: -1, Err: err}
		if ctxErr := ctx.Err(); ctxErr != nil {
			cerr.Err = fmt.Errorf("%w (%v)", ctxErr, err)
			return nil, cerr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cerr.ExitCode = exitErr.ExitCode()
			cerr.Stderr = strings.TrimSpace(stderr.String())
		}
		return nil, cerr
	}

	out := strings.TrimSpace(stdout.String())
	if out == "" {
		return nil, ErrNoOutput
	}
	return strings.Split(out, "\n"), nil
}

func (c ExecCollector) args(dir string) []string {
	args := make([]string, 0, len(c.Args)+3)
	args = append(args, c.Args...)
	return append(args, "-d", "1", dir)
}

// StaticCollector returns lines captured ahead of time, such as a saved du
// output file, regardless of dir.
type StaticCollector struct {
	Lines []string
	Err   error
}

func (s StaticCollector) Collect(_ context.Context, _ string) ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if len(s.Lines) == 0 {
		return nil, ErrNoOutput
	}
	return s.Lines, nil
}

// ReadLines reads saved du output from r, dropping blank lines.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
