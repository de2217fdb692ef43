// Package workdir provides an immutable working-directory handle that
// scopes file access and external commands to one directory.
package workdir

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/opmodel/seed/internal/errors"
	"github.com/opmodel/seed/internal/output"
)

// Reporter wraps a unit of work with progress display.
type Reporter func(ctx context.Context, title string, action func(progress output.ProgressFunc) error) error

// Dir is a filesystem path plus the collaborators used to act on it.
// Dir values are never mutated; Descend returns a new one.
type Dir struct {
	path     string
	runner   Runner
	reporter Reporter
}

// Option configures a Dir.
type Option func(*Dir)

// WithRunner sets the runner used for external commands.
func WithRunner(r Runner) Option {
	return func(d *Dir) {
		d.runner = r
	}
}

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) Option {
	return func(d *Dir) {
		d.reporter = r
	}
}

// Quiet is a Reporter that runs actions without any display.
func Quiet(_ context.Context, _ string, action func(progress output.ProgressFunc) error) error {
	return action(func(string) {})
}

// New returns a handle for path.
func New(path string, opts ...Option) Dir {
	d := Dir{
		path:     path,
		runner:   ExecRunner{},
		reporter: output.RunStep,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// Path returns the directory path.
func (d Dir) Path() string {
	return d.path
}

// String implements fmt.Stringer.
func (d Dir) String() string {
	return d.path
}

// Descend returns a handle for sub relative to d, or for sub itself when
// it is absolute. It does not touch the filesystem.
func (d Dir) Descend(sub string) Dir {
	next := d
	if filepath.IsAbs(sub) {
		next.path = filepath.Clean(sub)
	} else {
		next.path = filepath.Join(d.path, sub)
	}
	return next
}

// Read reads the named file relative to d.
func (d Dir) Read(ctx context.Context, name string) ([]byte, error) {
	file := displayPath(d.path, name)

	var data []byte
	err := d.reporter(ctx, "read "+file, func(output.ProgressFunc) error {
		var err error
		data, err = os.ReadFile(filepath.Join(d.path, name))
		if err != nil {
			return oerrors.NewIOError("read", file, err)
		}
		return nil
	})
	return data, err
}

// Write replaces the named file relative to d, keeping its permissions
// when it already exists.
func (d Dir) Write(ctx context.Context, name string, data []byte) error {
	file := displayPath(d.path, name)

	return d.reporter(ctx, "write "+file, func(output.ProgressFunc) error {
		full := filepath.Join(d.path, name)
		mode := os.FileMode(0o644)
		if info, err := os.Stat(full); err == nil {
			mode = info.Mode().Perm()
		}
		if err := os.WriteFile(full, data, mode); err != nil {
			return oerrors.NewIOError("write", file, err)
		}
		return nil
	})
}

// Run executes program in d and returns its trimmed stdout. Stdout lines
// are streamed to the reporter while the program runs. A non-zero exit
// yields an *errors.ProcessError; nothing is retried.
func (d Dir) Run(ctx context.Context, program string, args ...string) (string, error) {
	cmdline := strings.Join(append([]string{program}, args...), " ")

	var stdout string
	err := d.reporter(ctx, cmdline, func(progress output.ProgressFunc) error {
		out, err := d.runner.Run(ctx, Command{
			Dir:     d.path,
			Program: program,
			Args:    args,
			OnLine: func(line string) {
				progress(fmt.Sprintf("[%s] %s", program, line))
			},
		})
		if err != nil {
			return err
		}
		stdout = strings.TrimSpace(out)
		return nil
	})
	return stdout, err
}

// displayPath joins segments and returns the shorter of the path relative
// to the current directory and the absolute path.
func displayPath(segments ...string) string {
	joined := filepath.Join(segments...)
	abs, err := filepath.Abs(joined)
	if err != nil {
		return joined
	}
	cwd, err := os.Getwd()
	if err != nil {
		return abs
	}
	rel, err := filepath.Rel(cwd, abs)
	if err != nil || len(rel) >= len(abs) {
		return abs
	}
	return rel
}
