package workdir

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"

	oerrors "github.com/opmodel/seed/internal/errors"
)

// Command describes one external program invocation.
type Command struct {
	Dir     string
	Program string
	Args    []string

	// OnLine, when set, receives each stdout line as it is produced.
	OnLine func(line string)
}

// Runner executes external commands.
type Runner interface {
	// Run executes cmd and returns its full stdout. A non-zero exit status
	// is reported as *errors.ProcessError.
	Run(ctx context.Context, cmd Command) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, c Command) (string, error) {
	cmd := exec.CommandContext(ctx, c.Program, c.Args...)
	cmd.Dir = c.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stderr = &stderr

	pipe, err := cmd.StdoutPipe()
	if err != nil {
		return "", processError(c, -1, "", err)
	}
	if err := cmd.Start(); err != nil {
		return "", processError(c, -1, "", err)
	}

	// All output must be read before Wait closes the pipe.
	tee := io.TeeReader(pipe, &stdout)
	scanner := bufio.NewScanner(tee)
	for scanner.Scan() {
		if c.OnLine != nil {
			c.OnLine(scanner.Text())
		}
	}
	// Drain whatever the scanner gave up on, such as overlong lines.
	_, _ = io.Copy(io.Discard, tee)

	if err := cmd.Wait(); err != nil {
		code := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		return stdout.String(), processError(c, code, stderr.String(), err)
	}

	return stdout.String(), nil
}

func processError(c Command, code int, stderr string, err error) *oerrors.ProcessError {
	return &oerrors.ProcessError{
		Program:  c.Program,
		Args:     c.Args,
		Dir:      c.Dir,
		ExitCode: code,
		Stderr:   stderr,
		Err:      err,
	}
}
