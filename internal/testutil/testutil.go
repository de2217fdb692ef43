// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	oerrors "github.com/opmodel/seed/internal/errors"
	"github.com/opmodel/seed/internal/workdir"
)

// TemplateManifest is the package.json a FakeRunner clone produces unless
// Manifest is set.
const TemplateManifest = `{
  "name": "template",
  "version": "0.0.1",
  "private": true,
  "scripts": {
    "build": "tsc"
  },
  "dependencies": {
    "react": "^18.0.0"
  }
}
`

// FakeRunner records every command instead of executing it. A "git clone"
// creates the target directory holding a package.json so the rest of a
// scaffolding run can proceed.
type FakeRunner struct {
	T *testing.T

	// FailOn makes the first command whose command line starts with it
	// fail with a *errors.ProcessError.
	FailOn string

	// Manifest overrides TemplateManifest.
	Manifest string

	mu    sync.Mutex
	calls []string
}

// Run implements workdir.Runner.
func (f *FakeRunner) Run(_ context.Context, c workdir.Command) (string, error) {
	cmdline := strings.Join(append([]string{c.Program}, c.Args...), " ")

	f.mu.Lock()
	f.calls = append(f.calls, cmdline)
	f.mu.Unlock()

	if f.FailOn != "" && strings.HasPrefix(cmdline, f.FailOn) {
		return "", &oerrors.ProcessError{
			Program:  c.Program,
			Args:     c.Args,
			Dir:      c.Dir,
			ExitCode: 1,
			Stderr:   "simulated failure",
			Err:      oerrors.ErrProcess,
		}
	}

	if c.Program == "git" && len(c.Args) == 3 && c.Args[0] == "clone" {
		f.clone(c.Dir, c.Args[2])
	}
	if c.OnLine != nil {
		c.OnLine("ok")
	}
	return "ok\n", nil
}

// Calls returns the recorded command lines in order.
func (f *FakeRunner) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Last returns the most recent command line, or "" if none ran.
func (f *FakeRunner) Last() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return ""
	}
	return f.calls[len(f.calls)-1]
}

func (f *FakeRunner) clone(dir, target string) {
	f.T.Helper()
	if !filepath.IsAbs(target) {
		target = filepath.Join(dir, target)
	}
	manifest := f.Manifest
	if manifest == "" {
		manifest = TemplateManifest
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		f.T.Fatalf("failed to create clone target: %v", err)
	}
	if err := os.WriteFile(filepath.Join(target, "package.json"), []byte(manifest), 0o644); err != nil {
		f.T.Fatalf("failed to write template manifest: %v", err)
	}
}

// ReadFile returns the contents of the file at the joined path.
func ReadFile(t *testing.T, parts ...string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(parts...))
	if err != nil {
		t.Fatalf("failed to read %s: %v", filepath.Join(parts...), err)
	}
	return string(data)
}

// IsolateConfig points seed's config lookup at a missing file and clears
// every SEED_ override for the duration of the test.
func IsolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("SEED_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	for _, env := range []string{"SEED_AUTHOR", "SEED_VERSION", "SEED_PACKAGE_MANAGER", "SEED_TEMPLATE_REMOTE"} {
		t.Setenv(env, "")
	}
}
