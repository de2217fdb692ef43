package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/seed/internal/errors"
	"github.com/opmodel/seed/internal/testutil"
	"github.com/opmodel/seed/internal/version"
	"github.com/opmodel/seed/internal/workdir"
)

const templateManifest = `{
  "name": "template",
  "version": "0.0.0",
  "scripts": {
    "start": "node ."
  }
}
`

type harness struct {
	runner *testutil.FakeRunner
	target string
	out    *bytes.Buffer
	in     io.Reader
	found  map[string]bool
}

// newHarness isolates the command from the user's config and PATH.
func newHarness(t *testing.T, input string) *harness {
	t.Helper()
	testutil.IsolateConfig(t)

	return &harness{
		runner: &testutil.FakeRunner{T: t, Manifest: templateManifest},
		target: filepath.Join(t.TempDir(), "app"),
		out:    &bytes.Buffer{},
		in:     strings.NewReader(input),
		found:  map[string]bool{"git": true, "yarn": true, "npm": true, "pnpm": true},
	}
}

func (h *harness) execute(args ...string) error {
	root := newRootCmd(deps{
		runner:   h.runner,
		reporter: workdir.Quiet,
		detect: func(_ context.Context, name string) version.BinaryInfo {
			return version.BinaryInfo{Name: name, Found: h.found[name], Path: "/usr/bin/" + name}
		},
	})
	root.SetIn(h.in)
	root.SetOut(h.out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	return root.Execute()
}

func (h *harness) manifest(t *testing.T) string {
	t.Helper()
	return testutil.ReadFile(t, h.target, "package.json")
}

func TestCreate_MissingPositionals(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"none", []string{}, "source-repo must be specified"},
		{"only source", []string{"git@x:t.git"}, "target must be specified"},
		{"only flags", []string{"--name", "x"}, "source-repo must be specified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, "answer\n")

			err := h.execute(tt.args...)
			require.Error(t, err)
			assert.Equal(t, oerrors.ExitUsageError, oerrors.ExitCodeFromError(err))
			assert.ErrorContains(t, err, tt.wantMsg)
			assert.Empty(t, h.out.String(), "nothing should be prompted")
			assert.Empty(t, h.runner.Calls())
		})
	}
}

func TestCreate_UnknownFlag(t *testing.T) {
	h := newHarness(t, "")

	err := h.execute("git@x:t.git", h.target, "--bogus", "1")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitUsageError, oerrors.ExitCodeFromError(err))
	assert.ErrorContains(t, err, "bogus")
}

func TestCreate_Help(t *testing.T) {
	h := newHarness(t, "")

	require.NoError(t, h.execute("--help"))

	help := h.out.String()
	assert.Contains(t, help, "--repository")
	assert.Contains(t, help, "--devDeps")
	assert.Contains(t, help, "<source-repo> <target>")
	assert.Empty(t, h.runner.Calls())
}

func TestCreate_NonInteractiveMissingRequired(t *testing.T) {
	h := newHarness(t, "")

	err := h.execute("git@x:t.git", h.target, "--yes", "--repository", "git@x:me/app.git", "--author", "Me")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
	assert.ErrorContains(t, err, "name cannot be empty")
	assert.Empty(t, h.out.String())
	assert.Empty(t, h.runner.Calls())
}

func TestCreate_InteractiveRun(t *testing.T) {
	// ver, description, peers, devDeps, deps are asked in table order.
	h := newHarness(t, "\nA thing\n\ntypescript\n\n")

	err := h.execute("git@x:t.git", h.target,
		"--name", "my-app",
		"--repository", "git@x:me/app.git",
		"--author", "Me",
	)
	require.NoError(t, err)

	prompts := h.out.String()
	assert.Contains(t, prompts, "package version")
	assert.Contains(t, prompts, "package description")
	assert.NotContains(t, prompts, "package name")
	assert.NotContains(t, prompts, "package author")

	assert.Equal(t, []string{
		"git clone git@x:t.git " + h.target,
		"git add package.json",
		"git commit -m [seed]: update package.json",
		"yarn add --dev typescript",
		"yarn",
		"git add yarn.lock",
		"git commit -m [seed]: add/update yarn.lock",
		"git remote rename origin template",
		"git remote add origin git@x:me/app.git",
	}, h.runner.Calls())

	assert.JSONEq(t, `{
		"name": "my-app",
		"version": "0.1.0",
		"scripts": {
			"start": "node .",
			"update-template": "git fetch template && git merge template"
		},
		"description": "A thing",
		"repository": "git@x:me/app.git",
		"author": "Me"
	}`, h.manifest(t))
}

func TestCreate_EndOfFlagsMarker(t *testing.T) {
	// name, ver, description, peers, devDeps, deps
	h := newHarness(t, "my-app\n\n\n\n\n\n")

	err := h.execute(
		"--repository", "git@x:me/app.git",
		"--author", "Me",
		"--", "git@x:t.git", h.target,
	)
	require.NoError(t, err)

	assert.Equal(t, "git clone git@x:t.git "+h.target, h.runner.Calls()[0])
	manifest := h.manifest(t)
	assert.Contains(t, manifest, `"name": "my-app"`)
	assert.Contains(t, manifest, `"version": "0.1.0"`)
	assert.Contains(t, manifest, `"author": "Me"`)
}

// closeCounter is an input stream that records how often it was closed.
type closeCounter struct {
	io.Reader
	closes int
}

func (c *closeCounter) Close() error {
	c.closes++
	return nil
}

func TestCreate_ClosesInputAfterPrompting(t *testing.T) {
	h := newHarness(t, "")
	in := &closeCounter{Reader: strings.NewReader("\nA thing\n\n\n\n")}
	h.in = in

	err := h.execute("git@x:t.git", h.target,
		"--name", "my-app",
		"--repository", "git@x:me/app.git",
		"--author", "Me",
	)
	require.NoError(t, err)
	assert.Equal(t, 1, in.closes)
}

func TestCreate_InvalidAnswerStopsPrompting(t *testing.T) {
	h := newHarness(t, "not-a-version\nA thing\n")

	err := h.execute("git@x:t.git", h.target,
		"--name", "my-app",
		"--repository", "git@x:me/app.git",
		"--author", "Me",
	)
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
	assert.NotContains(t, h.out.String(), "package description")
	assert.Empty(t, h.runner.Calls())
}

func TestCreate_ConfigDefaults(t *testing.T) {
	h := newHarness(t, "")
	cfgPath := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("author: Config Author\nversion: 2.0.0\npackageManager: npm\ntemplateRemote: upstream\n"), 0o644))

	err := h.execute("git@x:t.git", h.target,
		"--config", cfgPath,
		"--yes",
		"--name", "my-app",
		"--repository", "git@x:me/app.git",
	)
	require.NoError(t, err)

	manifest := h.manifest(t)
	assert.Contains(t, manifest, `"author": "Config Author"`)
	assert.Contains(t, manifest, `"version": "2.0.0"`)
	assert.Contains(t, manifest, "git fetch upstream && git merge upstream")
	assert.Contains(t, h.runner.Calls(), "npm install")
	assert.Contains(t, h.runner.Calls(), "git add package-lock.json")
	assert.Contains(t, h.runner.Calls(), "git remote rename origin upstream")
}

func TestCreate_InvalidConfig(t *testing.T) {
	h := newHarness(t, "")
	t.Setenv("SEED_PACKAGE_MANAGER", "bun")

	err := h.execute("git@x:t.git", h.target, "--yes", "--name", "my-app", "--repository", "r", "--author", "Me")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
	assert.Empty(t, h.runner.Calls())
}

func TestCreate_MissingTool(t *testing.T) {
	h := newHarness(t, "")
	h.found["yarn"] = false

	err := h.execute("git@x:t.git", h.target, "--yes", "--name", "my-app", "--repository", "r", "--author", "Me")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
	assert.ErrorContains(t, err, "yarn not found in PATH")
	assert.Empty(t, h.runner.Calls())
}

func TestCreate_FailingStep(t *testing.T) {
	h := newHarness(t, "")
	h.runner.FailOn = "yarn add --dev"

	err := h.execute("git@x:t.git", h.target, "--yes",
		"--name", "my-app",
		"--repository", "git@x:me/app.git",
		"--author", "Me",
		"--devDeps", "typescript eslint",
	)
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitProcessError, oerrors.ExitCodeFromError(err))

	var exitErr *oerrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.True(t, exitErr.Printed)

	assert.Equal(t, "yarn add --dev typescript eslint", h.runner.Last())
	assert.NotContains(t, h.runner.Calls(), "git add yarn.lock")
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "version")
	assert.Contains(t, names, "config")
	assert.True(t, root.DisableFlagParsing)
}
