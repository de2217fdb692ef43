// Package scaffold clones a template repository and turns it into a new
// project: it rewrites package.json, installs dependencies and rewires the
// git remotes.
package scaffold

import (
	"context"
	"fmt"

	oerrors "github.com/opmodel/seed/internal/errors"
	"github.com/opmodel/seed/internal/manifest"
	"github.com/opmodel/seed/internal/options"
	"github.com/opmodel/seed/internal/output"
	"github.com/opmodel/seed/internal/workdir"
)

// DefaultToolName tags the commits made in the new project.
const DefaultToolName = "seed"

// Settings holds the non-interactive knobs of a run, usually from config.
type Settings struct {
	// PackageManager is the package manager name (yarn, npm or pnpm).
	PackageManager string

	// TemplateRemote is the name the template's origin remote is renamed to.
	TemplateRemote string

	// ToolName prefixes commit messages, e.g. "[seed]: update package.json".
	ToolName string
}

// Result summarizes a finished run.
type Result struct {
	// Target is the directory of the new project.
	Target string

	// Commits lists the commit messages created, in order.
	Commits []string

	// Groups lists the dependency groups that were added.
	Groups []Group

	// Origin is the new origin remote, empty when none was added.
	Origin string
}

// Scaffolder runs the scaffolding steps against a root directory.
type Scaffolder struct {
	root     workdir.Dir
	settings Settings
	pm       PackageManager
}

// New returns a Scaffolder working in root. Empty settings take defaults.
func New(root workdir.Dir, s Settings) (*Scaffolder, error) {
	if s.PackageManager == "" {
		s.PackageManager = "yarn"
	}
	if s.TemplateRemote == "" {
		s.TemplateRemote = "template"
	}
	if s.ToolName == "" {
		s.ToolName = DefaultToolName
	}

	pm, err := LookupPackageManager(s.PackageManager)
	if err != nil {
		return nil, oerrors.NewValidationError(err.Error(), "packageManager", "Use one of: yarn, npm, pnpm")
	}

	return &Scaffolder{root: root, settings: s, pm: pm}, nil
}

// PackageManager returns the package manager the run uses.
func (s *Scaffolder) PackageManager() PackageManager {
	return s.pm
}

// Run executes every step in order and stops at the first failure.
// Nothing already done is rolled back.
func (s *Scaffolder) Run(ctx context.Context, opts options.Options) (*Result, error) {
	if opts.SourceRepo == "" || opts.Target == "" {
		return nil, oerrors.NewUsageError("source-repo and target must be specified", "")
	}
	if len(opts.Extra) > 0 {
		output.Warn("ignoring extra positional arguments", "args", opts.Extra)
	}

	result := &Result{Target: opts.Target}

	if _, err := s.root.Run(ctx, "git", "clone", opts.SourceRepo, opts.Target); err != nil {
		return nil, err
	}

	project := s.root.Descend(opts.Target)

	if err := s.patchManifest(ctx, project, opts); err != nil {
		return nil, err
	}
	msg := s.commitMessage("update " + manifest.FileName)
	if err := s.commit(ctx, project, manifest.FileName, msg); err != nil {
		return nil, err
	}
	result.Commits = append(result.Commits, msg)

	groups, err := s.addDependencies(ctx, project, opts)
	if err != nil {
		return nil, err
	}
	result.Groups = groups

	if _, err := project.Run(ctx, s.pm.Program, s.pm.InstallArgs()...); err != nil {
		return nil, err
	}

	msg = s.commitMessage("add/update " + s.pm.Lockfile)
	if err := s.commit(ctx, project, s.pm.Lockfile, msg); err != nil {
		return nil, err
	}
	result.Commits = append(result.Commits, msg)

	if _, err := project.Run(ctx, "git", "remote", "rename", "origin", s.settings.TemplateRemote); err != nil {
		return nil, err
	}
	if opts.Repository != "" {
		if _, err := project.Run(ctx, "git", "remote", "add", "origin", opts.Repository); err != nil {
			return nil, err
		}
		result.Origin = opts.Repository
	} else {
		output.SkipStep("git remote add origin")
	}

	return result, nil
}

// patchManifest rewrites the project's package.json with the resolved
// metadata and the update-template script.
func (s *Scaffolder) patchManifest(ctx context.Context, project workdir.Dir, opts options.Options) error {
	data, err := project.Read(ctx, manifest.FileName)
	if err != nil {
		return err
	}

	before := manifest.Read(data)
	output.Debug("template manifest", "name", before.Name, "version", before.Version)

	patched, err := manifest.Patch(data, manifest.Metadata{
		Name:        opts.Name,
		Version:     opts.Version,
		Description: opts.Description,
		Repository:  opts.Repository,
		Author:      opts.Author,
	}, manifest.WithUpdateScript(s.settings.TemplateRemote))
	if err != nil {
		return err
	}

	if err := manifest.Validate(patched); err != nil {
		return err
	}

	return project.Write(ctx, manifest.FileName, patched)
}

// addDependencies runs the package manager's add command for every
// non-empty group and returns the groups that ran.
func (s *Scaffolder) addDependencies(ctx context.Context, project workdir.Dir, opts options.Options) ([]Group, error) {
	groups := []struct {
		group    Group
		packages []string
	}{
		{GroupRegular, opts.Deps},
		{GroupPeer, opts.Peers},
		{GroupDev, opts.DevDeps},
	}

	var ran []Group
	for _, g := range groups {
		if len(g.packages) == 0 {
			output.SkipStep(fmt.Sprintf("%s add %s", s.pm.Program, g.group))
			continue
		}
		if _, err := project.Run(ctx, s.pm.Program, s.pm.AddArgs(g.group, g.packages)...); err != nil {
			return nil, err
		}
		ran = append(ran, g.group)
	}
	return ran, nil
}

func (s *Scaffolder) commit(ctx context.Context, project workdir.Dir, file, message string) error {
	if _, err := project.Run(ctx, "git", "add", file); err != nil {
		return err
	}
	_, err := project.Run(ctx, "git", "commit", "-m", message)
	return err
}

func (s *Scaffolder) commitMessage(subject string) string {
	return fmt.Sprintf("[%s]: %s", s.settings.ToolName, subject)
}
