package scaffold

import (
	"fmt"
)

// Group is a dependency group passed to the package manager's add command.
type Group int

// Dependency groups, in the order they are installed.
const (
	GroupRegular Group = iota
	GroupPeer
	GroupDev
)

func (g Group) String() string {
	switch g {
	case GroupRegular:
		return "dependencies"
	case GroupPeer:
		return "peer dependencies"
	case GroupDev:
		return "dev dependencies"
	default:
		return "unknown"
	}
}

// PackageManager describes how to drive one package manager binary.
type PackageManager struct {
	// Program is the executable name.
	Program string

	// Lockfile is the lockfile committed after install.
	Lockfile string

	// add holds the argument prefix of the add command per group.
	add map[Group][]string

	// install is the argument list of a bare install.
	install []string
}

// AddArgs returns the full argument list that adds packages to group.
func (pm PackageManager) AddArgs(group Group, packages []string) []string {
	prefix := pm.add[group]
	args := make([]string, 0, len(prefix)+len(packages))
	args = append(args, prefix...)
	return append(args, packages...)
}

// InstallArgs returns the argument list of a bare install.
func (pm PackageManager) InstallArgs() []string {
	return append([]string(nil), pm.install...)
}

var packageManagers = map[string]PackageManager{
	"yarn": {
		Program:  "yarn",
		Lockfile: "yarn.lock",
		add: map[Group][]string{
			GroupRegular: {"add"},
			GroupPeer:    {"add", "--peer", "--dev"},
			GroupDev:     {"add", "--dev"},
		},
	},
	"npm": {
		Program:  "npm",
		Lockfile: "package-lock.json",
		add: map[Group][]string{
			GroupRegular: {"install", "--save"},
			GroupPeer:    {"install", "--save-peer", "--save-dev"},
			GroupDev:     {"install", "--save-dev"},
		},
		install: []string{"install"},
	},
	"pnpm": {
		Program:  "pnpm",
		Lockfile: "pnpm-lock.yaml",
		add: map[Group][]string{
			GroupRegular: {"add"},
			GroupPeer:    {"add", "--save-peer"},
			GroupDev:     {"add", "--save-dev"},
		},
		install: []string{"install"},
	},
}

// LookupPackageManager returns the definition for name.
func LookupPackageManager(name string) (PackageManager, error) {
	pm, ok := packageManagers[name]
	if !ok {
		return PackageManager{}, fmt.Errorf("unsupported package manager %q", name)
	}
	return pm, nil
}
