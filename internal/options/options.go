package options

import (
	"strconv"
	"strings"
)

// Options is the fully parsed option record. Every known flag has a field.
type Options struct {
	// Positionals.
	SourceRepo string
	Target     string

	// Extra holds positionals beyond source-repo and target.
	Extra []string

	// Package metadata.
	Name        string
	Version     string
	Description string
	Repository  string
	Author      string

	// Dependency groups.
	Peers   []string
	DevDeps []string
	Deps    []string

	// Session flags.
	Yes     bool
	Verbose bool
	Config  string
}

// Value returns the value of the named flag as it would appear on the
// command line. Lists are joined with single spaces.
func (o Options) Value(name string) string {
	switch name {
	case FlagName:
		return o.Name
	case FlagVersion:
		return o.Version
	case FlagDescription:
		return o.Description
	case FlagRepository:
		return o.Repository
	case FlagAuthor:
		return o.Author
	case FlagPeers:
		return strings.Join(o.Peers, " ")
	case FlagDevDeps:
		return strings.Join(o.DevDeps, " ")
	case FlagDeps:
		return strings.Join(o.Deps, " ")
	case FlagYes:
		return strconv.FormatBool(o.Yes)
	case FlagVerbose:
		return strconv.FormatBool(o.Verbose)
	case FlagConfig:
		return o.Config
	default:
		return ""
	}
}
