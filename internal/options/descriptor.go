// Package options declares the command-line options of seed, parses
// argument vectors against them, and resolves missing values
// interactively.
package options

// Kind is the value shape of an option.
type Kind int

const (
	// KindString takes a single value.
	KindString Kind = iota
	// KindList takes a whitespace-separated list in a single value.
	KindList
	// KindBool takes no value; presence sets it.
	KindBool
)

// Descriptor is the static definition of one option.
type Descriptor struct {
	// Name is the long flag name, without dashes.
	Name string

	// Description is the help text and prompt text.
	Description string

	// Default is used when the option is not supplied. Only meaningful
	// when HasDefault is set.
	Default    string
	HasDefault bool

	// Validate normalizes the raw value. Nil accepts anything.
	Validate Validator

	// Required options must end resolution with a non-empty value.
	Required bool

	Kind Kind

	// Session options configure the run itself and are never prompted.
	Session bool

	assign func(o *Options, value string)
}

// Promptable reports whether the resolver may ask for this option.
func (d Descriptor) Promptable() bool {
	return d.Kind != KindBool && !d.Session
}

// validate runs the descriptor's validator, if any.
func (d Descriptor) validate(raw string) (string, error) {
	if d.Validate == nil {
		return raw, nil
	}
	return d.Validate(raw)
}

// Table is an ordered list of descriptors. Order determines prompt order.
type Table []Descriptor

// Lookup returns the descriptor with the given flag name.
func (t Table) Lookup(name string) (Descriptor, bool) {
	for _, d := range t {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Flag names.
const (
	FlagName        = "name"
	FlagVersion     = "ver"
	FlagDescription = "description"
	FlagRepository  = "repository"
	FlagAuthor      = "author"
	FlagPeers       = "peers"
	FlagDevDeps     = "devDeps"
	FlagDeps        = "deps"
	FlagYes         = "yes"
	FlagVerbose     = "verbose"
	FlagConfig      = "config"
)

// DefaultVersion is the package version offered when none is configured.
const DefaultVersion = "0.1.0"

// Defaults carries user-configured defaults that override the built-in ones.
type Defaults struct {
	Version string
	Author  string
}

// NewTable returns the option table for the create command.
func NewTable(defaults Defaults) Table {
	version := DefaultVersion
	if defaults.Version != "" {
		version = defaults.Version
	}

	author := Descriptor{
		Name:        FlagAuthor,
		Description: "package author name",
		Validate:    NonEmpty(FlagAuthor),
		Required:    true,
		assign:      func(o *Options, v string) { o.Author = v },
	}
	if defaults.Author != "" {
		author.Default = defaults.Author
		author.HasDefault = true
	}

	return Table{
		{
			Name:        FlagName,
			Description: "package name",
			Validate:    Chain(NonEmpty(FlagName), PackageName(FlagName)),
			Required:    true,
			assign:      func(o *Options, v string) { o.Name = v },
		},
		{
			Name:        FlagVersion,
			Description: "package version",
			Default:     version,
			HasDefault:  true,
			Validate:    SemVer("version"),
			assign:      func(o *Options, v string) { o.Version = v },
		},
		{
			Name:        FlagDescription,
			Description: "package description",
			assign:      func(o *Options, v string) { o.Description = v },
		},
		{
			Name:        FlagRepository,
			Description: "package repository URI",
			Validate:    NonEmpty(FlagRepository),
			Required:    true,
			assign:      func(o *Options, v string) { o.Repository = v },
		},
		author,
		{
			Name:        FlagPeers,
			Description: "added peer dependencies",
			Kind:        KindList,
			assign:      func(o *Options, v string) { o.Peers = SplitList(v) },
		},
		{
			Name:        FlagDevDeps,
			Description: "added dev dependencies",
			Kind:        KindList,
			assign:      func(o *Options, v string) { o.DevDeps = SplitList(v) },
		},
		{
			Name:        FlagDeps,
			Description: "added bundle dependencies",
			Kind:        KindList,
			assign:      func(o *Options, v string) { o.Deps = SplitList(v) },
		},
		{
			Name:        FlagYes,
			Description: "do not prompt; accept defaults and fail on missing required options",
			Kind:        KindBool,
			assign:      func(o *Options, v string) { o.Yes = v == "true" },
		},
		{
			Name:        FlagVerbose,
			Description: "enable verbose output",
			Kind:        KindBool,
			assign:      func(o *Options, v string) { o.Verbose = v == "true" },
		},
		{
			Name:        FlagConfig,
			Description: "path to config file (env: SEED_CONFIG)",
			Session:     true,
			assign:      func(o *Options, v string) { o.Config = v },
		},
	}
}
