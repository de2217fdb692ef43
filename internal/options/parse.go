package options

import (
	"errors"
	"io"

	"github.com/spf13/pflag"

	oerrors "github.com/opmodel/seed/internal/errors"
)

const usageHint = "Run 'seed --help' for usage."

// Parsed is the result of parsing an argument vector against a Table.
type Parsed struct {
	Options Options

	explicit map[string]bool
}

// Explicit reports whether the flag was present in the argument vector.
func (p *Parsed) Explicit(name string) bool {
	return p.explicit[name]
}

// flagValue adapts a string or list Descriptor to pflag.Value. The
// validator runs on every Set so a later occurrence of the flag replaces
// an earlier one.
type flagValue struct {
	desc Descriptor
	raw  string
	err  error
}

func (v *flagValue) String() string {
	return v.raw
}

func (v *flagValue) Set(raw string) error {
	out, err := v.desc.validate(raw)
	if err != nil {
		v.err = err
		return err
	}
	v.raw = out
	return nil
}

func (v *flagValue) Type() string {
	if v.desc.Kind == KindList {
		return "list"
	}
	return "string"
}

// AddTo registers one flag per descriptor on fs.
func (t Table) AddTo(fs *pflag.FlagSet) {
	t.addTo(fs)
}

// addTo registers the flags and returns the non-bool values keyed by name.
func (t Table) addTo(fs *pflag.FlagSet) map[string]*flagValue {
	values := make(map[string]*flagValue, len(t))
	for _, d := range t {
		usage := d.Description
		if d.HasDefault {
			usage += " (default " + d.Default + ")"
		}
		if d.Kind == KindBool {
			fs.Bool(d.Name, false, usage)
			continue
		}
		v := &flagValue{desc: d}
		values[d.Name] = v
		fs.Var(v, d.Name, usage)
	}
	return values
}

// Parse parses args against table. It is a pure function of its inputs
// and may be called repeatedly on augmented vectors.
//
// Both positionals must be present; the error names the first one missing.
// Validator rejections surface as validation errors, everything else the
// flag parser rejects as usage errors. A help request returns
// pflag.ErrHelp.
func Parse(args []string, table Table) (*Parsed, error) {
	fs := pflag.NewFlagSet("seed", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	values := table.addTo(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		for _, d := range table {
			if v, ok := values[d.Name]; ok && v.err != nil {
				return nil, v.err
			}
		}
		return nil, oerrors.NewUsageError(err.Error(), usageHint)
	}

	p := &Parsed{explicit: make(map[string]bool)}
	for _, d := range table {
		f := fs.Lookup(d.Name)
		if f.Changed {
			p.explicit[d.Name] = true
		}

		switch {
		case d.Kind == KindBool:
			d.assign(&p.Options, f.Value.String())
		case f.Changed:
			d.assign(&p.Options, values[d.Name].raw)
		case d.HasDefault:
			v, err := d.validate(d.Default)
			if err != nil {
				return nil, err
			}
			d.assign(&p.Options, v)
		}
	}

	positional := fs.Args()
	switch len(positional) {
	case 0:
		return nil, oerrors.NewUsageError("source-repo must be specified", usageHint)
	case 1:
		return nil, oerrors.NewUsageError("target must be specified", usageHint)
	}
	p.Options.SourceRepo = positional[0]
	p.Options.Target = positional[1]
	if len(positional) > 2 {
		p.Options.Extra = positional[2:]
	}

	return p, nil
}
