package options

import (
	"fmt"
	"strings"

	oerrors "github.com/opmodel/seed/internal/errors"
	"github.com/opmodel/seed/internal/output"
)

// State is the resolution state of one descriptor.
type State int

// Resolution states.
const (
	Pending State = iota
	Satisfied
	Prompting
	Resolved
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Satisfied:
		return "satisfied"
	case Prompting:
		return "prompting"
	case Resolved:
		return "resolved"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Prompter asks the user a single question and returns one line of input.
type Prompter interface {
	Ask(question string) (string, error)
}

// QuestionFunc renders the question text for a descriptor.
type QuestionFunc func(d Descriptor) string

// DefaultQuestion renders the description, a required marker and the
// default value in brackets.
func DefaultQuestion(d Descriptor) string {
	var def string
	if d.HasDefault {
		def = d.Default
	}
	return output.FormatQuestion(d.Description, def, d.Required)
}

// Resolution is the outcome of a successful resolve.
type Resolution struct {
	Options Options

	// Args is the effective argument vector, including synthesized flags.
	Args []string

	// Supplied lists the flags given in the caller's argument vector.
	Supplied []string

	// Prompted lists the flags the user was asked for, in order.
	Prompted []string

	// States holds the final state of every descriptor. A successful
	// resolve leaves all of them Resolved.
	States map[string]State
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithNonInteractive disables prompting. Unsupplied options take their
// defaults; required options without one fail.
func WithNonInteractive(on bool) ResolverOption {
	return func(r *Resolver) {
		r.interactive = !on
	}
}

// WithQuestion overrides how questions are rendered.
func WithQuestion(fn QuestionFunc) ResolverOption {
	return func(r *Resolver) {
		r.question = fn
	}
}

// Resolver fills unsupplied options by prompting, one descriptor at a
// time in table order.
type Resolver struct {
	table       Table
	prompter    Prompter
	interactive bool
	question    QuestionFunc
}

// NewResolver creates a Resolver over table that asks prompter for
// missing values.
func NewResolver(table Table, prompter Prompter, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		table:       table,
		prompter:    prompter,
		interactive: true,
		question:    DefaultQuestion,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve parses args and prompts for every promptable option that was
// not given explicitly. Each answer is synthesized into the argument vector
// as --flag=value and the vector is parsed again, so answers are validated
// exactly like command-line values. The first failure stops resolution.
//
// Synthesized flags go ahead of the caller's tokens, in table order, so a
// "--" terminator in args cannot turn them into positionals.
//
// Usage errors, including missing positionals, are returned before the
// first prompt.
func (r *Resolver) Resolve(args []string) (*Resolution, error) {
	current := append([]string(nil), args...)

	parsed, err := Parse(current, r.table)
	if err != nil {
		return nil, err
	}

	res := &Resolution{
		States: make(map[string]State, len(r.table)),
	}
	for _, d := range r.table {
		res.States[d.Name] = Pending
	}

	synthesized := 0
	for _, d := range r.table {
		if parsed.Explicit(d.Name) || !d.Promptable() {
			res.States[d.Name] = Satisfied
			if parsed.Explicit(d.Name) {
				res.Supplied = append(res.Supplied, d.Name)
			}
			res.States[d.Name] = Resolved
			continue
		}

		value, err := r.answer(d, res)
		if err != nil {
			res.States[d.Name] = Failed
			output.Debug("option resolution failed", "flag", d.Name, "error", err)
			return nil, err
		}

		next := insertAt(current, synthesized, "--"+d.Name+"="+value)
		reparsed, err := Parse(next, r.table)
		if err != nil {
			res.States[d.Name] = Failed
			return nil, err
		}
		current, parsed = next, reparsed
		synthesized++
		res.States[d.Name] = Resolved
	}

	if err := checkRequired(r.table, parsed.Options); err != nil {
		return nil, err
	}

	res.Options = parsed.Options
	res.Args = current
	output.Debug("options resolved",
		"supplied", strings.Join(res.Supplied, ","),
		"prompted", strings.Join(res.Prompted, ","),
		"args", strings.Join(current, " "),
	)
	return res, nil
}

// insertAt returns a copy of args with token inserted at index i.
func insertAt(args []string, i int, token string) []string {
	out := make([]string, 0, len(args)+1)
	out = append(out, args[:i]...)
	out = append(out, token)
	return append(out, args[i:]...)
}

// checkRequired fails when a required option ended resolution empty.
func checkRequired(table Table, o Options) error {
	for _, d := range table {
		if d.Required && strings.TrimSpace(o.Value(d.Name)) == "" {
			return oerrors.NewValidationError(
				fmt.Sprintf("%s cannot be empty", d.Name), d.Name,
				fmt.Sprintf("Pass --%s on the command line", d.Name))
		}
	}
	return nil
}

// answer obtains the raw value for d, by prompting unless the resolver is
// non-interactive. An empty answer adopts the default when there is one;
// an empty answer for a required option without a default fails.
func (r *Resolver) answer(d Descriptor, res *Resolution) (string, error) {
	var raw string
	if r.interactive {
		res.States[d.Name] = Prompting
		res.Prompted = append(res.Prompted, d.Name)

		var err error
		raw, err = r.prompter.Ask(r.question(d))
		if err != nil {
			return "", fmt.Errorf("prompting for %s: %w", d.Name, err)
		}
	}

	if strings.TrimSpace(raw) == "" {
		if d.HasDefault {
			return d.Default, nil
		}
		if d.Required {
			hint := fmt.Sprintf("Pass --%s on the command line", d.Name)
			if r.interactive {
				hint += " or answer the prompt"
			}
			return "", oerrors.NewValidationError(
				fmt.Sprintf("%s cannot be empty", d.Name), d.Name, hint)
		}
	}

	out, err := d.validate(raw)
	if err != nil {
		return "", err
	}
	return out, nil
}
