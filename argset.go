// Package argset is a small declarative command-line argument parser. The
// caller declares required positional constraints and optional named flags;
// parsing classifies each token, enforces arity and resolves textual values
// into the most specific allowed representation via a fixed precedence chain.
package argset

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mwantia/argset/data"
	"github.com/tidwall/btree"
)

// ArgumentSet is the result of one parse: the program name, the resolved
// positional values and the mapping of supplied named flags. It is built
// exactly once and immutable thereafter; read it through the accessors.
type ArgumentSet struct {
	binary     string
	positional []data.Value
	named      *btree.Map[string, data.Value]
}

// New parses the host process argument vector. It is a thin boundary shim
// around FromArgs; everything else in the package is a pure function of its
// inputs.
func New(positional []data.Constraint, flags []FlagSpec, opts ...ParseOption) (*ArgumentSet, error) {
	return FromArgs(os.Args, positional, flags, opts...)
}

// ParseSchema parses the given token stream against a validated schema.
func ParseSchema(args []string, schema Schema, opts ...ParseOption) (*ArgumentSet, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	return FromArgs(args, schema.Positional, schema.Flags, opts...)
}

// FromArgs parses an ordered token stream. The first token is the program
// name; the rest are classified in a single left-to-right pass with no
// backtracking. Positional arguments are required and bound in the order
// non-flag tokens appear, so flags may be interleaved freely among them.
// Named flags are optional; supplying the same flag twice keeps the later
// value. The first error aborts the whole parse.
func FromArgs(args []string, positional []data.Constraint, flags []FlagSpec, opts ...ParseOption) (*ArgumentSet, error) {
	options := newDefaultParseOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	if options.StrictSchema {
		schema := Schema{Positional: positional, Flags: flags}
		if err := schema.Validate(); err != nil {
			return nil, err
		}
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("%w: not even a program name", ErrEmptyArguments)
	}

	set := &ArgumentSet{
		binary: args[0],
		named:  btree.NewMap[string, data.Value](0),
	}

	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		token := rest[i]

		spec, err := matchFlag(flags, token)
		if err != nil {
			return nil, err
		}

		if spec != nil {
			if spec.Type.IsUnit() {
				// Presence alone is the value; no token is consumed.
				set.named.Set(spec.Name, data.BoolValue(true))
				continue
			}

			i++
			if i >= len(rest) {
				return nil, fmt.Errorf("%w: unexpected end of arguments, --%s needs a value", ErrMissingFlagValue, spec.Name)
			}

			value, ok := spec.Type.ParseWith(rest[i], options.Resolver)
			if !ok {
				return nil, fmt.Errorf("%w: %q at position %d is not a valid %s for --%s",
					ErrInvalidFlagValue, rest[i], i+1, spec.Type, spec.Name)
			}

			set.named.Set(spec.Name, value)
			continue
		}

		// Not a flag, so it must bind to the next positional slot.
		slot := len(set.positional)
		if slot >= len(positional) {
			return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrTooManyPositionals, token, i+1)
		}

		value, ok := positional[slot].ParseWith(token, options.Resolver)
		if !ok {
			return nil, fmt.Errorf("%w: %q at position %d cannot be parsed as %s",
				ErrInvalidPositionalValue, token, i+1, positional[slot])
		}

		set.positional = append(set.positional, value)
	}

	if len(set.positional) < len(positional) {
		return nil, fmt.Errorf("%w: got %d, want %d",
			ErrTooFewPositionals, len(set.positional), len(positional))
	}

	return set, nil
}

// matchFlag classifies a token: a matched FlagSpec for long or short flags,
// nil for positional candidates, an error for flag-shaped tokens that match
// no declaration. A lone "-" or any token of three or more characters with a
// single dash is a positional candidate.
func matchFlag(flags []FlagSpec, token string) (*FlagSpec, error) {
	if strings.HasPrefix(token, "--") {
		name := token[2:]
		for i := range flags {
			if flags[i].Name == name {
				return &flags[i], nil
			}
		}

		return nil, fmt.Errorf("%w: --%s does not match any declared flag name", ErrUnknownFlag, name)
	}

	if strings.HasPrefix(token, "-") && utf8.RuneCountInString(token) == 2 {
		abbr, _ := utf8.DecodeRuneInString(token[1:])
		for i := range flags {
			if flags[i].Abbreviation != 0 && flags[i].Abbreviation == abbr {
				return &flags[i], nil
			}
		}

		return nil, fmt.Errorf("%w: -%c does not match any declared abbreviation", ErrUnknownAbbreviation, abbr)
	}

	return nil, nil
}

// Binary returns the program name, the first raw token of the stream.
func (s *ArgumentSet) Binary() string {
	return s.binary
}

// Positional returns the resolved value at the given slot. Indices start at
// zero for the first declared constraint; the program name is kept
// separately. Out-of-range indices report absence rather than panicking,
// though arity enforcement makes that unreachable after a successful parse.
func (s *ArgumentSet) Positional(index int) (data.Value, bool) {
	if index < 0 || index >= len(s.positional) {
		return data.Value{}, false
	}

	return s.positional[index], true
}

// PositionalCount returns the number of bound positional values, always
// equal to the declared constraint count after a successful parse.
func (s *ArgumentSet) PositionalCount() int {
	return len(s.positional)
}

// Named returns the value of a supplied flag. Absence is the normal outcome
// for an optional flag the user did not pass, not an error.
func (s *ArgumentSet) Named(name string) (data.Value, bool) {
	return s.named.Get(name)
}

// NamedCount returns the number of supplied flags.
func (s *ArgumentSet) NamedCount() int {
	return s.named.Len()
}

// EachNamed visits every supplied flag in name order. Returning false stops
// the iteration.
func (s *ArgumentSet) EachNamed(fn func(name string, value data.Value) bool) {
	s.named.Scan(fn)
}

// String renders the set in a canonical command-line shape: binary name,
// positional values in order, then flags in name order.
func (s *ArgumentSet) String() string {
	var sb strings.Builder
	sb.WriteString(s.binary)

	for _, value := range s.positional {
		sb.WriteByte(' ')
		sb.WriteString(value.String())
	}

	s.named.Scan(func(name string, value data.Value) bool {
		fmt.Fprintf(&sb, " --%s %s", name, value)
		return true
	})

	return sb.String()
}
