package argset

import (
	"fmt"

	"github.com/mwantia/argset/data"
)

// FlagSpec declares a named flag the parser accepts.
//
//	argset.FlagSpec{
//		Name:         "verbose",
//		Abbreviation: 'v',
//		Type:         data.Unit(),
//	}
//
// is matched by --verbose or -v. Named flags are always optional; an
// unsupplied flag is simply absent from the result.
type FlagSpec struct {
	// Name matches --name on the command line and keys the parsed result,
	// even when the flag was supplied through its abbreviation.
	Name string

	// Abbreviation optionally matches -a. Zero means no abbreviation.
	Abbreviation rune

	// Type lists the representations the flag value may resolve into.
	// The unit constraint makes the flag presence-only.
	Type data.Constraint
}

// Schema bundles the positional constraints and flag declarations for one
// parse.
type Schema struct {
	Positional []data.Constraint
	Flags      []FlagSpec
}

// Validate rejects schemas that would mask programmer errors at parse time:
// empty flag names, duplicate names and duplicate abbreviations.
func (s Schema) Validate() error {
	names := make(map[string]struct{}, len(s.Flags))
	abbrs := make(map[rune]struct{}, len(s.Flags))

	for _, flag := range s.Flags {
		if flag.Name == "" {
			return fmt.Errorf("%w: flag name cannot be empty", ErrInvalidSchema)
		}

		if _, exists := names[flag.Name]; exists {
			return fmt.Errorf("%w: duplicate flag name: --%s", ErrInvalidSchema, flag.Name)
		}
		names[flag.Name] = struct{}{}

		if flag.Abbreviation == 0 {
			continue
		}

		if _, exists := abbrs[flag.Abbreviation]; exists {
			return fmt.Errorf("%w: duplicate abbreviation: -%c", ErrInvalidSchema, flag.Abbreviation)
		}
		abbrs[flag.Abbreviation] = struct{}{}
	}

	return nil
}
