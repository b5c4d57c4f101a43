package argset

import "errors"

// Parse failures form a closed set of user-input errors. Callers branch with
// errors.Is; the wrapped message carries the offending token and position for
// direct display.
var (
	// Token stream errors
	ErrEmptyArguments = errors.New("argset: argument list is empty")

	// Flag classification errors
	ErrUnknownFlag         = errors.New("argset: unknown flag")
	ErrUnknownAbbreviation = errors.New("argset: unknown flag abbreviation")
	ErrMissingFlagValue    = errors.New("argset: flag needs a value")
	ErrInvalidFlagValue    = errors.New("argset: invalid flag value")

	// Positional binding errors
	ErrTooManyPositionals     = errors.New("argset: too many positional arguments")
	ErrInvalidPositionalValue = errors.New("argset: invalid positional argument")
	ErrTooFewPositionals      = errors.New("argset: not enough positional arguments")

	// Schema errors are programmer mistakes, not user input.
	ErrInvalidSchema = errors.New("argset: invalid schema")
)
