package argset

import "github.com/mwantia/argset/data"

type ParseOptions struct {
	StrictSchema bool
	Resolver     data.Resolver
}

type ParseOption func(*ParseOptions) error

func newDefaultParseOptions() *ParseOptions {
	return &ParseOptions{
		Resolver: data.DefaultResolver,
	}
}

// WithStrictSchema validates the declared flags before parsing, failing fast
// on duplicate names or abbreviations instead of silently shadowing them.
func WithStrictSchema() ParseOption {
	return func(opts *ParseOptions) error {
		opts.StrictSchema = true
		return nil
	}
}

// WithResolver substitutes the socket-representation resolver, keeping tests
// deterministic without name-lookup I/O.
func WithResolver(resolver data.Resolver) ParseOption {
	return func(opts *ParseOptions) error {
		opts.Resolver = resolver
		return nil
	}
}
