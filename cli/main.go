package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mwantia/argset"
	"github.com/mwantia/argset/data"
	"github.com/mwantia/argset/log"
)

// argdump parses its own command line against a representative schema and
// dumps every resolved slot, e.g.:
//
//	argdump 42 -v --addr 127.0.0.1:8080 --out ./report.txt
func main() {
	positional := []data.Constraint{
		data.Only(data.TagInt).With(data.TagFloat),
	}

	flags := []argset.FlagSpec{
		{Name: "verbose", Abbreviation: 'v', Type: data.Unit()},
		{Name: "addr", Abbreviation: 'a', Type: data.Only(data.TagSocket).With(data.TagString)},
		{Name: "out", Abbreviation: 'o', Type: data.Only(data.TagPath)},
		{Name: "log-level", Abbreviation: 'l', Type: data.Only(data.TagString)},
		{Name: "log-file", Type: data.Only(data.TagPath)},
	}

	set, err := argset.New(positional, flags, argset.WithStrictSchema())
	if err != nil {
		fmt.Fprintf(os.Stderr, "argdump: %v\n", err)
		if errors.Is(err, argset.ErrInvalidSchema) {
			os.Exit(2)
		}
		os.Exit(1)
	}

	level := log.Info
	if _, ok := set.Named("verbose"); ok {
		level = log.Debug
	}
	if value, ok := set.Named("log-level"); ok {
		if text, ok := value.AsString(); ok {
			if parsed, ok := log.ParseLevel(text); ok {
				level = parsed
			}
		}
	}

	logger := log.NewLogger("argdump", level)
	if value, ok := set.Named("log-file"); ok {
		if path, ok := value.AsPath(); ok {
			logger = logger.WithFile(path)
		}
	}

	logger.Debug("parsed %d positional and %d named arguments",
		set.PositionalCount(), set.NamedCount())
	logger.Info("binary: %s", set.Binary())

	for i := 0; i < set.PositionalCount(); i++ {
		value, _ := set.Positional(i)
		logger.Info("positional[%d] = %s (%s)", i, value, value.Tag())
	}

	set.EachNamed(func(name string, value data.Value) bool {
		logger.Info("--%s = %s (%s)", name, value, value.Tag())
		return true
	})

	if value, ok := set.Named("addr"); ok {
		if addr, ok := value.AsSocket(); ok {
			logger.Info("addr resolved to %s", addr)
		}
	}
}
