package argset_test

import (
	"errors"
	"testing"

	"github.com/mwantia/argset"
	"github.com/mwantia/argset/data"
)

func TestSchema_Validate(t *testing.T) {
	valid := argset.Schema{
		Positional: []data.Constraint{data.Only(data.TagInt)},
		Flags: []argset.FlagSpec{
			{Name: "verbose", Abbreviation: 'v', Type: data.Unit()},
			{Name: "out", Abbreviation: 'o', Type: data.Only(data.TagPath)},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid schema rejected: %v", err)
	}

	cases := []struct {
		name  string
		flags []argset.FlagSpec
	}{
		{
			"empty name",
			[]argset.FlagSpec{{Name: "", Type: data.Unit()}},
		},
		{
			"duplicate name",
			[]argset.FlagSpec{
				{Name: "out", Type: data.Only(data.TagPath)},
				{Name: "out", Type: data.Only(data.TagString)},
			},
		},
		{
			"duplicate abbreviation",
			[]argset.FlagSpec{
				{Name: "out", Abbreviation: 'o', Type: data.Only(data.TagPath)},
				{Name: "other", Abbreviation: 'o', Type: data.Unit()},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			schema := argset.Schema{Flags: tc.flags}
			if err := schema.Validate(); !errors.Is(err, argset.ErrInvalidSchema) {
				t.Errorf("got %v, want ErrInvalidSchema", err)
			}
		})
	}
}

func TestParseSchema_ValidatesFirst(t *testing.T) {
	schema := argset.Schema{
		Flags: []argset.FlagSpec{
			{Name: "out", Type: data.Only(data.TagPath)},
			{Name: "out", Type: data.Only(data.TagString)},
		},
	}

	_, err := argset.ParseSchema([]string{"prog"}, schema)
	if !errors.Is(err, argset.ErrInvalidSchema) {
		t.Errorf("got %v, want ErrInvalidSchema", err)
	}
}

func TestFromArgs_StrictSchema(t *testing.T) {
	flags := []argset.FlagSpec{
		{Name: "out", Type: data.Only(data.TagPath)},
		{Name: "out", Type: data.Only(data.TagString)},
	}

	_, err := argset.FromArgs([]string{"prog"}, nil, flags, argset.WithStrictSchema())
	if !errors.Is(err, argset.ErrInvalidSchema) {
		t.Errorf("got %v, want ErrInvalidSchema", err)
	}

	// Without the option the duplicate is tolerated; the first declaration
	// shadows the second, matching the original lookup behavior.
	set, err := argset.FromArgs([]string{"prog", "--out", "/tmp/x"}, nil, flags)
	if err != nil {
		t.Fatalf("FromArgs failed: %v", err)
	}

	value, ok := set.Named("out")
	if !ok {
		t.Fatal("out flag missing")
	}
	if value.Tag() != data.TagPath {
		t.Errorf("out resolved to %s, want path", value.Tag())
	}
}
