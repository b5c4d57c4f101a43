package data

import (
	"net"
	"net/netip"
	"strconv"
	"strings"
)

// Constraint is an immutable set of representations a raw token is allowed
// to resolve into. The zero value is the unit constraint: no representations
// at all, meaning a flag whose presence alone is the value.
//
// Constraints are built once per schema declaration and combined with With
// or Union:
//
//	addr := data.Only(data.TagSocket).With(data.TagString)
type Constraint struct {
	tags uint8
}

// Unit returns the presence-only constraint.
func Unit() Constraint {
	return Constraint{}
}

// Only returns a constraint allowing a single representation.
func Only(tag TypeTag) Constraint {
	return Constraint{}.With(tag)
}

// With returns a copy of the constraint that also allows the given
// representation.
func (c Constraint) With(tag TypeTag) Constraint {
	return Constraint{tags: c.tags | 1<<uint(tag)}
}

// Union returns the constraint allowing every representation either side
// allows.
func (c Constraint) Union(other Constraint) Constraint {
	return Constraint{tags: c.tags | other.tags}
}

// Allows reports whether the representation is a member of the set.
func (c Constraint) Allows(tag TypeTag) bool {
	return c.tags&(1<<uint(tag)) != 0
}

// IsUnit reports whether the constraint allows no representations.
func (c Constraint) IsUnit() bool {
	return c.tags == 0
}

// Resolver turns socket-representation text into a concrete address.
// Resolution may block on a name lookup.
type Resolver func(raw string) (netip.AddrPort, error)

// DefaultResolver resolves host:port text through the net package,
// taking the first resolved address.
func DefaultResolver(raw string) (netip.AddrPort, error) {
	addr, err := net.ResolveTCPAddr("tcp", raw)
	if err != nil {
		return netip.AddrPort{}, err
	}
	return addr.AddrPort(), nil
}

// The precedence chain. Resolution walks this table in order and returns
// the first entry that is both allowed by the constraint and parses.
var precedence = []struct {
	tag     TypeTag
	attempt func(raw string, resolve Resolver) (Value, bool)
}{
	{TagBool, attemptBool},
	{TagInt, attemptInt},
	{TagFloat, attemptFloat},
	{TagSocket, attemptSocket},
	{TagPath, attemptPath},
	{TagString, attemptString},
}

// Parse resolves raw text into the most specific allowed representation.
// It returns false when none of the allowed representations match; for a
// constraint allowing path or string that can never happen.
func (c Constraint) Parse(raw string) (Value, bool) {
	return c.ParseWith(raw, DefaultResolver)
}

// ParseWith behaves like Parse but resolves socket text through the given
// resolver instead of the net package.
func (c Constraint) ParseWith(raw string, resolve Resolver) (Value, bool) {
	for _, entry := range precedence {
		if !c.Allows(entry.tag) {
			continue
		}

		if value, ok := entry.attempt(raw, resolve); ok {
			return value, true
		}
	}

	return Value{}, false
}

// Booleans parse exclusively from the exact literals 'true' and 'false'.
func attemptBool(raw string, _ Resolver) (Value, bool) {
	switch raw {
	case "true":
		return BoolValue(true), true
	case "false":
		return BoolValue(false), true
	default:
		return Value{}, false
	}
}

func attemptInt(raw string, _ Resolver) (Value, bool) {
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return Value{}, false
	}

	return IntValue(int32(v)), true
}

func attemptFloat(raw string, _ Resolver) (Value, bool) {
	v, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return Value{}, false
	}

	return FloatValue(float32(v)), true
}

// Resolution failures fold into an ordinary no-match so the chain can fall
// through to a later representation.
func attemptSocket(raw string, resolve Resolver) (Value, bool) {
	addr, err := resolve(raw)
	if err != nil || !addr.IsValid() {
		return Value{}, false
	}

	return SocketValue(addr), true
}

func attemptPath(raw string, _ Resolver) (Value, bool) {
	return PathValue(raw), true
}

func attemptString(raw string, _ Resolver) (Value, bool) {
	return StringValue(raw), true
}

// String renders the constraint for diagnostics: "flag" for the unit
// constraint, otherwise the allowed representations joined in precedence
// order, e.g. "socket|string".
func (c Constraint) String() string {
	if c.IsUnit() {
		return "flag"
	}

	names := make([]string, 0, len(precedence))
	for _, entry := range precedence {
		if c.Allows(entry.tag) {
			names = append(names, entry.tag.String())
		}
	}

	return strings.Join(names, "|")
}
