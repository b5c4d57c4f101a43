package data

import (
	"cmp"
	"math"
	"net/netip"
	"strconv"
	"strings"
)

// Value is the resolved, strongly typed result of parsing one token against
// one constraint. A Value holds exactly one representation and is immutable
// once produced.
type Value struct {
	tag  TypeTag
	b    bool
	i    int32
	f    float32
	addr netip.AddrPort
	text string // shared by path and string
}

func BoolValue(v bool) Value {
	return Value{tag: TagBool, b: v}
}

func IntValue(v int32) Value {
	return Value{tag: TagInt, i: v}
}

func FloatValue(v float32) Value {
	return Value{tag: TagFloat, f: v}
}

func SocketValue(addr netip.AddrPort) Value {
	return Value{tag: TagSocket, addr: addr}
}

func PathValue(path string) Value {
	return Value{tag: TagPath, text: path}
}

func StringValue(text string) Value {
	return Value{tag: TagString, text: text}
}

// Tag returns the representation this value holds.
func (v Value) Tag() TypeTag {
	return v.tag
}

// AsBool returns the boolean representation, or false if the value holds a
// different representation.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.tag == TagBool
}

func (v Value) AsInt() (int32, bool) {
	return v.i, v.tag == TagInt
}

func (v Value) AsFloat() (float32, bool) {
	return v.f, v.tag == TagFloat
}

func (v Value) AsSocket() (netip.AddrPort, bool) {
	return v.addr, v.tag == TagSocket
}

func (v Value) AsPath() (string, bool) {
	return v.text, v.tag == TagPath
}

func (v Value) AsString() (string, bool) {
	return v.text, v.tag == TagString
}

// Compare orders values by representation tag first (the precedence order),
// then by the representation's natural order. Floats use the IEEE-754 total
// order so the comparison is defined for every pair, NaN included.
func (v Value) Compare(other Value) int {
	if v.tag != other.tag {
		return compareOrdered(v.tag, other.tag)
	}

	switch v.tag {
	case TagBool:
		return compareBool(v.b, other.b)
	case TagInt:
		return compareOrdered(v.i, other.i)
	case TagFloat:
		return compareFloat(v.f, other.f)
	case TagSocket:
		// netip.AddrPort.Compare requires Go 1.23; this is its exact
		// definition (address first, then port) for older toolchains.
		if c := v.addr.Addr().Compare(other.addr.Addr()); c != 0 {
			return c
		}
		return cmp.Compare(v.addr.Port(), other.addr.Port())
	default:
		return strings.Compare(v.text, other.text)
	}
}

// Equal reports whether both values hold the same representation and compare
// equal under the total order.
func (v Value) Equal(other Value) bool {
	return v.Compare(other) == 0
}

// String renders the canonical textual form of the value: booleans as
// true/false, numbers in decimal, sockets as host:port, paths and strings
// as their raw text.
func (v Value) String() string {
	switch v.tag {
	case TagBool:
		return strconv.FormatBool(v.b)
	case TagInt:
		return strconv.FormatInt(int64(v.i), 10)
	case TagFloat:
		return strconv.FormatFloat(float64(v.f), 'g', -1, 32)
	case TagSocket:
		return v.addr.String()
	default:
		return v.text
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b: // false < true
		return -1
	default:
		return 1
	}
}

func compareOrdered[T TypeTag | int32](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// IEEE-754 total order: flipping the lower bits of negative floats turns the
// sign-magnitude bit pattern into a monotonic two's-complement integer.
func compareFloat(a, b float32) int {
	ab := int32(math.Float32bits(a))
	bb := int32(math.Float32bits(b))

	ab ^= int32(uint32(ab>>31) >> 1)
	bb ^= int32(uint32(bb>>31) >> 1)

	return compareOrdered(ab, bb)
}
