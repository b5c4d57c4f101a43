package data

import (
	"math"
	"net/netip"
	"testing"
)

func TestValue_TotalOrder(t *testing.T) {
	// Strictly ascending under the tag-then-value order.
	chain := []Value{
		BoolValue(false),
		BoolValue(true),
		IntValue(-5),
		IntValue(5),
		FloatValue(1.0),
		SocketValue(netip.MustParseAddrPort("10.0.0.7:5432")),
		SocketValue(netip.MustParseAddrPort("10.0.0.7:9000")),
		SocketValue(netip.MustParseAddrPort("192.168.1.1:80")),
		PathValue("/etc/hosts"),
		PathValue("/var/log"),
		StringValue("alpha"),
		StringValue("beta"),
	}

	for i, lhs := range chain {
		for j, rhs := range chain {
			got := lhs.Compare(rhs)
			switch {
			case i < j && got >= 0:
				t.Errorf("Compare(%s, %s) = %d, want < 0", lhs, rhs, got)
			case i > j && got <= 0:
				t.Errorf("Compare(%s, %s) = %d, want > 0", lhs, rhs, got)
			case i == j && got != 0:
				t.Errorf("Compare(%s, %s) = %d, want 0", lhs, rhs, got)
			}
		}
	}
}

func TestValue_FloatTotalOrder(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))

	ascending := []float32{
		float32(math.Inf(-1)),
		-1.5,
		negZero,
		0,
		1.5,
		float32(math.Inf(1)),
		float32(math.NaN()),
	}

	for i := 0; i < len(ascending)-1; i++ {
		lhs := FloatValue(ascending[i])
		rhs := FloatValue(ascending[i+1])

		if lhs.Compare(rhs) >= 0 {
			t.Errorf("Compare(%v, %v) not ascending", ascending[i], ascending[i+1])
		}
	}

	// NaN compares equal to itself under the total order, so sorting is
	// always defined.
	nan := FloatValue(float32(math.NaN()))
	if nan.Compare(nan) != 0 {
		t.Error("NaN does not compare equal to itself")
	}
}

func TestValue_Accessors(t *testing.T) {
	addr := netip.MustParseAddrPort("127.0.0.1:8080")

	if b, ok := BoolValue(true).AsBool(); !ok || !b {
		t.Error("AsBool failed on a bool value")
	}
	if i, ok := IntValue(42).AsInt(); !ok || i != 42 {
		t.Error("AsInt failed on an int value")
	}
	if f, ok := FloatValue(4.25).AsFloat(); !ok || f != 4.25 {
		t.Error("AsFloat failed on a float value")
	}
	if s, ok := SocketValue(addr).AsSocket(); !ok || s != addr {
		t.Error("AsSocket failed on a socket value")
	}
	if p, ok := PathValue("/tmp/x").AsPath(); !ok || p != "/tmp/x" {
		t.Error("AsPath failed on a path value")
	}
	if s, ok := StringValue("raw").AsString(); !ok || s != "raw" {
		t.Error("AsString failed on a string value")
	}

	// Mismatched representations report absence.
	if _, ok := BoolValue(true).AsInt(); ok {
		t.Error("AsInt succeeded on a bool value")
	}
	if _, ok := PathValue("/tmp/x").AsString(); ok {
		t.Error("AsString succeeded on a path value")
	}
}

func TestValue_String(t *testing.T) {
	cases := []struct {
		value Value
		want  string
	}{
		{BoolValue(true), "true"},
		{BoolValue(false), "false"},
		{IntValue(-17), "-17"},
		{FloatValue(4.25), "4.25"},
		{FloatValue(1), "1"},
		{SocketValue(netip.MustParseAddrPort("127.0.0.1:8080")), "127.0.0.1:8080"},
		{PathValue("./report.txt"), "./report.txt"},
		{StringValue("raw text"), "raw text"},
	}

	for _, tc := range cases {
		if got := tc.value.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestValue_Equal(t *testing.T) {
	if !IntValue(5).Equal(IntValue(5)) {
		t.Error("equal ints are not Equal")
	}
	if IntValue(5).Equal(IntValue(6)) {
		t.Error("distinct ints are Equal")
	}

	// Same text, different representation.
	if PathValue("x").Equal(StringValue("x")) {
		t.Error("path and string with identical text are Equal")
	}
}
