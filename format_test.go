package dd

import "testing"

func TestShow_Specials(t *testing.T) {
	for _, test := range []struct {
		x    DD
		want string
	}{
		{Zero, "0"},
		{NegZero(), "-0"},
		{NaN, "NaN"},
		{PosInf, "+Inf"},
		{NegInf, "-Inf"},
	} {
		if got := Show(test.x); got != test.want {
			t.Errorf("Show(%v) = %q, want %q", test.x, got, test.want)
		}
	}
}

func TestShow_Fixed(t *testing.T) {
	for _, test := range []struct {
		x    DD
		want string
	}{
		{FromFloat64(3), "3"},
		{FromString("3.5"), "3.5"},
		{FromString("0.001"), "0.001"},
		{Neg(FromString("0.001")), "-0.001"},
		{FromFloat64(100), "100"},
	} {
		if got := Show(test.x); got != test.want {
			t.Errorf("Show(%v) = %q, want %q", test.x, got, test.want)
		}
	}
}

func TestShow_Pow2_100(t *testing.T) {
	x := Pow(two, 100)
	want := "1267650600228229401496703205376"
	if got := Show(x); got != want {
		t.Errorf("Show(2^100) = %q, want %q", got, want)
	}
}

func TestShowFixed_ExplicitDigits(t *testing.T) {
	x := FromString("3.14159265358979")
	if got := ShowFixed(x, 2, false); got != "3.14" {
		t.Errorf("ShowFixed(pi,2) = %q, want 3.14", got)
	}
	if got := ShowFixed(x, 5, false); got != "3.14159" {
		t.Errorf("ShowFixed(pi,5) = %q, want 3.14159", got)
	}
	if got := ShowFixed(FromFloat64(1), 3, false); got != "1.000" {
		t.Errorf("ShowFixed(1,3) = %q, want 1.000", got)
	}
}

func TestShowExp(t *testing.T) {
	x := FromString("12345")
	if got := ShowExp(x, 3, false); got != "1.23e4" {
		t.Errorf("ShowExp(12345,3) = %q, want 1.23e4", got)
	}
	if got := ShowExp(x, 3, true); got != "1.23e4" {
		t.Errorf("ShowExp(12345,3,trim) = %q, want 1.23e4", got)
	}
}

func TestShowSum(t *testing.T) {
	x := FromFloat64(0.1)
	got := ShowSum(x, 20)
	want := "0.10000000000000000555 + 0"
	if got != want {
		t.Errorf("ShowSum(naive 0.1,20) = %q, want %q", got, want)
	}
}

func TestShowSum_01Plus(t *testing.T) {
	x := FromString("0.1")
	got := ShowSum(x, 20)
	want := "0.10000000000000000555 + -5.5511151231257830103e-18"
	if got != want {
		t.Errorf("ShowSum(parsed 0.1,20) = %q, want %q", got, want)
	}
}

func TestString(t *testing.T) {
	x := FromFloat64(42)
	if x.String() != "42" {
		t.Errorf("String() = %q, want 42", x.String())
	}
}

func TestMarshalText(t *testing.T) {
	x := FromFloat64(2.5)
	b, err := x.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText error: %v", err)
	}
	if string(b) != "2.5" {
		t.Errorf("MarshalText() = %q, want 2.5", b)
	}
}
