package dd

import (
	"errors"
	"fmt"
	"testing"
)

func TestParse_Basic(t *testing.T) {
	for _, test := range []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"1", "1"},
		{"-1", "-1"},
		{"+1", "1"},
		{"1.5", "1.5"},
		{"1.", "1"},
		{"0.5", "0.5"},
		{"1e10", "10000000000"},
		{"1.5e-3", "0.0015"},
		{"1E+3", "1000"},
	} {
		got, err := Parse(test.in)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", test.in, err)
			continue
		}
		if s := Show(got); s != test.want {
			t.Errorf("Parse(%q) shows %q, want %q", test.in, s, test.want)
		}
	}
}

func TestParse_Specials(t *testing.T) {
	for _, test := range []struct {
		in   string
		is   func(DD) bool
	}{
		{"nan", DD.IsNaN},
		{"NaN", DD.IsNaN},
		{"inf", DD.IsPosInf},
		{"+Inf", DD.IsPosInf},
		{"-inf", DD.IsNegInf},
		{"infinity", DD.IsPosInf},
		{"-Infinity", DD.IsNegInf},
	} {
		got, err := Parse(test.in)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", test.in, err)
			continue
		}
		if !test.is(got) {
			t.Errorf("Parse(%q) = %v, failed predicate", test.in, got)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "abc", "1.2.3", "1e", "+", "-", ".", ".5"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", in)
		}
	}
}

func TestFromString_LenientNaN(t *testing.T) {
	if got := FromString("garbage"); !got.IsNaN() {
		t.Errorf("FromString(garbage) = %v, want NaN", got)
	}
}

func TestParse_SumForm(t *testing.T) {
	x := FromFloat64(0.1)
	sum := ShowSum(x, 20)
	got, err := Parse(sum)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", sum, err)
	}
	if got.hi != x.hi || got.lo != x.lo {
		t.Errorf("Parse(ShowSum(x)) = %v, want bit-exact %v", got, x)
	}
}

func TestParse_SumForm_RoundTrip01(t *testing.T) {
	x := FromString("0.1")
	sum := ShowSum(x, 20)
	got, err := Parse(sum)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", sum, err)
	}
	if got.hi != x.hi || got.lo != x.lo {
		t.Errorf("Parse(ShowSum(0.1)) = %v, want bit-exact %v", got, x)
	}
}

func TestParse_ErrorSentinels(t *testing.T) {
	_, err := Parse("")
	if !errors.Is(err, ErrNoDigits) {
		t.Errorf("Parse(\"\") error = %v, want wraps ErrNoDigits", err)
	}
	_, err = Parse("abc")
	if !errors.Is(err, ErrNoDigits) {
		t.Errorf("Parse(\"abc\") error = %v, want wraps ErrNoDigits", err)
	}
}

func TestScan(t *testing.T) {
	var x DD
	n, err := fmt.Sscan("3.25", &x)
	if err != nil || n != 1 {
		t.Fatalf("Sscan error: %v (n=%d)", err, n)
	}
	if Show(x) != "3.25" {
		t.Errorf("Scanned %v, want 3.25", x)
	}
}

func TestUnmarshalText(t *testing.T) {
	var x DD
	if err := x.UnmarshalText([]byte("2.5")); err != nil {
		t.Fatalf("UnmarshalText error: %v", err)
	}
	if Show(x) != "2.5" {
		t.Errorf("UnmarshalText got %v, want 2.5", x)
	}
}
