package dd

import "testing"

func TestRound_TiesToEven(t *testing.T) {
	for _, test := range []struct {
		in   DD
		want float64
	}{
		{FromFloat64(2.5), 2},
		{FromFloat64(3.5), 4},
		{FromFloat64(-2.5), -2},
		{FromFloat64(2.4), 2},
		{FromFloat64(2.6), 3},
	} {
		if got := Round(test.in); got.hi != test.want {
			t.Errorf("Round(%v) = %v, want %v", test.in, got.hi, test.want)
		}
	}
}

func TestFloorCeilTrunc(t *testing.T) {
	x := FromString("1.7")
	nx := FromString("-1.7")
	if got := Floor(x); got.hi != 1 {
		t.Errorf("Floor(1.7) = %v, want 1", got)
	}
	if got := Ceil(x); got.hi != 2 {
		t.Errorf("Ceil(1.7) = %v, want 2", got)
	}
	if got := Floor(nx); got.hi != -2 {
		t.Errorf("Floor(-1.7) = %v, want -2", got)
	}
	if got := Ceil(nx); got.hi != -1 {
		t.Errorf("Ceil(-1.7) = %v, want -1", got)
	}
	if got := Trunc(x); got.hi != 1 {
		t.Errorf("Trunc(1.7) = %v, want 1", got)
	}
	if got := Trunc(nx); got.hi != -1 {
		t.Errorf("Trunc(-1.7) = %v, want -1", got)
	}
}

func TestFraction(t *testing.T) {
	x := FromString("5.25")
	if got := Fraction(x); Cmp(got, FromString("0.25")) != 0 {
		t.Errorf("Fraction(5.25) = %v, want 0.25", got)
	}
	nx := FromString("-5.25")
	if got := Fraction(nx); Cmp(got, FromString("-0.25")) != 0 {
		t.Errorf("Fraction(-5.25) = %v, want -0.25", got)
	}
	if got := FFraction(nx); Cmp(got, FromString("0.75")) != 0 {
		t.Errorf("FFraction(-5.25) = %v, want 0.75", got)
	}
}

func TestDivRem(t *testing.T) {
	x := FromFloat64(7)
	y := FromFloat64(3)
	q, r := DivRem(x, y)
	if q.hi != 2 {
		t.Errorf("DivRem(7,3) q = %v, want 2", q)
	}
	if r.hi != 1 {
		t.Errorf("DivRem(7,3) r = %v, want 1", r)
	}
}

func TestRoundToPrec(t *testing.T) {
	x := FromString("3.14159265")
	if got := Show(RoundToPrec(x, 2)); got != "3.14" {
		t.Errorf("RoundToPrec(pi,2) = %q, want %q", got, "3.14")
	}
	if got := RoundToPrec(x, MaxPrec+1); Cmp(got, x) != 0 {
		t.Errorf("RoundToPrec(x, MaxPrec+1) should return x unchanged, got %v", got)
	}
}

func TestToInt_SmallAndLarge(t *testing.T) {
	if got := ToInt(FromFloat64(42)).Int64(); got != 42 {
		t.Errorf("ToInt(42) = %d, want 42", got)
	}
	big2_100 := Pow(two, 100)
	got := ToInt(big2_100).String()
	want := "1267650600228229401496703205376"
	if got != want {
		t.Errorf("ToInt(2^100) = %s, want %s", got, want)
	}
}

func TestToInt_NonFinite(t *testing.T) {
	if ToInt(NaN) != nil {
		t.Error("ToInt(NaN) should be nil")
	}
	if ToInt(PosInf) != nil {
		t.Error("ToInt(+Inf) should be nil")
	}
}
