package math

import (
	"math"
	"testing"

	"github.com/dd64/dd"
)

func TestSincos_Pythagorean(t *testing.T) {
	thetas := []float64{0, 0.3, 1, 2.5, -4, 1000, 1e6}
	for _, th := range thetas {
		x := dd.FromFloat64(th)
		s, c := Sincos(x)
		sum := dd.Add(dd.Sqr(s), dd.Sqr(c))
		diff := dd.Sub(sum, one)
		if math.Abs(diff.Hi()) > 8*4.93038065763132e-32 {
			t.Errorf("sin^2+cos^2-1 at theta=%v: %v, exceeds 8*eps", th, diff)
		}
	}
}

func TestSincos_PiNearZero(t *testing.T) {
	s := Sin(dd.Pi)
	if math.Abs(s.Hi()) > 1e-28 {
		t.Errorf("sin(pi) = %v, want ~0", s)
	}
	c := Cos(dd.Pi)
	d := dd.Add(c, one)
	if math.Abs(d.Hi()) > 1e-28 {
		t.Errorf("cos(pi)+1 = %v, want ~0", d)
	}
}

func TestAsinAcos_Domain(t *testing.T) {
	if got := Asin(dd.FromFloat64(2)); !got.IsNaN() {
		t.Errorf("Asin(2) = %v, want NaN", got)
	}
	if got := Acos(dd.FromFloat64(-2)); !got.IsNaN() {
		t.Errorf("Acos(-2) = %v, want NaN", got)
	}
	if got := Asin(one); dd.Cmp(got, dd.Pi2) != 0 {
		t.Errorf("Asin(1) = %v, want Pi/2", got)
	}
	if got := Acos(dd.Neg(one)); dd.Cmp(got, dd.Pi) != 0 {
		t.Errorf("Acos(-1) = %v, want Pi", got)
	}
}

func TestAtan2_SpecialCases(t *testing.T) {
	one_ := dd.FromFloat64(1)

	if got := Atan2(dd.Zero, dd.Zero); !got.IsZero() {
		t.Errorf("Atan2(0,0) = %v, want 0", got)
	}
	if got := Atan2(dd.Zero, dd.Neg(one_)); dd.Cmp(got, dd.Pi) != 0 {
		t.Errorf("Atan2(0,-1) = %v, want Pi", got)
	}
	if got := Atan2(dd.Zero, one_); !got.IsZero() {
		t.Errorf("Atan2(0,1) = %v, want 0", got)
	}
	if got := Atan2(one_, dd.Zero); dd.Cmp(got, dd.Pi2) != 0 {
		t.Errorf("Atan2(1,0) = %v, want Pi/2", got)
	}
	if got := Atan2(dd.Neg(one_), dd.Zero); dd.Cmp(got, dd.Neg(dd.Pi2)) != 0 {
		t.Errorf("Atan2(-1,0) = %v, want -Pi/2", got)
	}
	if got := Atan2(one_, one_); dd.Cmp(got, dd.Pi4) != 0 {
		t.Errorf("Atan2(1,1) = %v, want Pi/4", got)
	}
	if got := Atan2(dd.Neg(one_), dd.Neg(one_)); dd.Cmp(got, dd.Neg(dd.Pi4)) != 0 {
		t.Errorf("Atan2(-1,-1) = %v, want -Pi/4", got)
	}
	if got := Atan2(one_, dd.Neg(one_)); dd.Cmp(got, dd.Pi34) != 0 {
		t.Errorf("Atan2(1,-1) = %v, want 3Pi/4", got)
	}
	if got := Atan2(dd.Neg(one_), one_); dd.Cmp(got, dd.Neg(dd.Pi34)) != 0 {
		t.Errorf("Atan2(-1,1) = %v, want -3Pi/4", got)
	}
}

func TestTan(t *testing.T) {
	got := Tan(dd.FromFloat64(0))
	if !got.IsZero() {
		t.Errorf("Tan(0) = %v, want 0", got)
	}
}
