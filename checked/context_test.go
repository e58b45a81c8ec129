package checked

import (
	"errors"
	"testing"

	"github.com/dd64/dd"
)

func TestContext_Sticky(t *testing.T) {
	var c Context
	got := c.Sqrt(dd.FromFloat64(-1))
	if !got.IsNaN() {
		t.Fatalf("Sqrt(-1) = %v, want NaN", got)
	}
	if c.Err() == nil {
		t.Fatal("expected sticky domain error after Sqrt(-1)")
	}
	if !errors.Is(c.Err(), ErrDomain) {
		t.Errorf("Err() = %v, want wraps ErrDomain", c.Err())
	}

	// Further calls are no-ops until Reset.
	got2 := c.Add(dd.FromFloat64(1), dd.FromFloat64(1))
	if !got2.IsNaN() {
		t.Errorf("Add after sticky error = %v, want NaN", got2)
	}

	c.Reset()
	if c.Err() != nil {
		t.Errorf("Err() after Reset = %v, want nil", c.Err())
	}
	if got3 := c.Add(dd.FromFloat64(1), dd.FromFloat64(1)); got3.Hi() != 2 {
		t.Errorf("Add after Reset = %v, want 2", got3)
	}
}

func TestContext_Overflow(t *testing.T) {
	var c Context
	got := c.Exp(dd.FromFloat64(1000))
	if !got.IsPosInf() {
		t.Fatalf("Exp(1000) = %v, want +Inf", got)
	}
	if !errors.Is(c.Err(), ErrOverflow) {
		t.Errorf("Err() = %v, want wraps ErrOverflow", c.Err())
	}
}

func TestContext_NoErrorOnCleanComputation(t *testing.T) {
	var c Context
	x := c.Mul(dd.FromFloat64(2), dd.FromFloat64(3))
	y := c.Sqrt(x)
	_ = y
	if c.Err() != nil {
		t.Errorf("unexpected error: %v", c.Err())
	}
}

func TestContext_LogDomain(t *testing.T) {
	var c Context
	got := c.Log(dd.FromFloat64(-5))
	if !got.IsNaN() {
		t.Fatalf("Log(-5) = %v, want NaN", got)
	}
	if !errors.Is(c.Err(), ErrDomain) {
		t.Errorf("Err() = %v, want wraps ErrDomain", c.Err())
	}
}
