package math

import (
	"math"

	"github.com/dd64/dd"
)

// Log returns the natural logarithm of x: a domain error (x <= 0)
// yields NaN; otherwise one Newton step on f(y) = exp(y) - x,
// seeded from the binary64 logarithm of x's leading word. One step
// suffices because Newton's method doubles the number of correct
// digits per iteration and the seed already carries full binary64
// (~16 digit) accuracy.
func Log(x dd.DD) dd.DD {
	if x.IsNaN() {
		return dd.NaN
	}
	if dd.Cmp(x, one) == 0 {
		return dd.Zero
	}
	if x.Hi() <= 0 {
		return dd.NaN
	}
	if dd.Cmp(x, dd.E) == 0 {
		return one
	}
	y0 := dd.FromFloat64(math.Log(x.Hi()))
	return dd.Sub(dd.Add(y0, dd.Mul(x, Exp(dd.Neg(y0)))), one)
}

// Log2 returns the base-2 logarithm of x.
func Log2(x dd.DD) dd.DD { return dd.Div(Log(x), dd.Ln2) }

// Log10 returns the base-10 logarithm of x.
func Log10(x dd.DD) dd.DD { return dd.Div(Log(x), dd.Ln10) }
