// Package checked provides a sticky-error wrapper around the dd
// package's NaN/Inf-coded error model, layered on top of the kernel
// without changing it. A Context handle routes every operation through
// itself, with one error field checked at the end of a sequence of
// operations rather than after every step, turning the kernel's silent
// NaN results (and Exp's overflow to +Inf) into a caught, named error;
// other overflows to ±Inf are not recorded. This mirrors the way
// github.com/cockroachdb/apd's Context wraps each operation's error
// with the operation's name.
package checked

import (
	"github.com/pkg/errors"

	"github.com/dd64/dd"
	ddmath "github.com/dd64/dd/math"
)

// ErrDomain is the sentinel wrapped by a Context's sticky error when an
// operation hits a domain error: negative sqrt, non-positive log,
// out-of-range inverse trig/hyperbolic, and so on.
var ErrDomain = errors.New("dd: domain error")

// ErrOverflow is the sentinel wrapped when an operation overflows to
// +-Inf.
var ErrOverflow = errors.New("dd: overflow")

// A Context accumulates a sticky error across a sequence of DD
// operations. Once set, every further proxied operation on the Context
// is a no-op that returns NaN: callers check Err once at the end of a
// computation instead of after every step.
type Context struct {
	err error
}

// Err returns the first error the Context has accumulated, or nil.
func (c *Context) Err() error { return c.err }

// Reset clears the Context's sticky error so it can be reused.
func (c *Context) Reset() { c.err = nil }

func (c *Context) unary(name string, x dd.DD, f func(dd.DD) dd.DD) dd.DD {
	if c.err != nil {
		return dd.NaN
	}
	r := f(x)
	c.checkDomain(name, r, !x.IsNaN())
	return r
}

func (c *Context) binary(name string, x, y dd.DD, f func(dd.DD, dd.DD) dd.DD) dd.DD {
	if c.err != nil {
		return dd.NaN
	}
	r := f(x, y)
	c.checkDomain(name, r, !x.IsNaN() && !y.IsNaN())
	return r
}

func (c *Context) checkDomain(name string, r dd.DD, inputsFinite bool) {
	if r.IsNaN() && inputsFinite {
		c.err = errors.Wrap(ErrDomain, name)
	}
}

func (c *Context) checkOverflow(name string, r dd.DD, x dd.DD) dd.DD {
	if r.IsInf() && x.IsFinite() {
		c.err = errors.Wrap(ErrOverflow, name)
	}
	return r
}

// Add returns x+y.
func (c *Context) Add(x, y dd.DD) dd.DD { return c.binary("Add", x, y, dd.Add) }

// Sub returns x-y.
func (c *Context) Sub(x, y dd.DD) dd.DD { return c.binary("Sub", x, y, dd.Sub) }

// Mul returns x*y.
func (c *Context) Mul(x, y dd.DD) dd.DD { return c.binary("Mul", x, y, dd.Mul) }

// Quo returns x/y.
func (c *Context) Quo(x, y dd.DD) dd.DD { return c.binary("Quo", x, y, dd.Div) }

// Sqrt returns sqrt(x); a negative x sets a domain error.
func (c *Context) Sqrt(x dd.DD) dd.DD { return c.unary("Sqrt", x, dd.Sqrt) }

// Pow returns x**n; 0**0 sets a domain error.
func (c *Context) Pow(x dd.DD, n int) dd.DD {
	if c.err != nil {
		return dd.NaN
	}
	r := dd.Pow(x, n)
	c.checkDomain("Pow", r, !x.IsNaN())
	return r
}

// NRoot returns the n-th root of x; an invalid n or an even root of a
// negative x sets a domain error.
func (c *Context) NRoot(x dd.DD, n int) dd.DD {
	if c.err != nil {
		return dd.NaN
	}
	r := dd.NRoot(x, n)
	c.checkDomain("NRoot", r, !x.IsNaN())
	return r
}

// Exp returns e**x; an overflowing argument sets a sticky overflow
// error rather than a domain error, since Exp's out-of-range behavior
// is +-Inf/0, not NaN.
func (c *Context) Exp(x dd.DD) dd.DD {
	if c.err != nil {
		return dd.NaN
	}
	return c.checkOverflow("Exp", ddmath.Exp(x), x)
}

// Log returns ln(x); a non-positive x sets a domain error.
func (c *Context) Log(x dd.DD) dd.DD { return c.unary("Log", x, ddmath.Log) }

// Log2 returns log2(x).
func (c *Context) Log2(x dd.DD) dd.DD { return c.unary("Log2", x, ddmath.Log2) }

// Log10 returns log10(x).
func (c *Context) Log10(x dd.DD) dd.DD { return c.unary("Log10", x, ddmath.Log10) }

// Sin returns sin(x).
func (c *Context) Sin(x dd.DD) dd.DD { return c.unary("Sin", x, ddmath.Sin) }

// Cos returns cos(x).
func (c *Context) Cos(x dd.DD) dd.DD { return c.unary("Cos", x, ddmath.Cos) }

// Tan returns tan(x).
func (c *Context) Tan(x dd.DD) dd.DD { return c.unary("Tan", x, ddmath.Tan) }

// Asin returns asin(x); |x| > 1 sets a domain error.
func (c *Context) Asin(x dd.DD) dd.DD { return c.unary("Asin", x, ddmath.Asin) }

// Acos returns acos(x); |x| > 1 sets a domain error.
func (c *Context) Acos(x dd.DD) dd.DD { return c.unary("Acos", x, ddmath.Acos) }

// Atan returns atan(x).
func (c *Context) Atan(x dd.DD) dd.DD { return c.unary("Atan", x, ddmath.Atan) }

// Atan2 returns atan2(y, x).
func (c *Context) Atan2(y, x dd.DD) dd.DD { return c.binary("Atan2", y, x, ddmath.Atan2) }

// Sinh returns sinh(x).
func (c *Context) Sinh(x dd.DD) dd.DD { return c.unary("Sinh", x, ddmath.Sinh) }

// Cosh returns cosh(x).
func (c *Context) Cosh(x dd.DD) dd.DD { return c.unary("Cosh", x, ddmath.Cosh) }

// Tanh returns tanh(x).
func (c *Context) Tanh(x dd.DD) dd.DD { return c.unary("Tanh", x, ddmath.Tanh) }

// Asinh returns asinh(x).
func (c *Context) Asinh(x dd.DD) dd.DD { return c.unary("Asinh", x, ddmath.Asinh) }

// Acosh returns acosh(x); x < 1 sets a domain error.
func (c *Context) Acosh(x dd.DD) dd.DD { return c.unary("Acosh", x, ddmath.Acosh) }

// Atanh returns atanh(x); |x| >= 1 sets a domain error.
func (c *Context) Atanh(x dd.DD) dd.DD { return c.unary("Atanh", x, ddmath.Atanh) }
