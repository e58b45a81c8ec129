package math

import "github.com/dd64/dd"

// Sinh returns the hyperbolic sine of x. For |x.hi| > 0.05
// it uses the exponential form directly; for smaller arguments it uses
// the Taylor series x*(1+x²/6*(1+x²/20*(1+x²/42))) to avoid the
// catastrophic cancellation that (e^x-e^-x)/2 suffers near zero.
func Sinh(x dd.DD) dd.DD {
	if x.IsZero() {
		return x
	}
	ax := dd.Abs(x)
	if ax.Hi() > 0.05 {
		ex := Exp(x)
		return dd.MulPwr2(dd.Sub(ex, dd.Div(one, ex)), 0.5)
	}
	x2 := dd.Sqr(x)
	inner := dd.Add(one, dd.Div(x2, dd.FromFloat64(42)))
	inner = dd.Add(one, dd.Mul(dd.Div(x2, dd.FromFloat64(20)), inner))
	inner = dd.Add(one, dd.Mul(dd.Div(x2, dd.FromFloat64(6)), inner))
	return dd.Mul(x, inner)
}

// Cosh returns the hyperbolic cosine of x.
func Cosh(x dd.DD) dd.DD {
	ax := dd.Abs(x)
	if ax.Hi() > 0.05 {
		ex := Exp(x)
		return dd.MulPwr2(dd.Add(ex, dd.Div(one, ex)), 0.5)
	}
	s := Sinh(x)
	return dd.Sqrt(dd.Add(one, dd.Sqr(s)))
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(x dd.DD) dd.DD {
	ax := dd.Abs(x)
	if ax.Hi() > 0.05 {
		ex := Exp(x)
		enx := dd.Div(one, ex)
		return dd.Div(dd.Sub(ex, enx), dd.Add(ex, enx))
	}
	s := Sinh(x)
	c := dd.Sqrt(dd.Add(one, dd.Sqr(s)))
	return dd.Div(s, c)
}

// Asinh returns the inverse hyperbolic sine of x.
func Asinh(x dd.DD) dd.DD {
	return Log(dd.Add(x, dd.Sqrt(dd.Add(dd.Sqr(x), one))))
}

// Acosh returns the inverse hyperbolic cosine of x; NaN for x < 1.
func Acosh(x dd.DD) dd.DD {
	if x.IsNaN() || dd.Cmp(x, one) < 0 {
		return dd.NaN
	}
	return Log(dd.Add(x, dd.Sqrt(dd.Sub(dd.Sqr(x), one))))
}

// Atanh returns the inverse hyperbolic tangent of x; NaN for |x| >= 1.
func Atanh(x dd.DD) dd.DD {
	if x.IsNaN() || dd.Cmp(dd.Abs(x), one) >= 0 {
		return dd.NaN
	}
	ratio := dd.Div(dd.Add(one, x), dd.Sub(one, x))
	return dd.MulPwr2(Log(ratio), 0.5)
}
