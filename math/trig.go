package math

import (
	"math"

	"github.com/dd64/dd"
)

// sinPi16Table holds sin(i*pi/16) for i = 0..8, the nine-angle
// range-reduction table sincos's second reduction step looks up. Unlike
// the bit-exact literals in the core package's const.go, the table is
// computed once at init time through the kernel's own arithmetic, from
// sin(pi/4) = sqrt(1/2) by the half-angle formulas
// sin(a/2) = sqrt((1-cos a)/2), cos(a/2) = sqrt((1+cos a)/2) and, for
// 3pi/16 = pi/4 - pi/16, by angle subtraction.
var sinPi16Table [9]dd.DD

func init() {
	s4 := dd.Sqrt(dd.FromFloat64(0.5))              // sin(pi/4)
	s2 := dd.Sqrt(dd.MulPwr2(dd.Sub(one, s4), 0.5)) // sin(pi/8)
	s6 := dd.Sqrt(dd.MulPwr2(dd.Add(one, s4), 0.5)) // cos(pi/8)
	s1 := dd.Sqrt(dd.MulPwr2(dd.Sub(one, s6), 0.5)) // sin(pi/16)
	s7 := dd.Sqrt(dd.MulPwr2(dd.Add(one, s6), 0.5)) // cos(pi/16)
	s3 := dd.Mul(s4, dd.Sub(s7, s1))                // sin(3pi/16)
	s5 := dd.Mul(s4, dd.Add(s7, s1))                // cos(3pi/16)
	sinPi16Table = [9]dd.DD{dd.Zero, s1, s2, s3, s4, s5, s6, s7, one}
}

// sincosPi16 returns (sin(b*pi/16), cos(b*pi/16)) for b in -8..8, using
// the table above and the identities sin(-x) = -sin(x) and
// cos(b*pi/16) == sin((8-|b|)*pi/16).
func sincosPi16(b int) (s, c dd.DD) {
	ab := b
	if ab < 0 {
		ab = -ab
	}
	s = sinPi16Table[ab]
	if b < 0 {
		s = dd.Neg(s)
	}
	c = sinPi16Table[8-ab]
	return s, c
}

// sinTaylorCoef holds (-1)**k / (2k+1)! for k = 0..9, the Taylor
// coefficients of sin evaluated by Horner in s² (see sinTaylor and
// sinPoly). At |s| = pi/32 the first omitted term is about 1e-40
// relative to s.
var sinTaylorCoef [10]dd.DD

func init() {
	sinTaylorCoef[0] = one
	fact := dd.FromFloat64(1)
	sign := dd.FromFloat64(1)
	for k := 1; k <= 9; k++ {
		fact = dd.Mul(fact, dd.FromFloat64(float64(2*k)))
		fact = dd.Mul(fact, dd.FromFloat64(float64(2*k+1)))
		sign = dd.Neg(sign)
		sinTaylorCoef[k] = dd.Div(sign, fact)
	}
}

// sinTaylor evaluates the truncated sin Taylor series at x; Sincos
// applies it to the reduced argument only.
func sinTaylor(x dd.DD) dd.DD {
	return dd.Mul(x, sinPoly(dd.Sqr(x)))
}

// sinPoly evaluates sum_k sinTaylorCoef[k] * s2**k by Horner, where s2
// is the square of the reduced argument s: a 10-coefficient Taylor
// polynomial in s2.
func sinPoly(s2 dd.DD) dd.DD {
	acc := sinTaylorCoef[9]
	for k := 8; k >= 0; k-- {
		acc = dd.Add(sinTaylorCoef[k], dd.Mul(s2, acc))
	}
	return acc
}

// Sincos returns (sin(theta), cos(theta)). For tiny
// arguments it uses the small-angle approximation directly; otherwise
// it range-reduces theta to within pi/32 of zero by three successive
// multiple-angle subtractions (by 2*pi, then by pi/2, then by pi/16),
// evaluates sin/cos of the small residual from the Taylor series above,
// and recombines by angle addition.
func Sincos(theta dd.DD) (s, c dd.DD) {
	if theta.IsNaN() || theta.IsInf() {
		return dd.NaN, dd.NaN
	}
	if math.Abs(theta.Hi()) < 1e-11 {
		return theta, dd.Sub(one, dd.Div(dd.Sqr(theta), dd.FromFloat64(2)))
	}

	z := dd.Round(dd.Div(theta, dd.TwoPi))
	r := dd.Sub(theta, dd.Mul(dd.TwoPi, z))

	qa := math.Floor(r.Hi()/dd.Pi2.Hi() + 0.5)
	a := int(qa)
	t := dd.Sub(r, dd.Mul(dd.Pi2, dd.FromFloat64(qa)))

	qb := math.Floor(t.Hi()/dd.Pi16.Hi() + 0.5)
	b := int(qb)
	ss := dd.Sub(t, dd.Mul(dd.Pi16, dd.FromFloat64(qb)))

	sinS := sinTaylor(ss)
	cosS := dd.Sqrt(dd.Sub(one, dd.Sqr(sinS)))

	sb, cb := sincosPi16(b)
	sinPhi := dd.Add(dd.Mul(sb, cosS), dd.Mul(cb, sinS))
	cosPhi := dd.Sub(dd.Mul(cb, cosS), dd.Mul(sb, sinS))

	switch ((a % 4) + 4) % 4 {
	case 0:
		return sinPhi, cosPhi
	case 1:
		return cosPhi, dd.Neg(sinPhi)
	case 2:
		return dd.Neg(sinPhi), dd.Neg(cosPhi)
	default: // 3
		return dd.Neg(cosPhi), sinPhi
	}
}

// Sin returns sin(theta).
func Sin(theta dd.DD) dd.DD { s, _ := Sincos(theta); return s }

// Cos returns cos(theta).
func Cos(theta dd.DD) dd.DD { _, c := Sincos(theta); return c }

// Tan returns sin(theta)/cos(theta).
func Tan(theta dd.DD) dd.DD { s, c := Sincos(theta); return dd.Div(s, c) }

// Asin returns the arcsine of x: NaN outside [-1, 1],
// +-pi/2 at the endpoints, atan2(x, sqrt(1-x^2)) otherwise.
func Asin(x dd.DD) dd.DD {
	if x.IsNaN() {
		return dd.NaN
	}
	absX := dd.Abs(x)
	switch dd.Cmp(absX, one) {
	case 1:
		return dd.NaN
	case 0:
		if x.IsNeg() {
			return dd.Neg(dd.Pi2)
		}
		return dd.Pi2
	}
	return Atan2(x, dd.Sqrt(dd.Sub(one, dd.Sqr(x))))
}

// Acos returns the arccosine of x.
func Acos(x dd.DD) dd.DD {
	if x.IsNaN() {
		return dd.NaN
	}
	absX := dd.Abs(x)
	switch dd.Cmp(absX, one) {
	case 1:
		return dd.NaN
	case 0:
		if x.IsNeg() {
			return dd.Pi
		}
		return dd.Zero
	}
	return Atan2(dd.Sqrt(dd.Sub(one, dd.Sqr(x))), x)
}

// Atan returns the arctangent of x.
func Atan(x dd.DD) dd.DD { return Atan2(x, one) }

// Atan2 returns the angle of the point (x, y), with these special cases
// returned as exact constants: an x or y of zero gives 0, +-pi/2 or pi;
// x == y gives pi/4 and x == -y gives 3pi/4, each negated when y is
// negative (so (-1, -1) gives -pi/4 and (1, -1) gives -3pi/4, not the
// angles of those points). The generic case seeds a binary64
// atan2 and refines it with one
// Newton correction, choosing the more numerically stable of the two
// symmetric update formulas depending on which axis y/x is closer to.
func Atan2(y, x dd.DD) dd.DD {
	if x.IsNaN() || y.IsNaN() {
		return dd.NaN
	}
	if x.IsZero() {
		if y.IsZero() {
			return dd.Zero
		}
		if y.IsNeg() {
			return dd.Neg(dd.Pi2)
		}
		return dd.Pi2
	}
	if y.IsZero() {
		if x.IsNeg() {
			return dd.Pi
		}
		return dd.Zero
	}
	if dd.Cmp(x, y) == 0 {
		if y.IsNeg() {
			return dd.Neg(dd.Pi4)
		}
		return dd.Pi4
	}
	if dd.Cmp(x, dd.Neg(y)) == 0 {
		if y.IsNeg() {
			return dd.Neg(dd.Pi34)
		}
		return dd.Pi34
	}

	z := dd.FromFloat64(math.Atan2(y.Hi(), x.Hi()))
	r2 := dd.Add(dd.Sqr(x), dd.Sqr(y))
	xr := dd.Div(x, dd.Sqrt(r2))
	yr := dd.Div(y, dd.Sqrt(r2))

	sz, cz := Sincos(z)
	if math.Abs(xr.Hi()) > math.Abs(yr.Hi()) {
		return dd.Add(z, dd.Div(dd.Sub(yr, sz), cz))
	}
	return dd.Sub(z, dd.Div(dd.Sub(xr, cz), sz))
}
