package dd

import "math"

// Pow returns x**n for an integer exponent n, computed by binary
// exponentiation on |n| (the "Russian peasant" doubling: square and
// halve the exponent, multiply into the accumulator on odd bits),
// inverting the result at the end if n < 0.
func Pow(x DD, n int) DD {
	if n == 0 {
		if x.IsZero() {
			return NaN
		}
		return one
	}
	neg := n < 0
	m := n
	if neg {
		m = -m
	}
	result := one
	base := x
	for m > 0 {
		if m&1 != 0 {
			result = Mul(result, base)
		}
		m >>= 1
		if m > 0 {
			base = Mul(base, base)
		}
	}
	if neg {
		return Div(one, result)
	}
	return result
}

// Pow2 returns 2**n.
func Pow2(n int) DD { return Pow(two, n) }

// Pow10 returns 10**n.
func Pow10(n int) DD { return Pow(ten, n) }

// Sqrt returns the square root of x, using Karp's strategy: a fast
// binary64 reciprocal-square-root seed, refined by a single Newton
// correction carried out in DD precision.
func Sqrt(x DD) DD {
	if x.IsZero() {
		return x // sqrt(+-0) = +-0
	}
	if x.IsNeg() {
		return NaN
	}
	if x.IsNaN() {
		return NaN
	}
	if x.IsPosInf() {
		return PosInf
	}
	a := 1 / math.Sqrt(x.hi)
	t1 := x.hi * a
	t1sq := Sqr(DD{t1, 0})
	diff := Sub(x, t1sq)
	t2 := (diff.hi * a) / 2
	s, e := twoSum(t1, t2)
	return DD{s, e}
}

// NRoot returns the n-th root of x: x for n == 1, Sqrt(x) for n == 2,
// NaN for n <= 0 or for an even root of a negative x, and otherwise one
// Newton iteration on f(a) = a**-n - |x|, seeded from a host binary64
// exp/log pair.
func NRoot(x DD, n int) DD {
	switch {
	case n == 1:
		return x
	case n == 2:
		return Sqrt(x)
	case n <= 0:
		return NaN
	}
	if x.IsNaN() {
		return NaN
	}
	if x.IsZero() {
		return x
	}
	if n%2 == 0 && x.IsNeg() {
		return NaN
	}
	ax := Abs(x)
	seed := math.Exp(-math.Log(ax.hi) / float64(n))
	a0 := FromFloat64(seed)
	an := Pow(a0, n)
	nf := FromFloat64(float64(n))
	a1 := Add(a0, Div(Mul(a0, Sub(one, Mul(ax, an))), nf))
	if x.IsNeg() {
		return Div(Neg(one), a1)
	}
	return Div(one, a1)
}
