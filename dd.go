package dd

import "math"

// DD is a double-double value: the unevaluated sum hi+lo of two float64
// words, denoting roughly 31 decimal digits of precision. The zero value
// is the double-double zero.
//
// DD values are immutable. Operations on them return new values; there
// is no in-place mutation and no notion of identity, unlike math/big's
// pointer-receiver API.
type DD struct {
	hi, lo float64
}

// FromFloat64 returns the DD exactly equal to x (float64 is always
// exactly representable in DD, with lo == 0).
func FromFloat64(x float64) DD {
	return DD{hi: x, lo: 0}
}

// FromWords constructs a DD directly from its two words, with no
// renormalization. Most callers want FromFloat64 or one of the
// arithmetic/parsing constructors instead; FromWords exists as the
// escape hatch for embedding bit-exact double-double literals (spec
// §9's constant and coefficient tables) from outside this package,
// since hi and lo are not exported fields.
func FromWords(hi, lo float64) DD { return DD{hi: hi, lo: lo} }

// Hi and Lo return the two float64 words that make up x, such that
// x denotes Hi()+Lo(). Mostly useful for ShowSum and for callers that
// need to round-trip through the two native words directly.
func (x DD) Hi() float64 { return x.hi }
func (x DD) Lo() float64 { return x.lo }

// IsZero reports whether x is +0 or -0.
func (x DD) IsZero() bool { return x.hi == 0 }

// IsNaN reports whether x is a NaN. Classification consults hi first,
// falling back to lo, matching spec's "nan also checks lo" rule.
func (x DD) IsNaN() bool { return math.IsNaN(x.hi) || math.IsNaN(x.lo) }

// IsInf reports whether x is +Inf or -Inf.
func (x DD) IsInf() bool { return math.IsInf(x.hi, 0) }

// IsPosInf reports whether x is exactly +Inf.
func (x DD) IsPosInf() bool { return math.IsInf(x.hi, 1) }

// IsNegInf reports whether x is exactly -Inf.
func (x DD) IsNegInf() bool { return math.IsInf(x.hi, -1) }

// IsFinite reports whether x is neither NaN nor infinite.
func (x DD) IsFinite() bool { return !x.IsNaN() && !x.IsInf() }

// Signbit reports whether x is negative or negative zero, mirroring
// math.Signbit.
func (x DD) Signbit() bool { return math.Signbit(x.hi) }

// IsNeg reports whether x < 0 (NaN and -0 are not negative in this
// predicate; they are handled by IsNaN/IsZero).
func (x DD) IsNeg() bool { return !x.IsNaN() && !x.IsZero() && x.hi < 0 }

// IsPos reports whether x > 0.
func (x DD) IsPos() bool { return !x.IsNaN() && !x.IsZero() && x.hi > 0 }

// Sign returns -1, 0, or +1 according to the sign of x; the sign of NaN
// is 0, matching math.Signbit's treatment of zero but not attempting to
// order NaN.
func (x DD) Sign() int {
	switch {
	case x.IsNaN() || x.IsZero():
		return 0
	case x.hi < 0:
		return -1
	default:
		return 1
	}
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y, or if either is NaN (see below)
//	+1 if x >  y
//
// If either x or y is NaN, Cmp returns 0 and the comparison is
// meaningless; callers that need to detect this should check IsNaN
// first. This mirrors the fact that DD has no exception mechanism:
// comparisons, like arithmetic, degrade silently on NaN.
func Cmp(x, y DD) int {
	if x.IsNaN() || y.IsNaN() {
		return 0
	}
	switch {
	case x.hi < y.hi, x.hi == y.hi && x.lo < y.lo:
		return -1
	case x.hi > y.hi, x.hi == y.hi && x.lo > y.lo:
		return 1
	default:
		return 0
	}
}

// CmpAbs compares |x| and |y|, as Cmp.
func CmpAbs(x, y DD) int {
	return Cmp(Abs(x), Abs(y))
}

// Min returns the smaller of x and y. If either is NaN, the result is
// NaN.
func Min(x, y DD) DD {
	if x.IsNaN() || y.IsNaN() {
		return NaN
	}
	if Cmp(x, y) <= 0 {
		return x
	}
	return y
}

// Max returns the larger of x and y. If either is NaN, the result is
// NaN.
func Max(x, y DD) DD {
	if x.IsNaN() || y.IsNaN() {
		return NaN
	}
	if Cmp(x, y) >= 0 {
		return x
	}
	return y
}

// WithSignOf returns x with the sign of y (the magnitude of x, the sign
// of y), mirroring math.Copysign. Exposed because Atan2's zero/sign
// special cases are most naturally phrased in terms of it.
func WithSignOf(x, y DD) DD {
	if y.Signbit() {
		if !x.Signbit() {
			return Neg(x)
		}
		return x
	}
	if x.Signbit() {
		return Neg(x)
	}
	return x
}
