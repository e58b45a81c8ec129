package dd

import (
	"math"
	"math/big"
)

// Round returns x rounded to the nearest integer, ties to even, with a
// correction step that inspects the low word whenever the high word
// alone leaves the rounding direction ambiguous.
func Round(x DD) DD {
	if !x.IsFinite() || x.IsZero() {
		return x
	}
	r := math.RoundToEven(x.hi)
	if r == x.hi {
		s, e := quickTwoSum(r, math.RoundToEven(x.lo))
		return DD{s, e}
	}
	if math.Abs(r-x.hi) == 0.5 {
		// hi sits exactly halfway between two integers: the sign of lo
		// decides the direction; only lo == 0 is a true tie.
		if x.lo > 0 {
			r = x.hi + 0.5
		} else if x.lo < 0 {
			r = x.hi - 0.5
		}
	}
	return DD{r, 0}
}

// Floor returns the largest integer DD not greater than x.
func Floor(x DD) DD {
	if !x.IsFinite() || x.IsZero() {
		return x
	}
	hi := math.Floor(x.hi)
	if hi == x.hi {
		s, e := quickTwoSum(hi, math.Floor(x.lo))
		return DD{s, e}
	}
	return DD{hi, 0}
}

// Ceil returns the smallest integer DD not less than x.
func Ceil(x DD) DD {
	if !x.IsFinite() || x.IsZero() {
		return x
	}
	hi := math.Ceil(x.hi)
	if hi == x.hi {
		s, e := quickTwoSum(hi, math.Ceil(x.lo))
		return DD{s, e}
	}
	return DD{hi, 0}
}

// Trunc returns x with its fractional part removed (Ceil if x < 0, else
// Floor).
func Trunc(x DD) DD {
	if x.IsNeg() {
		return Ceil(x)
	}
	return Floor(x)
}

// Fraction returns x - Trunc(x): the signed fractional part of x.
func Fraction(x DD) DD {
	return Sub(x, Trunc(x))
}

// FFraction returns x - Floor(x): the non-negative fractional part of x.
func FFraction(x DD) DD {
	return Sub(x, Floor(x))
}

// Mod returns x - Round(x/y)*y.
func Mod(x, y DD) DD {
	_, r := DivRem(x, y)
	return r
}

// DivRem returns q = Round(x/y) and r = x - q*y.
func DivRem(x, y DD) (q, r DD) {
	q = Round(Div(x, y))
	r = Sub(x, Mul(q, y))
	return q, r
}

// RoundToPrec rounds x to p decimal digits after the point: p <= 0
// rounds to the nearest integer, p > MaxPrec returns x unchanged.
func RoundToPrec(x DD, p int) DD {
	if p <= 0 {
		return Round(x)
	}
	if p > MaxPrec {
		return x
	}
	scale := Pow10(p)
	return Div(Round(Mul(x, scale)), scale)
}

// ToDouble returns the float64 nearest to x: simply x's hi word, which
// is already the correctly-rounded float64 approximation of x by the DD
// normalization invariant.
func ToDouble(x DD) float64 {
	return x.hi
}

// ToInt converts x to an arbitrary-precision integer, rounding to the
// nearest integer first. It returns nil for NaN or infinite x, which
// have no integer representation.
//
// Unlike a format-and-reparse shortcut, which loses precision at the
// ±10**30 boundary, ToInt never goes through decimal text: see
// intconv.go's ddToBigInt, which converts each rounded word exactly
// through big.Float and sums the two integers.
func ToInt(x DD) *big.Int {
	if !x.IsFinite() {
		return nil
	}
	r := Round(x)
	if r.IsZero() {
		return new(big.Int)
	}
	if a := math.Abs(r.hi); a < 1<<53-1 {
		i64 := int64(r.hi) + int64(r.lo)
		return big.NewInt(i64)
	}
	return ddToBigInt(r)
}
