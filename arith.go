package dd

import "math"

// Add returns x+y, correctly renormalized via two-pass compensated
// summation.
func Add(x, y DD) DD {
	s1, e1 := twoSum(x.hi, y.hi)
	s2, e2 := twoSum(x.lo, y.lo)
	e1 += s2
	s1, e1 = quickTwoSum(s1, e1)
	e1 += e2
	return dquicksum(s1, e1)
}

// Sub returns x-y.
func Sub(x, y DD) DD {
	return Add(x, Neg(y))
}

// Neg returns -x.
func Neg(x DD) DD {
	return DD{-x.hi, -x.lo}
}

// Abs returns |x|.
func Abs(x DD) DD {
	if x.hi < 0 {
		return Neg(x)
	}
	return x
}

// Inc returns x+1.
func Inc(x DD) DD { return Add(x, one) }

// Dec returns x-1.
func Dec(x DD) DD { return Sub(x, one) }

// Mul returns x*y.
func Mul(x, y DD) DD {
	p, e := twoProd(x.hi, y.hi)
	e += x.hi*y.lo + x.lo*y.hi
	return dquicksum(p, e)
}

// Sqr returns x*x, slightly cheaper than Mul(x, x) since it only needs
// one split of x.hi.
func Sqr(x DD) DD {
	s, e := twoSqr(x.hi)
	e += 2*x.hi*x.lo + x.lo*x.lo
	return dquicksum(s, e)
}

// Div returns x/y via the three-step long-division refinement of §4.D.
func Div(x, y DD) DD {
	q1 := x.hi / y.hi
	if !finite(q1) {
		return DD{q1, 0}
	}
	r := Sub(x, Mul(y, DD{q1, 0}))
	q2 := r.hi / y.hi
	r = Sub(r, Mul(y, DD{q2, 0}))
	q3 := r.hi / y.hi
	return Add(dquicksum(q1, q2), DD{q3, 0})
}

// MulPwr2 multiplies x by p, a power of two, without renormalizing:
// exact unless the scaling over/underflows a word.
func MulPwr2(x DD, p float64) DD {
	return DD{x.hi * p, x.lo * p}
}

// LdExp returns x * 2**k.
func LdExp(x DD, k int) DD {
	return DD{math.Ldexp(x.hi, k), math.Ldexp(x.lo, k)}
}

// SumOfList returns the sum of xs, accumulated left to right with the
// same compensated Add used for binary addition.
func SumOfList(xs ...DD) DD {
	s := Zero
	for _, x := range xs {
		s = Add(s, x)
	}
	return s
}
