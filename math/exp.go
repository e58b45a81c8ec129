package math

import (
	"math"

	"github.com/dd64/dd"
)

// invFact holds 1/k! for k = 3..8, the Taylor coefficients Exp's range-
// reduced series uses. Computed once at init time from the
// kernel's own arithmetic rather than hand-typed as literals: unlike the
// bit-exact constants in const.go, these do not need to match a specific
// published bit pattern, only the mathematical value 1/k!. The k!
// products are exact, since every k! up to 8! fits exactly in a float64;
// the division rounds 1/k! to DD precision.
var invFact [6]dd.DD

func init() {
	fact := dd.FromFloat64(2) // 2!
	for k := 3; k <= 8; k++ {
		fact = dd.Mul(fact, dd.FromFloat64(float64(k)))
		invFact[k-3] = dd.Div(dd.FromFloat64(1), fact)
	}
}

var one = dd.FromFloat64(1)

// Exp returns e**x (NaN for a NaN x): range-reduce by ln2 and a further
// factor of 512, evaluate exp(r)-1 by summing the Taylor series terms
// (coefficients above) until a term drops below Epsilon/512 or the 1/8!
// term has been added, undo the 512-scaling by repeated squaring (a := 2a+a², nine
// times, since 2**9 == 512), then rescale by 2**m via Ldexp.
func Exp(x dd.DD) dd.DD {
	if x.IsNaN() {
		return dd.NaN
	}
	if x.Hi() <= -709 {
		return dd.Zero
	}
	if x.Hi() >= 709 {
		return dd.PosInf
	}
	if x.IsZero() {
		return one
	}
	if dd.Cmp(x, one) == 0 {
		return dd.E
	}

	m := math.Floor(x.Hi()/dd.Ln2.Hi() + 0.5)
	r := dd.MulPwr2(dd.Sub(x, dd.Mul(dd.FromFloat64(m), dd.Ln2)), 1.0/512.0)

	p := dd.Sqr(r)
	s := dd.Add(r, dd.MulPwr2(p, 0.5))
	p = dd.Mul(p, r)
	t := dd.Mul(p, invFact[0])

	const thresh = 4.93038065763132e-32 / 512 // dd.Epsilon.Hi()/512
	i := 0
	for {
		s = dd.Add(s, t)
		p = dd.Mul(p, r)
		i++
		if i > 5 {
			break
		}
		t = dd.Mul(p, invFact[i])
		if math.Abs(t.Hi()) <= thresh {
			s = dd.Add(s, t)
			break
		}
	}

	for i := 0; i < 9; i++ {
		s = dd.Add(dd.MulPwr2(s, 2), dd.Sqr(s))
	}
	s = dd.Add(s, one)
	return dd.LdExp(s, int(m))
}
