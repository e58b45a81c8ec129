package dd

import "math"

// Precomputed DD constants. The four transcendental constants
// (Pi, E, Ln2, Ln10) are embedded as bit-exact float64 pairs, not
// derived at runtime: faithfully rounding a decimal literal to two
// float64s does not reliably reproduce the exact pair a
// correctly-implemented double-double library needs (§9). The
// fractions and multiples of Pi are computed from the Pi pair at
// package initialization (see below).
var (
	// Pi is the double-double value of the mathematical constant π.
	Pi = DD{3.141592653589793116e+00, 1.224646799147353207e-16}
	// E is the double-double value of the mathematical constant e.
	E = DD{2.718281828459045091e+00, 1.445646891729250158e-16}
	// Ln2 is the double-double value of the natural logarithm of 2.
	Ln2 = DD{6.931471805599452862e-01, 2.319046813846299558e-17}
	// Ln10 is the double-double value of the natural logarithm of 10.
	Ln10 = DD{2.302585092994045901e+00, -2.170756223382249351e-16}

	// TwoPi, Pi2, Pi4, Pi16 are derived from Pi by exact
	// multiplication/division by a power of two (MulPwr2 never loses a
	// bit), so they remain bit-exact double-double values. Pi34 is the
	// DD sum Pi2+Pi4.
	TwoPi = MulPwr2(Pi, 2)
	Pi2   = MulPwr2(Pi, 0.5)
	Pi4   = MulPwr2(Pi, 0.25)
	Pi34  = Add(Pi2, Pi4)
	Pi16  = MulPwr2(Pi, 1.0/16)

	// Epsilon is the machine epsilon of DD: half the gap between 1 and
	// the next representable DD value, roughly 4.93e-32 == 2**-104.
	Epsilon = DD{4.93038065763132e-32, 0}

	// MaxValue is the largest finite normalized DD value.
	MaxValue = DD{1.79769313486231570815e+308, 9.97920154767359795037e+291}
	// MinValue is the smallest positive normalized DD value, roughly
	// 2.004e-292; below this the low word can no longer be
	// distinguished from zero (spec's non-goal on subnormal DDs).
	MinValue = DD{2.0041683600089728e-292, 0}

	// Zero, NaN, PosInf, NegInf are the DD special values.
	Zero    = DD{0, 0}
	NaN     = DD{math.NaN(), math.NaN()}
	PosInf  = DD{math.Inf(1), 0}
	NegInf  = DD{math.Inf(-1), 0}
	negZero = DD{math.Copysign(0, -1), 0}
)

// NegZero returns the DD negative zero.
func NegZero() DD { return negZero }

// one, two, half, ten are small integer/fraction constants used
// throughout the kernel; kept unexported since they are not part of the
// documented constant surface (callers get only the named constants
// above).
var (
	one  = DD{1, 0}
	two  = DD{2, 0}
	half = DD{0.5, 0}
	ten  = DD{10, 0}
)

// MaxPrec is the largest precision accepted by RoundToPrec and the
// formatting functions.
const MaxPrec = 31

// DefaultPrec is the precision used by Show when no explicit precision
// is requested.
const DefaultPrec = 31
