package dd

import (
	"math"
	"strconv"
)

// This file implements the DD -> decimal direction: extracting decimal
// digits and formatting them as fixed or scientific notation. The
// digit-buffer extract-round-carry idiom follows a digit-scanning loop
// style; MarshalText delegates to the String-producing method.

// extractDigits returns the prec most significant decimal digits of
// |x| (rounded half-up on the last digit, with carry propagation) and
// the base-10 exponent e such that the represented value is
// 0.digits * 10**(e+1), i.e. digits[0] is the units digit of 10**e.
// x must be finite and non-zero.
func extractDigits(x DD, prec int) (digits []byte, exp int) {
	ax := Abs(x)
	e0 := int(math.Floor(math.Log10(ax.hi)))

	var r DD
	switch {
	case e0 < -300:
		r = Div(Mul(ax, Pow10(300)), Pow10(e0+300))
	case e0 > 300:
		r = LdExp(Div(LdExp(ax, -53), Pow10(e0)), 53)
	default:
		r = Div(ax, Pow10(e0))
	}
	if r.hi >= 10 {
		e0++
		r = Div(r, ten)
	} else if r.hi < 1 {
		e0--
		r = Mul(r, ten)
	}

	n := prec + 1
	if n < 1 {
		n = 1
	}
	digs := make([]byte, n)
	for i := 0; i < n; i++ {
		d := math.Trunc(r.hi)
		if d < 0 {
			d = 0
		} else if d > 9 {
			d = 9
		}
		digs[i] = byte(d) + '0'
		r = Mul(Sub(r, DD{d, 0}), ten)
	}

	if n > 1 && digs[n-1] >= '5' {
		i := n - 2
		for i >= 0 {
			if digs[i] == '9' {
				digs[i] = '0'
				i--
				continue
			}
			digs[i]++
			break
		}
		if i < 0 {
			carried := make([]byte, n-1)
			carried[0] = '1'
			copy(carried[1:], digs[:n-2])
			digs = carried
			e0++
			return digs, e0
		}
	}
	return digs[:n-1], e0
}

// fixedRange reports whether e, the base-10 exponent of x's leading
// digit, is within the range ShowPrec's fixed/scientific switch
// considers eligible for fixed notation at all: within +-27
// unconditionally, or +-30 when x is an exact integer.
func fixedRange(x DD, e int) bool {
	ae := e
	if ae < 0 {
		ae = -ae
	}
	if ae <= 27 {
		return true
	}
	return ae <= 30 && Cmp(Trunc(x), x) == 0
}

func buildFixed(digs []byte, e int, neg bool, dprec int, trim bool) string {
	buf := make([]byte, 0, len(digs)+8)
	if neg {
		buf = append(buf, '-')
	}
	if e < 0 {
		buf = append(buf, '0')
	} else {
		for i := 0; i <= e && i < len(digs); i++ {
			buf = append(buf, digs[i])
		}
		for i := len(digs); i <= e; i++ {
			buf = append(buf, '0')
		}
	}
	var frac []byte
	if e < 0 {
		frac = append(frac, bytesRepeat('0', -e-1)...)
		frac = append(frac, digs...)
	} else if e+1 < len(digs) {
		frac = append(frac, digs[e+1:]...)
	}
	if dprec >= 0 {
		for len(frac) < dprec {
			frac = append(frac, '0')
		}
		if len(frac) > dprec {
			frac = frac[:dprec]
		}
	}
	if trim {
		for len(frac) > 0 && frac[len(frac)-1] == '0' {
			frac = frac[:len(frac)-1]
		}
	}
	if len(frac) > 0 {
		buf = append(buf, '.')
		buf = append(buf, frac...)
	}
	return string(buf)
}

func buildSci(digs []byte, e int, neg bool, trim bool) string {
	buf := make([]byte, 0, len(digs)+8)
	if neg {
		buf = append(buf, '-')
	}
	buf = append(buf, digs[0])
	frac := digs[1:]
	if trim {
		for len(frac) > 0 && frac[len(frac)-1] == '0' {
			frac = frac[:len(frac)-1]
		}
	}
	if len(frac) > 0 {
		buf = append(buf, '.')
		buf = append(buf, frac...)
	}
	if e != 0 {
		buf = append(buf, 'e')
		buf = append(buf, []byte(strconv.Itoa(e))...)
	}
	return string(buf)
}

func bytesRepeat(b byte, n int) []byte {
	if n <= 0 {
		return nil
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func specialString(x DD) (string, bool) {
	switch {
	case x.IsNaN():
		return "NaN", true
	case x.IsPosInf():
		return "+Inf", true
	case x.IsNegInf():
		return "-Inf", true
	case x.IsZero():
		if x.Signbit() {
			return "-0", true
		}
		return "0", true
	}
	return "", false
}

// ShowPrec formats x with prec significant decimal digits, choosing
// between fixed and scientific notation by this rule: fixed when prec
// exceeds the leading digit's exponent e, e >= -4, and e is within the
// fixed-notation range checked by fixedRange; scientific otherwise. Unlike Show, ShowPrec does not
// trim trailing zeros: an explicit precision pads to exactly that
// width.
func ShowPrec(x DD, prec int) string {
	if s, ok := specialString(x); ok {
		return s
	}
	if prec < 1 {
		prec = 1
	}
	if prec > MaxPrec {
		prec = MaxPrec
	}
	digs, e := extractDigits(x, prec)
	neg := x.Signbit()
	if e < prec && e >= -4 && fixedRange(x, e) {
		dprec := prec - e - 1
		if dprec < 0 {
			dprec = 0
		}
		return buildFixed(digs, e, neg, dprec, false)
	}
	return buildSci(digs, e, neg, false)
}

// Show formats x with the default precision, auto-selecting fixed or
// scientific notation and trimming trailing fractional zeros.
func Show(x DD) string {
	if s, ok := specialString(x); ok {
		return s
	}
	digs, e := extractDigits(x, DefaultPrec)
	neg := x.Signbit()
	if e < DefaultPrec && e >= -4 && fixedRange(x, e) {
		dprec := DefaultPrec - e - 1
		if dprec < 0 {
			dprec = 0
		}
		return buildFixed(digs, e, neg, dprec, true)
	}
	return buildSci(digs, e, neg, true)
}

// ShowFixed formats x in fixed-point notation with exactly dprec
// digits after the decimal point, optionally trimming trailing
// fractional zeros.
func ShowFixed(x DD, dprec int, trimZeros bool) string {
	if s, ok := specialString(x); ok {
		return s
	}
	if dprec < 0 {
		dprec = 0
	}
	ax := Abs(x)
	e0 := 0
	if !ax.IsZero() {
		e0 = int(math.Floor(math.Log10(ax.hi)))
	}
	prec := e0 + 1 + dprec
	if prec < 1 {
		prec = 1
	}
	if prec > MaxPrec {
		prec = MaxPrec
	}
	digs, e := extractDigits(x, prec)
	return buildFixed(digs, e, x.Signbit(), dprec, trimZeros)
}

// ShowExp formats x in scientific notation with prec significant
// digits, optionally trimming trailing fractional zeros.
func ShowExp(x DD, prec int, trimZeros bool) string {
	if s, ok := specialString(x); ok {
		return s
	}
	if prec < 1 {
		prec = 1
	}
	if prec > MaxPrec {
		prec = MaxPrec
	}
	digs, e := extractDigits(x, prec)
	return buildSci(digs, e, x.Signbit(), trimZeros)
}

// ShowSum formats x's two words independently, each to prec
// significant digits, joined by " + ". Parsing this form back (see
// Parse) reconstructs x bit-exactly, which is what makes it the
// library's canonical round-trip representation.
func ShowSum(x DD, prec int) string {
	if x.IsNaN() {
		return "NaN"
	}
	if x.IsInf() {
		return Show(x)
	}
	return ShowPrec(FromFloat64(x.hi), prec) + " + " + ShowPrec(FromFloat64(x.lo), prec)
}

// String implements fmt.Stringer using Show's auto-selected notation.
func (x DD) String() string { return Show(x) }

// Text is an alias for ShowPrec, named to match the conversion-method
// naming the standard library uses for arbitrary-precision numeric
// types (e.g. math/big.Float.Text).
func (x DD) Text(prec int) string { return ShowPrec(x, prec) }

// Append appends Show(x) to buf and returns the extended buffer.
func (x DD) Append(buf []byte) []byte { return append(buf, Show(x)...) }

// MarshalText implements encoding.TextMarshaler.
func (x DD) MarshalText() ([]byte, error) { return []byte(Show(x)), nil }
