package dd

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// This file implements the decimal-to-DD direction: parsing decimal
// text into a DD value, following a Parse/SetString/Scan trio with an
// "entire string must be consumed" contract and sentinel-error
// style.

// ErrNoDigits and ErrSyntax are the two ways Parse can fail: no digit
// was found where the grammar requires one, or the input does not
// match the grammar at all.
var (
	ErrNoDigits = errors.New("dd: number has no digits")
	ErrSyntax   = errors.New("dd: invalid syntax")
)

// Parse parses s according to the grammar
//
//	sign? digits ('.' digits?)? ([eE] sign? digits)? ('+' signed_double)?
//
// plus the specials "nan" and "[+-]?inf(inity)?" (case-insensitive).
// The entire string must be consumed for success. The optional
// trailing "+ signed_double" term is the dual-word hi+lo form ShowSum
// produces: when present, both lexemes are parsed as binary64 and
// summed as DDs, reconstructing x bit-exactly.
func Parse(s string) (DD, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Zero, ErrNoDigits
	}

	signStripped := t
	neg := false
	if t[0] == '+' || t[0] == '-' {
		neg = t[0] == '-'
		signStripped = t[1:]
	}
	if strings.EqualFold(signStripped, "inf") || strings.EqualFold(signStripped, "infinity") {
		if neg {
			return NegInf, nil
		}
		return PosInf, nil
	}
	if strings.EqualFold(t, "nan") {
		return NaN, nil
	}

	main, rest, err := splitLexeme(t)
	if err != nil {
		return Zero, err
	}
	hi, err := parseLexeme(main)
	if err != nil {
		return Zero, err
	}
	if rest == "" {
		return hi, nil
	}
	rest = strings.TrimPrefix(rest, " ")
	if len(rest) == 0 || rest[0] != '+' {
		return Zero, fmt.Errorf("%w: unexpected trailing %q", ErrSyntax, rest)
	}
	rest = strings.TrimSpace(rest[1:])
	lo, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return Zero, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	hiWord, err := strconv.ParseFloat(main, 64)
	if err != nil {
		return Zero, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return Add(DD{hiWord, 0}, DD{lo, 0}), nil
}

// FromString is the lenient counterpart to Parse: it returns NaN
// instead of an error on a syntax failure.
func FromString(s string) DD {
	x, err := Parse(s)
	if err != nil {
		return NaN
	}
	return x
}

// splitLexeme consumes the leading "sign? digits ('.' digits?)?
// ([eE] sign? digits)?" lexeme of s and returns it along with
// whatever text remains (empty, or the " + signed_double" suffix).
func splitLexeme(s string) (lexeme, rest string, err error) {
	i := 0
	n := len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digitsStart := i
	for i < n && isDigit(s[i]) {
		i++
	}
	if i == digitsStart {
		return "", "", ErrNoDigits
	}
	if i < n && s[i] == '.' {
		i++
		for i < n && isDigit(s[i]) {
			i++
		}
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < n && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < n && isDigit(s[j]) {
			j++
		}
		if j == expStart {
			return "", "", fmt.Errorf("%w: missing exponent digits", ErrSyntax)
		}
		i = j
	}
	return s[:i], s[i:], nil
}

// parseLexeme converts a lexeme matching "sign? digits ('.' digits?)?
// ([eE] sign? digits)?" to an exact DD: the whole and fractional
// digits are concatenated into one arbitrary-precision integer W, the
// effective exponent is the declared exponent minus the fractional
// digit count, and the result is FromInt(W) * 10**exponent.
func parseLexeme(lexeme string) (DD, error) {
	neg := false
	i := 0
	if lexeme[0] == '+' || lexeme[0] == '-' {
		neg = lexeme[0] == '-'
		i++
	}
	wholeStart := i
	for i < len(lexeme) && isDigit(lexeme[i]) {
		i++
	}
	whole := lexeme[wholeStart:i]

	var frac string
	if i < len(lexeme) && lexeme[i] == '.' {
		i++
		fracStart := i
		for i < len(lexeme) && isDigit(lexeme[i]) {
			i++
		}
		frac = lexeme[fracStart:i]
	}

	declExp := 0
	if i < len(lexeme) && (lexeme[i] == 'e' || lexeme[i] == 'E') {
		e, err := strconv.Atoi(lexeme[i+1:])
		if err != nil {
			return Zero, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		declExp = e
	}

	digits := whole + frac
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		digits = "0"
	}
	w, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Zero, fmt.Errorf("%w: %q", ErrSyntax, lexeme)
	}
	exp := declExp - len(frac)
	v := FromIntExp(w, exp)
	if neg {
		v = Neg(v)
	}
	return v, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

var _ fmt.Scanner = (*DD)(nil) // *DD must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it scans the longest
// token made of the Parse grammar's characters and parses it. Unlike
// Parse, it does not require the rest of the input stream to be
// empty, and since fmt tokens stop at whitespace it does not handle
// the space-separated "+ signed_double" sum-form suffix.
func (z *DD) Scan(s fmt.ScanState, ch rune) error {
	s.SkipSpace()
	tok, err := s.Token(false, func(r rune) bool {
		return r == '+' || r == '-' || r == '.' || r == 'e' || r == 'E' || (r >= '0' && r <= '9') ||
			r == 'n' || r == 'N' || r == 'a' || r == 'A' || r == 'i' || r == 'I' || r == 'f' || r == 'F' ||
			r == 't' || r == 'T' || r == 'y' || r == 'Y'
	})
	if err != nil {
		return err
	}
	v, err := Parse(string(tok))
	if err != nil {
		return err
	}
	*z = v
	return nil
}

var _ interface {
	UnmarshalText([]byte) error
} = (*DD)(nil)

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *DD) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*z = v
	return nil
}
