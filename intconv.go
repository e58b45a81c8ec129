package dd

import (
	"math/big"
	"sync"
)

// This file implements the integer-to-DD direction and the exact
// DD -> *big.Int direction used by ToInt (round.go). The chunked-
// splitting algorithm and its digit-counting/trailing-zero helpers
// mirror a mag/pow10/trailing-zero-count trio, and Pow10 reuses the
// same binary-exponentiation shape as Pow (pow.go) — see DESIGN.md.

var (
	pow10BigMu    sync.Mutex
	pow10BigCache = map[uint]*big.Int{}
)

// pow10Big returns 10**n as a *big.Int, memoizing the powers since
// FromInt calls it repeatedly for the same few exponents. The cache is
// guarded by a mutex; callers must not modify the returned value.
func pow10Big(n uint) *big.Int {
	pow10BigMu.Lock()
	defer pow10BigMu.Unlock()
	if v, ok := pow10BigCache[n]; ok {
		return v
	}
	v := new(big.Int).Exp(big.NewInt(10), new(big.Int).SetUint64(uint64(n)), nil)
	pow10BigCache[n] = v
	return v
}

// decimalDigitCount returns d such that 10**(d-1) <= |n| < 10**d, or 0
// for n == 0. Estimated from the bit length (mirroring arith_dec.go's
// mag, which uses a bit-length lookup table) and corrected by one
// comparison against a power of ten, generalized here to arbitrary bit
// lengths via log2(10) since big.Int's BitLen is unbounded, unlike the
// teacher's fixed 32/64-bit Word.
func decimalDigitCount(n *big.Int) int {
	if n.Sign() == 0 {
		return 0
	}
	bl := n.BitLen()
	d := int(float64(bl)/3.321928094887362) + 1
	if new(big.Int).Abs(n).Cmp(pow10Big(uint(d-1))) < 0 {
		d--
	}
	return d
}

// trailingZeroDigitsBig returns the number of trailing decimal zeros of
// |n|, or 0 for n == 0. Simplified from arith_dec.go's
// dec64TrailingZeros binary-decomposition trick (which is tuned for a
// fixed-width machine word) to a plain division loop, since the chunk
// sizes FromInt calls this on are at most a few tens of digits.
func trailingZeroDigitsBig(n *big.Int) int {
	if n.Sign() == 0 {
		return 0
	}
	m := new(big.Int).Abs(n)
	q, r := new(big.Int), new(big.Int)
	d := 0
	for {
		q.QuoRem(m, bigTen, r)
		if r.Sign() != 0 {
			break
		}
		m, q = q, m
		d++
	}
	return d
}

var bigTen = big.NewInt(10)

const p15 = 15 // chunk width: 10**15-1 < 2**53-1, always exact as float64

// chunk15DD converts n, known to have at most 30 decimal digits, to a DD
// by splitting it into at most two 15-digit chunks and combining them
// with the exact weight 10**(d-15).
func chunk15DD(n *big.Int, d int) DD {
	if d <= p15 {
		return DD{float64(n.Int64()), 0}
	}
	shift := uint(d - p15)
	hi, lo := new(big.Int).QuoRem(n, pow10Big(shift), new(big.Int))
	return Add(Mul(DD{float64(hi.Int64()), 0}, Pow10(int(shift))), DD{float64(lo.Int64()), 0})
}

// FromInt returns the DD nearest to the arbitrary-precision integer i,
// via chunked decimal splitting: numbers that fit in 2**53-1 convert
// directly (always exact); larger
// ones are split into 15-digit decimal chunks; numbers over 30 digits
// get a third chunk, with its trailing decimal zeros stripped so the
// effective low chunk still has at most 15 significant digits (the
// residual beyond that is far below DD's ~31-32 significant decimal
// digits of precision and would not affect the result).
func FromInt(i *big.Int) DD {
	if i.Sign() == 0 {
		return Zero
	}
	neg := i.Sign() < 0
	ai := new(big.Int).Abs(i)

	const safeMax = int64(1)<<53 - 1
	if ai.IsInt64() && ai.Int64() <= safeMax {
		v := float64(ai.Int64())
		if neg {
			v = -v
		}
		return DD{v, 0}
	}

	d := decimalDigitCount(ai)
	var result DD
	if d <= 30 {
		result = chunk15DD(ai, d)
	} else {
		// top 30 digits, exact weight 10**(d-30)
		shift := uint(d - 30)
		top30, tail := new(big.Int).QuoRem(ai, pow10Big(shift), new(big.Int))
		result = Mul(chunk15DD(top30, 30), Pow10(int(shift)))

		if tail.Sign() != 0 {
			tailDigits := int(shift)
			tz := trailingZeroDigitsBig(tail)
			stripped := new(big.Int).Quo(tail, pow10Big(uint(tz)))
			sd := tailDigits - tz
			extraDrop := 0
			if sd > p15 {
				extraDrop = sd - p15
				stripped = new(big.Int).Quo(stripped, pow10Big(uint(extraDrop)))
				sd = p15
			}
			weight := tz + extraDrop
			chunkDD := DD{float64(stripped.Int64()), 0}
			result = Add(result, Mul(chunkDD, Pow10(weight)))
		}
	}
	if neg {
		result = Neg(result)
	}
	return result
}

// ddToBigInt converts x, which must already be an integer-valued DD
// (e.g. the result of Round), to an exact *big.Int. It never goes
// through decimal text: x.hi and x.lo are both finite integer-valued
// float64s after rounding, and big.Float represents any float64
// exactly, so summing their exact big.Int values is lossless even at
// the +-10**30 boundary where a format-and-reparse shortcut would
// drop a unit in the last place.
func ddToBigInt(x DD) *big.Int {
	hi, _ := big.NewFloat(x.hi).Int(nil)
	lo, _ := big.NewFloat(x.lo).Int(nil)
	return new(big.Int).Add(hi, lo)
}

// FromIntExp returns i * 10**e as a DD.
func FromIntExp(i *big.Int, e int) DD {
	return Mul(FromInt(i), Pow10(e))
}

// FromFloatExp returns d * 10**e as a DD.
func FromFloatExp(d float64, e int) DD {
	return Mul(FromFloat64(d), Pow10(e))
}
