/*
Package dd implements double-double (DD) arithmetic: a 128-bit-precision
floating-point number type represented as the unevaluated sum of two
float64 values ("hi" and "lo"), giving roughly 31 decimal digits of
significand precision while retaining float64's exponent range.

A DD value denotes the real number hi+lo. After every exported operation
(other than raw construction by internal code) a DD is normalized: hi is
the correctly-rounded float64 approximation of the true result and lo is
whatever is left over, with |lo| <= 1/2 ulp(hi). Values are immutable; DD
has no identity and no mutating methods, unlike *big.Float-style APIs.

The package is organized the way math/big.Float is: the core value type,
its arithmetic, rounding, and decimal I/O live in this package; the
elementary transcendental functions (exp, log, trigonometric and
hyperbolic families) live in the dd/math subpackage, built entirely on
top of the operations exported here. A dd/checked subpackage offers an
optional wrapper that records the first failing operation as a sticky
error, for callers who would rather check one error than test for NaN
after a whole expression.

No operation in this package blocks or panics, and the arithmetic
kernel does not allocate; decimal parsing and formatting and the
big.Int conversions do. All of it can be called freely from multiple
goroutines without synchronization. See dd/checked for a sticky-error convenience layer,
and the dd/math subpackage for exp, log, trigonometric and hyperbolic
functions.
*/
package dd
