// Package math implements the elementary transcendental functions on
// top of the dd package's arithmetic kernel: exp and log, the
// trigonometric family, and the hyperbolic family. It is kept separate
// from the core dd package so that the allocation-free kernel does not
// depend on the larger, recursive transcendental evaluators.
package math
