// Package mathx provides the widening-multiply primitives used by the
// rejection sampler hot path.
package mathx

import "math/bits"

// Mul32 returns the full 64-bit product of x and y split into high and low
// 32-bit halves, computed via promotion to uint64. The high half is the
// range-mapped value; the low half is the multiply remainder tested against
// the acceptance zone.
func Mul32(x, y uint32) (hi, lo uint32) {
	p := uint64(x) * uint64(y)
	return uint32(p >> 32), uint32(p)
}

// Mul64 returns the full 128-bit product of x and y split into high and low
// 64-bit halves. 64 bits is the widest word we sample in, so there is no
// larger integer type to promote to; bits.Mul64 compiles to the platform's
// double-width multiply instruction where one exists.
func Mul64(x, y uint64) (hi, lo uint64) {
	return bits.Mul64(x, y)
}

// mul64Limbs is the portable two-limb decomposition of Mul64: each operand
// is split into 32-bit halves, the four partial products are combined with
// explicit carry folding. Cross-checked against Mul64 in tests; kept as the
// reference implementation for platforms whose bits.Mul64 lowers to library
// calls.
func mul64Limbs(x, y uint64) (hi, lo uint64) {
	const mask32 = 1<<32 - 1
	x0 := x & mask32
	x1 := x >> 32
	y0 := y & mask32
	y1 := y >> 32

	w0 := x0 * y0
	t := x1*y0 + w0>>32
	w1 := t & mask32
	w2 := t >> 32
	w1 += x0 * y1

	hi = x1*y1 + w2 + w1>>32
	lo = x * y
	return hi, lo
}
