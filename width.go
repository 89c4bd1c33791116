package uniform

import "unsafe"

// Integer is the set of types a Sampler can draw: every native signed and
// unsigned width plus the pointer-sized aliases.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// bitsOf returns the width of T in bits. unsafe.Sizeof resolves at
// instantiation time, so every call folds to a constant.
func bitsOf[T Integer]() uint {
	var z T
	return uint(unsafe.Sizeof(z)) * 8
}

// typeMask returns T's width mask (2^width − 1), zero-extended to uint64.
func typeMask[T Integer]() uint64 {
	tb := bitsOf[T]()
	if tb == 64 {
		return ^uint64(0)
	}
	return 1<<tb - 1
}

// wordBits returns the word-domain width used when sampling T.
//
// Types of 32 bits or fewer share the 32-bit word domain: sub-word
// arithmetic is no faster, and a 32-bit word keeps the rejection threshold
// small relative to the domain. 64-bit types (and the pointer aliases on
// 64-bit platforms) use the full word.
func wordBits[T Integer]() uint {
	if bitsOf[T]() <= 32 {
		return 32
	}
	return 64
}

// wordMask returns the word-domain mask (the maximum word value) for T.
func wordMask[T Integer]() uint64 {
	if wordBits[T]() == 32 {
		return 1<<32 - 1
	}
	return ^uint64(0)
}

// toWord reinterprets v's two's-complement bit pattern as an unsigned word,
// zero-extended to uint64. This is a bit reinterpretation, not a
// value-preserving conversion: toWord(int8(-1)) == 0xFF. Wraparound
// arithmetic on the result is bit-identical to wraparound arithmetic on v,
// which is what makes one unsigned code path valid for signed types.
func toWord[T Integer](v T) uint64 {
	return uint64(v) & typeMask[T]()
}
