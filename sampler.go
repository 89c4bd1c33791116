package uniform

import (
	"fmt"

	uniformerrors "github.com/tamirms/uniform/errors"
	"github.com/tamirms/uniform/internal/mathx"
)

// Sampler draws uniformly distributed values of T from a fixed range.
//
// # Implementation notes
//
// For a closed range [low, high] the number of admissible values is
// span = high − low + 1, computed with wraparound in T's unsigned width.
// span == 0 is a reserved sentinel meaning the entire domain of T (it
// occurs exactly for [T-min, T-max]), in which case every raw word is a
// valid result and no rejection is needed.
//
// For span > 0, mapping a word v into the range via a widening multiply
// (v*span, keeping the high half) partitions the word domain into span
// buckets, but (wordMax+1) % span of the words spill unevenly across
// buckets. thresh stores that count; draws whose multiply remainder (the
// low half) exceeds zone = wordMax − thresh are discarded and redrawn,
// which leaves every bucket with exactly equal probability. The widening
// multiply replaces the per-draw division a modulus-based reduction would
// need.
//
// Signed types ride the same code path: their bit patterns are
// reinterpreted as equal-width unsigned values for all arithmetic and
// reinterpreted back on return (two's-complement wraparound is
// bit-identical under both views).
//
// A Sampler is immutable after construction, comparable with ==, and safe
// to copy and reuse across any number of draws.
type Sampler[T Integer] struct {
	low    T
	span   uint64 // range size in T's width; 0 = full domain
	thresh uint64 // words to reject per word-domain pass; 0 when span == 0
}

// NewInclusive returns a sampler for the closed range [low, high].
// Fails with errors.ErrInvalidRange if low > high.
func NewInclusive[T Integer](low, high T) (Sampler[T], error) {
	if low > high {
		return Sampler[T]{}, fmt.Errorf("%w: NewInclusive(%v, %v)",
			uniformerrors.ErrInvalidRange, low, high)
	}

	// Wraparound subtraction in T's width; wraps to 0 for the full domain.
	span := (toWord(high) - toWord(low) + 1) & typeMask[T]()

	var thresh uint64
	if span > 0 {
		// (wordMax − span + 1) % span == (wordMax+1) % span without overflow.
		wordMax := wordMask[T]()
		thresh = (wordMax - span + 1) % span
	}

	return Sampler[T]{low: low, span: span, thresh: thresh}, nil
}

// New returns a sampler for the half-open range [low, high).
// Fails with errors.ErrInvalidRange if low >= high.
func New[T Integer](low, high T) (Sampler[T], error) {
	if low >= high {
		return Sampler[T]{}, fmt.Errorf("%w: New(%v, %v)",
			uniformerrors.ErrInvalidRange, low, high)
	}
	return NewInclusive(low, high-1)
}

// Sample draws one uniformly distributed value from the sampler's range.
//
// The rejection loop has no iteration cap: it terminates almost surely,
// with expected word consumption below 2 even when span is just over half
// the word domain, and ~1 otherwise.
func (s Sampler[T]) Sample(src Source) T {
	if s.span == 0 {
		// Full domain: every bit pattern of the raw word is a valid,
		// unbiased result.
		return T(src.Uint64())
	}
	return drawLoop(s.low, s.span, wordMask[T]()-s.thresh, src)
}

// drawLoop runs the accept/reject loop in T's word domain: draw a word,
// widening-multiply it by span, accept when the low half lands at or below
// zone, and return low + high-half with wrapping addition.
func drawLoop[T Integer](low T, span, zone uint64, src Source) T {
	if wordBits[T]() == 32 {
		span32 := uint32(span)
		zone32 := uint32(zone)
		for {
			hi, lo := mathx.Mul32(uint32(src.Uint64()), span32)
			if lo <= zone32 {
				return low + T(hi)
			}
		}
	}
	for {
		hi, lo := mathx.Mul64(src.Uint64(), span)
		if lo <= zone {
			return low + T(hi)
		}
	}
}
