package uniform

import (
	"fmt"
	"math/bits"

	uniformerrors "github.com/tamirms/uniform/errors"
)

// SingleInclusive draws one uniformly distributed value from the closed
// range [low, high] without materializing a Sampler. Fails with
// errors.ErrInvalidRange if low > high.
//
// The acceptance zone is derived with a width-dependent strategy. 8- and
// 16-bit types compute the exact rejection count with a modulus, as
// NewInclusive does: at those widths the division is cheap and the accept
// branch predicts near-perfectly. Wider types instead round span up to the
// next power-of-two-aligned multiple (span shifted to the top of the word,
// minus one). That zone is never larger than the exact one, so it can only
// reject more candidates than strictly necessary — it trades a marginally
// higher retry rate for skipping the division. Callers sampling the same
// range repeatedly should construct a Sampler instead, which amortizes the
// exact computation.
func SingleInclusive[T Integer](low, high T, src Source) (T, error) {
	if low > high {
		return 0, fmt.Errorf("%w: SingleInclusive(%v, %v)",
			uniformerrors.ErrInvalidRange, low, high)
	}

	span := (toWord(high) - toWord(low) + 1) & typeMask[T]()
	if span == 0 {
		// [T-min, T-max]: any raw word is a valid result.
		return T(src.Uint64()), nil
	}

	var zone uint64
	switch {
	case bitsOf[T]() <= 16:
		wordMax := wordMask[T]()
		zone = wordMax - (wordMax-span+1)%span
	case wordBits[T]() == 32:
		zone = uint64(uint32(span)<<bits.LeadingZeros32(uint32(span)) - 1)
	default:
		zone = span<<bits.LeadingZeros64(span) - 1
	}

	return drawLoop(low, span, zone, src), nil
}

// Single draws one uniformly distributed value from the half-open range
// [low, high) without materializing a Sampler. Fails with
// errors.ErrInvalidRange if low >= high.
func Single[T Integer](low, high T, src Source) (T, error) {
	if low >= high {
		return 0, fmt.Errorf("%w: Single(%v, %v)",
			uniformerrors.ErrInvalidRange, low, high)
	}
	return SingleInclusive(low, high-1, src)
}
