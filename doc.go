// Package uniform draws uniformly distributed integers from caller-specified
// sub-ranges of any native Go integer type, without the bias that naive
// modulo reduction introduces whenever the range size does not evenly divide
// the random word's domain.
//
// The sampler consumes entropy from a caller-supplied Source (one uniform
// 64-bit word per call; any math/rand/v2 source satisfies it) and maps each
// word into the requested range with a widening multiply. Words that would
// skew the bucket probabilities are rejected and redrawn, so the output is
// exactly uniform whenever the input words are. The expected number of words
// per draw is below 2 even in the worst case and is ~1 for small ranges.
//
// # Basic Usage
//
// Reusable sampler for hot loops:
//
//	s, err := uniform.NewInclusive[int](1, 6)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	src := rand.NewPCG(seed1, seed2)
//	for i := 0; i < rolls; i++ {
//	    fmt.Println(s.Sample(src))
//	}
//
// One-off draw without retaining sampler state:
//
//	v, err := uniform.SingleInclusive(int8(-5), 5, src)
//
// # Concurrency
//
// A Sampler is an immutable value after construction and may be shared or
// copied freely. Sources are not assumed to be goroutine-safe: give each
// goroutine its own Source (see FillParallel), or supply one that performs
// its own synchronization.
//
// # Package Structure
//
//   - Public API: sampler.go (NewInclusive, New, Sample), single.go
//     (SingleInclusive, Single), fill.go (Fill, FillParallel)
//   - Entropy: source.go (Source, CounterSource)
//   - Serialization: encode.go (MarshalBinary, UnmarshalBinary)
//   - Numeric policy: width.go (per-type word-domain selection)
//   - Widening multiply: internal/mathx
//   - Error sentinels: errors/
package uniform
