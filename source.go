package uniform

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Source is the entropy collaborator: each call returns one uniformly
// distributed 64-bit word. The interface is structurally identical to
// math/rand/v2.Source, so any rand/v2 source (PCG, ChaCha8, a *rand.Rand)
// plugs in directly. Sources may be deterministic (seeded) or not; the
// sampler preserves whatever uniformity the source provides and adds no
// unpredictability of its own.
//
// Types of 32 bits or fewer consume only the low 32 bits of each word.
type Source interface {
	Uint64() uint64
}

// CounterSource is a deterministic Source that derives each word by hashing
// an incrementing counter with xxHash3 under a fixed seed. Equal seeds yield
// identical streams, which makes it suitable for reproducible simulations
// and tests. It is not cryptographically secure and is not safe for
// concurrent use; give each goroutine its own instance.
type CounterSource struct {
	seed uint64
	ctr  uint64
}

// NewCounterSource returns a CounterSource producing the word stream
// determined by seed.
func NewCounterSource(seed uint64) *CounterSource {
	return &CounterSource{seed: seed}
}

// Uint64 returns the next word in the stream.
func (s *CounterSource) Uint64() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], s.ctr)
	s.ctr++
	return xxh3.HashSeed(buf[:], s.seed)
}
