package uniform

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

// newTestRNG returns a PCG seeded from the test name, so every test gets a
// distinct, reproducible word stream. *rand.Rand satisfies Source.
func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

// countingSource wraps a Source and counts the words drawn through it.
// The words-per-draw ratio exposes the rejection rate of a sampler.
type countingSource struct {
	src   Source
	words int
}

func (c *countingSource) Uint64() uint64 {
	c.words++
	return c.src.Uint64()
}

// fixedSource replays a fixed word sequence, wrapping around at the end.
type fixedSource struct {
	words []uint64
	i     int
}

func (f *fixedSource) Uint64() uint64 {
	w := f.words[f.i%len(f.words)]
	f.i++
	return w
}
