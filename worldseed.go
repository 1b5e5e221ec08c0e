package aerocorp

import (
	"hash/fnv"
	"math/rand"
)

// WorldSeed determines fixed truths about a playthrough: every value
// drawn from it depends only on the seed and the query string, never on
// player actions or elapsed time. Query the same topic twice and you get
// the same answer back.
type WorldSeed struct {
	seed uint64
}

// NewWorldSeed returns a WorldSeed pinned to the given seed value.
func NewWorldSeed(seed uint64) WorldSeed {
	return WorldSeed{seed: seed}
}

// RawSeed returns the seed value, for persistence.
func (w WorldSeed) RawSeed() uint64 {
	return w.seed
}

// Query returns a deterministic value in [0, 1) for the given topic.
func (w WorldSeed) Query(topic string) float64 {
	return w.QueryRNG(topic).Float64()
}

// QueryRNG returns a deterministic random stream for a topic, for callers
// that need more than a single draw (a demand curve, a set of narrative
// parameters). Two calls with the same topic and seed always produce the
// same stream.
func (w WorldSeed) QueryRNG(topic string) *rand.Rand {
	h := fnv1a([]byte(topic))
	return rand.New(rand.NewSource(int64(w.seed ^ h)))
}

// fnv1a hashes with the 64-bit FNV-1a constants, stable across Go
// versions and platforms (unlike a map-style hash), so a saved seed plus
// topic always reproduces.
func fnv1a(data []byte) uint64 {
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64()
}
