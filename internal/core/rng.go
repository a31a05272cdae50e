package core

import (
	"math"
	"math/rand/v2"
)

// RNG is a source of floating-point draws in [0, 1).
// Level generation consumes draws strictly in sequence, so the same seed
// always yields the same layout.
type RNG interface {
	Float64() float64
}

// pcgStream increment; fixed so a seed maps to exactly one stream.
const pcgStream = 0x9e3779b97f4a7c15

// NewRNG returns a deterministic stream for the given seed.
// PCG output is specified by math/rand/v2 and does not change between Go releases.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), pcgStream))
}

// RandInt returns an integer in [lo, hi] inclusive using a single draw.
// If hi < lo the result is lo; the draw is still consumed so the stream
// position does not depend on the bounds.
func RandInt(lo, hi int, rng RNG) int {
	return RandIntF(float64(lo), float64(hi), rng)
}

// RandIntF is RandInt over fractional bounds: floor(lo + draw*(hi-lo+1)).
// With hi = 210.5 the result can reach 211.
func RandIntF(lo, hi float64, rng RNG) int {
	draw := rng.Float64()
	if hi < lo {
		return int(math.Floor(lo))
	}
	return int(math.Floor(lo + draw*(hi-lo+1)))
}
