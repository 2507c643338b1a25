package core

import "math/rand/v2"

// RNG is the uniform random source threaded through every sampling call
// in the engine. It is deliberately not a shared, process-global
// generator: each pixel gets its own RNG derived from a base seed and
// the pixel's linear index, so that rendering the same scene with the
// same options produces byte-identical output no matter how many
// worker goroutines are used or in what order pixels are scheduled.
type RNG struct {
	r *rand.Rand
}

// NewRNG derives a deterministic stream from a base seed and a pixel
// index. The same (seed, pixelIndex) pair always yields the same
// sequence of draws.
func NewRNG(seed uint64, pixelIndex int) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(seed, uint64(pixelIndex)))}
}

// Float64 returns a uniform float64 in [0, 1).
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}

// Float64Pair returns two independent uniform floats in [0, 1), the
// common shape needed for hemisphere and area sampling.
func (g *RNG) Float64Pair() (float64, float64) {
	return g.r.Float64(), g.r.Float64()
}

// IntN returns a uniform int in [0, n). Panics if n <= 0.
func (g *RNG) IntN(n int) int {
	return g.r.IntN(n)
}
