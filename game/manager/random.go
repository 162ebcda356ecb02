package manager

import (
	"blob-game/game/types"

	"golang.org/x/exp/rand"
)

// RandomSource is every random draw the simulation makes. Tests substitute a
// scripted source to make spawns deterministic.
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}

// NewRandomSource returns a PCG-backed source for the given seed
func NewRandomSource(seed uint64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// uniform draws from [r.Min, r.Max)
func uniform(rng RandomSource, r types.Range) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
