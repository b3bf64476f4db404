package geom

import (
	"math"
	"math/rand"
)

// Rand draws the uniform samples used by grid sampling and colouring.
type Rand struct {
	rng *rand.Rand
}

func NewRand(seed int64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// Int returns floor(u*(max-min)) + min for u in [0, 1): the result lies in
// [min, max). No rejection sampling, so the floor bias stays.
func (r *Rand) Int(min, max int) int {
	return int(math.Floor(r.rng.Float64()*float64(max-min))) + min
}

// Float returns a value in [min, max).
func (r *Rand) Float(min, max float64) float64 {
	return r.rng.Float64()*(max-min) + min
}

func (r *Rand) Bool() bool {
	return r.Odds(0.5)
}

// Odds returns true with probability p. p <= 0 never succeeds and p >= 1
// always does.
func (r *Rand) Odds(p float64) bool {
	return r.rng.Float64() < p
}

// Color samples each channel as round(u*255) with the given alpha.
func (r *Rand) Color(alpha float64) Color {
	return Color{
		R: uint8(math.Round(r.rng.Float64() * 255)),
		G: uint8(math.Round(r.rng.Float64() * 255)),
		B: uint8(math.Round(r.rng.Float64() * 255)),
		A: alpha,
	}
}

// Subset returns size distinct elements of seq chosen uniformly at random.
// seq is copied and never modified. size is clamped to [0, len(seq)].
func Subset[T any](r *Rand, seq []T, size int) []T {
	n := len(seq)
	if size > n {
		size = n
	}
	if size <= 0 {
		return []T{}
	}

	shuffled := make([]T, n)
	copy(shuffled, seq)

	// partial Fisher-Yates: only the first size slots need settling
	for i := 0; i < size; i++ {
		j := i + int(math.Floor(float64(n-i)*r.rng.Float64()))
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled[:size:size]
}

// SubsetCount is floor(n * ratio), the explicit size for a ratio-based Subset.
func SubsetCount(n int, ratio float64) int {
	c := math.Floor(float64(n) * ratio)
	if c <= 0 || math.IsNaN(c) {
		return 0
	}
	if c >= float64(n) {
		return n
	}
	return int(c)
}
