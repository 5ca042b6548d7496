package gamemath

import (
	"math"
	"math/rand"
	"time"
)

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// Seed makes effect randomness reproducible.
func Seed(seed int64) {
	rng = rand.New(rand.NewSource(seed))
}

// RandomFloat returns a uniform value in [lo, hi).
func RandomFloat(lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// RandomRotation returns a uniform angle in [-π, π).
func RandomRotation() float64 {
	return RandomFloat(-math.Pi, math.Pi)
}

// RandomBool is a coin flip.
func RandomBool() bool {
	return rng.Intn(2) == 0
}
