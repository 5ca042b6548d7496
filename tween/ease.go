package tween

import "math"

// InSext is x^6: very slow start, sharp finish. Particles fade with it.
// Matches gween's ease.TweenFunc so it can sit beside the library curves.
func InSext(t, b, c, d float32) float32 {
	return c*float32(math.Pow(float64(t/d), 6)) + b
}
