package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Vec returns a donburi vector from two components.
func Vec(x, y float64) dmath.Vec2 {
	return dmath.Vec2{X: x, Y: y}
}

// FromAngle returns a vector of the given length pointing along angle.
func FromAngle(angle, length float64) dmath.Vec2 {
	sin, cos := math.Sincos(angle)
	return dmath.Vec2{X: cos * length, Y: sin * length}
}
