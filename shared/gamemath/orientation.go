package gamemath

import "math"

// Orientation is one of four quarter-turn rotation states.
type Orientation uint8

const (
	Orientation0 Orientation = iota
	Orientation90
	Orientation180
	Orientation270
)

// OrientationToRotation maps an orientation to its angle in radians.
func OrientationToRotation(o Orientation) float64 {
	return float64(o%4) * math.Pi / 2
}

// AddOrientations combines two quarter-turn rotations.
func AddOrientations(a, b Orientation) Orientation {
	return (a + b) % 4
}

// rotateQuarter turns v by o quarter turns without trig drift.
func rotateQuarter(x, y float64, o Orientation) (float64, float64) {
	switch o % 4 {
	case Orientation90:
		return -y, x
	case Orientation180:
		return -x, -y
	case Orientation270:
		return y, -x
	default:
		return x, y
	}
}
