package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ParticleData animates one debris sprite. Each curve runs over the whole
// lifetime; Age and Lifetime are milliseconds.
type ParticleData struct {
	Sprite   *Sprite
	Velocity math.Vec2 // world units per second
	Age      float64
	Lifetime float64

	RotationCurve *gween.Tween
	ScaleCurve    *gween.Tween
	AlphaCurve    *gween.Tween
}

var Particle = donburi.NewComponentType[ParticleData]()
