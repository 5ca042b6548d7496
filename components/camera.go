package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the world point at the centre of the screen.
type CameraData struct {
	Position math.Vec2
	Zoom     float64 // screen pixels per world unit
}

var Camera = donburi.NewComponentType[CameraData]()
