package messages

// ObstacleHitEvent is broadcast when something strikes an obstacle without
// destroying it. The client only plays the hit effect.
type ObstacleHitEvent struct {
	ObjectID uint16
	X, Y     float64
	Angle    float64 // direction the debris flies, radians
}
