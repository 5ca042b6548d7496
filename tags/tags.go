package tags

import "github.com/yohamta/donburi"

var (
	Obstacle = donburi.NewTag().SetName("Obstacle")
	Particle = donburi.NewTag().SetName("Particle")
)

// Resolv tags for the obstacle collision space
const (
	ResolvSolid     = "solid"
	ResolvObstacle  = "obstacle"
	ResolvDoor      = "door"
	ResolvDestroyed = "destroyed"
	ResolvProbe     = "probe"
)
