package components

import "github.com/yohamta/donburi"

// LevelData bounds the camera. A networked scene uses the whole encodable map.
type LevelData struct {
	Name          string
	Width, Height float64
}

var Level = donburi.NewComponentType[LevelData]()
