package components

import (
	"github.com/automoto/obstaclesync/objects"
	"github.com/yohamta/donburi"
)

type ObstacleData struct {
	Obstacle  *objects.Obstacle
	Container *Sprite
	Image     *Sprite
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
