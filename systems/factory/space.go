package factory

import (
	"github.com/automoto/obstaclesync/archetypes"
	"github.com/automoto/obstaclesync/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateLevel records the world bounds the camera is clamped to.
func CreateLevel(ecs *ecs.ECS, name string, width, height float64) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Name:   name,
		Width:  width,
		Height: height,
	})
	return level
}
