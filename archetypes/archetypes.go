package archetypes

import (
	"github.com/automoto/obstaclesync/components"
	cfg "github.com/automoto/obstaclesync/config"
	"github.com/automoto/obstaclesync/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
		components.Object,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Sync = newArchetype(
		components.Sync,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Editor = newArchetype(
		components.Editor,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
