package scenes

import (
	"github.com/automoto/obstaclesync/archetypes"
	"github.com/automoto/obstaclesync/objects"
	"github.com/automoto/obstaclesync/systems"
	"github.com/automoto/obstaclesync/systems/factory"
	"github.com/automoto/obstaclesync/tween"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/obstaclesync/config"
	dmath "github.com/yohamta/donburi/features/math"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// newObstacleWorld builds the ECS shared by the sandbox and networked
// scenes. Updates come from src and edits go to ed.
func newObstacleWorld(src systems.BatchSource, ed systems.ObstacleEditor, name string, width, height float64) *ecs.ECS {
	world := ecs.NewECS(donburi.NewWorld())

	svc := objects.Services{
		Sounds:      systems.NewSoundQueue(world),
		Particles:   systems.NewParticleSpawner(world),
		Tweens:      tween.NewScheduler(),
		Definitions: cfg.Obstacles,
	}

	factory.CreateSpace(world, int(width), int(height), 16, 16)
	factory.CreateLevel(world, name, width, height)
	factory.CreateCamera(world, dmath.NewVec2(width/2, height/2))
	factory.CreateSync(world, svc)
	archetypes.Editor.Spawn(world)

	world.AddSystem(systems.NewObjectSyncSystem(src))
	world.AddSystem(systems.UpdateTweens)
	world.AddSystem(systems.UpdateParticles)
	world.AddSystem(systems.UpdateObstacleBodies)
	world.AddSystem(systems.UpdateCamera)
	world.AddSystem(systems.UpdateSettings)
	world.AddSystem(systems.NewEditInputSystem(ed))
	world.AddSystem(systems.UpdateAudio)

	world.AddRenderer(cfg.Default, drawBackground)
	world.AddRenderer(cfg.Default, systems.DrawWorld)
	world.AddRenderer(cfg.Default, systems.DrawDebug)
	world.AddRenderer(cfg.Default, systems.DrawStats)

	return world
}

func drawBackground(_ *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Render.Background)
}
