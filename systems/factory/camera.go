package factory

import (
	"github.com/automoto/obstaclesync/archetypes"
	"github.com/automoto/obstaclesync/components"
	cfg "github.com/automoto/obstaclesync/config"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, center math.Vec2) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: center,
		Zoom:     cfg.C.Zoom,
	})
}
