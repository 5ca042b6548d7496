package factory

import (
	"github.com/automoto/obstaclesync/archetypes"
	"github.com/automoto/obstaclesync/components"
	"github.com/automoto/obstaclesync/objects"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSync spawns the object-state singleton with a pool that builds
// obstacle entities in this world.
func CreateSync(ecs *ecs.ECS, svc objects.Services) *donburi.Entry {
	sync := archetypes.Sync.Spawn(ecs)

	pool := objects.NewPool()
	pool.Register(objects.CategoryObstacle, NewObstacleFactory(ecs, svc))

	components.Sync.SetValue(sync, components.SyncData{
		Pool:     pool,
		Tweens:   svc.Tweens,
		Services: svc,
	})
	return sync
}
