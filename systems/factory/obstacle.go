package factory

import (
	"github.com/automoto/obstaclesync/archetypes"
	"github.com/automoto/obstaclesync/components"
	cfg "github.com/automoto/obstaclesync/config"
	"github.com/automoto/obstaclesync/objects"
	"github.com/automoto/obstaclesync/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// obstacleEntity ties a pooled obstacle to its entity, so removing it from
// the pool also removes the sprites and the collision body.
type obstacleEntity struct {
	*objects.Obstacle
	ecs   *ecs.ECS
	entry *donburi.Entry
}

func (o *obstacleEntity) Destroy() {
	o.Obstacle.Destroy()
	if !o.entry.Valid() {
		return
	}
	obj := components.Object.Get(o.entry)
	if obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	o.ecs.World.Remove(o.entry.Entity())
}

// NewObstacleFactory returns the pool factory for obstacles. The body starts
// outside the space; the collision system adds it once the obstacle has a
// hitbox.
func NewObstacleFactory(ecs *ecs.ECS, svc objects.Services) objects.Factory {
	return func(id uint16, t cfg.ObjectType) (objects.GameObject, error) {
		def, err := svc.LookupObstacle(t)
		if err != nil {
			return nil, err
		}

		obstacle := archetypes.Obstacle.Spawn(ecs)

		container := components.NewSprite(nil)
		image := components.NewSprite(container)
		lo, hi := def.Hitbox.Bounds()
		image.Size = hi.Sub(lo)

		o := objects.NewObstacle(id, t, def, container, image, svc)

		resolvTags := []string{tags.ResolvObstacle}
		if def.IsDoor {
			resolvTags = append(resolvTags, tags.ResolvDoor)
		}
		obj := resolv.NewObject(0, 0, image.Size.X, image.Size.Y, resolvTags...)
		obj.SetShape(resolv.NewRectangle(0, 0, image.Size.X, image.Size.Y))
		obj.Data = obstacle // Link for O(1) lookup

		components.Obstacle.SetValue(obstacle, components.ObstacleData{
			Obstacle:  o,
			Container: container,
			Image:     image,
		})
		components.Object.SetValue(obstacle, components.ObjectData{Object: obj})

		return &obstacleEntity{Obstacle: o, ecs: ecs, entry: obstacle}, nil
	}
}
