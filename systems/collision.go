package systems

import (
	"github.com/automoto/obstaclesync/components"
	"github.com/automoto/obstaclesync/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateObstacleBodies keeps each obstacle's collision body on the bounds of
// its current hitbox. Destroyed obstacles stay in the space without the
// solid tag so they can still be picked.
func UpdateObstacleBodies(e *ecs.ECS) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		data := components.Obstacle.Get(entry)
		obj := components.Object.Get(entry)
		o := data.Obstacle

		hitbox := o.Hitbox()
		if hitbox == nil || obj.Object == nil {
			return
		}

		lo, hi := hitbox.Bounds()
		w, h := hi.X-lo.X, hi.Y-lo.Y
		obj.X, obj.Y = lo.X, lo.Y
		if obj.W != w || obj.H != h {
			obj.W, obj.H = w, h
			obj.SetShape(resolv.NewRectangle(0, 0, w, h))
		}

		if o.Destroyed() {
			if obj.HasTags(tags.ResolvSolid) {
				obj.RemoveTags(tags.ResolvSolid)
			}
			if !obj.HasTags(tags.ResolvDestroyed) {
				obj.AddTags(tags.ResolvDestroyed)
			}
		} else if !obj.HasTags(tags.ResolvSolid) {
			obj.AddTags(tags.ResolvSolid)
		}

		if obj.Space == nil {
			space.Add(obj.Object)
		}
		obj.Update()
	})
}

// ObstacleAt returns the obstacle whose hitbox contains p. Standing
// obstacles win over destroyed ones; among equals the one drawn on top wins.
func ObstacleAt(e *ecs.ECS, p dmath.Vec2) (*components.ObstacleData, bool) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return nil, false
	}
	space := components.Space.Get(spaceEntry)

	// Probe with a tiny object and keep only exact hitbox hits.
	probe := resolv.NewObject(p.X, p.Y, 0.01, 0.01, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvObstacle)
	if check == nil {
		return nil, false
	}

	var best *components.ObstacleData
	for _, obj := range check.ObjectsByTags(tags.ResolvObstacle) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		data := components.Obstacle.Get(entry)
		if !data.Obstacle.Hitbox().Contains(p) {
			continue
		}
		if best == nil || pickedOver(data, best) {
			best = data
		}
	}
	return best, best != nil
}

func pickedOver(a, b *components.ObstacleData) bool {
	ad, bd := a.Obstacle.Destroyed(), b.Obstacle.Destroyed()
	if ad != bd {
		return !ad
	}
	if a.Obstacle.ZIndex() != b.Obstacle.ZIndex() {
		return a.Obstacle.ZIndex() > b.Obstacle.ZIndex()
	}
	return a.Obstacle.ID() > b.Obstacle.ID()
}
