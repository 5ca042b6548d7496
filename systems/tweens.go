package systems

import (
	"github.com/automoto/obstaclesync/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTweens advances every running tween by one tick.
func UpdateTweens(e *ecs.ECS) {
	syncEntry, ok := components.Sync.First(e.World)
	if !ok {
		return
	}
	components.Sync.Get(syncEntry).Tweens.Advance(frameMillis())
}
