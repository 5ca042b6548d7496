package systems

import (
	"log"

	"github.com/automoto/obstaclesync/components"
	"github.com/automoto/obstaclesync/shared/bitstream"
	"github.com/automoto/obstaclesync/shared/gamemath"
	"github.com/automoto/obstaclesync/shared/messages"
	"github.com/yohamta/donburi/ecs"
)

// BatchSource delivers object updates to the sync system. The network
// client and the sandbox feed both implement it.
type BatchSource interface {
	DrainBatches() []messages.ObjectUpdateBatch
	DrainHitEvents() []messages.ObstacleHitEvent
}

// NewObjectSyncSystem returns an ECS system that applies every pending
// update batch to the object pool, then plays hit effects. A failed update
// is logged and skipped; the rest of its batch still applies.
func NewObjectSyncSystem(src BatchSource) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		syncEntry, ok := components.Sync.First(e.World)
		if !ok {
			return
		}
		sync := components.Sync.Get(syncEntry)

		for _, batch := range src.DrainBatches() {
			applyBatch(sync, batch)
		}

		for _, evt := range src.DrainHitEvents() {
			o, ok := sync.Pool.Obstacle(evt.ObjectID)
			if !ok {
				log.Printf("[sync] hit on unknown obstacle %d", evt.ObjectID)
				continue
			}
			o.HitEffect(gamemath.Vec(evt.X, evt.Y), evt.Angle)
		}
	}
}

func applyBatch(sync *components.SyncData, batch messages.ObjectUpdateBatch) {
	if batch.Protocol != bitstream.ProtocolVersion {
		log.Printf("[sync] tick %d: protocol %d, want %d; batch dropped",
			batch.Tick, batch.Protocol, bitstream.ProtocolVersion)
		sync.Failures++
		return
	}

	sync.Batches++
	sync.LastTick = batch.Tick

	for _, u := range batch.Updates {
		sync.Updates++
		if err := sync.Pool.Apply(u); err != nil {
			sync.Failures++
			log.Printf("[sync] tick %d: %v", batch.Tick, err)
		}
	}

	for _, id := range batch.Deleted {
		if !sync.Pool.Remove(id) {
			log.Printf("[sync] tick %d: delete of unknown object %d", batch.Tick, id)
		}
	}
}
