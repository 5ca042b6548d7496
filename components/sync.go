package components

import (
	"github.com/automoto/obstaclesync/objects"
	"github.com/automoto/obstaclesync/tween"
	"github.com/yohamta/donburi"
)

// SyncData is the singleton holding the networked object state of a scene.
type SyncData struct {
	Pool     *objects.Pool
	Tweens   *tween.Scheduler
	Services objects.Services

	// Counters for the stats overlay.
	Batches  int
	Updates  int
	Failures int
	LastTick uint32
}

var Sync = donburi.NewComponentType[SyncData]()
