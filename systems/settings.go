package systems

import (
	"github.com/automoto/obstaclesync/components"
	cfg "github.com/automoto/obstaclesync/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the runtime toggles: H for hitboxes, F3 for stats,
// M to cycle the effects volume. Changes are saved right away.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	changed := false

	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		settings.ShowHitboxes = !settings.ShowHitboxes
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		settings.ShowStats = !settings.ShowStats
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		settings.VolumeIndex = (settings.VolumeIndex + 1) % len(cfg.Settings.VolumeSteps)
		SetSFXVolume(e, cfg.Settings.VolumeSteps[settings.VolumeIndex])
		changed = true
	}

	if changed {
		level := ""
		if levelEntry, ok := components.Level.First(e.World); ok {
			level = components.Level.Get(levelEntry).Name
		}
		SaveCurrentSettings(settings, level)
	}
}
