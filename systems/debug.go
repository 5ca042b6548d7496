package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/obstaclesync/components"
	cfg "github.com/automoto/obstaclesync/config"
	"github.com/automoto/obstaclesync/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the current hitbox of every obstacle. Doors are drawn
// in their own colour so the open and closed boxes are easy to tell apart.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.ShowHitboxes {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	components.Obstacle.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Obstacle.Get(e).Obstacle
		c := cfg.Render.HitboxColor
		if o.Door() != nil {
			c = cfg.Render.DoorHitboxColor
		}
		if o.Destroyed() {
			c.A = 90
		}
		drawHitbox(screen, camera, o.Hitbox(), c)
	})
}

func drawHitbox(screen *ebiten.Image, camera *components.CameraData, h gamemath.Hitbox, c color.RGBA) {
	switch h := h.(type) {
	case *gamemath.RectangleHitbox:
		x0, y0 := WorldToScreen(camera, h.Min)
		x1, y1 := WorldToScreen(camera, h.Max)
		vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1, c, false)
	case *gamemath.CircleHitbox:
		x, y := WorldToScreen(camera, h.Position)
		vector.StrokeCircle(screen, float32(x), float32(y), float32(h.Radius*camera.Zoom), 1, c, true)
	case *gamemath.ComplexHitbox:
		for _, part := range h.Hitboxes {
			drawHitbox(screen, camera, part, c)
		}
	}
}

// DrawStats prints frame rate and sync counters in the top-left corner.
func DrawStats(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.ShowStats {
		return
	}

	msg := fmt.Sprintf("TPS: %0.1f  FPS: %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS())

	if syncEntry, ok := components.Sync.First(ecs.World); ok {
		sync := components.Sync.Get(syncEntry)
		msg += fmt.Sprintf("\nobjects: %d  tweens: %d\nbatches: %d  updates: %d  failed: %d  tick: %d",
			sync.Pool.Len(), sync.Tweens.Len(), sync.Batches, sync.Updates, sync.Failures, sync.LastTick)
	}

	particles := 0
	components.Particle.Each(ecs.World, func(*donburi.Entry) { particles++ })
	msg += fmt.Sprintf("\nparticles: %d  sfx volume: %0.2f", particles, GetSFXVolume())

	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		camera := components.Camera.Get(cameraEntry)
		mx, my := ebiten.CursorPosition()
		p := ScreenToWorld(camera, float64(mx), float64(my))
		msg += fmt.Sprintf("\ncursor: %0.1f, %0.1f  zoom: %0.0f", p.X, p.Y, camera.Zoom)
	}

	ebitenutil.DebugPrint(screen, msg)
}
