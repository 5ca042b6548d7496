package systems

import (
	"math"

	"github.com/automoto/obstaclesync/components"
	"github.com/automoto/obstaclesync/config"
	"github.com/automoto/obstaclesync/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateCamera pans with the arrow keys and zooms with the mouse wheel or
// PageUp/PageDown, keeping the view inside the level.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	speed := config.Camera.PanSpeed
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		speed *= config.Camera.FastPanFactor
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		camera.Position.X -= speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		camera.Position.X += speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		camera.Position.Y -= speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		camera.Position.Y += speed
	}

	_, wheel := ebiten.Wheel()
	switch {
	case wheel > 0 || inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		camera.Zoom += config.Camera.ZoomStep
	case wheel < 0 || inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		camera.Zoom -= config.Camera.ZoomStep
	}
	camera.Zoom = math.Max(config.Camera.MinZoom, math.Min(config.Camera.MaxZoom, camera.Zoom))

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	// Half the view in world units; a level smaller than the view is centred.
	halfW := float64(config.C.Width) / 2 / camera.Zoom
	halfH := float64(config.C.Height) / 2 / camera.Zoom
	camera.Position.X = clampAxis(camera.Position.X, halfW, level.Width)
	camera.Position.Y = clampAxis(camera.Position.Y, halfH, level.Height)
}

func clampAxis(v, half, size float64) float64 {
	if size <= 2*half {
		return size / 2
	}
	return math.Max(half, math.Min(size-half, v))
}

// WorldToScreen converts a world point to screen pixels.
func WorldToScreen(camera *components.CameraData, p dmath.Vec2) (float64, float64) {
	x := (p.X-camera.Position.X)*camera.Zoom + float64(config.C.Width)/2
	y := (p.Y-camera.Position.Y)*camera.Zoom + float64(config.C.Height)/2
	return x, y
}

// ScreenToWorld converts screen pixels to a world point.
func ScreenToWorld(camera *components.CameraData, x, y float64) dmath.Vec2 {
	return gamemath.Vec(
		(x-float64(config.C.Width)/2)/camera.Zoom+camera.Position.X,
		(y-float64(config.C.Height)/2)/camera.Zoom+camera.Position.Y,
	)
}

// cameraGeoM moves world coordinates onto the screen.
func cameraGeoM(camera *components.CameraData) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-camera.Position.X, -camera.Position.Y)
	m.Scale(camera.Zoom, camera.Zoom)
	m.Translate(float64(config.C.Width)/2, float64(config.C.Height)/2)
	return m
}
