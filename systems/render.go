package systems

import (
	"image/color"
	"sort"

	"github.com/automoto/obstaclesync/assets"
	"github.com/automoto/obstaclesync/components"
	cfg "github.com/automoto/obstaclesync/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	// placeholder is stretched over the sprite size when a frame has no texture.
	placeholder = func() *ebiten.Image {
		img := ebiten.NewImage(1, 1)
		img.Fill(color.White)
		return img
	}()

	drawList []drawItem
)

type drawItem struct {
	sprite *components.Sprite
	order  int
	tint   color.RGBA
	hover  bool
}

// DrawWorld renders obstacles and particles in z order. Ties keep obstacles
// in id order with particles after them.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	view := cameraGeoM(camera)

	var hovered uint16
	if editorEntry, ok := components.Editor.First(e.World); ok {
		hovered = components.Editor.Get(editorEntry).Hovered
	}

	drawList = drawList[:0]
	components.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		data := components.Obstacle.Get(entry)
		if !data.Image.Shown() {
			return
		}
		o := data.Obstacle
		drawList = append(drawList, drawItem{
			sprite: data.Image,
			order:  int(o.ID()),
			tint:   cfg.Render.MaterialColors[o.Definition().Material],
			hover:  o.ID() == hovered,
		})
	})
	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		drawList = append(drawList, drawItem{
			sprite: p.Sprite,
			order:  1 << 17,
			tint:   cfg.Render.ParticleColor,
		})
	})

	sort.SliceStable(drawList, func(i, j int) bool {
		zi, zj := drawList[i].sprite.ZIndex(), drawList[j].sprite.ZIndex()
		if zi != zj {
			return zi < zj
		}
		return drawList[i].order < drawList[j].order
	})

	for _, item := range drawList {
		drawSprite(screen, item, view)
	}
}

// drawSprite applies the sprite's anchor, then its own and every parent's
// scale, rotation and translation, then the camera.
func drawSprite(screen *ebiten.Image, item drawItem, view ebiten.GeoM) {
	s := item.sprite

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	img := assets.GetFrame(s.Frame)
	if img != nil {
		w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
		drawOp.GeoM.Translate(-s.AnchorX*w, -s.AnchorY*h)
		drawOp.GeoM.Scale(cfg.Render.FrameUnits, cfg.Render.FrameUnits)
	} else {
		if s.Size.X <= 0 || s.Size.Y <= 0 {
			return
		}
		img = placeholder
		drawOp.GeoM.Translate(-s.AnchorX, -s.AnchorY)
		drawOp.GeoM.Scale(s.Size.X, s.Size.Y)
		drawOp.ColorScale.ScaleWithColor(item.tint)
		drawOp.ColorScale.ScaleAlpha(float32(cfg.Render.PlaceholderAlpha))
	}

	alpha := 1.0
	for n := s; n != nil; n = n.Parent {
		drawOp.GeoM.Scale(n.Scale, n.Scale)
		drawOp.GeoM.Rotate(n.Rotation)
		drawOp.GeoM.Translate(n.Position.X+n.Offset.X, n.Position.Y+n.Offset.Y)
		alpha *= n.Alpha
	}
	drawOp.GeoM.Concat(view)
	drawOp.ColorScale.ScaleAlpha(float32(alpha))

	if item.hover {
		drawOp.ColorScale.ScaleWithColor(cfg.Render.HoverColor)
	}

	screen.DrawImage(img, drawOp)
}
