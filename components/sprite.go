package components

import (
	"github.com/yohamta/donburi/features/math"
)

// Sprite is a drawable node. An obstacle uses two of them: a container
// carrying the world transform and an image child carrying the texture,
// door swing and scale. Positions are world units.
type Sprite struct {
	Parent *Sprite

	Frame    string
	Visible  bool
	Position math.Vec2
	Offset   math.Vec2
	Rotation float64
	Scale    float64
	Alpha    float64
	Z        int

	// Anchor is the fraction of the frame placed at Position.
	AnchorX, AnchorY float64

	// Size is the world size drawn when Frame has no texture.
	Size math.Vec2
}

func NewSprite(parent *Sprite) *Sprite {
	return &Sprite{
		Parent:  parent,
		Visible: true,
		Scale:   1,
		Alpha:   1,
		AnchorX: 0.5,
		AnchorY: 0.5,
	}
}

func (s *Sprite) SetFrame(name string) { s.Frame = name }
func (s *Sprite) SetVisible(visible bool) { s.Visible = visible }
func (s *Sprite) SetPosition(p math.Vec2) { s.Position = p }
func (s *Sprite) SetRotation(rad float64) { s.Rotation = rad }
func (s *Sprite) SetScale(scale float64) { s.Scale = scale }
func (s *Sprite) SetZIndex(z int) { s.Z = z }
func (s *Sprite) SetAnchor(x, y float64) { s.AnchorX, s.AnchorY = x, y }
func (s *Sprite) SetOffset(p math.Vec2) { s.Offset = p }

// Shown reports whether the sprite and every parent are visible.
func (s *Sprite) Shown() bool {
	for n := s; n != nil; n = n.Parent {
		if !n.Visible {
			return false
		}
	}
	return true
}

// ZIndex is the z of the outermost parent.
func (s *Sprite) ZIndex() int {
	n := s
	for n.Parent != nil {
		n = n.Parent
	}
	return n.Z
}

func (s *Sprite) TweenValue(field string) (float64, bool) {
	switch field {
	case "x":
		return s.Position.X, true
	case "y":
		return s.Position.Y, true
	case "rotation":
		return s.Rotation, true
	case "scale":
		return s.Scale, true
	case "alpha":
		return s.Alpha, true
	}
	return 0, false
}

func (s *Sprite) SetTweenValue(field string, v float64) {
	switch field {
	case "x":
		s.Position.X = v
	case "y":
		s.Position.Y = v
	case "rotation":
		s.Rotation = v
	case "scale":
		s.Scale = v
	case "alpha":
		s.Alpha = v
	}
}
