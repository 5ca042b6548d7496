package gamemath

import (
	"errors"

	dmath "github.com/yohamta/donburi/features/math"
)

// ErrDoorShape is returned when a door definition does not use a rectangle.
var ErrDoorShape = errors.New("door hitbox must be a rectangle")

// CalculateDoorHitboxes swings the closed door shape about its hinge by +90°
// (open) and -90° (open the other way), then places both in the world the same
// way the closed shape is placed.
func CalculateDoorHitboxes(base Hitbox, hinge, pos dmath.Vec2, orientation Orientation) (open, openAlt Hitbox, err error) {
	rect, ok := base.(*RectangleHitbox)
	if !ok {
		return nil, nil, ErrDoorShape
	}

	open = swingAboutHinge(rect, hinge, Orientation90).Transform(pos, 1, orientation)
	openAlt = swingAboutHinge(rect, hinge, Orientation270).Transform(pos, 1, orientation)
	return open, openAlt, nil
}

func swingAboutHinge(r *RectangleHitbox, hinge dmath.Vec2, turn Orientation) *RectangleHitbox {
	ax, ay := rotateQuarter(r.Min.X-hinge.X, r.Min.Y-hinge.Y, turn)
	bx, by := rotateQuarter(r.Max.X-hinge.X, r.Max.Y-hinge.Y, turn)
	return NewRectangle(Vec(ax+hinge.X, ay+hinge.Y), Vec(bx+hinge.X, by+hinge.Y))
}
