package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Hitbox is a collision shape in world space, or in object-local space when
// it comes straight from a definition.
type Hitbox interface {
	// Transform rotates by orientation, scales, then translates to pos.
	Transform(pos dmath.Vec2, scale float64, orientation Orientation) Hitbox
	// RandomPoint samples a point inside the shape.
	RandomPoint() dmath.Vec2
	// Bounds returns the axis-aligned bounding box.
	Bounds() (min, max dmath.Vec2)
	Contains(p dmath.Vec2) bool
	Clone() Hitbox
}

// RectangleHitbox is an axis-aligned box.
type RectangleHitbox struct {
	Min, Max dmath.Vec2
}

// NewRectangle builds a rectangle from two corners in any order.
func NewRectangle(a, b dmath.Vec2) *RectangleHitbox {
	return &RectangleHitbox{
		Min: Vec(math.Min(a.X, b.X), math.Min(a.Y, b.Y)),
		Max: Vec(math.Max(a.X, b.X), math.Max(a.Y, b.Y)),
	}
}

// NewRectangleFromCenter builds a w×h rectangle centered on c.
func NewRectangleFromCenter(c dmath.Vec2, w, h float64) *RectangleHitbox {
	return &RectangleHitbox{
		Min: Vec(c.X-w/2, c.Y-h/2),
		Max: Vec(c.X+w/2, c.Y+h/2),
	}
}

func (r *RectangleHitbox) Transform(pos dmath.Vec2, scale float64, orientation Orientation) Hitbox {
	ax, ay := rotateQuarter(r.Min.X*scale, r.Min.Y*scale, orientation)
	bx, by := rotateQuarter(r.Max.X*scale, r.Max.Y*scale, orientation)
	return NewRectangle(Vec(ax+pos.X, ay+pos.Y), Vec(bx+pos.X, by+pos.Y))
}

func (r *RectangleHitbox) RandomPoint() dmath.Vec2 {
	return Vec(RandomFloat(r.Min.X, r.Max.X), RandomFloat(r.Min.Y, r.Max.Y))
}

func (r *RectangleHitbox) Bounds() (dmath.Vec2, dmath.Vec2) {
	return r.Min, r.Max
}

func (r *RectangleHitbox) Contains(p dmath.Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func (r *RectangleHitbox) Clone() Hitbox {
	c := *r
	return &c
}

// Width of the box.
func (r *RectangleHitbox) Width() float64 { return r.Max.X - r.Min.X }

// Height of the box.
func (r *RectangleHitbox) Height() float64 { return r.Max.Y - r.Min.Y }

// CircleHitbox is a disc.
type CircleHitbox struct {
	Position dmath.Vec2
	Radius   float64
}

func NewCircle(pos dmath.Vec2, radius float64) *CircleHitbox {
	return &CircleHitbox{Position: pos, Radius: radius}
}

func (c *CircleHitbox) Transform(pos dmath.Vec2, scale float64, orientation Orientation) Hitbox {
	x, y := rotateQuarter(c.Position.X*scale, c.Position.Y*scale, orientation)
	return NewCircle(Vec(x+pos.X, y+pos.Y), c.Radius*scale)
}

func (c *CircleHitbox) RandomPoint() dmath.Vec2 {
	// sqrt keeps the density uniform over the area
	r := c.Radius * math.Sqrt(rng.Float64())
	return c.Position.Add(FromAngle(RandomRotation(), r))
}

func (c *CircleHitbox) Bounds() (dmath.Vec2, dmath.Vec2) {
	return Vec(c.Position.X-c.Radius, c.Position.Y-c.Radius),
		Vec(c.Position.X+c.Radius, c.Position.Y+c.Radius)
}

func (c *CircleHitbox) Contains(p dmath.Vec2) bool {
	dx, dy := p.X-c.Position.X, p.Y-c.Position.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

func (c *CircleHitbox) Clone() Hitbox {
	cc := *c
	return &cc
}

// ComplexHitbox is the union of several shapes.
type ComplexHitbox struct {
	Hitboxes []Hitbox
}

func NewComplex(hitboxes ...Hitbox) *ComplexHitbox {
	return &ComplexHitbox{Hitboxes: hitboxes}
}

func (g *ComplexHitbox) Transform(pos dmath.Vec2, scale float64, orientation Orientation) Hitbox {
	out := make([]Hitbox, len(g.Hitboxes))
	for i, h := range g.Hitboxes {
		out[i] = h.Transform(pos, scale, orientation)
	}
	return NewComplex(out...)
}

// RandomPoint picks a member uniformly, then samples inside it.
func (g *ComplexHitbox) RandomPoint() dmath.Vec2 {
	if len(g.Hitboxes) == 0 {
		return dmath.Vec2{}
	}
	return g.Hitboxes[rng.Intn(len(g.Hitboxes))].RandomPoint()
}

func (g *ComplexHitbox) Bounds() (dmath.Vec2, dmath.Vec2) {
	if len(g.Hitboxes) == 0 {
		return dmath.Vec2{}, dmath.Vec2{}
	}
	min, max := g.Hitboxes[0].Bounds()
	for _, h := range g.Hitboxes[1:] {
		hmin, hmax := h.Bounds()
		min = Vec(math.Min(min.X, hmin.X), math.Min(min.Y, hmin.Y))
		max = Vec(math.Max(max.X, hmax.X), math.Max(max.Y, hmax.Y))
	}
	return min, max
}

func (g *ComplexHitbox) Contains(p dmath.Vec2) bool {
	for _, h := range g.Hitboxes {
		if h.Contains(p) {
			return true
		}
	}
	return false
}

func (g *ComplexHitbox) Clone() Hitbox {
	out := make([]Hitbox, len(g.Hitboxes))
	for i, h := range g.Hitboxes {
		out[i] = h.Clone()
	}
	return NewComplex(out...)
}
