// Package objects holds the client-side state of networked world objects.
// Each object decodes its own updates from a bitstream and drives its
// drawables, sounds and particles from the decoded deltas.
package objects

import (
	"errors"
	"fmt"

	"github.com/automoto/obstaclesync/config"
	"github.com/automoto/obstaclesync/shared/bitstream"
	"github.com/automoto/obstaclesync/shared/gamemath"
	"github.com/automoto/obstaclesync/tween"
	"github.com/tanema/gween/ease"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	ErrMissingDoorGeometry = errors.New("door geometry used before full decode")
	ErrUnknownObject       = errors.New("partial update for unknown object")
	ErrUnsupportedCategory = errors.New("unsupported object category")
	ErrUnknownDefinition   = errors.New("unknown object definition")
)

// InvariantError reports a caller bug, such as a partial update that needs
// state only a full update can provide.
type InvariantError struct {
	ID  uint16
	Err error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("object %d: invariant violated: %v", e.ID, e.Err)
}

func (e *InvariantError) Unwrap() error { return e.Err }

// Category is the type tag used to pick a concrete object on creation.
type Category uint8

const (
	CategoryPlayer Category = iota
	CategoryObstacle
	CategoryLoot
)

func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryObstacle:
		return "obstacle"
	case CategoryLoot:
		return "loot"
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// GameObject is the contract every networked object variant implements.
// DeserializeFull must run before the first DeserializePartial that needs
// derived geometry.
type GameObject interface {
	ID() uint16
	Category() Category
	DeserializeFull(r *bitstream.Reader) error
	DeserializePartial(r *bitstream.Reader) error
	Hitbox() gamemath.Hitbox
	Position() dmath.Vec2
	Destroy()
}

// Drawable is the render-side handle an object mutates. Positions are in
// world units; the renderer owns the conversion to pixels.
type Drawable interface {
	tween.Target

	SetFrame(name string)
	SetVisible(visible bool)
	SetPosition(p dmath.Vec2)
	SetRotation(rad float64)
	SetScale(s float64)
	SetZIndex(z int)
	SetAnchor(x, y float64)
	SetOffset(p dmath.Vec2)
}

type SoundPlayer interface {
	Play(id config.SoundID, pos dmath.Vec2, volume float64)
}

// Range is a start and end value for a particle property.
type Range struct {
	Start, End float64
}

// Fixed is a Range that does not change over a particle's life.
func Fixed(v float64) Range { return Range{Start: v, End: v} }

// Travel is how far a particle moving at velocity goes in dt milliseconds.
func Travel(velocity dmath.Vec2, dt float64) dmath.Vec2 {
	return velocity.MulScalar(dt / 1000)
}

// ParticleOptions describe one decorative particle. Lifetime is in
// milliseconds and Velocity in world units per second.
type ParticleOptions struct {
	Frames    []string
	Position  dmath.Vec2
	Depth     int
	Lifetime  float64
	Rotation  Range
	Scale     Range
	Alpha     Range
	AlphaEase ease.TweenFunc
	Velocity  dmath.Vec2
}

type ParticleSpawner interface {
	SpawnParticles(count int, factory func() ParticleOptions)
}

type DefinitionSource interface {
	Obstacle(t config.ObjectType) (*config.ObstacleDefinition, bool)
}

// Services bundles the collaborators objects talk to. Sounds and Particles
// may be nil, in which case effects are skipped.
type Services struct {
	Sounds      SoundPlayer
	Particles   ParticleSpawner
	Tweens      *tween.Scheduler
	Definitions DefinitionSource
}

// LookupObstacle resolves a wire type to its definition.
func (s Services) LookupObstacle(t config.ObjectType) (*config.ObstacleDefinition, error) {
	if s.Definitions == nil {
		return nil, fmt.Errorf("%w: type %d", ErrUnknownDefinition, t)
	}
	def, ok := s.Definitions.Obstacle(t)
	if !ok {
		return nil, fmt.Errorf("%w: type %d", ErrUnknownDefinition, t)
	}
	return def, nil
}

func (s Services) play(id config.SoundID, pos dmath.Vec2, volume float64) {
	if s.Sounds != nil {
		s.Sounds.Play(id, pos, volume)
	}
}

func (s Services) spawn(count int, factory func() ParticleOptions) {
	if s.Particles != nil {
		s.Particles.SpawnParticles(count, factory)
	}
}
