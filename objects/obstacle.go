package objects

import (
	"fmt"
	"log"

	"github.com/automoto/obstaclesync/config"
	"github.com/automoto/obstaclesync/shared/bitstream"
	"github.com/automoto/obstaclesync/shared/gamemath"
	"github.com/automoto/obstaclesync/tween"
	dmath "github.com/yohamta/donburi/features/math"
)

// DoorState is the extra state carried by hinged obstacles. Obstacles that
// are not doors have a nil DoorState.
type DoorState struct {
	// Offset is 0 closed, 1 open, 2 closed (alternate), 3 open the other way.
	Offset uint8

	Closed  gamemath.Hitbox
	Open    gamemath.Hitbox
	OpenAlt gamemath.Hitbox
	// Hitbox is a clone of the shape matching Offset.
	Hitbox gamemath.Hitbox
}

func (d *DoorState) hasGeometry() bool {
	return d.Closed != nil && d.Open != nil && d.OpenAlt != nil
}

// hitboxFor maps an offset to its shape. Offset 2 reuses the closed shape.
func (d *DoorState) hitboxFor(offset uint8) gamemath.Hitbox {
	switch offset {
	case 1:
		return d.Open
	case 3:
		return d.OpenAlt
	default:
		return d.Closed
	}
}

func (d *DoorState) selectHitbox() {
	d.Hitbox = d.hitboxFor(d.Offset).Clone()
}

// Obstacle is a destructible, optionally hinged world object. The container
// drawable carries the world transform and the image drawable carries the
// texture, the door swing and the displayed scale.
type Obstacle struct {
	id      uint16
	objType config.ObjectType
	def     *config.ObstacleDefinition
	svc     Services

	container Drawable
	image     Drawable

	position     dmath.Vec2
	rotation     float64
	orientation  gamemath.Orientation
	scale        float64
	variation    uint8
	hasVariation bool
	destroyed    bool

	door   *DoorState
	hitbox gamemath.Hitbox
	zIndex int

	particleFrames []string

	// isNew holds until the first partial update has been applied. Changes
	// seen while it is set snap without sound or particles.
	isNew       bool
	initialized bool

	swing tween.Handle
}

func NewObstacle(id uint16, t config.ObjectType, def *config.ObstacleDefinition, container, image Drawable, svc Services) *Obstacle {
	o := &Obstacle{
		id:        id,
		objType:   t,
		def:       def,
		svc:       svc,
		container: container,
		image:     image,
		scale:     1,
		isNew:     true,
	}

	if def.IsDoor {
		o.door = &DoorState{}
		image.SetAnchor(0, 0.5)
		image.SetOffset(def.HingeOffset)
	} else {
		image.SetAnchor(0.5, 0.5)
	}
	if def.Invisible {
		container.SetVisible(false)
	}

	particle := def.ParticleFrame()
	if def.ParticleVariations > 0 {
		for i := 0; i < def.ParticleVariations; i++ {
			o.particleFrames = append(o.particleFrames, fmt.Sprintf("%s_%d", particle, i+1))
		}
	} else {
		o.particleFrames = []string{particle}
	}
	return o
}

func (o *Obstacle) ID() uint16 { return o.id }
func (o *Obstacle) Category() Category { return CategoryObstacle }
func (o *Obstacle) Type() config.ObjectType { return o.objType }
func (o *Obstacle) Definition() *config.ObstacleDefinition { return o.def }
func (o *Obstacle) Position() dmath.Vec2 { return o.position }
func (o *Obstacle) Rotation() float64 { return o.rotation }
func (o *Obstacle) Orientation() gamemath.Orientation { return o.orientation }
func (o *Obstacle) Scale() float64 { return o.scale }
func (o *Obstacle) Destroyed() bool { return o.destroyed }
func (o *Obstacle) ZIndex() int { return o.zIndex }
func (o *Obstacle) Door() *DoorState { return o.door }
func (o *Obstacle) ParticleFrames() []string { return o.particleFrames }

// AsObstacle lets wrappers that embed an Obstacle be found by the pool.
func (o *Obstacle) AsObstacle() *Obstacle { return o }

// Hitbox is the current world-space shape, or nil before the first full
// update.
func (o *Obstacle) Hitbox() gamemath.Hitbox { return o.hitbox }

// Variation returns the texture variation and whether the definition has one.
func (o *Obstacle) Variation() (uint8, bool) { return o.variation, o.hasVariation }

// DeserializeFull reads position, rotation and variation. Nothing is applied
// unless every field decodes.
func (o *Obstacle) DeserializeFull(r *bitstream.Reader) error {
	pos, err := r.ReadPosition()
	if err != nil {
		return fmt.Errorf("obstacle %d: position: %w", o.id, err)
	}

	var rot bitstream.ObstacleRotation
	if o.door != nil {
		orientation, err := r.ReadOrientation()
		if err != nil {
			return fmt.Errorf("obstacle %d: door orientation: %w", o.id, err)
		}
		rot = bitstream.ObstacleRotation{
			Rotation:    gamemath.OrientationToRotation(orientation),
			Orientation: orientation,
		}
	} else {
		rot, err = r.ReadObstacleRotation(o.def.RotationMode)
		if err != nil {
			return fmt.Errorf("obstacle %d: rotation: %w", o.id, err)
		}
	}

	var variation uint8
	if o.def.HasVariations() {
		variation, err = r.ReadVariation()
		if err != nil {
			return fmt.Errorf("obstacle %d: variation: %w", o.id, err)
		}
	}

	var closed, open, openAlt gamemath.Hitbox
	if o.door != nil {
		closed = o.def.Hitbox.Transform(pos, 1, rot.Orientation)
		open, openAlt, err = gamemath.CalculateDoorHitboxes(o.def.Hitbox, o.def.HingeOffset, pos, rot.Orientation)
		if err != nil {
			return fmt.Errorf("obstacle %d (%s): %w", o.id, o.def.IDString, err)
		}
	}

	o.position = pos
	o.rotation = rot.Rotation
	o.orientation = rot.Orientation
	o.variation = variation
	o.hasVariation = o.def.HasVariations()

	if o.door != nil {
		o.door.Closed, o.door.Open, o.door.OpenAlt = closed, open, openAlt
		o.door.selectHitbox()
		o.hitbox = o.door.Hitbox
	} else {
		o.hitbox = o.def.Hitbox.Transform(o.position, o.scale, o.orientation)
	}

	o.applyFrame()
	o.container.SetPosition(o.position)
	o.container.SetRotation(o.rotation)
	o.applyZIndex()

	o.initialized = true
	return nil
}

// DeserializePartial reads scale, the destroyed flag and, for doors, the
// swing offset. Transitions play sounds and particles unless this is the
// object's first partial update.
func (o *Obstacle) DeserializePartial(r *bitstream.Reader) error {
	scale, err := r.ReadScale()
	if err != nil {
		return fmt.Errorf("obstacle %d: scale: %w", o.id, err)
	}
	destroyed, err := r.ReadBoolean()
	if err != nil {
		return fmt.Errorf("obstacle %d: destroyed: %w", o.id, err)
	}

	var offset uint8
	if o.door != nil {
		v, err := r.ReadBits(bitstream.DoorOffsetBits)
		if err != nil {
			return fmt.Errorf("obstacle %d: door offset: %w", o.id, err)
		}
		offset = uint8(v)
		if offset != o.door.Offset && !o.door.hasGeometry() {
			return &InvariantError{ID: o.id, Err: ErrMissingDoorGeometry}
		}
	}

	o.scale = scale

	if o.door != nil && offset != o.door.Offset {
		o.door.Offset = offset
		o.swingDoor()
		o.door.selectHitbox()
		o.hitbox = o.door.Hitbox
	}

	if o.door == nil && o.initialized {
		o.hitbox = o.def.Hitbox.Transform(o.position, o.scale, o.orientation)
	}

	// destroyed never goes back to false
	if destroyed && !o.destroyed {
		o.destroyed = true
		o.applyFrame()
		o.container.SetRotation(o.rotation)
		o.container.SetScale(1)
		if !o.isNew {
			o.destroyEffects()
		}
	}

	if o.destroyed {
		o.image.SetScale(1)
	} else {
		o.image.SetScale(o.scale)
	}
	o.applyZIndex()

	// Cleared by the first partial, not by the full decode, so the
	// full+partial creation burst stays silent.
	o.isNew = false
	return nil
}

// swingDoor animates the door image toward the current offset, or snaps it
// during the first update.
func (o *Obstacle) swingDoor() {
	angle := gamemath.OrientationToRotation(gamemath.Orientation(o.door.Offset))
	o.svc.Tweens.Cancel(o.swing)
	o.swing = 0

	if o.isNew {
		o.image.SetRotation(angle)
		return
	}

	sound := config.SoundDoorOpen
	if o.door.Offset == 0 {
		sound = config.SoundDoorClose
	}
	o.svc.play(sound, o.position, config.Effects.DoorSoundVolume)

	h, err := o.svc.Tweens.Create(o.image, map[string]float64{"rotation": angle}, config.Effects.DoorSwingDuration, tween.Options{})
	if err != nil {
		log.Printf("[objects] door %d: %v", o.id, err)
		o.image.SetRotation(angle)
		return
	}
	o.swing = h
}

func (o *Obstacle) destroyEffects() {
	o.svc.play(config.DestroyedSound(o.def.Material), o.position, config.Effects.DestroySoundVolume)

	fx := config.Effects
	speedFactor := 1.0
	if o.def.Explosion {
		speedFactor = fx.ExplosionSpeedFactor
	}
	hitbox := o.hitbox
	o.svc.spawn(fx.DestroyParticleCount, func() ParticleOptions {
		pos := o.position
		if hitbox != nil {
			pos = hitbox.RandomPoint()
		}
		return ParticleOptions{
			Frames:    o.particleFrames,
			Position:  pos,
			Depth:     o.def.Depth + 1,
			Lifetime:  fx.DestroyParticleLife,
			Rotation:  Range{Start: gamemath.RandomRotation(), End: gamemath.RandomRotation()},
			Scale:     Fixed(gamemath.RandomFloat(fx.DestroyScaleMin, fx.DestroyScaleMax)),
			Alpha:     Range{Start: 1, End: 0},
			AlphaEase: tween.InSext,
			Velocity:  gamemath.FromAngle(gamemath.RandomRotation(), gamemath.RandomFloat(fx.DestroySpeedMin, fx.DestroySpeedMax)*speedFactor),
		}
	})
}

// HitEffect plays a material hit sound and throws a single particle away
// from the point of impact.
func (o *Obstacle) HitEffect(pos dmath.Vec2, angle float64) {
	fx := config.Effects
	variant := 1
	if gamemath.RandomBool() {
		variant = 2
	}
	o.svc.play(config.HitSound(o.def.Material, variant), pos, fx.HitSoundVolume)

	particleAngle := angle + gamemath.RandomFloat(-fx.HitParticleSpread, fx.HitParticleSpread)
	depth := max(o.def.Depth+1, fx.HitMinParticleDepth)
	o.svc.spawn(1, func() ParticleOptions {
		return ParticleOptions{
			Frames:   o.particleFrames,
			Position: pos,
			Depth:    depth,
			Lifetime: fx.HitParticleLife,
			Scale:    Range{Start: fx.HitScaleStart, End: fx.HitScaleEnd},
			Alpha:    Range{Start: 1, End: fx.HitAlphaEnd},
			Velocity: gamemath.FromAngle(particleAngle, gamemath.RandomFloat(fx.HitSpeedMin, fx.HitSpeedMax)),
		}
	})
}

// Destroy stops the door swing and hides the obstacle. The drawables are
// owned by whoever created them.
func (o *Obstacle) Destroy() {
	o.svc.Tweens.Cancel(o.swing)
	o.swing = 0
	o.container.SetVisible(false)
}

func (o *Obstacle) applyFrame() {
	switch {
	case o.destroyed && o.def.NoResidue:
		o.image.SetVisible(false)
	case o.destroyed:
		o.image.SetFrame(o.def.ResidueFrame())
	case o.hasVariation:
		o.image.SetFrame(fmt.Sprintf("%s_%d", o.def.BaseFrame(), o.variation+1))
	default:
		o.image.SetFrame(o.def.BaseFrame())
	}
}

func (o *Obstacle) applyZIndex() {
	o.zIndex = o.def.Depth
	if o.destroyed {
		o.zIndex = 0
	}
	o.container.SetZIndex(o.zIndex)
}
