package objects

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/obstaclesync/config"
	"github.com/automoto/obstaclesync/shared/bitstream"
	"github.com/automoto/obstaclesync/shared/gamemath"
	"github.com/automoto/obstaclesync/tween"
)

func TestCreationBurstIsSilent(t *testing.T) {
	w := newWorld(config.Obstacles)
	s := alive(100, 100)
	s.Destroyed = true
	w.mustApply(t, 1, "crate_regular", s, true)

	o := w.obstacle(t, 1)
	if !o.Destroyed() {
		t.Fatalf("late joiner should see the crate destroyed")
	}
	if got := w.images[1].frame; got != "regular_crate_residue" {
		t.Fatalf("frame = %q, want regular_crate_residue", got)
	}
	if len(w.sounds.calls) != 0 || len(w.particles.spawned) != 0 {
		t.Fatalf("creation burst played %d sounds and %d particles, want none",
			len(w.sounds.calls), len(w.particles.spawned))
	}
	if w.containers[1].z != 0 {
		t.Fatalf("z = %d, want 0 for a destroyed obstacle", w.containers[1].z)
	}
}

func TestDestroyPlaysEffectsOnce(t *testing.T) {
	w := newWorld(config.Obstacles)
	s := alive(200, 300)
	s.Scale = 1.5
	w.mustApply(t, 7, "crate_regular", s, true)

	if got := w.images[7].frame; got != "crate_regular" {
		t.Fatalf("frame = %q, want crate_regular", got)
	}
	if !near(w.images[7].scale, 1.5) {
		t.Fatalf("image scale = %v, want 1.5", w.images[7].scale)
	}

	s.Destroyed = true
	w.mustApply(t, 7, "crate_regular", s, false)

	if got := w.images[7].frame; got != "regular_crate_residue" {
		t.Fatalf("frame = %q, want regular_crate_residue", got)
	}
	if len(w.sounds.calls) != 1 {
		t.Fatalf("sounds = %v, want one", w.sounds.calls)
	}
	if c := w.sounds.calls[0]; c.id != "crate_destroyed" || c.volume != 0.2 {
		t.Fatalf("sound = %+v, want crate_destroyed at 0.2", c)
	}
	if len(w.particles.spawned) != 10 {
		t.Fatalf("particles = %d, want 10", len(w.particles.spawned))
	}
	if w.images[7].scale != 1 || w.containers[7].scale != 1 {
		t.Fatalf("scales after destroy: image %v container %v, want 1 and 1",
			w.images[7].scale, w.containers[7].scale)
	}

	o := w.obstacle(t, 7)
	min, max := o.Hitbox().Bounds()
	for _, p := range w.particles.spawned {
		if p.Position.X < min.X || p.Position.X > max.X || p.Position.Y < min.Y || p.Position.Y > max.Y {
			t.Fatalf("particle at %v outside hitbox %v-%v", p.Position, min, max)
		}
		if p.Lifetime != 1500 || p.Depth != 1 {
			t.Fatalf("particle lifetime %v depth %d, want 1500 and 1", p.Lifetime, p.Depth)
		}
		if p.Scale.Start < 0.65 || p.Scale.Start > 0.85 || p.Scale.Start != p.Scale.End {
			t.Fatalf("particle scale = %+v, want a fixed value in [0.65, 0.85]", p.Scale)
		}
		if p.Alpha.Start != 1 || p.Alpha.End != 0 || p.AlphaEase == nil {
			t.Fatalf("particle alpha = %+v, want 1 to 0 eased", p.Alpha)
		}
		speed := math.Hypot(p.Velocity.X, p.Velocity.Y)
		if speed < 0.25-1e-9 || speed > 0.5+1e-9 {
			t.Fatalf("particle speed = %v, want [0.25, 0.5]", speed)
		}
		if len(p.Frames) != 1 || p.Frames[0] != "crate_particle" {
			t.Fatalf("particle frames = %v", p.Frames)
		}
	}

	w.resetEffects()
	w.mustApply(t, 7, "crate_regular", s, false)
	if len(w.sounds.calls) != 0 || len(w.particles.spawned) != 0 {
		t.Fatalf("repeated partial replayed effects")
	}
}

func TestExplosiveDebrisIsFaster(t *testing.T) {
	w := newWorld(config.Obstacles)
	gamemath.Seed(3)
	s := alive(50, 50)
	w.mustApply(t, 2, "barrel", s, true)
	s.Destroyed = true
	w.mustApply(t, 2, "barrel", s, false)

	for _, p := range w.particles.spawned {
		speed := math.Hypot(p.Velocity.X, p.Velocity.Y)
		if speed < 0.75-1e-9 || speed > 1.5+1e-9 {
			t.Fatalf("barrel debris speed = %v, want [0.75, 1.5]", speed)
		}
	}
}

func TestDestroyWithoutResidueHides(t *testing.T) {
	w := newWorld(config.Obstacles)
	s := alive(10, 10)
	w.mustApply(t, 3, "window", s, true)
	s.Destroyed = true
	w.mustApply(t, 3, "window", s, false)

	if w.images[3].visible {
		t.Fatalf("window image still visible after destruction")
	}
	if w.images[3].frame != "window" {
		t.Fatalf("frame = %q, want the base frame left alone", w.images[3].frame)
	}
	if len(w.sounds.calls) != 1 || w.sounds.calls[0].id != "glass_destroyed" {
		t.Fatalf("sounds = %v, want glass_destroyed", w.sounds.calls)
	}
}

func TestDestructionIsMonotonic(t *testing.T) {
	w := newWorld(config.Obstacles)
	s := alive(10, 10)
	w.mustApply(t, 4, "crate_regular", s, true)
	s.Destroyed = true
	w.mustApply(t, 4, "crate_regular", s, false)

	s.Destroyed = false
	s.Scale = 2
	w.mustApply(t, 4, "crate_regular", s, false)

	o := w.obstacle(t, 4)
	if !o.Destroyed() {
		t.Fatalf("destroyed flag reverted")
	}
	if w.images[4].frame != "regular_crate_residue" {
		t.Fatalf("frame = %q after revert attempt", w.images[4].frame)
	}
	if w.images[4].scale != 1 {
		t.Fatalf("destroyed image rescaled to %v", w.images[4].scale)
	}
}

func TestDoorOpenSwingsAndSelectsOpenHitbox(t *testing.T) {
	w := newWorld(config.Obstacles)
	s := alive(100, 100)
	w.mustApply(t, 9, "door", s, true)

	o := w.obstacle(t, 9)
	door := o.Door()
	if door == nil {
		t.Fatalf("door has no DoorState")
	}
	if !sameBounds(o.Hitbox(), door.Closed) {
		t.Fatalf("new door hitbox is not the closed shape")
	}
	if len(w.sounds.calls) != 0 || w.tweens.Len() != 0 {
		t.Fatalf("closed door creation made noise or tweens")
	}
	if w.images[9].anchorX != 0 || w.images[9].anchorY != 0.5 {
		t.Fatalf("door anchor = (%v, %v), want (0, 0.5)", w.images[9].anchorX, w.images[9].anchorY)
	}
	if w.images[9].offset != gamemath.Vec(-5.5, 0) {
		t.Fatalf("door image offset = %v, want the hinge", w.images[9].offset)
	}

	s.DoorOffset = 1
	w.mustApply(t, 9, "door", s, false)

	if w.tweens.Len() != 1 {
		t.Fatalf("tweens = %d, want 1", w.tweens.Len())
	}
	info, ok := w.tweens.Info(o.swing)
	if !ok || info.Duration != 150 || info.Goals["rotation"] != math.Pi/2 {
		t.Fatalf("swing = %+v, %v, want 150ms to π/2", info, ok)
	}
	if len(w.sounds.calls) != 1 || w.sounds.calls[0].id != config.SoundDoorOpen || w.sounds.calls[0].volume != 0.3 {
		t.Fatalf("sounds = %v, want door_open at 0.3", w.sounds.calls)
	}
	if !sameBounds(o.Hitbox(), door.Open) {
		t.Fatalf("hitbox is not the open shape")
	}

	w.tweens.Advance(75)
	if r := w.images[9].rotation; r <= 0 || r >= math.Pi/2 {
		t.Fatalf("rotation mid swing = %v", r)
	}
	w.tweens.Advance(75)
	if w.images[9].rotation != math.Pi/2 {
		t.Fatalf("rotation after swing = %v, want π/2", w.images[9].rotation)
	}
	if w.containers[9].rotation != 0 {
		t.Fatalf("swing moved the container: %v", w.containers[9].rotation)
	}
}

func TestDoorCloseRestoresClosedHitbox(t *testing.T) {
	w := newWorld(config.Obstacles)
	s := alive(64, 32)
	w.mustApply(t, 5, "door", s, true)
	o := w.obstacle(t, 5)
	closedMin, closedMax := o.Hitbox().Bounds()

	s.DoorOffset = 1
	w.mustApply(t, 5, "door", s, false)
	s.DoorOffset = 0
	w.mustApply(t, 5, "door", s, false)

	min, max := o.Hitbox().Bounds()
	if min != closedMin || max != closedMax {
		t.Fatalf("hitbox after 0→1→0 = %v-%v, want %v-%v", min, max, closedMin, closedMax)
	}
	if n := len(w.sounds.calls); n != 2 || w.sounds.calls[1].id != config.SoundDoorClose {
		t.Fatalf("sounds = %v, want open then close", w.sounds.calls)
	}
	if w.tweens.Len() != 1 {
		t.Fatalf("tweens = %d, want the closing swing only", w.tweens.Len())
	}
	w.tweens.Advance(150)
	if w.images[5].rotation != 0 {
		t.Fatalf("rotation = %v, want 0", w.images[5].rotation)
	}
}

func TestDoorOffsetMapsToHitbox(t *testing.T) {
	w := newWorld(config.Obstacles)
	s := alive(300, 300)
	s.Orientation = 1
	w.mustApply(t, 6, "door", s, true)
	o := w.obstacle(t, 6)
	door := o.Door()

	want := map[uint8]gamemath.Hitbox{1: door.Open, 2: door.Closed, 3: door.OpenAlt, 0: door.Closed}
	for _, offset := range []uint8{1, 2, 3, 0} {
		s.DoorOffset = offset
		w.mustApply(t, 6, "door", s, false)
		if !sameBounds(o.Hitbox(), want[offset]) {
			t.Fatalf("offset %d picked the wrong hitbox", offset)
		}
		if o.Hitbox() == want[offset] {
			t.Fatalf("offset %d hitbox should be a clone", offset)
		}
	}
}

func TestDoorFirstUpdateSnaps(t *testing.T) {
	w := newWorld(config.Obstacles)
	s := alive(40, 40)
	s.DoorOffset = 3
	w.mustApply(t, 8, "door", s, true)

	if w.tweens.Len() != 0 || len(w.sounds.calls) != 0 {
		t.Fatalf("first update animated the door")
	}
	if math.Abs(w.images[8].rotation-3*math.Pi/2) > 1e-9 {
		t.Fatalf("rotation = %v, want 3π/2", w.images[8].rotation)
	}
	o := w.obstacle(t, 8)
	if !sameBounds(o.Hitbox(), o.Door().OpenAlt) {
		t.Fatalf("hitbox is not the alternate open shape")
	}
}

func TestDoorOffsetBeforeFullDecode(t *testing.T) {
	typ, def := typeOf(t, "door")
	w := newWorld(config.Obstacles)
	o := NewObstacle(1, typ, def, newFakeDrawable(), newFakeDrawable(), w.svc)

	bw := bitstream.NewWriter()
	ObstacleSnapshot{Scale: 2, DoorOffset: 1}.EncodePartial(bw, def)
	err := o.DeserializePartial(bitstream.NewReader(bw.Bytes()))

	var inv *InvariantError
	if !errors.As(err, &inv) || !errors.Is(err, ErrMissingDoorGeometry) {
		t.Fatalf("err = %v, want InvariantError wrapping ErrMissingDoorGeometry", err)
	}
	if o.Scale() != 1 || o.Door().Offset != 0 {
		t.Fatalf("failed partial mutated state: scale %v offset %d", o.Scale(), o.Door().Offset)
	}
}

func TestTruncatedPartialLeavesStateAlone(t *testing.T) {
	w := newWorld(config.Obstacles)
	s := alive(10, 10)
	s.Scale = 2
	w.mustApply(t, 11, "door", s, true)
	o := w.obstacle(t, 11)

	_, def := typeOf(t, "door")
	bw := bitstream.NewWriter()
	ObstacleSnapshot{Scale: 0.5, Destroyed: true, DoorOffset: 1}.EncodePartial(bw, def)
	data := bw.Bytes()[:1] // scale only, no flag or offset

	err := w.pool.Apply(partialUpdate(11, data))
	if !errors.Is(err, bitstream.ErrTruncated) {
		t.Fatalf("err = %v, want ErrTruncated", err)
	}
	if !near(o.Scale(), 2) || o.Destroyed() || o.Door().Offset != 0 {
		t.Fatalf("truncated partial changed state: scale %v destroyed %v offset %d",
			o.Scale(), o.Destroyed(), o.Door().Offset)
	}
}

func TestFullDecodeVariationAndRotation(t *testing.T) {
	w := newWorld(config.Obstacles)
	s := alive(500, 250)
	s.Variation = 2
	s.Rotation = 1.0
	w.mustApply(t, 12, "tree_oak", s, true)

	o := w.obstacle(t, 12)
	if w.images[12].frame != "tree_oak_3" {
		t.Fatalf("frame = %q, want tree_oak_3", w.images[12].frame)
	}
	if v, ok := o.Variation(); !ok || v != 2 {
		t.Fatalf("variation = %d, %v", v, ok)
	}
	if math.Abs(o.Rotation()-1.0) > 2*math.Pi/255 {
		t.Fatalf("rotation = %v, want about 1", o.Rotation())
	}
	if !near(w.containers[12].pos.X, 500) || !near(w.containers[12].pos.Y, 250) {
		t.Fatalf("container position = %v", w.containers[12].pos)
	}
	if w.containers[12].z != 5 {
		t.Fatalf("z = %d, want definition depth 5", w.containers[12].z)
	}
}

func TestLimitedRotationUsesOrientation(t *testing.T) {
	w := newWorld(config.Obstacles)
	s := alive(100, 100)
	s.Orientation = 1
	w.mustApply(t, 13, "window", s, true)

	o := w.obstacle(t, 13)
	if o.Orientation() != 1 || o.Rotation() != math.Pi/2 {
		t.Fatalf("orientation %d rotation %v, want 1 and π/2", o.Orientation(), o.Rotation())
	}
	// the tall window lies flat once turned
	min, max := o.Hitbox().Bounds()
	wantW, wantH := 12*o.Scale(), 1.6*o.Scale()
	if w, h := max.X-min.X, max.Y-min.Y; !near(w, wantW) || !near(h, wantH) {
		t.Fatalf("hitbox %vx%v, want %vx%v", w, h, wantW, wantH)
	}
}

func TestUnknownRotationModeFailsLoudly(t *testing.T) {
	defs := definitions{0: {
		IDString:     "mystery",
		Material:     config.MaterialStone,
		Hitbox:       gamemath.NewCircle(gamemath.Vec(0, 0), 1),
		RotationMode: bitstream.RotationMode(3),
	}}
	w := newWorld(defs)

	bw := bitstream.NewWriter()
	bw.WritePosition(gamemath.Vec(10, 10))
	bw.WriteBits(0, 16)
	err := w.pool.Apply(updateWithData(0, 0, bw.Bytes()))

	if !errors.Is(err, bitstream.ErrUnknownRotationMode) {
		t.Fatalf("err = %v, want ErrUnknownRotationMode", err)
	}
	if w.pool.Len() != 0 {
		t.Fatalf("failed creation left an object in the pool")
	}
	if w.destroyed[0] != 1 {
		t.Fatalf("failed object destroyed %d times, want 1", w.destroyed[0])
	}
}

func TestHitboxFollowsScale(t *testing.T) {
	w := newWorld(config.Obstacles)
	s := alive(100, 100)
	w.mustApply(t, 14, "rock", s, true)
	o := w.obstacle(t, 14)

	s.Scale = 2
	w.mustApply(t, 14, "rock", s, false)

	min, max := o.Hitbox().Bounds()
	if !near(o.Scale(), 2) {
		t.Fatalf("scale = %v, want about 2", o.Scale())
	}
	if r := (max.X - min.X) / 2; math.Abs(r-4*o.Scale()) > 1e-9 {
		t.Fatalf("rock radius = %v, want %v", r, 4*o.Scale())
	}
}

func TestParticleFramesUseVariations(t *testing.T) {
	typ, def := typeOf(t, "rock")
	o := NewObstacle(1, typ, def, newFakeDrawable(), newFakeDrawable(), Services{Tweens: tween.NewScheduler()})
	frames := o.ParticleFrames()
	if len(frames) != 2 || frames[0] != "rock_particle_1" || frames[1] != "rock_particle_2" {
		t.Fatalf("particle frames = %v", frames)
	}
}

func TestInvisibleDefinitionHidesContainer(t *testing.T) {
	typ, def := typeOf(t, "wall_hitbox")
	c := newFakeDrawable()
	NewObstacle(1, typ, def, c, newFakeDrawable(), Services{Tweens: tween.NewScheduler()})
	if c.visible {
		t.Fatalf("invisible obstacle container is visible")
	}
}

func TestHitEffect(t *testing.T) {
	w := newWorld(config.Obstacles)
	w.mustApply(t, 15, "tree_oak", alive(100, 100), true)
	o := w.obstacle(t, 15)

	at := gamemath.Vec(101, 100)
	o.HitEffect(at, 0)

	if len(w.sounds.calls) != 1 {
		t.Fatalf("sounds = %v", w.sounds.calls)
	}
	c := w.sounds.calls[0]
	if (c.id != "wood_hit_1" && c.id != "wood_hit_2") || c.volume != 0.1 || c.pos != at {
		t.Fatalf("hit sound = %+v", c)
	}
	if len(w.particles.spawned) != 1 {
		t.Fatalf("particles = %d, want 1", len(w.particles.spawned))
	}
	p := w.particles.spawned[0]
	if p.Depth != 6 || p.Lifetime != 600 || p.Scale != (Range{Start: 0.9, End: 0.2}) || p.Alpha != (Range{Start: 1, End: 0.65}) {
		t.Fatalf("hit particle = %+v", p)
	}
	if angle := math.Atan2(p.Velocity.Y, p.Velocity.X); math.Abs(angle) > 0.3+1e-9 {
		t.Fatalf("debris angle = %v, want within 0.3 of 0", angle)
	}
}

func TestDestroyCancelsSwing(t *testing.T) {
	w := newWorld(config.Obstacles)
	s := alive(100, 100)
	w.mustApply(t, 16, "door", s, true)
	s.DoorOffset = 1
	w.mustApply(t, 16, "door", s, false)
	if w.tweens.Len() != 1 {
		t.Fatalf("tweens = %d, want 1", w.tweens.Len())
	}

	w.pool.Remove(16)
	if w.tweens.Len() != 0 {
		t.Fatalf("swing survived its door")
	}
	if w.containers[16].visible {
		t.Fatalf("removed door still visible")
	}
	before := w.images[16].rotation
	w.tweens.Advance(150)
	if w.images[16].rotation != before {
		t.Fatalf("cancelled swing kept writing")
	}
}
