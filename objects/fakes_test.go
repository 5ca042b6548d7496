package objects

import (
	"math"
	"testing"

	"github.com/automoto/obstaclesync/config"
	"github.com/automoto/obstaclesync/shared/gamemath"
	"github.com/automoto/obstaclesync/shared/messages"
	"github.com/automoto/obstaclesync/tween"
	dmath "github.com/yohamta/donburi/features/math"
)

type fakeDrawable struct {
	frame    string
	visible  bool
	pos      dmath.Vec2
	offset   dmath.Vec2
	rotation float64
	scale    float64
	z        int
	anchorX  float64
	anchorY  float64
}

func newFakeDrawable() *fakeDrawable {
	return &fakeDrawable{visible: true, scale: 1}
}

func (d *fakeDrawable) SetFrame(name string) { d.frame = name }
func (d *fakeDrawable) SetVisible(visible bool) { d.visible = visible }
func (d *fakeDrawable) SetPosition(p dmath.Vec2) { d.pos = p }
func (d *fakeDrawable) SetRotation(rad float64) { d.rotation = rad }
func (d *fakeDrawable) SetScale(s float64) { d.scale = s }
func (d *fakeDrawable) SetZIndex(z int) { d.z = z }
func (d *fakeDrawable) SetAnchor(x, y float64) { d.anchorX, d.anchorY = x, y }
func (d *fakeDrawable) SetOffset(p dmath.Vec2) { d.offset = p }

func (d *fakeDrawable) TweenValue(field string) (float64, bool) {
	switch field {
	case "rotation":
		return d.rotation, true
	case "scale":
		return d.scale, true
	}
	return 0, false
}

func (d *fakeDrawable) SetTweenValue(field string, v float64) {
	switch field {
	case "rotation":
		d.rotation = v
	case "scale":
		d.scale = v
	}
}

type soundCall struct {
	id     config.SoundID
	pos    dmath.Vec2
	volume float64
}

type fakeSounds struct {
	calls []soundCall
}

func (s *fakeSounds) Play(id config.SoundID, pos dmath.Vec2, volume float64) {
	s.calls = append(s.calls, soundCall{id: id, pos: pos, volume: volume})
}

type fakeParticles struct {
	spawned []ParticleOptions
}

func (p *fakeParticles) SpawnParticles(count int, factory func() ParticleOptions) {
	for i := 0; i < count; i++ {
		p.spawned = append(p.spawned, factory())
	}
}

type definitions map[config.ObjectType]*config.ObstacleDefinition

func (d definitions) Obstacle(t config.ObjectType) (*config.ObstacleDefinition, bool) {
	def, ok := d[t]
	return def, ok
}

// world wires a pool to fakes. Drawables are kept per id so tests can look
// at what the obstacle did to them.
type world struct {
	pool       *Pool
	tweens     *tween.Scheduler
	sounds     *fakeSounds
	particles  *fakeParticles
	svc        Services
	containers map[uint16]*fakeDrawable
	images     map[uint16]*fakeDrawable
	destroyed  map[uint16]int
}

func newWorld(defs DefinitionSource) *world {
	w := &world{
		pool:       NewPool(),
		tweens:     tween.NewScheduler(),
		sounds:     &fakeSounds{},
		particles:  &fakeParticles{},
		containers: map[uint16]*fakeDrawable{},
		images:     map[uint16]*fakeDrawable{},
		destroyed:  map[uint16]int{},
	}
	w.svc = Services{
		Sounds:      w.sounds,
		Particles:   w.particles,
		Tweens:      w.tweens,
		Definitions: defs,
	}
	w.pool.Register(CategoryObstacle, func(id uint16, t config.ObjectType) (GameObject, error) {
		def, err := w.svc.LookupObstacle(t)
		if err != nil {
			return nil, err
		}
		c, i := newFakeDrawable(), newFakeDrawable()
		w.containers[id], w.images[id] = c, i
		return &trackedObstacle{Obstacle: NewObstacle(id, t, def, c, i, w.svc), w: w}, nil
	})
	return w
}

type trackedObstacle struct {
	*Obstacle
	w *world
}

func (o *trackedObstacle) Destroy() {
	o.Obstacle.Destroy()
	o.w.destroyed[o.ID()]++
}

func typeOf(t *testing.T, idString string) (config.ObjectType, *config.ObstacleDefinition) {
	t.Helper()
	typ, ok := config.Obstacles.TypeOf(idString)
	if !ok {
		t.Fatalf("no definition %q", idString)
	}
	def, _ := config.Obstacles.Obstacle(typ)
	return typ, def
}

func (w *world) apply(t *testing.T, id uint16, idString string, s ObstacleSnapshot, full bool) error {
	t.Helper()
	typ, def := typeOf(t, idString)
	u, err := EncodeObstacleUpdate(id, typ, def, s, full)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return w.pool.Apply(u)
}

func (w *world) mustApply(t *testing.T, id uint16, idString string, s ObstacleSnapshot, full bool) {
	t.Helper()
	if err := w.apply(t, id, idString, s, full); err != nil {
		t.Fatalf("Apply(%d): %v", id, err)
	}
}

func (w *world) obstacle(t *testing.T, id uint16) *Obstacle {
	t.Helper()
	o, ok := w.pool.Obstacle(id)
	if !ok {
		t.Fatalf("obstacle %d not in pool", id)
	}
	return o
}

func (w *world) resetEffects() {
	w.sounds.calls = nil
	w.particles.spawned = nil
}

func partialUpdate(id uint16, data []byte) messages.ObjectUpdate {
	return messages.ObjectUpdate{ID: id, Category: uint8(CategoryObstacle), Data: data}
}

func updateWithData(id, typ uint16, data []byte) messages.ObjectUpdate {
	return messages.ObjectUpdate{ID: id, Category: uint8(CategoryObstacle), Type: typ, Full: true, Data: data}
}

func near(a, b float64) bool { return math.Abs(a-b) < 0.02 }

func sameBounds(a, b gamemath.Hitbox) bool {
	amin, amax := a.Bounds()
	bmin, bmax := b.Bounds()
	return near(amin.X, bmin.X) && near(amin.Y, bmin.Y) && near(amax.X, bmax.X) && near(amax.Y, bmax.Y)
}

func alive(x, y float64) ObstacleSnapshot {
	return ObstacleSnapshot{Position: gamemath.Vec(x, y), Scale: 1}
}
