package leveldata

import (
	"errors"
	"fmt"
	"sort"

	"github.com/automoto/obstaclesync/config"
	"github.com/automoto/obstaclesync/objects"
	"github.com/automoto/obstaclesync/shared/bitstream"
	"github.com/automoto/obstaclesync/shared/gamemath"
	"github.com/automoto/obstaclesync/shared/messages"
)

var (
	ErrUnknownPlacement = errors.New("unknown obstacle id")
	ErrUnknownAction    = errors.New("unknown obstacle action")
)

type feedEntry struct {
	typ   config.ObjectType
	def   *config.ObstacleDefinition
	state objects.ObstacleSnapshot
	sent  bool
	dirty bool
}

// Feed plays the server's role for offline play. It owns the authoritative
// snapshot of every obstacle in a level and turns changes into the same
// batches the network client delivers. A Feed is not safe for concurrent
// use.
type Feed struct {
	entries map[uint16]*feedEntry
	deleted []uint16
	tick    uint32
}

// NewFeed assigns ids 1..n to the level's placements in order.
func NewFeed(level *Level, registry *config.ObstacleRegistry) (*Feed, error) {
	f := &Feed{entries: make(map[uint16]*feedEntry, len(level.Obstacles))}
	for i, p := range level.Obstacles {
		typ, ok := registry.TypeOf(p.IDString)
		if !ok {
			return nil, fmt.Errorf("level %s: placement %d: no obstacle %q", level.Name, i, p.IDString)
		}
		def, _ := registry.Obstacle(typ)

		variation := uint8(0)
		if def.HasVariations() {
			if p.Variation < 0 || p.Variation >= def.Variations || p.Variation >= bitstream.MaxVariations {
				return nil, fmt.Errorf("level %s: %s variation %d out of range", level.Name, p.IDString, p.Variation)
			}
			variation = uint8(p.Variation)
		}

		f.entries[uint16(i+1)] = &feedEntry{
			typ: typ,
			def: def,
			state: objects.ObstacleSnapshot{
				Position:    gamemath.Vec(p.X, p.Y),
				Rotation:    p.Rotation,
				Orientation: gamemath.Orientation(p.Orientation & 3),
				Variation:   variation,
				Scale:       p.Scale,
				Destroyed:   p.Destroyed,
				DoorOffset:  uint8(p.DoorOffset & 3),
			},
		}
	}
	return f, nil
}

func (f *Feed) Len() int { return len(f.entries) }

// Snapshot returns the authoritative state of an obstacle.
func (f *Feed) Snapshot(id uint16) (objects.ObstacleSnapshot, bool) {
	e, ok := f.entries[id]
	if !ok {
		return objects.ObstacleSnapshot{}, false
	}
	return e.state, true
}

func (f *Feed) entry(id uint16) (*feedEntry, error) {
	e, ok := f.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlacement, id)
	}
	return e, nil
}

// ToggleDoor opens a closed door or closes an open one. alt swings it the
// other way round.
func (f *Feed) ToggleDoor(id uint16, alt bool) error {
	e, err := f.entry(id)
	if err != nil {
		return err
	}
	if !e.def.IsDoor {
		return fmt.Errorf("obstacle %d (%s) is not a door", id, e.def.IDString)
	}
	if e.state.Destroyed {
		return nil
	}
	switch {
	case e.state.DoorOffset == 1 || e.state.DoorOffset == 3:
		e.state.DoorOffset = 0
	case alt:
		e.state.DoorOffset = 3
	default:
		e.state.DoorOffset = 1
	}
	e.dirty = true
	return nil
}

// Destroy marks an obstacle destroyed. Destroying twice is a no-op.
func (f *Feed) Destroy(id uint16) error {
	e, err := f.entry(id)
	if err != nil {
		return err
	}
	if e.state.Destroyed {
		return nil
	}
	e.state.Destroyed = true
	e.dirty = true
	return nil
}

// SetScale changes an obstacle's scale, clamped to what the wire can carry.
func (f *Feed) SetScale(id uint16, scale float64) error {
	e, err := f.entry(id)
	if err != nil {
		return err
	}
	scale = max(bitstream.MinScale, min(bitstream.MaxScale, scale))
	if e.state.Scale == scale {
		return nil
	}
	e.state.Scale = scale
	e.dirty = true
	return nil
}

// Remove deletes an obstacle. The deletion goes out with the next batch.
func (f *Feed) Remove(id uint16) error {
	if _, err := f.entry(id); err != nil {
		return err
	}
	delete(f.entries, id)
	f.deleted = append(f.deleted, id)
	return nil
}

// Batch collects every pending change: full updates for obstacles never
// sent, partial updates for changed ones. Updates are ordered by id.
func (f *Feed) Batch() (messages.ObjectUpdateBatch, error) {
	f.tick++
	batch := messages.ObjectUpdateBatch{
		Tick:     f.tick,
		Protocol: bitstream.ProtocolVersion,
		Deleted:  f.deleted,
	}
	f.deleted = nil

	ids := make([]uint16, 0, len(f.entries))
	for id, e := range f.entries {
		if !e.sent || e.dirty {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		e := f.entries[id]
		u, err := objects.EncodeObstacleUpdate(id, e.typ, e.def, e.state, !e.sent)
		if err != nil {
			return batch, err
		}
		batch.Updates = append(batch.Updates, u)
		e.sent = true
		e.dirty = false
	}
	return batch, nil
}

// Resend marks everything unsent so the next batch carries full updates,
// as a server does for a client that just joined.
func (f *Feed) Resend() {
	for _, e := range f.entries {
		e.sent = false
	}
}

// Full encodes every obstacle as a full update without touching pending
// changes. A server sends it to a client that joins mid-stream.
func (f *Feed) Full() (messages.ObjectUpdateBatch, error) {
	batch := messages.ObjectUpdateBatch{
		Tick:     f.tick,
		Protocol: bitstream.ProtocolVersion,
	}

	ids := make([]uint16, 0, len(f.entries))
	for id := range f.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		e := f.entries[id]
		u, err := objects.EncodeObstacleUpdate(id, e.typ, e.def, e.state, true)
		if err != nil {
			return batch, err
		}
		batch.Updates = append(batch.Updates, u)
	}
	return batch, nil
}

// Apply performs an edit. A hit changes nothing and returns the event to
// broadcast. ActionResend is left to the caller, which knows who asked.
func (f *Feed) Apply(a messages.ObstacleAction) (*messages.ObstacleHitEvent, error) {
	switch a.Kind {
	case messages.ActionHit:
		if _, err := f.entry(a.ObjectID); err != nil {
			return nil, err
		}
		return &messages.ObstacleHitEvent{ObjectID: a.ObjectID, X: a.X, Y: a.Y, Angle: a.Amount}, nil
	case messages.ActionDestroy:
		return nil, f.Destroy(a.ObjectID)
	case messages.ActionToggleDoor:
		return nil, f.ToggleDoor(a.ObjectID, a.Alt)
	case messages.ActionScale:
		e, err := f.entry(a.ObjectID)
		if err != nil {
			return nil, err
		}
		return nil, f.SetScale(a.ObjectID, e.state.Scale+a.Amount)
	case messages.ActionRemove:
		return nil, f.Remove(a.ObjectID)
	case messages.ActionResend:
		return nil, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownAction, a.Kind)
}
