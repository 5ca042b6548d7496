package leveldata

import (
	"errors"
	"testing"

	"github.com/automoto/obstaclesync/config"
	"github.com/automoto/obstaclesync/shared/bitstream"
	"github.com/automoto/obstaclesync/shared/messages"
)

func testLevel() *Level {
	return &Level{
		Name: "test",
		Obstacles: []Placement{
			{IDString: "rock", X: 100, Y: 100, Variation: 2, Scale: 1},
			{IDString: "door", X: 200, Y: 100, Orientation: 1, Scale: 1},
			{IDString: "crate_regular", X: 300, Y: 100, Scale: 1.5},
		},
	}
}

func mustFeed(t *testing.T) *Feed {
	t.Helper()
	f, err := NewFeed(testLevel(), config.Obstacles)
	if err != nil {
		t.Fatalf("NewFeed: %v", err)
	}
	return f
}

func mustBatch(t *testing.T, f *Feed) []uint16 {
	t.Helper()
	b, err := f.Batch()
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	ids := make([]uint16, 0, len(b.Updates))
	for _, u := range b.Updates {
		ids = append(ids, u.ID)
	}
	return ids
}

func TestFirstBatchIsFull(t *testing.T) {
	f := mustFeed(t)
	b, err := f.Batch()
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	if b.Protocol != bitstream.ProtocolVersion || b.Tick != 1 {
		t.Fatalf("batch header = %d/%d, want protocol %d tick 1", b.Protocol, b.Tick, bitstream.ProtocolVersion)
	}
	if len(b.Updates) != 3 {
		t.Fatalf("len(Updates) = %d, want 3", len(b.Updates))
	}
	for i, u := range b.Updates {
		if u.ID != uint16(i+1) || !u.Full {
			t.Fatalf("update %d = id %d full %v, want id %d full", i, u.ID, u.Full, i+1)
		}
	}

	doorType, _ := config.Obstacles.TypeOf("door")
	if config.ObjectType(b.Updates[1].Type) != doorType {
		t.Fatalf("Type = %d, want door %d", b.Updates[1].Type, doorType)
	}

	if ids := mustBatch(t, f); len(ids) != 0 {
		t.Fatalf("quiet batch carried %v", ids)
	}
}

func TestDestroySendsPartial(t *testing.T) {
	f := mustFeed(t)
	mustBatch(t, f)

	if err := f.Destroy(1); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	b, err := f.Batch()
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	if len(b.Updates) != 1 || b.Updates[0].ID != 1 || b.Updates[0].Full {
		t.Fatalf("updates = %+v, want one partial for 1", b.Updates)
	}

	r := bitstream.NewReader(b.Updates[0].Data)
	if _, err := r.ReadScale(); err != nil {
		t.Fatalf("ReadScale: %v", err)
	}
	destroyed, err := r.ReadBoolean()
	if err != nil || !destroyed {
		t.Fatalf("destroyed = %v, %v, want true", destroyed, err)
	}

	if err := f.Destroy(1); err != nil {
		t.Fatalf("second Destroy: %v", err)
	}
	if ids := mustBatch(t, f); len(ids) != 0 {
		t.Fatalf("repeated destroy sent %v", ids)
	}
}

func TestToggleDoor(t *testing.T) {
	f := mustFeed(t)
	mustBatch(t, f)

	steps := []struct {
		alt  bool
		want uint8
	}{
		{false, 1},
		{false, 0},
		{true, 3},
		{true, 0},
	}
	for _, s := range steps {
		if err := f.ToggleDoor(2, s.alt); err != nil {
			t.Fatalf("ToggleDoor: %v", err)
		}
		b, err := f.Batch()
		if err != nil {
			t.Fatalf("Batch: %v", err)
		}
		if len(b.Updates) != 1 {
			t.Fatalf("len(Updates) = %d, want 1", len(b.Updates))
		}
		r := bitstream.NewReader(b.Updates[0].Data)
		r.ReadScale()
		r.ReadBoolean()
		offset, err := r.ReadBits(bitstream.DoorOffsetBits)
		if err != nil || uint8(offset) != s.want {
			t.Fatalf("offset = %d, %v, want %d", offset, err, s.want)
		}
	}

	if err := f.ToggleDoor(1, false); err == nil {
		t.Fatalf("ToggleDoor on a rock succeeded")
	}
}

func TestRemoveAndResend(t *testing.T) {
	f := mustFeed(t)
	mustBatch(t, f)

	if err := f.Remove(3); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := f.Destroy(3); !errors.Is(err, ErrUnknownPlacement) {
		t.Fatalf("Destroy after Remove = %v, want ErrUnknownPlacement", err)
	}
	b, err := f.Batch()
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	if len(b.Deleted) != 1 || b.Deleted[0] != 3 {
		t.Fatalf("Deleted = %v, want [3]", b.Deleted)
	}

	f.Resend()
	b, err = f.Batch()
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	if len(b.Updates) != 2 || !b.Updates[0].Full || len(b.Deleted) != 0 {
		t.Fatalf("resend = %d updates, deleted %v", len(b.Updates), b.Deleted)
	}
}

func TestSetScaleClamps(t *testing.T) {
	f := mustFeed(t)
	if err := f.SetScale(1, 10); err != nil {
		t.Fatalf("SetScale: %v", err)
	}
	s, _ := f.Snapshot(1)
	if s.Scale != bitstream.MaxScale {
		t.Fatalf("Scale = %v, want %v", s.Scale, bitstream.MaxScale)
	}
}

func TestNewFeedRejectsBadPlacements(t *testing.T) {
	cases := map[string]Placement{
		"unknown":   {IDString: "fountain", Scale: 1},
		"variation": {IDString: "rock", Variation: 7, Scale: 1},
	}
	for name, p := range cases {
		if _, err := NewFeed(&Level{Name: name, Obstacles: []Placement{p}}, config.Obstacles); err == nil {
			t.Fatalf("%s: NewFeed succeeded", name)
		}
	}
}

func TestFullLeavesPendingChanges(t *testing.T) {
	f := mustFeed(t)
	mustBatch(t, f)
	if err := f.Destroy(2); err != nil {
		t.Fatalf("Destroy: %v", err)
	}

	full, err := f.Full()
	if err != nil {
		t.Fatalf("Full: %v", err)
	}
	if len(full.Updates) != 3 || full.Tick != 1 {
		t.Fatalf("Full = %d updates at tick %d, want 3 at tick 1", len(full.Updates), full.Tick)
	}
	for _, u := range full.Updates {
		if !u.Full {
			t.Fatalf("update %d is partial", u.ID)
		}
	}

	if ids := mustBatch(t, f); len(ids) != 1 || ids[0] != 2 {
		t.Fatalf("next batch = %v, want [2]", ids)
	}
}

func TestApplyActions(t *testing.T) {
	f := mustFeed(t)
	mustBatch(t, f)

	hit, err := f.Apply(messages.ObstacleAction{Kind: messages.ActionHit, ObjectID: 1, X: 5, Y: 6, Amount: 1.5})
	if err != nil || hit == nil {
		t.Fatalf("hit = %v, %v", hit, err)
	}
	if hit.ObjectID != 1 || hit.X != 5 || hit.Y != 6 || hit.Angle != 1.5 {
		t.Fatalf("hit = %+v", *hit)
	}
	if ids := mustBatch(t, f); len(ids) != 0 {
		t.Fatalf("hit changed %v", ids)
	}

	if _, err := f.Apply(messages.ObstacleAction{Kind: messages.ActionScale, ObjectID: 3, Amount: -0.5}); err != nil {
		t.Fatalf("scale: %v", err)
	}
	if s, _ := f.Snapshot(3); s.Scale != 1 {
		t.Fatalf("Scale = %v, want 1", s.Scale)
	}

	if _, err := f.Apply(messages.ObstacleAction{Kind: messages.ActionToggleDoor, ObjectID: 2, Alt: true}); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if s, _ := f.Snapshot(2); s.DoorOffset != 3 {
		t.Fatalf("DoorOffset = %d, want 3", s.DoorOffset)
	}

	if _, err := f.Apply(messages.ObstacleAction{Kind: messages.ActionHit, ObjectID: 9}); !errors.Is(err, ErrUnknownPlacement) {
		t.Fatalf("hit on 9 = %v, want ErrUnknownPlacement", err)
	}
	if _, err := f.Apply(messages.ObstacleAction{Kind: 0, ObjectID: 1}); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("kind 0 = %v, want ErrUnknownAction", err)
	}
}
