package objects

import (
	"errors"
	"testing"

	"github.com/automoto/obstaclesync/config"
	"github.com/automoto/obstaclesync/shared/messages"
)

func TestPartialForUnknownObject(t *testing.T) {
	w := newWorld(config.Obstacles)
	err := w.apply(t, 40, "rock", alive(1, 1), false)
	if !errors.Is(err, ErrUnknownObject) {
		t.Fatalf("err = %v, want ErrUnknownObject", err)
	}
	if w.pool.Len() != 0 {
		t.Fatalf("Len = %d, want 0", w.pool.Len())
	}
}

func TestUnsupportedCategory(t *testing.T) {
	w := newWorld(config.Obstacles)
	err := w.pool.Apply(messages.ObjectUpdate{ID: 1, Category: uint8(CategoryLoot), Full: true, Data: []byte{0}})
	if !errors.Is(err, ErrUnsupportedCategory) {
		t.Fatalf("err = %v, want ErrUnsupportedCategory", err)
	}
}

func TestCategoryMismatchForKnownObject(t *testing.T) {
	w := newWorld(config.Obstacles)
	w.mustApply(t, 1, "rock", alive(5, 5), true)

	err := w.pool.Apply(messages.ObjectUpdate{ID: 1, Category: uint8(CategoryPlayer), Data: []byte{0, 0}})
	if !errors.Is(err, ErrUnsupportedCategory) {
		t.Fatalf("err = %v, want ErrUnsupportedCategory", err)
	}
}

func TestUnknownDefinition(t *testing.T) {
	w := newWorld(config.Obstacles)
	err := w.pool.Apply(updateWithData(3, 999, []byte{0, 0, 0, 0, 0, 0}))
	if !errors.Is(err, ErrUnknownDefinition) {
		t.Fatalf("err = %v, want ErrUnknownDefinition", err)
	}
}

func TestTruncatedCreationIsDropped(t *testing.T) {
	w := newWorld(config.Obstacles)
	typ, def := typeOf(t, "tree_oak")
	u, err := EncodeObstacleUpdate(8, typ, def, alive(10, 10), true)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	u.Data = u.Data[:3]

	if err := w.pool.Apply(u); err == nil {
		t.Fatalf("truncated creation succeeded")
	}
	if _, ok := w.pool.Get(8); ok {
		t.Fatalf("truncated object kept in the pool")
	}
	if w.destroyed[8] != 1 {
		t.Fatalf("dropped object destroyed %d times, want 1", w.destroyed[8])
	}
}

func TestFullUpdateForKnownObjectMovesIt(t *testing.T) {
	w := newWorld(config.Obstacles)
	w.mustApply(t, 2, "crate_regular", alive(10, 10), true)
	w.mustApply(t, 2, "crate_regular", alive(600, 700), true)

	o := w.obstacle(t, 2)
	if !near(o.Position().X, 600) || !near(o.Position().Y, 700) {
		t.Fatalf("position = %v, want (600, 700)", o.Position())
	}
	min, max := o.Hitbox().Bounds()
	if !near((min.X+max.X)/2, 600) || !near((min.Y+max.Y)/2, 700) {
		t.Fatalf("hitbox centre = (%v, %v), want (600, 700)", (min.X+max.X)/2, (min.Y+max.Y)/2)
	}
	if w.pool.Len() != 1 {
		t.Fatalf("Len = %d, want 1", w.pool.Len())
	}
}

func TestRemoveEachAndClear(t *testing.T) {
	w := newWorld(config.Obstacles)
	for _, id := range []uint16{30, 10, 20} {
		w.mustApply(t, id, "bush", alive(float64(id), 1), true)
	}

	var ids []uint16
	w.pool.Each(func(o GameObject) { ids = append(ids, o.ID()) })
	if len(ids) != 3 || ids[0] != 10 || ids[1] != 20 || ids[2] != 30 {
		t.Fatalf("Each order = %v, want [10 20 30]", ids)
	}

	if !w.pool.Remove(20) {
		t.Fatalf("Remove(20) = false")
	}
	if w.pool.Remove(20) {
		t.Fatalf("second Remove(20) = true")
	}
	if w.destroyed[20] != 1 {
		t.Fatalf("removed object destroyed %d times", w.destroyed[20])
	}

	w.pool.Clear()
	if w.pool.Len() != 0 || w.destroyed[10] != 1 || w.destroyed[30] != 1 {
		t.Fatalf("Clear left len %d, destroyed %v", w.pool.Len(), w.destroyed)
	}
}
