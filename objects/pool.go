package objects

import (
	"fmt"
	"sort"

	"github.com/automoto/obstaclesync/config"
	"github.com/automoto/obstaclesync/shared/bitstream"
	"github.com/automoto/obstaclesync/shared/messages"
)

// Factory builds an empty object of one category. The object receives its
// state from the update that caused its creation.
type Factory func(id uint16, t config.ObjectType) (GameObject, error)

// Pool owns every live networked object, keyed by id. Like the rest of the
// game state it is only touched from the update loop.
type Pool struct {
	objects   map[uint16]GameObject
	factories map[Category]Factory
}

func NewPool() *Pool {
	return &Pool{
		objects:   make(map[uint16]GameObject),
		factories: make(map[Category]Factory),
	}
}

// Register sets the factory used for a category.
func (p *Pool) Register(c Category, f Factory) {
	p.factories[c] = f
}

// Apply decodes one update into the matching object, creating it when a
// full update arrives for an unknown id. A failed update leaves no new object
// behind.
func (p *Pool) Apply(u messages.ObjectUpdate) error {
	r := bitstream.NewReader(u.Data)

	obj, ok := p.objects[u.ID]
	if !ok {
		if !u.Full {
			return fmt.Errorf("%w: %d", ErrUnknownObject, u.ID)
		}
		cat := Category(u.Category)
		factory, ok := p.factories[cat]
		if !ok {
			return fmt.Errorf("object %d: %w: %s", u.ID, ErrUnsupportedCategory, cat)
		}
		created, err := factory(u.ID, config.ObjectType(u.Type))
		if err != nil {
			return fmt.Errorf("object %d: create %s: %w", u.ID, cat, err)
		}
		if err := decode(created, r, true); err != nil {
			created.Destroy()
			return err
		}
		p.objects[u.ID] = created
		return nil
	}

	if obj.Category() != Category(u.Category) {
		return fmt.Errorf("object %d: %w: %s is a %s", u.ID, ErrUnsupportedCategory, Category(u.Category), obj.Category())
	}
	return decode(obj, r, u.Full)
}

func decode(obj GameObject, r *bitstream.Reader, full bool) error {
	if full {
		if err := obj.DeserializeFull(r); err != nil {
			return fmt.Errorf("object %d: full update: %w", obj.ID(), err)
		}
	}
	if err := obj.DeserializePartial(r); err != nil {
		return fmt.Errorf("object %d: partial update: %w", obj.ID(), err)
	}
	return nil
}

// Remove destroys and forgets an object. It reports whether the id was known.
func (p *Pool) Remove(id uint16) bool {
	obj, ok := p.objects[id]
	if !ok {
		return false
	}
	obj.Destroy()
	delete(p.objects, id)
	return true
}

func (p *Pool) Get(id uint16) (GameObject, bool) {
	obj, ok := p.objects[id]
	return obj, ok
}

// Obstacle returns the object with id if it is an obstacle.
func (p *Pool) Obstacle(id uint16) (*Obstacle, bool) {
	obj, ok := p.objects[id]
	if !ok {
		return nil, false
	}
	o, ok := obj.(interface{ AsObstacle() *Obstacle })
	if !ok {
		return nil, false
	}
	return o.AsObstacle(), true
}

// Each visits objects in id order.
func (p *Pool) Each(fn func(GameObject)) {
	ids := make([]uint16, 0, len(p.objects))
	for id := range p.objects {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		fn(p.objects[id])
	}
}

func (p *Pool) Len() int { return len(p.objects) }

// Clear destroys every object.
func (p *Pool) Clear() {
	for id, obj := range p.objects {
		obj.Destroy()
		delete(p.objects, id)
	}
}
