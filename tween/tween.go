// Package tween animates numeric fields of a target over time. A Scheduler
// owns every live tween and is advanced once per frame.
package tween

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var ErrInvalidTween = errors.New("invalid tween")

// Target exposes named numeric fields to the scheduler.
type Target interface {
	TweenValue(field string) (float64, bool)
	SetTweenValue(field string, value float64)
}

// Options tune a tween. The zero value is a linear, one-way tween with no
// callbacks.
type Options struct {
	Ease ease.TweenFunc
	// Yoyo plays the tween back to its start once after reaching the goal.
	Yoyo       bool
	OnUpdate   func()
	OnComplete func()
}

// Handle identifies a tween inside its Scheduler.
type Handle uint32

type field struct {
	name        string
	start, goal float64
}

// Tween is one running interpolation.
type Tween struct {
	target   Target
	fields   []field
	duration float64
	opts     Options
	clock    *gween.Tween
	dead     bool
}

func newTween(target Target, goals map[string]float64, duration float64, opts Options) (*Tween, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: nil target", ErrInvalidTween)
	}
	if len(goals) == 0 {
		return nil, fmt.Errorf("%w: no fields", ErrInvalidTween)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("%w: duration %v", ErrInvalidTween, duration)
	}
	if opts.Ease == nil {
		opts.Ease = ease.Linear
	}

	names := make([]string, 0, len(goals))
	for name := range goals {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]field, 0, len(names))
	for _, name := range names {
		start, ok := target.TweenValue(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidTween, name)
		}
		fields = append(fields, field{name: name, start: start, goal: goals[name]})
	}

	return &Tween{
		target:   target,
		fields:   fields,
		duration: duration,
		opts:     opts,
		clock:    gween.New(0, 1, float32(duration), opts.Ease),
	}, nil
}

// update advances the tween and reports whether it finished for good.
func (t *Tween) update(dt float64) bool {
	progress, finished := t.clock.Update(float32(dt))
	if finished {
		for _, f := range t.fields {
			t.target.SetTweenValue(f.name, f.goal)
		}
		if t.opts.OnUpdate != nil {
			t.opts.OnUpdate()
		}
		if t.opts.Yoyo {
			t.opts.Yoyo = false
			for i := range t.fields {
				t.fields[i].start, t.fields[i].goal = t.fields[i].goal, t.fields[i].start
			}
			t.clock = gween.New(0, 1, float32(t.duration), t.opts.Ease)
			return false
		}
		return true
	}

	eased := float64(progress)
	for _, f := range t.fields {
		t.target.SetTweenValue(f.name, f.start+(f.goal-f.start)*eased)
	}
	if t.opts.OnUpdate != nil {
		t.opts.OnUpdate()
	}
	return false
}

// Info is a read-only view of a tween.
type Info struct {
	Duration float64
	Goals    map[string]float64
	Yoyo     bool
}

func (t *Tween) info() Info {
	goals := make(map[string]float64, len(t.fields))
	for _, f := range t.fields {
		goals[f.name] = f.goal
	}
	return Info{Duration: t.duration, Goals: goals, Yoyo: t.opts.Yoyo}
}
