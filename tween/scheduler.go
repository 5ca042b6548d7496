package tween

// Scheduler is the sole owner of live tweens. It is not safe for concurrent
// use; everything runs on the game loop.
type Scheduler struct {
	tweens  map[Handle]*Tween
	order   []Handle
	scratch []Handle
	next    Handle
}

func NewScheduler() *Scheduler {
	return &Scheduler{tweens: make(map[Handle]*Tween)}
}

// Create registers a tween moving each named field of target to its goal over
// duration. Start values are captured now.
func (s *Scheduler) Create(target Target, goals map[string]float64, duration float64, opts Options) (Handle, error) {
	t, err := newTween(target, goals, duration, opts)
	if err != nil {
		return 0, err
	}
	s.next++
	h := s.next
	s.tweens[h] = t
	s.order = append(s.order, h)
	return h, nil
}

// Advance steps every live tween by dt, in registration order. Tweens created
// by callbacks start on the next call; tweens cancelled by callbacks are
// skipped.
func (s *Scheduler) Advance(dt float64) {
	s.scratch = append(s.scratch[:0], s.order...)
	for _, h := range s.scratch {
		t, ok := s.tweens[h]
		if !ok || t.dead {
			continue
		}
		if t.update(dt) {
			t.dead = true
			delete(s.tweens, h)
			if t.opts.OnComplete != nil {
				t.opts.OnComplete()
			}
		}
	}
	s.compact()
}

// Cancel removes a tween without running its completion callback. It reports
// whether the tween was live.
func (s *Scheduler) Cancel(h Handle) bool {
	t, ok := s.tweens[h]
	if !ok {
		return false
	}
	t.dead = true
	delete(s.tweens, h)
	return true
}

// Active reports whether h is still running.
func (s *Scheduler) Active(h Handle) bool {
	_, ok := s.tweens[h]
	return ok
}

// Info describes a live tween.
func (s *Scheduler) Info(h Handle) (Info, bool) {
	t, ok := s.tweens[h]
	if !ok {
		return Info{}, false
	}
	return t.info(), true
}

// Len is the number of live tweens.
func (s *Scheduler) Len() int { return len(s.tweens) }

// Clear cancels everything, e.g. on scene teardown.
func (s *Scheduler) Clear() {
	for _, t := range s.tweens {
		t.dead = true
	}
	s.tweens = make(map[Handle]*Tween)
	s.order = s.order[:0]
}

func (s *Scheduler) compact() {
	live := s.order[:0]
	for _, h := range s.order {
		if _, ok := s.tweens[h]; ok {
			live = append(live, h)
		}
	}
	s.order = live
}
