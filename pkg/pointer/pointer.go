// Package pointer carries pointer signals from the host UI runtime to the
// components that track a drag.
//
// Handlers run synchronously on the dispatching goroutine, in registration
// order. A handler must not cancel its own subscription while it is running.
package pointer

import "sync"

// Handler receives pointer coordinates in screen cells.
type Handler func(x, y int)

// Subscription is a registered handler.
type Subscription struct {
	mu      sync.Mutex
	active  bool
	handler Handler
	detach  func(*Subscription)
}

// Cancel deregisters the handler. Once Cancel returns the handler is never
// invoked again; a dispatch already running the handler completes first.
func (s *Subscription) Cancel() {
	if s == nil {
		return
	}
	s.mu.Lock()
	wasActive := s.active
	s.active = false
	s.mu.Unlock()
	if wasActive && s.detach != nil {
		s.detach(s)
	}
}

// Active reports whether the handler can still be invoked.
func (s *Subscription) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *Subscription) invoke(x, y int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return false
	}
	s.handler(x, y)
	return true
}

type registry struct {
	mu   sync.Mutex
	subs []*Subscription
}

func (r *registry) add(h Handler) *Subscription {
	sub := &Subscription{active: true, handler: h, detach: r.remove}
	r.mu.Lock()
	r.subs = append(r.subs, sub)
	r.mu.Unlock()
	return sub
}

func (r *registry) remove(sub *Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.subs {
		if s == sub {
			r.subs = append(r.subs[:i:i], r.subs[i+1:]...)
			return
		}
	}
}

func (r *registry) snapshot() []*Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Subscription(nil), r.subs...)
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

// Surface is the "pointer moved" signal of the calendar's interactive area.
type Surface struct {
	reg registry
}

// NewSurface creates a surface with no listeners.
func NewSurface() *Surface {
	return &Surface{}
}

// OnMove registers h for every subsequent move.
func (s *Surface) OnMove(h Handler) *Subscription {
	return s.reg.add(h)
}

// Move delivers a pointer movement to every listener and returns how many
// handlers ran.
func (s *Surface) Move(x, y int) int {
	n := 0
	for _, sub := range s.reg.snapshot() {
		if sub.invoke(x, y) {
			n++
		}
	}
	return n
}

// Listeners counts registered move handlers.
func (s *Surface) Listeners() int {
	return s.reg.len()
}

// ReleaseSignal dispatches pointer-release notifications to one-shot
// listeners, wherever on screen the release happens.
type ReleaseSignal struct {
	reg registry
}

// NewReleaseSignal creates a release signal with no listeners.
func NewReleaseSignal() *ReleaseSignal {
	return &ReleaseSignal{}
}

// Once registers h for the next release only. The subscription is
// deregistered before h runs.
func (r *ReleaseSignal) Once(h Handler) *Subscription {
	return r.reg.add(h)
}

// Release notifies and deregisters every pending listener. It returns how
// many handlers ran.
func (r *ReleaseSignal) Release(x, y int) int {
	n := 0
	for _, sub := range r.reg.snapshot() {
		if sub.fire(x, y) {
			n++
		}
	}
	return n
}

// Listeners counts pending release handlers.
func (r *ReleaseSignal) Listeners() int {
	return r.reg.len()
}

// fire runs a one-shot handler: it deactivates and detaches the
// subscription first so the handler can never run twice.
func (s *Subscription) fire(x, y int) bool {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return false
	}
	s.active = false
	s.mu.Unlock()
	if s.detach != nil {
		s.detach(s)
	}
	s.handler(x, y)
	return true
}
