// Package observe provides the change-notification plumbing shared by the
// trip store and the screen state containers.
package observe

import "sync"

// Registry fans a value out to subscribers in subscription order.
// The zero value is ready to use and safe for concurrent use.
type Registry[T any] struct {
	mu   sync.Mutex
	next uint64
	subs []subscriber[T]
}

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// Subscribe registers fn and returns a function that removes it again.
// Calling the returned function more than once is harmless.
func (r *Registry[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	id := r.next
	r.subs = append(r.subs, subscriber[T]{id: id, fn: fn})

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, s := range r.subs {
			if s.id == id {
				r.subs = append(r.subs[:i:i], r.subs[i+1:]...)
				return
			}
		}
	}
}

// Notify calls every current subscriber with v, synchronously.
func (r *Registry[T]) Notify(v T) {
	r.mu.Lock()
	subs := make([]subscriber[T], len(r.subs))
	copy(subs, r.subs)
	r.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
}

// Value is a state container with a single-writer discipline: Update calls
// are serialized, readers never block on a writer's slow work, and every
// change reaches all subscribers before Update returns.
//
// Subscribers may read the Value but must not call Update from inside the
// callback; the writer lock is still held while they run.
type Value[T any] struct {
	writeMu sync.Mutex
	mu      sync.RWMutex
	val     T
	clone   func(T) T
	subs    Registry[T]
}

// NewValue returns a Value holding initial. clone must return a copy that
// shares no mutable memory with its argument; it is applied to everything
// handed out of the container.
func NewValue[T any](initial T, clone func(T) T) *Value[T] {
	return &Value[T]{val: clone(initial), clone: clone}
}

// Get returns a copy of the current value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.clone(v.val)
}

// Update hands fn a private copy of the current value. If fn reports a
// change, its result becomes the current value and subscribers are notified.
// fn runs with the writer lock held, so side effects it performs (persisting,
// starting work) happen in the same order as the updates themselves.
func (v *Value[T]) Update(fn func(cur T) (next T, changed bool)) bool {
	v.writeMu.Lock()
	defer v.writeMu.Unlock()

	next, changed := fn(v.Get())
	if !changed {
		return false
	}

	v.mu.Lock()
	v.val = v.clone(next)
	v.mu.Unlock()

	v.subs.Notify(v.clone(next))
	return true
}

// Subscribe registers fn for future changes. See Registry.Subscribe.
func (v *Value[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	return v.subs.Subscribe(fn)
}
