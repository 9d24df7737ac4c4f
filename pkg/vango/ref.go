package vango

import "sync"

// Ref points at a value that is filled in later, usually the DOM node
// the renderer created for vdom.Ref. It is safe for concurrent use.
type Ref[T any] struct {
	mu      sync.Mutex
	current T
	set     bool
}

// NewRef creates a ref holding initial. IsSet stays false until Set.
//
// Example:
//
//	input := vango.NewRef[*html.Node](nil)
//	return vdom.Input(vdom.Ref(input), vdom.Type("text"))
func NewRef[T any](initial T) *Ref[T] {
	return &Ref[T]{current: initial}
}

// Current returns the value.
func (r *Ref[T]) Current() T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Set stores value.
func (r *Ref[T]) Set(value T) {
	r.mu.Lock()
	r.current, r.set = value, true
	r.mu.Unlock()
}

// IsSet reports whether Set was called since creation or the last Clear.
func (r *Ref[T]) IsSet() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.set
}

// Clear resets the ref to the zero value.
func (r *Ref[T]) Clear() {
	var zero T
	r.mu.Lock()
	r.current, r.set = zero, false
	r.mu.Unlock()
}
