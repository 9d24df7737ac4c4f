package vango

import (
	"reflect"
	"sync"
)

// Signal is a reactive value. Reading it with Get inside an effect, memo
// or render subscribes the reader; changing it re-runs the subscribers.
type Signal[T any] struct {
	src   source
	mu    sync.RWMutex
	value T
	equal func(T, T) bool
}

// NewSignal creates a signal holding initial.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{src: newSource(), value: initial}
}

// Get returns the value and subscribes the current listener.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	v := s.value
	s.mu.RUnlock()
	s.src.observe()
	return v
}

// Peek returns the value without subscribing.
func (s *Signal[T]) Peek() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set stores value. If it differs from the current value, subscribers
// re-run before Set returns, or when the enclosing Batch ends.
func (s *Signal[T]) Set(value T) {
	s.Update(func(T) T { return value })
}

// Update replaces the value with fn(current) under the signal's lock.
func (s *Signal[T]) Update(fn func(T) T) {
	s.mu.Lock()
	next := fn(s.value)
	changed := !s.same(s.value, next)
	if changed {
		s.value = next
	}
	s.mu.Unlock()

	if changed {
		s.src.notify()
		flush()
	}
}

// WithEquals sets the comparison that decides whether Set is a change.
// A function that always returns false makes every Set notify.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.equal = fn
	return s
}

// ID returns the signal's identifier.
func (s *Signal[T]) ID() uint64 {
	return s.src.id
}

func (s *Signal[T]) same(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals compares comparable dynamic types with == and falls back
// to reflect.DeepEqual.
func defaultEquals[T any](a, b T) bool {
	av, bv := any(a), any(b)
	if av == nil || bv == nil {
		return av == nil && bv == nil
	}
	if reflect.TypeOf(av).Comparable() {
		return av == bv
	}
	return reflect.DeepEqual(a, b)
}
