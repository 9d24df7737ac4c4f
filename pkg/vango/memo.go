package vango

import (
	"sync"
	"sync/atomic"
)

// Memo is a derived value. It computes lazily on first read, caches the
// result, and recomputes on the next read after a dependency changed.
// Memos are sources too, so memos and effects can depend on them.
type Memo[T any] struct {
	src     source
	compute func() T
	deps    deps

	mu    sync.Mutex
	value T
	fresh bool

	// running guards against a memo reading itself.
	running atomic.Bool
}

// NewMemo creates a memo over compute. Nothing runs until the first read.
func NewMemo[T any](compute func() T) *Memo[T] {
	return &Memo[T]{src: newSource(), compute: compute}
}

// Get returns the value, recomputing it if stale, and subscribes the
// current listener.
func (m *Memo[T]) Get() T {
	m.src.observe()
	return m.Peek()
}

// Peek returns the value without subscribing. A stale value is still
// recomputed.
func (m *Memo[T]) Peek() T {
	m.mu.Lock()
	fresh := m.fresh
	m.mu.Unlock()
	if !fresh {
		m.refresh()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value
}

// MarkDirty drops the cached value and passes the change on.
func (m *Memo[T]) MarkDirty() {
	m.mu.Lock()
	wasFresh := m.fresh
	m.fresh = false
	m.mu.Unlock()

	if wasFresh {
		m.src.notify()
	}
}

// ID returns the memo's identifier.
func (m *Memo[T]) ID() uint64 {
	return m.src.id
}

func (m *Memo[T]) dependOn(s *source) {
	m.deps.add(s)
}

func (m *Memo[T]) refresh() {
	if m.running.Swap(true) {
		return
	}
	defer m.running.Store(false)

	m.deps.release(m)

	prev := setCurrentListener(m)
	defer setCurrentListener(prev)
	v := m.compute()

	m.mu.Lock()
	m.value = v
	m.fresh = true
	m.mu.Unlock()
}

var _ dependent = (*Memo[int])(nil)
