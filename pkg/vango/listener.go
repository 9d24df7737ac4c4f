package vango

import (
	"slices"
	"sync"
)

// Listener is notified when something it read changes. Memos and effects
// are listeners.
type Listener interface {
	// MarkDirty reports a changed dependency. Memos drop their cached
	// value; effects schedule a re-run.
	MarkDirty()

	// ID identifies the listener; notifications are deduplicated by it.
	ID() uint64
}

// Cleanup is returned by an effect and runs before the next run and on
// disposal.
type Cleanup func()

// source is the observer list shared by signals and memos. Observers are
// kept in subscription order so effects re-run in creation order.
type source struct {
	id        uint64
	mu        sync.Mutex
	observers []Listener
}

func newSource() source {
	return source{id: nextID()}
}

// dependent is a listener that remembers the sources it read, so it can
// detach from them before running again.
type dependent interface {
	Listener
	dependOn(s *source)
}

func sameListener(l Listener) func(Listener) bool {
	id := l.ID()
	return func(o Listener) bool { return o.ID() == id }
}

// observe subscribes the current listener, if any.
func (s *source) observe() {
	l := getCurrentListener()
	if l == nil {
		return
	}
	s.mu.Lock()
	if !slices.ContainsFunc(s.observers, sameListener(l)) {
		s.observers = append(s.observers, l)
	}
	s.mu.Unlock()
	if d, ok := l.(dependent); ok {
		d.dependOn(s)
	}
}

func (s *source) forget(l Listener) {
	s.mu.Lock()
	s.observers = slices.DeleteFunc(s.observers, sameListener(l))
	s.mu.Unlock()
}

func (s *source) observerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers)
}

// notify marks every observer dirty. Inside a Batch the observers are
// held back until the outermost batch ends.
func (s *source) notify() {
	s.mu.Lock()
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	ctx := getTrackingContext()
	if ctx.batchDepth > 0 {
		ctx.pendingUpdates = append(ctx.pendingUpdates, observers...)
		return
	}
	for _, o := range observers {
		o.MarkDirty()
	}
}

// deps records the sources a computation read during its last run.
type deps struct {
	mu   sync.Mutex
	list []*source
}

func (d *deps) add(s *source) {
	d.mu.Lock()
	if !slices.Contains(d.list, s) {
		d.list = append(d.list, s)
	}
	d.mu.Unlock()
}

// release detaches l from everything it read.
func (d *deps) release(l Listener) {
	d.mu.Lock()
	list := d.list
	d.list = nil
	d.mu.Unlock()
	for _, s := range list {
		s.forget(l)
	}
}
