package vango

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Owner is a disposal scope. Effects, cleanups, child owners and context
// values belong to the owner that was current when they were created, and
// disposing an owner releases all of them.
//
// Context values and error handlers are resolved along the parent chain.
type Owner struct {
	id     uint64
	parent *Owner

	mu       sync.Mutex
	children []*Owner
	effects  []*Effect
	cleanups []func()
	values   map[any]any

	// errorHandler receives panics raised by computations below this owner.
	errorHandler func(error)

	disposed atomic.Bool
}

// NewOwner creates an owner below parent, or a root when parent is nil.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{id: nextID(), parent: parent}
	if parent != nil {
		parent.mu.Lock()
		parent.children = append(parent.children, o)
		parent.mu.Unlock()
	}
	return o
}

// ID returns the owner's identifier.
func (o *Owner) ID() uint64 {
	return o.id
}

// Parent returns the parent owner, or nil for a root.
func (o *Owner) Parent() *Owner {
	return o.parent
}

// IsDisposed reports whether Dispose has been called.
func (o *Owner) IsDisposed() bool {
	return o.disposed.Load()
}

func (o *Owner) childCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.children)
}

func (o *Owner) detach(child *Owner) {
	o.mu.Lock()
	if i := slices.Index(o.children, child); i >= 0 {
		o.children = slices.Delete(o.children, i, i+1)
	}
	o.mu.Unlock()
}

func (o *Owner) adopt(e *Effect) {
	o.mu.Lock()
	o.effects = append(o.effects, e)
	o.mu.Unlock()
}

// OnCleanup registers fn to run when the owner is disposed. On a disposed
// owner fn runs immediately.
func (o *Owner) OnCleanup(fn func()) {
	if o.disposed.Load() {
		fn()
		return
	}
	o.mu.Lock()
	o.cleanups = append(o.cleanups, fn)
	o.mu.Unlock()
}

// SetValue stores a context value on this owner.
func (o *Owner) SetValue(key, value any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.values == nil {
		o.values = make(map[any]any)
	}
	o.values[key] = value
}

// GetValue looks key up on this owner and then its ancestors. The boolean
// reports whether any of them holds the key.
func (o *Owner) GetValue(key any) (any, bool) {
	for cur := o; cur != nil; cur = cur.parent {
		cur.mu.Lock()
		v, ok := cur.values[key]
		cur.mu.Unlock()
		if ok {
			return v, true
		}
	}
	return nil, false
}

// Dispose releases the owner: children last-created first, then effects,
// then cleanups in reverse registration order. Calling it again does
// nothing.
func (o *Owner) Dispose() {
	if o.disposed.Swap(true) {
		return
	}
	if o.parent != nil {
		o.parent.detach(o)
	}
	o.disposeContents()
}

// disposeContents releases everything the owner holds but leaves the owner
// usable. Effects reset their scope with it between runs.
func (o *Owner) disposeContents() {
	o.mu.Lock()
	children, effects, cleanups := o.children, o.effects, o.cleanups
	o.children, o.effects, o.cleanups = nil, nil, nil
	o.mu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}
	for _, e := range effects {
		e.dispose()
	}
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}
