package vango

import "sync/atomic"

// Effect is a side effect that re-runs when something it read changes.
//
// Each run happens inside the effect's own scope owner. Before a re-run the
// previous Cleanup runs, everything the previous run created is disposed,
// and the effect detaches from what it read.
type Effect struct {
	id      uint64
	fn      func() Cleanup
	cleanup Cleanup
	deps    deps
	scope   *Owner

	// render effects update the DOM and flush ahead of user effects.
	render bool

	queued  atomic.Bool
	stopped atomic.Bool
}

// MarkDirty schedules a re-run. Repeated calls before the run coalesce.
func (e *Effect) MarkDirty() {
	if e.stopped.Load() {
		return
	}
	if e.queued.CompareAndSwap(false, true) {
		enqueue(e)
	}
}

// ID returns the effect's identifier.
func (e *Effect) ID() uint64 {
	return e.id
}

// Owner returns the scope the effect body runs in.
func (e *Effect) Owner() *Owner {
	return e.scope
}

func (e *Effect) dependOn(s *source) {
	e.deps.add(s)
}

// reset runs the last cleanup and forgets the last run's dependencies.
func (e *Effect) reset() {
	if c := e.cleanup; c != nil {
		e.cleanup = nil
		c()
	}
	e.deps.release(e)
}

func (e *Effect) run() {
	if e.stopped.Load() {
		return
	}
	e.queued.Store(false)
	e.reset()
	e.scope.disposeContents()

	prevOwner := setCurrentOwner(e.scope)
	prevListener := setCurrentListener(e)
	defer func() {
		setCurrentListener(prevListener)
		setCurrentOwner(prevOwner)
		if r := recover(); r != nil {
			handleError(e.scope, r)
		}
	}()

	e.cleanup = e.fn()
}

// Dispose stops the effect and runs its cleanup.
func (e *Effect) Dispose() {
	e.dispose()
}

func (e *Effect) dispose() {
	if e.stopped.Swap(true) {
		return
	}
	e.reset()
	e.scope.Dispose()
}

func newEffect(fn func() Cleanup, render bool) *Effect {
	owner := getCurrentOwner()
	e := &Effect{id: nextID(), fn: fn, scope: NewOwner(owner), render: render}
	if owner != nil {
		owner.adopt(e)
	}
	return e
}

// CreateEffect creates a user effect. fn runs now and again whenever a
// signal or memo it read changes; the Cleanup it returns runs before the
// next run and on disposal.
//
// Example:
//
//	CreateEffect(func() Cleanup {
//	    fmt.Println("Count is:", count.Get())
//	    return func() { fmt.Println("Cleanup") }
//	})
func CreateEffect(fn func() Cleanup) *Effect {
	e := newEffect(fn, false)
	runUpdates(e.run)
	return e
}

// CreateRenderEffect creates an effect that keeps rendered output in sync.
// Within an update render effects run before user effects.
func CreateRenderEffect(fn func() Cleanup) *Effect {
	e := newEffect(fn, true)
	runUpdates(e.run)
	return e
}

// CreateComputed runs fn now and whenever its dependencies change, with
// render-effect priority.
func CreateComputed(fn func()) *Effect {
	return CreateRenderEffect(func() Cleanup {
		fn()
		return nil
	})
}

// OnMount runs fn once, untracked, as a user effect of the current owner.
//
// Example:
//
//	OnMount(func() {
//	    fmt.Println("Component mounted")
//	})
func OnMount(fn func()) {
	CreateEffect(func() Cleanup {
		Untracked(fn)
		return nil
	})
}

// OnCleanup registers fn on the current owner: it runs on disposal or,
// inside an effect, before the effect re-runs. Outside any owner it does
// nothing.
func OnCleanup(fn func()) {
	if owner := getCurrentOwner(); owner != nil {
		owner.OnCleanup(fn)
	}
}

var _ dependent = (*Effect)(nil)
