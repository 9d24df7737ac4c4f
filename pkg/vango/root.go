package vango

// CreateRoot runs fn inside a new owner that has no parent. Nothing created
// inside the root is released until the dispose function passed to fn is
// called. Reads inside fn are not tracked.
//
// Example:
//
//	count := CreateRoot(func(dispose func()) *Signal[int] {
//	    s := NewSignal(0)
//	    CreateEffect(func() Cleanup { log(s.Get()); return nil })
//	    return s
//	})
func CreateRoot[T any](fn func(dispose func()) T) T {
	root := NewOwner(nil)

	ctx := getTrackingContext()
	oldOwner := setCurrentOwner(root)
	oldListener := setCurrentListener(nil)
	defer func() {
		ctx.currentListener = oldListener
		ctx.currentOwner = oldOwner
	}()

	var result T
	runUpdates(func() {
		result = fn(root.Dispose)
	})
	return result
}

// GetOwner returns the owner of the code currently running, or nil.
func GetOwner() *Owner {
	return getCurrentOwner()
}

// RunWithOwner runs fn with owner as the current owner, so that
// computations and context lookups inside fn attach to it. Reads inside fn
// are not tracked. Panics raised by fn propagate to the caller.
func RunWithOwner(owner *Owner, fn func()) {
	ctx := getTrackingContext()
	oldOwner := setCurrentOwner(owner)
	oldListener := setCurrentListener(nil)
	defer func() {
		ctx.currentListener = oldListener
		ctx.currentOwner = oldOwner
	}()

	runUpdates(fn)
}

// CatchError runs fn under a new owner whose handler receives any panic
// raised by fn or, later, by computations created inside it.
//
// Example:
//
//	CatchError(func() {
//	    CreateEffect(func() Cleanup { riskyRead(); return nil })
//	}, func(err error) {
//	    log.Printf("effect failed: %v", err)
//	})
func CatchError(fn func(), handler func(error)) {
	boundary := NewOwner(getCurrentOwner())
	boundary.errorHandler = handler

	ctx := getTrackingContext()
	oldOwner := setCurrentOwner(boundary)
	defer func() {
		ctx.currentOwner = oldOwner
		if r := recover(); r != nil {
			handler(toError(r))
		}
	}()

	runUpdates(fn)
}

// CatchErrorUnder runs fn under a new owner below parent, so effects it
// creates are disposed with parent and see parent's context. Panics raised
// by fn, or later by those effects, go to the nearest error handler on
// parent's chain; handler receives them only when the chain has none.
// The new owner is returned for early disposal.
func CatchErrorUnder(parent *Owner, fn func(), handler func(error)) (boundary *Owner) {
	boundary = NewOwner(parent)
	boundary.errorHandler = func(err error) {
		if !parent.handle(err) {
			handler(err)
		}
	}

	ctx := getTrackingContext()
	oldOwner := setCurrentOwner(boundary)
	oldListener := setCurrentListener(nil)
	defer func() {
		ctx.currentListener = oldListener
		ctx.currentOwner = oldOwner
		if r := recover(); r != nil {
			boundary.errorHandler(toError(r))
		}
	}()

	runUpdates(fn)
	return boundary
}

// handle passes err to the first error handler on o's chain and reports
// whether there was one.
func (o *Owner) handle(err error) bool {
	for cur := o; cur != nil; cur = cur.parent {
		if cur.errorHandler != nil {
			cur.errorHandler(err)
			return true
		}
	}
	return false
}

// handleError routes a recovered panic to the nearest error handler above
// owner. Without one, the panic continues with its original value.
func handleError(owner *Owner, r any) {
	if !owner.handle(toError(r)) {
		panic(r)
	}
}
