package vango

// Batch runs fn and defers notifications until it returns, so listeners
// affected by several writes run once. Nested batches notify when the
// outermost one ends.
//
// Example:
//
//	Batch(func() {
//	    firstName.Set("John")
//	    lastName.Set("Doe")
//	})
//	// dependent effects have run once, seeing both values
func Batch(fn func()) {
	ctx := getTrackingContext()
	ctx.batchDepth++
	defer func() {
		ctx.batchDepth--
		if ctx.batchDepth == 0 {
			runUpdates(notifyPending)
		}
	}()
	fn()
}

// notifyPending marks each listener held back by Batch dirty once.
func notifyPending() {
	ctx := getTrackingContext()
	pending := ctx.pendingUpdates
	ctx.pendingUpdates = nil

	seen := make(map[uint64]struct{}, len(pending))
	for _, l := range pending {
		if _, dup := seen[l.ID()]; dup {
			continue
		}
		seen[l.ID()] = struct{}{}
		l.MarkDirty()
	}
}

// Untracked runs fn without subscribing the current listener to what fn
// reads. For a single read, Peek says the same thing more directly.
//
// Example:
//
//	Untracked(func() {
//	    fmt.Println("Current value:", count.Get())
//	})
func Untracked(fn func()) {
	prev := setCurrentListener(nil)
	defer setCurrentListener(prev)
	fn()
}

// Untrack is Untracked for functions that return a value.
func Untrack[T any](fn func() T) T {
	prev := setCurrentListener(nil)
	defer setCurrentListener(prev)
	return fn()
}
