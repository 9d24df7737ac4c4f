package vango

import (
	"bytes"
	"runtime"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"
)

// TrackingContext is the reactive state of one goroutine: what is being
// tracked, who owns new computations, and which effects wait to run.
type TrackingContext struct {
	currentOwner    *Owner
	currentListener Listener

	// batchDepth counts nested Batch calls; pendingUpdates holds the
	// listeners notified meanwhile.
	batchDepth     int
	pendingUpdates []Listener

	// queue holds dirty effects. While updating, writes only queue.
	queue    []*Effect
	updating bool
}

var (
	trackingContexts sync.Map // goroutine id -> *TrackingContext
	lastID           atomic.Uint64
)

// nextID returns a process-unique identifier for a reactive primitive.
func nextID() uint64 {
	return lastID.Add(1)
}

// goroutineID parses the id from the "goroutine N [...]" stack header.
func goroutineID() uint64 {
	var buf [64]byte
	header := bytes.TrimPrefix(buf[:runtime.Stack(buf[:], false)], []byte("goroutine "))
	if i := bytes.IndexByte(header, ' '); i >= 0 {
		header = header[:i]
	}
	id, _ := strconv.ParseUint(string(header), 10, 64)
	return id
}

func getTrackingContext() *TrackingContext {
	gid := goroutineID()
	if ctx, ok := trackingContexts.Load(gid); ok {
		return ctx.(*TrackingContext)
	}
	ctx, _ := trackingContexts.LoadOrStore(gid, &TrackingContext{})
	return ctx.(*TrackingContext)
}

// ReleaseGoroutine drops the calling goroutine's tracking context so
// short-lived goroutines such as tests do not accumulate entries. It does
// nothing while an update, batch or owner is active on the goroutine.
func ReleaseGoroutine() {
	gid := goroutineID()
	v, ok := trackingContexts.Load(gid)
	if !ok {
		return
	}
	ctx := v.(*TrackingContext)
	if ctx.updating || ctx.batchDepth > 0 || ctx.currentOwner != nil || ctx.currentListener != nil {
		return
	}
	trackingContexts.Delete(gid)
}

func getCurrentListener() Listener {
	return getTrackingContext().currentListener
}

// setCurrentListener installs l and returns the previous listener.
func setCurrentListener(l Listener) Listener {
	ctx := getTrackingContext()
	prev := ctx.currentListener
	ctx.currentListener = l
	return prev
}

func getCurrentOwner() *Owner {
	return getTrackingContext().currentOwner
}

// setCurrentOwner installs o and returns the previous owner.
func setCurrentOwner(o *Owner) *Owner {
	ctx := getTrackingContext()
	prev := ctx.currentOwner
	ctx.currentOwner = o
	return prev
}

func enqueue(e *Effect) {
	ctx := getTrackingContext()
	ctx.queue = append(ctx.queue, e)
}

// runUpdates runs fn as one update and then flushes the effects it
// dirtied. A call made during an update joins it.
func runUpdates(fn func()) {
	ctx := getTrackingContext()
	if ctx.updating {
		fn()
		return
	}

	ctx.updating = true
	defer func() {
		ctx.updating = false
		if r := recover(); r != nil {
			// Abandon the rest of the update.
			for _, e := range ctx.queue {
				e.queued.Store(false)
			}
			ctx.queue = nil
			panic(r)
		}
	}()

	fn()
	flushQueue(ctx)
}

// flushQueue runs queued effects until none are left, render effects
// first.
func flushQueue(ctx *TrackingContext) {
	for len(ctx.queue) > 0 {
		i := slices.IndexFunc(ctx.queue, func(e *Effect) bool { return e.render })
		if i < 0 {
			i = 0
		}
		e := ctx.queue[i]
		ctx.queue = slices.Delete(ctx.queue, i, i+1)
		if e.queued.Load() {
			e.run()
		}
	}
}

// flush runs queued effects unless an update or batch is in progress.
func flush() {
	ctx := getTrackingContext()
	if ctx.updating || ctx.batchDepth > 0 || len(ctx.queue) == 0 {
		return
	}
	runUpdates(func() {})
}

// WithListener runs fn with l as the current listener.
func WithListener(l Listener, fn func()) {
	prev := setCurrentListener(l)
	defer setCurrentListener(prev)
	fn()
}
