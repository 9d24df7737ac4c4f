package vtl

import (
	"fmt"
	"sync"

	"github.com/vango-dev/vtl/pkg/dom"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/html"
)

// Mount is one registration made by Render or RenderHook.
type Mount struct {
	// Container is the element Render created, or nil when the caller
	// supplied one or nothing was mounted into the DOM.
	Container *html.Node

	// Dispose releases the reactive root.
	Dispose func()

	kind string
}

// MountRegistry tracks mounts until they are cleaned up. Registrations are
// compared by identity and swept in insertion order.
type MountRegistry struct {
	mu     sync.Mutex
	mounts []*Mount
}

// NewMountRegistry creates an empty registry.
func NewMountRegistry() *MountRegistry {
	return &MountRegistry{}
}

// Add registers m.
func (r *MountRegistry) Add(m *Mount) {
	r.mu.Lock()
	r.mounts = append(r.mounts, m)
	r.mu.Unlock()
	recordMount(m.kind)
}

// Remove unregisters m and reports whether it was registered.
func (r *MountRegistry) Remove(m *Mount) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, cur := range r.mounts {
		if cur == m {
			r.mounts = append(r.mounts[:i], r.mounts[i+1:]...)
			recordUnmount()
			return true
		}
	}
	return false
}

// Len returns the number of registrations.
func (r *MountRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.mounts)
}

// Mounts returns a snapshot of the registrations in insertion order.
func (r *MountRegistry) Mounts() []*Mount {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Mount(nil), r.mounts...)
}

// Sweep disposes every registration, detaches the containers Render
// created and empties the registry. Panics from disposers are logged and
// do not stop the sweep.
func (r *MountRegistry) Sweep() {
	mounts := r.Mounts()
	span := startSpan("vtl.cleanup", attribute.Int("vtl.mounts", len(mounts)))
	defer span.End()

	for _, m := range mounts {
		cleanupMount(m, span)
		r.Remove(m)
	}
}

// Clear forgets every registration without disposing it.
func (r *MountRegistry) Clear() {
	r.mu.Lock()
	n := len(r.mounts)
	r.mounts = nil
	r.mu.Unlock()
	for i := 0; i < n; i++ {
		recordUnmount()
	}
}

func cleanupMount(m *Mount, span trace.Span) {
	if m.Dispose != nil {
		func() {
			defer func() {
				if p := recover(); p != nil {
					recordCleanupFailure()
					span.AddEvent("dispose panicked", trace.WithAttributes(
						attribute.String("vtl.error", fmt.Sprint(p)),
						attribute.String("vtl.kind", m.kind)))
					Logger().Debug("vtl: dispose panicked during cleanup",
						"error", fmt.Sprint(p),
						"container", m.Container != nil)
				}
			}()
			m.Dispose()
		}()
	}
	if m.Container != nil {
		dom.Remove(m.Container)
	}
}

var (
	registryMu      sync.RWMutex
	defaultRegistry = NewMountRegistry()
)

// DefaultRegistry returns the process-wide registry used when Options do
// not name one.
func DefaultRegistry() *MountRegistry {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return defaultRegistry
}

// SetDefaultRegistry replaces the process-wide registry and returns the
// previous one.
func SetDefaultRegistry(r *MountRegistry) *MountRegistry {
	registryMu.Lock()
	defer registryMu.Unlock()
	old := defaultRegistry
	defaultRegistry = r
	return old
}

// Cleanup sweeps the default registry.
func Cleanup() {
	DefaultRegistry().Sweep()
}

func registryOrDefault(r *MountRegistry) *MountRegistry {
	if r != nil {
		return r
	}
	return DefaultRegistry()
}
