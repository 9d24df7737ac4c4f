package dom

import (
	"sync"

	"golang.org/x/net/html"
)

// EventInit carries the properties of a new event.
type EventInit struct {
	Bubbles    bool
	Cancelable bool
	Composed   bool

	// Keyboard
	Key      string
	Code     string
	KeyCode  int
	CharCode int

	// Modifiers
	AltKey   bool
	CtrlKey  bool
	MetaKey  bool
	ShiftKey bool

	// Mouse, pointer and wheel
	Button  int
	Buttons int
	ClientX float64
	ClientY float64
	DeltaX  float64
	DeltaY  float64

	// Data is the text carried by input, composition and clipboard events.
	Data string

	// Detail is the click count for mouse events.
	Detail int
}

// Event is a DOM event.
type Event struct {
	EventInit

	// Type is the event name, e.g. "click".
	Type string

	// Target is the node the event was dispatched to.
	Target *html.Node

	// CurrentTarget is the node whose listeners are running.
	CurrentTarget *html.Node

	defaultPrevented   bool
	propagationStopped bool
	immediateStopped   bool
}

// NewEvent creates an event of the given type.
func NewEvent(typ string, init EventInit) *Event {
	return &Event{Type: typ, EventInit: init}
}

// PreventDefault marks a cancelable event as canceled.
func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

// DefaultPrevented reports whether PreventDefault was called on a cancelable event.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation stops the event from reaching further ancestors.
func (e *Event) StopPropagation() {
	e.propagationStopped = true
}

// StopImmediatePropagation also skips the remaining listeners of the
// current node.
func (e *Event) StopImmediatePropagation() {
	e.propagationStopped = true
	e.immediateStopped = true
}

// Listener handles an event.
type Listener func(*Event)

type listenerEntry struct {
	id  uint64
	typ string
	fn  Listener
}

var (
	listenersMu sync.Mutex
	listeners   = map[*html.Node][]listenerEntry{}
	listenerSeq uint64
)

// AddEventListener registers fn for events of type typ on n. The returned
// function removes the listener.
func AddEventListener(n *html.Node, typ string, fn Listener) (remove func()) {
	listenersMu.Lock()
	listenerSeq++
	id := listenerSeq
	listeners[n] = append(listeners[n], listenerEntry{id: id, typ: typ, fn: fn})
	listenersMu.Unlock()

	return func() { removeListener(n, id) }
}

func removeListener(n *html.Node, id uint64) {
	listenersMu.Lock()
	defer listenersMu.Unlock()

	entries := listeners[n]
	for i, e := range entries {
		if e.id == id {
			entries = append(entries[:i:i], entries[i+1:]...)
			break
		}
	}
	if len(entries) == 0 {
		delete(listeners, n)
	} else {
		listeners[n] = entries
	}
}

// RemoveAllListeners drops every listener registered on n and its descendants.
func RemoveAllListeners(n *html.Node) {
	listenersMu.Lock()
	defer listenersMu.Unlock()

	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		delete(listeners, cur)
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
}

// ListenerCount returns the number of listeners registered on n.
func ListenerCount(n *html.Node) int {
	listenersMu.Lock()
	defer listenersMu.Unlock()
	return len(listeners[n])
}

// listenersFor snapshots the listeners of n for typ, so handlers may add or
// remove listeners while the event is dispatched.
func listenersFor(n *html.Node, typ string) []Listener {
	listenersMu.Lock()
	defer listenersMu.Unlock()

	var out []Listener
	for _, e := range listeners[n] {
		if e.typ == typ {
			out = append(out, e.fn)
		}
	}
	return out
}

// DispatchEvent delivers ev to target and, when the event bubbles, to each
// ancestor in turn. It returns false if a listener canceled the event.
func DispatchEvent(target *html.Node, ev *Event) bool {
	ev.Target = target

	for cur := target; cur != nil; cur = cur.Parent {
		ev.CurrentTarget = cur
		for _, fn := range listenersFor(cur, ev.Type) {
			fn(ev)
			if ev.immediateStopped {
				break
			}
		}
		if ev.propagationStopped || !ev.Bubbles {
			break
		}
	}

	ev.CurrentTarget = nil
	return !ev.defaultPrevented
}
