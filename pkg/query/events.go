package query

import (
	"strings"

	"github.com/vango-dev/vtl/pkg/dom"
	"golang.org/x/net/html"
)

// FireEvent dispatches ev to node and returns false when a listener
// called PreventDefault. A nil node is ignored.
func FireEvent(node *html.Node, ev *dom.Event) bool {
	if node == nil || ev == nil {
		return false
	}
	return dom.DispatchEvent(node, ev)
}

// eventDefaults describes one entry of the event map.
type eventDefaults struct {
	typ  string
	init dom.EventInit
}

var (
	bubbling   = dom.EventInit{Bubbles: true}
	cancelable = dom.EventInit{Bubbles: true, Cancelable: true}
	direct     = dom.EventInit{}
)

// eventMap lists the events Fire knows, keyed by name, with the defaults
// a browser would use.
var eventMap = map[string]eventDefaults{
	// Clipboard
	"Copy":  {"copy", cancelable},
	"Cut":   {"cut", cancelable},
	"Paste": {"paste", cancelable},
	// Composition
	"CompositionEnd":    {"compositionend", cancelable},
	"CompositionStart":  {"compositionstart", cancelable},
	"CompositionUpdate": {"compositionupdate", cancelable},
	// Keyboard
	"KeyDown":  {"keydown", cancelable},
	"KeyPress": {"keypress", cancelable},
	"KeyUp":    {"keyup", cancelable},
	// Focus
	"Focus":    {"focus", direct},
	"Blur":     {"blur", direct},
	"FocusIn":  {"focusin", bubbling},
	"FocusOut": {"focusout", bubbling},
	// Form
	"Change":  {"change", bubbling},
	"Input":   {"input", bubbling},
	"Invalid": {"invalid", dom.EventInit{Cancelable: true}},
	"Submit":  {"submit", cancelable},
	"Reset":   {"reset", cancelable},
	// Mouse
	"Click":       {"click", dom.EventInit{Bubbles: true, Cancelable: true, Detail: 1}},
	"ContextMenu": {"contextmenu", cancelable},
	"DblClick":    {"dblclick", dom.EventInit{Bubbles: true, Cancelable: true, Detail: 2}},
	"Drag":        {"drag", cancelable},
	"DragEnd":     {"dragend", bubbling},
	"DragEnter":   {"dragenter", cancelable},
	"DragExit":    {"dragexit", bubbling},
	"DragLeave":   {"dragleave", bubbling},
	"DragOver":    {"dragover", cancelable},
	"DragStart":   {"dragstart", cancelable},
	"Drop":        {"drop", cancelable},
	"MouseDown":   {"mousedown", cancelable},
	"MouseEnter":  {"mouseenter", direct},
	"MouseLeave":  {"mouseleave", direct},
	"MouseMove":   {"mousemove", cancelable},
	"MouseOut":    {"mouseout", cancelable},
	"MouseOver":   {"mouseover", cancelable},
	"MouseUp":     {"mouseup", cancelable},
	// Selection
	"Select": {"select", bubbling},
	// Touch
	"TouchCancel": {"touchcancel", bubbling},
	"TouchEnd":    {"touchend", cancelable},
	"TouchMove":   {"touchmove", cancelable},
	"TouchStart":  {"touchstart", cancelable},
	// UI
	"Resize": {"resize", direct},
	"Scroll": {"scroll", direct},
	// Wheel
	"Wheel": {"wheel", cancelable},
	// Media
	"Abort":          {"abort", direct},
	"CanPlay":        {"canplay", direct},
	"CanPlayThrough": {"canplaythrough", direct},
	"DurationChange": {"durationchange", direct},
	"Emptied":        {"emptied", direct},
	"Encrypted":      {"encrypted", direct},
	"Ended":          {"ended", direct},
	"LoadedData":     {"loadeddata", direct},
	"LoadedMetadata": {"loadedmetadata", direct},
	"LoadStart":      {"loadstart", direct},
	"Pause":          {"pause", direct},
	"Play":           {"play", direct},
	"Playing":        {"playing", direct},
	"Progress":       {"progress", direct},
	"RateChange":     {"ratechange", direct},
	"Seeked":         {"seeked", direct},
	"Seeking":        {"seeking", direct},
	"Stalled":        {"stalled", direct},
	"Suspend":        {"suspend", direct},
	"TimeUpdate":     {"timeupdate", direct},
	"VolumeChange":   {"volumechange", direct},
	"Waiting":        {"waiting", direct},
	// Image and resources
	"Load":  {"load", direct},
	"Error": {"error", direct},
	// Animation
	"AnimationStart":     {"animationstart", bubbling},
	"AnimationEnd":       {"animationend", bubbling},
	"AnimationIteration": {"animationiteration", bubbling},
	// Transition
	"TransitionCancel": {"transitioncancel", bubbling},
	"TransitionEnd":    {"transitionend", cancelable},
	"TransitionRun":    {"transitionrun", cancelable},
	"TransitionStart":  {"transitionstart", cancelable},
	// Pointer
	"PointerOver":   {"pointerover", cancelable},
	"PointerEnter":  {"pointerenter", direct},
	"PointerDown":   {"pointerdown", cancelable},
	"PointerMove":   {"pointermove", cancelable},
	"PointerUp":     {"pointerup", cancelable},
	"PointerCancel": {"pointercancel", bubbling},
	"PointerOut":    {"pointerout", cancelable},
	"PointerLeave":  {"pointerleave", direct},
}

// EventNames returns the names Fire.Event accepts.
func EventNames() []string {
	names := make([]string, 0, len(eventMap))
	for name := range eventMap {
		names = append(names, name)
	}
	return names
}

// eventOptions collect EventOption settings.
type eventOptions struct {
	init    dom.EventInit
	value   *string
	checked *bool
}

// EventOption adjusts an event created by Fire or CreateEvent.
type EventOption func(*eventOptions)

// Init replaces the whole event init.
func Init(init dom.EventInit) EventOption {
	return func(o *eventOptions) { o.init = init }
}

// Bubbles sets whether the event bubbles.
func Bubbles(b bool) EventOption {
	return func(o *eventOptions) { o.init.Bubbles = b }
}

// Cancelable sets whether PreventDefault has an effect.
func Cancelable(c bool) EventOption {
	return func(o *eventOptions) { o.init.Cancelable = c }
}

// Key sets the key of a keyboard event.
func Key(key string) EventOption {
	return func(o *eventOptions) { o.init.Key = key }
}

// KeyCode sets the legacy key code of a keyboard event.
func KeyCode(code int) EventOption {
	return func(o *eventOptions) { o.init.KeyCode = code }
}

// Data sets the data of input, composition and clipboard events.
func Data(data string) EventOption {
	return func(o *eventOptions) { o.init.Data = data }
}

// TargetValue sets the value of the target before the event is dispatched.
func TargetValue(v string) EventOption {
	return func(o *eventOptions) { o.value = &v }
}

// TargetChecked sets the checked state of the target before the event
// is dispatched.
func TargetChecked(c bool) EventOption {
	return func(o *eventOptions) { o.checked = &c }
}

// CreateEvent builds the named event for node and applies target updates.
// Unknown names create a bubbling, cancelable event of the lowercased name.
func CreateEvent(name string, node *html.Node, opts ...EventOption) *dom.Event {
	def, ok := eventMap[name]
	if !ok {
		def = eventDefaults{typ: strings.ToLower(name), init: cancelable}
	}
	o := &eventOptions{init: def.init}
	for _, opt := range opts {
		opt(o)
	}
	if node != nil {
		if o.value != nil {
			dom.SetValue(node, *o.value)
		}
		if o.checked != nil {
			dom.SetChecked(node, *o.checked)
		}
	}
	return dom.NewEvent(def.typ, o.init)
}

// EventFirer fires events from the event map. Use the package value Fire.
type EventFirer struct{}

// Fire dispatches common events with browser defaults:
//
//	query.Fire.Click(button)
//	query.Fire.Input(field, query.TargetValue("hello"))
//	query.Fire.KeyDown(field, query.Key("Enter"), query.KeyCode(13))
var Fire EventFirer

// Event fires the event with the given map name, e.g. "Click".
func (EventFirer) Event(name string, node *html.Node, opts ...EventOption) bool {
	return FireEvent(node, CreateEvent(name, node, opts...))
}

// Copy fires a copy event.
func (f EventFirer) Copy(n *html.Node, opts ...EventOption) bool {
	return f.Event("Copy", n, opts...)
}

// Cut fires a cut event.
func (f EventFirer) Cut(n *html.Node, opts ...EventOption) bool {
	return f.Event("Cut", n, opts...)
}

// Paste fires a paste event.
func (f EventFirer) Paste(n *html.Node, opts ...EventOption) bool {
	return f.Event("Paste", n, opts...)
}

// CompositionEnd fires a compositionend event.
func (f EventFirer) CompositionEnd(n *html.Node, opts ...EventOption) bool {
	return f.Event("CompositionEnd", n, opts...)
}

// CompositionStart fires a compositionstart event.
func (f EventFirer) CompositionStart(n *html.Node, opts ...EventOption) bool {
	return f.Event("CompositionStart", n, opts...)
}

// KeyDown fires a keydown event.
func (f EventFirer) KeyDown(n *html.Node, opts ...EventOption) bool {
	return f.Event("KeyDown", n, opts...)
}

// KeyPress fires a keypress event.
func (f EventFirer) KeyPress(n *html.Node, opts ...EventOption) bool {
	return f.Event("KeyPress", n, opts...)
}

// KeyUp fires a keyup event.
func (f EventFirer) KeyUp(n *html.Node, opts ...EventOption) bool {
	return f.Event("KeyUp", n, opts...)
}

// Focus fires a focus event.
func (f EventFirer) Focus(n *html.Node, opts ...EventOption) bool {
	return f.Event("Focus", n, opts...)
}

// Blur fires a blur event.
func (f EventFirer) Blur(n *html.Node, opts ...EventOption) bool {
	return f.Event("Blur", n, opts...)
}

// FocusIn fires a focusin event.
func (f EventFirer) FocusIn(n *html.Node, opts ...EventOption) bool {
	return f.Event("FocusIn", n, opts...)
}

// FocusOut fires a focusout event.
func (f EventFirer) FocusOut(n *html.Node, opts ...EventOption) bool {
	return f.Event("FocusOut", n, opts...)
}

// Change fires a change event.
func (f EventFirer) Change(n *html.Node, opts ...EventOption) bool {
	return f.Event("Change", n, opts...)
}

// Input fires a input event.
func (f EventFirer) Input(n *html.Node, opts ...EventOption) bool {
	return f.Event("Input", n, opts...)
}

// Submit fires a submit event.
func (f EventFirer) Submit(n *html.Node, opts ...EventOption) bool {
	return f.Event("Submit", n, opts...)
}

// Reset fires a reset event.
func (f EventFirer) Reset(n *html.Node, opts ...EventOption) bool {
	return f.Event("Reset", n, opts...)
}

// Click fires a click event.
func (f EventFirer) Click(n *html.Node, opts ...EventOption) bool {
	return f.Event("Click", n, opts...)
}

// DblClick fires a dblclick event.
func (f EventFirer) DblClick(n *html.Node, opts ...EventOption) bool {
	return f.Event("DblClick", n, opts...)
}

// ContextMenu fires a contextmenu event.
func (f EventFirer) ContextMenu(n *html.Node, opts ...EventOption) bool {
	return f.Event("ContextMenu", n, opts...)
}

// MouseDown fires a mousedown event.
func (f EventFirer) MouseDown(n *html.Node, opts ...EventOption) bool {
	return f.Event("MouseDown", n, opts...)
}

// MouseUp fires a mouseup event.
func (f EventFirer) MouseUp(n *html.Node, opts ...EventOption) bool {
	return f.Event("MouseUp", n, opts...)
}

// MouseOver fires a mouseover event.
func (f EventFirer) MouseOver(n *html.Node, opts ...EventOption) bool {
	return f.Event("MouseOver", n, opts...)
}

// MouseEnter fires a mouseenter event.
func (f EventFirer) MouseEnter(n *html.Node, opts ...EventOption) bool {
	return f.Event("MouseEnter", n, opts...)
}

// MouseLeave fires a mouseleave event.
func (f EventFirer) MouseLeave(n *html.Node, opts ...EventOption) bool {
	return f.Event("MouseLeave", n, opts...)
}

// Select fires a select event.
func (f EventFirer) Select(n *html.Node, opts ...EventOption) bool {
	return f.Event("Select", n, opts...)
}

// TouchStart fires a touchstart event.
func (f EventFirer) TouchStart(n *html.Node, opts ...EventOption) bool {
	return f.Event("TouchStart", n, opts...)
}

// TouchEnd fires a touchend event.
func (f EventFirer) TouchEnd(n *html.Node, opts ...EventOption) bool {
	return f.Event("TouchEnd", n, opts...)
}

// Scroll fires a scroll event.
func (f EventFirer) Scroll(n *html.Node, opts ...EventOption) bool {
	return f.Event("Scroll", n, opts...)
}

// Wheel fires a wheel event.
func (f EventFirer) Wheel(n *html.Node, opts ...EventOption) bool {
	return f.Event("Wheel", n, opts...)
}

// Play fires a play event.
func (f EventFirer) Play(n *html.Node, opts ...EventOption) bool {
	return f.Event("Play", n, opts...)
}

// Pause fires a pause event.
func (f EventFirer) Pause(n *html.Node, opts ...EventOption) bool {
	return f.Event("Pause", n, opts...)
}

// Load fires a load event.
func (f EventFirer) Load(n *html.Node, opts ...EventOption) bool {
	return f.Event("Load", n, opts...)
}

// Error fires a error event.
func (f EventFirer) Error(n *html.Node, opts ...EventOption) bool {
	return f.Event("Error", n, opts...)
}

// AnimationStart fires a animationstart event.
func (f EventFirer) AnimationStart(n *html.Node, opts ...EventOption) bool {
	return f.Event("AnimationStart", n, opts...)
}

// AnimationEnd fires a animationend event.
func (f EventFirer) AnimationEnd(n *html.Node, opts ...EventOption) bool {
	return f.Event("AnimationEnd", n, opts...)
}

// TransitionEnd fires a transitionend event.
func (f EventFirer) TransitionEnd(n *html.Node, opts ...EventOption) bool {
	return f.Event("TransitionEnd", n, opts...)
}

// PointerDown fires a pointerdown event.
func (f EventFirer) PointerDown(n *html.Node, opts ...EventOption) bool {
	return f.Event("PointerDown", n, opts...)
}

// PointerUp fires a pointerup event.
func (f EventFirer) PointerUp(n *html.Node, opts ...EventOption) bool {
	return f.Event("PointerUp", n, opts...)
}
