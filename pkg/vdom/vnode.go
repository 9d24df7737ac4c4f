package vdom

import "strings"

// VKind tells the renderer how to interpret a VNode.
type VKind uint8

const (
	KindElement VKind = iota
	KindText
	KindFragment
	KindComponent
	// KindRaw is inserted as unescaped HTML.
	KindRaw
	// KindDynamic is re-evaluated whenever a signal it read changes.
	KindDynamic
)

var kindNames = [...]string{
	KindElement:   "Element",
	KindText:      "Text",
	KindFragment:  "Fragment",
	KindComponent: "Component",
	KindRaw:       "Raw",
	KindDynamic:   "Dynamic",
}

func (k VKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// VNode describes a piece of UI. Which fields are meaningful depends on Kind:
// Tag, Props and Children for elements, Text for text and raw nodes, Comp
// for components and Dynamic for dynamic nodes.
type VNode struct {
	Kind     VKind
	Tag      string
	Props    Props
	Children []*VNode
	Key      string
	Text     string
	Comp     Component
	Dynamic  func() any
}

// Props maps attribute names and "on"-prefixed event names to values.
type Props map[string]any

// IsInteractive reports whether an element node carries an event handler.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if strings.HasPrefix(key, "on") {
			return true
		}
	}
	return false
}

// Attr is one element attribute. A zero Attr is ignored. A func() T Value
// makes the attribute reactive.
type Attr struct {
	Key   string
	Value any
}

// EventHandler binds Handler, a func() or func(*dom.Event), to Event, the
// "on"-prefixed lower-case event name.
type EventHandler struct {
	Event   string
	Handler any
}

// Component renders to anything Child accepts.
type Component interface {
	Render() any
}

type renderFunc func() any

func (f renderFunc) Render() any { return f() }

// Func adapts a plain render function to Component.
func Func(render func() any) Component { return renderFunc(render) }

// Comp wraps c in a node. The renderer calls Render once, untracked, inside
// a fresh owner when the node is inserted.
func Comp(c Component) *VNode {
	return &VNode{Kind: KindComponent, Comp: c}
}

// H renders comp with props as a component node.
//
//	func Greeting(p GreetingProps) any { return Span("Hello ", p.Name) }
//
//	Div(H(Greeting, GreetingProps{Name: "Ann"}))
func H[P any](comp func(P) any, props P) *VNode {
	return Comp(Func(func() any { return comp(props) }))
}

// Dynamic creates a node whose content is fn's latest result.
func Dynamic(fn func() any) *VNode {
	return &VNode{Kind: KindDynamic, Dynamic: fn}
}
