// Package vdom describes UI as a tree of nodes for the vtl renderer.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, raw HTML, and dynamic content. Props holds
// attributes and event handlers. Attr and EventHandler are used to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1("Title"),
//	    P(func() any { return count.Get() }),
//	    OnClick(handler),
//	)
//
// # Reactivity
//
// Functions are reactive. A func() any child becomes a KindDynamic node
// whose output is replaced whenever a signal it read changes, and an
// attribute whose value is a func() T is re-applied the same way. Plain
// values are rendered once.
//
// # Components
//
// Components are created with Func, Comp, or H. They render once, untracked,
// inside their own owner so that context providers and cleanups are scoped
// to them.
package vdom
