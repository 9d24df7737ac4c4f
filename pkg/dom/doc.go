// Package dom is the simulated document that vtl renders into.
//
// Nodes are plain *html.Node values from golang.org/x/net/html, so any code
// that understands that tree (html.Render, cascadia selectors) works on
// rendered output directly. This package adds what a browser document has
// and the parser does not: a default document with a body, element
// creation, form state (value and checked), CSS selector helpers, and an
// event system with listeners, bubbling, stopPropagation and
// preventDefault.
//
// # Events
//
// Listeners are kept in a process-wide registry keyed by node. Dispatch
// walks from the target up through its ancestors when the event bubbles:
//
//	remove := dom.AddEventListener(button, "click", func(e *dom.Event) {
//	    e.PreventDefault()
//	})
//	defer remove()
//
//	dom.DispatchEvent(button, dom.NewEvent("click", dom.EventInit{Bubbles: true}))
//
// The package is not safe for concurrent mutation of the same tree.
package dom
