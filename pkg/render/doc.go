// Package render mounts vdom trees into the simulated DOM and keeps them
// in sync with the reactive graph.
//
// # Basic Usage
//
// To mount UI into a container:
//
//	container := dom.AppendChild(dom.Default().Body(), dom.CreateElement("div"))
//	dispose := render.Render(func() any {
//	    return vdom.Button(vdom.OnClick(inc), func() any { return count.Get() })
//	}, container)
//	defer dispose()
//
// Render creates a reactive root. Static nodes are created once; dynamic
// children and function-valued attributes each get a render effect that
// patches only their own part of the tree. Disposing the root runs all
// cleanups, removes the event listeners the renderer attached, and empties
// the container.
//
// To render to markup without keeping anything mounted:
//
//	html := render.RenderToString(func() any { return App() })
//
// # Attributes
//
// Boolean attributes (disabled, checked, ...) are present when true and
// absent when false. className and htmlFor are accepted as aliases of class
// and for. Props starting with "_" and the key prop are not rendered.
// Event handler props become DOM listeners and the ref prop receives the
// created node.
package render
