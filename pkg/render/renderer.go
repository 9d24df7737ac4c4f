package render

import (
	"github.com/vango-dev/vtl/pkg/dom"
	"github.com/vango-dev/vtl/pkg/vango"
	"github.com/vango-dev/vtl/pkg/vdom"
	"golang.org/x/net/html"
)

// Render mounts the output of code into container inside a new reactive
// root. code runs once, untracked. The returned function disposes the root
// and empties the container. If code panics, the partial mount is disposed
// before the panic continues.
func Render(code func() any, container *html.Node) (dispose func()) {
	disposeRoot := vango.CreateRoot(func(dispose func()) func() {
		defer func() {
			if r := recover(); r != nil {
				dispose()
				dom.RemoveChildren(container)
				panic(r)
			}
		}()
		Insert(container, code())
		return dispose
	})
	return func() {
		disposeRoot()
		dom.RemoveChildren(container)
	}
}

// RenderToString mounts code into a detached element, serializes the
// element's content, and disposes everything again.
func RenderToString(code func() any) string {
	container := dom.CreateElement("div")
	dispose := Render(code, container)
	defer dispose()
	return dom.InnerHTML(container)
}

// Insert appends value to parent under the current owner and returns the
// top-level nodes it created. Dynamic content keeps an empty text node as
// its position marker; the marker serializes to nothing.
func Insert(parent *html.Node, value any) []*html.Node {
	return mount(parent, nil, value)
}

// mount inserts value into parent before ref.
func mount(parent, ref *html.Node, value any) []*html.Node {
	c := Classify(value)
	switch c.Kind {
	case ContentNode:
		return []*html.Node{dom.InsertBefore(parent, c.Node, ref)}
	case ContentStatic:
		return mountNode(parent, ref, c.VNode)
	case ContentDynamic:
		return mountDynamic(parent, ref, c.Fn)
	default:
		return nil
	}
}

// mountNode creates the DOM for a static node.
func mountNode(parent, ref *html.Node, node *vdom.VNode) []*html.Node {
	switch node.Kind {
	case vdom.KindElement:
		el := dom.CreateElement(node.Tag)
		dom.InsertBefore(parent, el, ref)
		applyProps(el, node.Props)
		for _, child := range node.Children {
			mountNode(el, nil, child)
		}
		return []*html.Node{el}

	case vdom.KindText:
		return []*html.Node{dom.InsertBefore(parent, dom.CreateTextNode(node.Text), ref)}

	case vdom.KindRaw:
		nodes, err := dom.ParseFragment(node.Text, parent)
		if err != nil {
			panic(err)
		}
		for _, n := range nodes {
			dom.InsertBefore(parent, n, ref)
		}
		return nodes

	case vdom.KindFragment:
		var out []*html.Node
		for _, child := range node.Children {
			out = append(out, mountNode(parent, ref, child)...)
		}
		return out

	case vdom.KindComponent:
		return mountComponent(parent, ref, node.Comp)

	case vdom.KindDynamic:
		return mountDynamic(parent, ref, node.Dynamic)
	}
	return nil
}

// mountComponent renders c once, untracked, in a child owner so context
// values and cleanups are scoped to it.
func mountComponent(parent, ref *html.Node, c vdom.Component) []*html.Node {
	if c == nil {
		return nil
	}
	var out []*html.Node
	owner := vango.NewOwner(vango.GetOwner())
	vango.RunWithOwner(owner, func() {
		out = mount(parent, ref, c.Render())
	})
	return out
}

// mountDynamic keeps the output of fn up to date with a render effect.
func mountDynamic(parent, ref *html.Node, fn func() any) []*html.Node {
	marker := dom.InsertBefore(parent, dom.CreateTextNode(""), ref)

	vango.CreateRenderEffect(func() vango.Cleanup {
		value := fn()
		at := marker.Parent
		if at == nil {
			at = parent
		}
		var current []*html.Node
		vango.Untracked(func() {
			current = mount(at, marker, value)
		})
		return func() {
			for _, n := range current {
				dom.Remove(n)
			}
		}
	})
	return []*html.Node{marker}
}
