package vango

import "github.com/vango-dev/vtl/pkg/vdom"

// Context passes a value down the owner tree without threading it through
// props. The *Context itself is the lookup key.
//
//	var Theme = vango.CreateContext("light")
//
//	Theme.Provider("dark", vdom.H(Toolbar, ToolbarProps{}))
//
//	func Toolbar(ToolbarProps) any {
//	    return vdom.Button(vdom.Class("btn-" + Theme.Use()))
//	}
type Context[T any] struct {
	fallback T
}

// CreateContext returns a context whose Use yields fallback when no
// Provider encloses the caller.
func CreateContext[T any](fallback T) *Context[T] {
	return &Context[T]{fallback: fallback}
}

// Provider renders children under an owner that holds value. The children
// are converted lazily inside that owner so nested components see it.
func (c *Context[T]) Provider(value T, children ...any) *vdom.VNode {
	return vdom.Comp(vdom.Func(func() any {
		if o := getCurrentOwner(); o != nil {
			o.SetValue(c, value)
		}
		return vdom.Fragment(children...)
	}))
}

// Use returns the value of the closest enclosing Provider.
func (c *Context[T]) Use() T {
	o := getCurrentOwner()
	if o == nil {
		return c.fallback
	}
	if v, ok := o.GetValue(c); ok {
		if t, ok := v.(T); ok {
			return t
		}
	}
	return c.fallback
}

// Default returns the value Use yields outside any Provider.
func (c *Context[T]) Default() T { return c.fallback }
