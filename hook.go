package vtl

import (
	"github.com/mitchellh/go-testing-interface"
	"github.com/vango-dev/vtl/pkg/dom"
	"github.com/vango-dev/vtl/pkg/render"
	"github.com/vango-dev/vtl/pkg/vango"
	"github.com/vango-dev/vtl/pkg/vdom"
	"go.opentelemetry.io/otel/attribute"
)

// HookOptions configure RenderHook.
type HookOptions[A any] struct {
	// InitialProps is passed to the hook.
	InitialProps A

	// Wrapper runs the hook inside a wrapping component, so it can read
	// the context the wrapper provides.
	Wrapper Wrapper

	// T registers Cleanup with T.Cleanup, see Setup.
	T testing.T

	// Registry receives the mount. Defaults to DefaultRegistry().
	Registry *MountRegistry
}

// HookResult is the outcome of RenderHook.
type HookResult[R any] struct {
	// Result is the value the hook returned.
	Result R

	// Owner is the owner of the hook's root. Pass it to TestEffect to
	// run effects in the same context.
	Owner *vango.Owner

	// Cleanup disposes the root.
	Cleanup func()
}

// RenderHook calls hook once inside an isolated reactive root.
//
//	counter := vtl.RenderHook(func(start int) *Counter {
//	    return NewCounter(start)
//	}, vtl.HookOptions[int]{InitialProps: 5})
//
// Panics raised by hook dispose the root and propagate.
func RenderHook[A, R any](hook func(A) R, opts ...HookOptions[A]) *HookResult[R] {
	var o HookOptions[A]
	if len(opts) > 0 {
		o = opts[0]
	}

	span := startSpan("vtl.render_hook", attribute.Bool("vtl.wrapper", o.Wrapper != nil))

	var result R
	var owner *vango.Owner
	dispose := vango.CreateRoot(func(dispose func()) func() {
		defer func() {
			if r := recover(); r != nil {
				dispose()
				endSpanPanic(span, r)
				panic(r)
			}
		}()

		if o.Wrapper != nil {
			scratch := dom.CreateElement("div")
			inner := func() any {
				result = vango.Untrack(func() R { return hook(o.InitialProps) })
				return nil
			}
			vango.CreateRenderEffect(func() vango.Cleanup {
				render.Insert(scratch, vdom.H[WrapperProps](o.Wrapper, WrapperProps{Children: inner}))
				return nil
			})
		} else {
			result = hook(o.InitialProps)
		}
		owner = vango.GetOwner()
		return dispose
	})

	registryOrDefault(o.Registry).Add(&Mount{Dispose: dispose, kind: "hook"})
	setup(o.T, o.Registry)
	endSpan(span, nil)

	return &HookResult[R]{Result: result, Owner: owner, Cleanup: dispose}
}

// RenderHookArgs is RenderHook with the hook's argument given directly.
func RenderHookArgs[A, R any](hook func(A) R, args A) *HookResult[R] {
	return RenderHook(hook, HookOptions[A]{InitialProps: args})
}

// RenderHookFunc runs a hook that takes no arguments.
func RenderHookFunc[R any](hook func() R, opts ...HookOptions[struct{}]) *HookResult[R] {
	return RenderHook(func(struct{}) R { return hook() }, opts...)
}
