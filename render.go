package vtl

import (
	"io"
	"os"

	"github.com/mitchellh/go-testing-interface"
	"github.com/vango-dev/vtl/pkg/dom"
	"github.com/vango-dev/vtl/pkg/query"
	"github.com/vango-dev/vtl/pkg/render"
	"github.com/vango-dev/vtl/pkg/vango"
	"github.com/vango-dev/vtl/pkg/vdom"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/net/html"
)

// WrapperProps are passed to a Wrapper. Children must be placed in the
// returned tree.
type WrapperProps struct {
	Children any
}

// Wrapper wraps the rendered component, typically with context providers.
//
//	func withTheme(p vtl.WrapperProps) any {
//	    return ThemeContext.Provider("dark", p.Children)
//	}
type Wrapper func(WrapperProps) any

// Options configure Render.
type Options struct {
	// Container is an existing mount point. When nil, a <div> is created
	// and appended to BaseElement.
	Container *html.Node

	// BaseElement is the element debugging prints and the parent of a
	// created container. It defaults to Container when one is given and
	// to the document body otherwise.
	BaseElement *html.Node

	// Queries are bound in addition to the default queries.
	Queries map[string]query.Query

	// Wrapper wraps the rendered component.
	Wrapper Wrapper

	// T registers Cleanup with T.Cleanup, see Setup.
	T testing.T

	// Registry receives the mount. Defaults to DefaultRegistry().
	Registry *MountRegistry
}

// Result is a rendered component. Its embedded queries are bound to the
// container.
type Result struct {
	*query.BoundQueries

	// Container holds the rendered output.
	Container *html.Node

	// BaseElement is printed by Debug.
	BaseElement *html.Node

	unmount func()
}

// AsFragment returns the markup of the rendered output.
func (r *Result) AsFragment() string {
	return dom.InnerHTML(r.Container)
}

// Debug prints the base element, or the given elements, to stdout.
func (r *Result) Debug(els ...*html.Node) {
	r.DebugTo(os.Stdout, 0, els...)
}

// DebugTo prints the base element, or the given elements, to w. maxLength
// <= 0 uses the configured print limit.
func (r *Result) DebugTo(w io.Writer, maxLength int, els ...*html.Node) {
	if len(els) == 0 {
		els = []*html.Node{r.BaseElement}
	}
	for _, el := range els {
		query.LogDOM(w, el, maxLength)
	}
}

// Unmount disposes the rendered component and empties the container.
// Unlike Cleanup it does not recover panics from disposal.
func (r *Result) Unmount() {
	r.unmount()
}

// Render mounts the output of code and returns queries bound to it.
//
// code runs once inside a new reactive root; reactive children and
// attributes keep the DOM up to date afterwards. Panics from code
// propagate and leave nothing registered.
func Render(code func() any, opts ...Options) *Result {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}

	span := startSpan("vtl.render",
		attribute.Bool("vtl.wrapper", o.Wrapper != nil),
		attribute.Bool("vtl.container_given", o.Container != nil))

	container := o.Container
	base := o.BaseElement
	if base == nil {
		if container != nil {
			base = container
		} else {
			base = dom.Default().Body()
		}
	}

	var created *html.Node
	if container == nil {
		created = dom.AppendChild(base, dom.CreateElement("div"))
		container = created
	}

	mounted := code
	if o.Wrapper != nil {
		children := func() any { return vango.Untrack(code) }
		mounted = func() any {
			return vdom.H[WrapperProps](o.Wrapper, WrapperProps{Children: children})
		}
	}

	dispose := func() func() {
		defer func() {
			if r := recover(); r != nil {
				if created != nil {
					dom.Remove(created)
				}
				endSpanPanic(span, r)
				panic(r)
			}
		}()
		return render.Render(mounted, container)
	}()

	registryOrDefault(o.Registry).Add(&Mount{Container: created, Dispose: dispose, kind: "render"})
	setup(o.T, o.Registry)
	endSpan(span, nil)

	return &Result{
		BoundQueries: query.GetQueriesForElement(container, o.Queries),
		Container:    container,
		BaseElement:  base,
		unmount:      dispose,
	}
}
