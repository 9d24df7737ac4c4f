package vtest

import (
	"strings"

	"github.com/mitchellh/go-testing-interface"
	"github.com/vango-dev/vtl"
	"github.com/vango-dev/vtl/pkg/dom"
	"github.com/vango-dev/vtl/pkg/query"
	"github.com/vango-dev/vtl/pkg/render"
	"github.com/vango-dev/vtl/pkg/vango"
	"golang.org/x/net/html"
)

// failureDumpLimit caps the markup printed by failing assertions.
const failureDumpLimit = 500

// WrapperBuilder composes layers into a vtl.Wrapper.
type WrapperBuilder struct {
	layers []func(children any) any
}

// NewWrapper creates an empty builder. Its wrapper renders the children
// unchanged.
//
// Example:
//
//	w := vtest.NewWrapper().
//	    With(func(children any) any { return vdom.Div(vdom.Class("app"), children) }).
//	    Build()
func NewWrapper() *WrapperBuilder {
	return &WrapperBuilder{}
}

// With adds a layer inside the layers added before it.
func (b *WrapperBuilder) With(layer func(children any) any) *WrapperBuilder {
	b.layers = append(b.layers, layer)
	return b
}

// Provide adds a layer that provides value for ctx.
//
// Example:
//
//	w := vtest.Provide(vtest.NewWrapper(), ThemeContext, "dark").Build()
func Provide[T any](b *WrapperBuilder, ctx *vango.Context[T], value T) *WrapperBuilder {
	return b.With(func(children any) any { return ctx.Provider(value, children) })
}

// Build returns the wrapper.
func (b *WrapperBuilder) Build() vtl.Wrapper {
	layers := append([]func(any) any(nil), b.layers...)
	return func(p vtl.WrapperProps) any {
		children := p.Children
		for i := len(layers) - 1; i >= 0; i-- {
			children = layers[i](children)
		}
		return children
	}
}

// WrapperWith is a shorthand for Provide(NewWrapper(), ctx, value).Build().
//
// Example:
//
//	r := vtl.Render(Profile, vtl.Options{Wrapper: vtest.WrapperWith(UserContext, user)})
func WrapperWith[T any](ctx *vango.Context[T], value T) vtl.Wrapper {
	return Provide(NewWrapper(), ctx, value).Build()
}

// RenderToString mounts code into a detached element and returns its
// markup. Nothing stays mounted afterwards.
//
// Example:
//
//	html := vtest.RenderToString(func() any { return Badge(3) })
func RenderToString(code func() any) string {
	return render.RenderToString(code)
}

// ExpectText asserts that exactly one element in container has text
// matching m, and returns it.
//
// Example:
//
//	vtest.ExpectText(t, r.Container, "Welcome Admin")
func ExpectText(t testing.T, container *html.Node, m query.Matcher, opts ...query.Option) *html.Node {
	t.Helper()
	el, err := query.GetBy(query.Text, container, m, opts...)
	if err != nil {
		t.Errorf("%v", err)
	}
	return el
}

// ExpectNoText asserts that no element in container has text matching m.
//
// Example:
//
//	vtest.ExpectNoText(t, r.Container, "Error")
func ExpectNoText(t testing.T, container *html.Node, m query.Matcher, opts ...query.Option) {
	t.Helper()
	els, err := query.QueryAllBy(query.Text, container, m, opts...)
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	if len(els) > 0 {
		t.Errorf("expected no element with text %v, found %d:\n%s", m, len(els), dump(container))
	}
}

// ExpectRole asserts that exactly one accessible element in container has
// the given role, and returns it.
//
// Example:
//
//	vtest.ExpectRole(t, r.Container, "button", query.Name("Save"))
func ExpectRole(t testing.T, container *html.Node, role string, opts ...query.Option) *html.Node {
	t.Helper()
	el, err := query.GetBy(query.Role, container, role, opts...)
	if err != nil {
		t.Errorf("%v", err)
	}
	return el
}

// ExpectContains asserts that the markup inside container contains
// expected.
//
// Example:
//
//	vtest.ExpectContains(t, r.Container, `<span class="badge">3</span>`)
func ExpectContains(t testing.T, container *html.Node, expected string) {
	t.Helper()
	if !strings.Contains(dom.InnerHTML(container), expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, dump(container))
	}
}

// ExpectNotContains asserts that the markup inside container does not
// contain unexpected.
func ExpectNotContains(t testing.T, container *html.Node, unexpected string) {
	t.Helper()
	if strings.Contains(dom.InnerHTML(container), unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, dump(container))
	}
}

// ExpectAttribute asserts that el has attr set to value.
//
// Example:
//
//	vtest.ExpectAttribute(t, button, "aria-pressed", "true")
func ExpectAttribute(t testing.T, el *html.Node, attr, value string) {
	t.Helper()
	if el == nil {
		t.Errorf("expected attribute %s=%q on a nil element", attr, value)
		return
	}
	got, ok := dom.GetAttribute(el, attr)
	if !ok {
		t.Errorf("expected attribute %s=%q, attribute missing on:\n%s", attr, value, dump(el))
		return
	}
	if got != value {
		t.Errorf("expected attribute %s=%q, got %q", attr, value, got)
	}
}

func dump(n *html.Node) string {
	return query.PrettyDOM(n, failureDumpLimit, query.WithColors(false))
}
