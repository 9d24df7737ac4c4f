package vtl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vango-dev/vtl"
	"github.com/vango-dev/vtl/pkg/dom"
	"github.com/vango-dev/vtl/pkg/vango"
	"github.com/vango-dev/vtl/pkg/vdom"
	"golang.org/x/net/html"
)

func TestRenderCallsCreateComputedImmediately(t *testing.T) {
	calls := 0
	comp := func(struct{}) any {
		vango.CreateComputed(func() { calls++ })
		return func() any { return nil }
	}

	vtl.Render(func() any { return vdom.H(comp, struct{}{}) }, vtl.Options{T: t})

	if calls != 1 {
		t.Errorf("computed ran %d times, want 1", calls)
	}
}

func TestFindByTestIdReturnsTheElement(t *testing.T) {
	ref := vango.NewRef[*html.Node](nil)
	vtl.Render(func() any { return vdom.Div(vdom.Ref(ref), vdom.TestID("foo")) }, vtl.Options{T: t})

	el, err := vtl.Screen().FindByTestId("foo")
	if err != nil {
		t.Fatalf("FindByTestId: %v", err)
	}
	if el != ref.Current() {
		t.Error("FindByTestId should return the referenced element")
	}
}

func TestClickTriggersEffects(t *testing.T) {
	calls := 0
	counter := func(struct{}) any {
		count := vango.NewSignal(0)
		vango.CreateComputed(func() {
			count.Get()
			calls++
		})
		return func() any {
			return vdom.Button(
				vdom.OnClick(func() { count.Set(count.Peek() + 1) }),
				func() any { return count.Get() },
			)
		}
	}

	r := vtl.Render(func() any { return vdom.H(counter, struct{}{}) }, vtl.Options{T: t})
	button := dom.FirstElementChild(r.Container)

	calls = 0
	vtl.Fire.Click(button)

	if got := dom.TextContent(button); got != "1" {
		t.Errorf("button text = %q, want 1", got)
	}
	if calls != 1 {
		t.Errorf("computed ran %d times, want 1", calls)
	}
}

func TestQueriesStayInsideTheContainer(t *testing.T) {
	r := vtl.Render(func() any { return vdom.Div("Some text...") }, vtl.Options{T: t})

	outside := dom.CreateElement("p")
	dom.SetTextContent(outside, "Some text...")
	dom.InsertBefore(r.Container.Parent, outside, r.Container)
	defer dom.Remove(outside)

	els, err := r.GetAllByText("Some text...")
	if err != nil {
		t.Fatalf("GetAllByText: %v", err)
	}
	if len(els) != 1 || els[0] != dom.FirstElementChild(r.Container) {
		t.Errorf("got %d elements, want only the rendered div", len(els))
	}
}

func TestWrapper(t *testing.T) {
	tests := []struct {
		name    string
		code    func() any
		wrapper vtl.Wrapper
		want    string
	}{
		{
			name: "wrapper returning a function",
			code: func() any { return vdom.Div("Component") },
			wrapper: func(p vtl.WrapperProps) any {
				return func() any { return vdom.Div("Wrapper ", p.Children) }
			},
			want: "<div>Wrapper <div>Component</div></div>",
		},
		{
			name: "wrapper returning nodes directly",
			code: func() any { return vdom.Span("Component") },
			wrapper: func(p vtl.WrapperProps) any {
				return vdom.Div("Wrapper ", p.Children)
			},
			want: "<div>Wrapper <span>Component</span></div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := vtl.Render(tt.code, vtl.Options{Wrapper: tt.wrapper, T: t})
			if got := r.AsFragment(); got != tt.want {
				t.Errorf("AsFragment() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapperProvidesContext(t *testing.T) {
	ctx := vango.CreateContext("test")
	wrapper := func(p vtl.WrapperProps) any {
		return func() any { return ctx.Provider("works", p.Children) }
	}

	r := vtl.Render(func() any { return vdom.Div(ctx.Use()) }, vtl.Options{Wrapper: wrapper, T: t})

	if got := r.AsFragment(); got != "<div>works</div>" {
		t.Errorf("AsFragment() = %q, want <div>works</div>", got)
	}
}

func TestForWithoutParent(t *testing.T) {
	r := vtl.Render(func() any {
		return vango.For(func() []string { return []string{"a", "b", "c"} }, func(s string, _ int) any {
			return vdom.Span(s)
		})
	}, vtl.Options{T: t})

	if _, err := r.GetByText("b"); err != nil {
		t.Errorf("GetByText: %v", err)
	}
}

func TestRenderIntoContainer(t *testing.T) {
	reg := vtl.NewMountRegistry()
	container := dom.CreateElement("section")

	r := vtl.Render(func() any { return vdom.P("inside") }, vtl.Options{Container: container, Registry: reg})

	if r.Container != container || r.BaseElement != container {
		t.Error("Container and BaseElement should default to the given container")
	}
	if container.Parent != nil {
		t.Error("a given container is not attached anywhere")
	}

	reg.Sweep()
	if container.FirstChild != nil {
		t.Errorf("cleanup should empty the container, got %q", dom.InnerHTML(container))
	}
}

func TestRenderBaseElement(t *testing.T) {
	reg := vtl.NewMountRegistry()
	base := dom.AppendChild(dom.Default().Body(), dom.CreateElement("main"))
	defer dom.Remove(base)

	r := vtl.Render(func() any { return "x" }, vtl.Options{BaseElement: base, Registry: reg})
	if r.Container.Parent != base {
		t.Error("the created container should be appended to BaseElement")
	}

	reg.Sweep()
	if base.FirstChild != nil {
		t.Error("cleanup should remove the created container")
	}
}

func TestRenderCustomQueries(t *testing.T) {
	byCy := vtl.NewQuery("with the data-cy attribute", func(c *html.Node, m vtl.Matcher, o *vtl.QueryOptions) ([]*html.Node, error) {
		var out []*html.Node
		for _, el := range dom.Elements(c) {
			if dom.Attr(el, "data-cy") == m {
				out = append(out, el)
			}
		}
		return out, nil
	})

	r := vtl.Render(func() any { return vdom.Strong(vdom.Attribute("data-cy", "x")) }, vtl.Options{
		Queries: map[string]vtl.Query{"Cy": byCy},
		T:       t,
	})
	if _, err := r.Get("Cy", "x"); err != nil {
		t.Errorf("Get Cy: %v", err)
	}
}

func TestDebug(t *testing.T) {
	r := vtl.Render(func() any { return vdom.P("hello") }, vtl.Options{T: t})

	var buf bytes.Buffer
	r.DebugTo(&buf, 0)
	if !strings.Contains(buf.String(), "body") || !strings.Contains(buf.String(), "hello") {
		t.Errorf("DebugTo printed %q", buf.String())
	}

	buf.Reset()
	p := dom.FirstElementChild(r.Container)
	r.DebugTo(&buf, 0, p, p)
	if strings.Count(buf.String(), "hello") != 2 {
		t.Errorf("DebugTo with elements printed %q", buf.String())
	}
}

func TestUnmount(t *testing.T) {
	r := vtl.Render(func() any { return vdom.P("bye") }, vtl.Options{T: t})
	r.Unmount()
	if r.AsFragment() != "" {
		t.Errorf("AsFragment() after Unmount = %q", r.AsFragment())
	}
}

func TestUnmountPanicsPropagate(t *testing.T) {
	reg := vtl.NewMountRegistry()
	r := vtl.Render(func() any {
		vango.OnCleanup(func() { panic("dispose failed") })
		return nil
	}, vtl.Options{Registry: reg})

	defer func() {
		if recover() == nil {
			t.Error("Unmount should not swallow panics")
		}
		reg.Sweep()
	}()
	r.Unmount()
}

func TestRenderPanicLeavesNothingBehind(t *testing.T) {
	reg := vtl.NewMountRegistry()
	body := dom.Default().Body()
	before := len(dom.Children(body))

	func() {
		defer func() { recover() }()
		vtl.Render(func() any { panic("render failed") }, vtl.Options{Registry: reg})
	}()

	if reg.Len() != 0 {
		t.Errorf("registry has %d mounts, want 0", reg.Len())
	}
	if got := len(dom.Children(body)); got != before {
		t.Errorf("body has %d children, want %d", got, before)
	}
}
