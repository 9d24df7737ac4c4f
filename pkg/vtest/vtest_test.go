package vtest_test

import (
	"fmt"
	"strings"
	"testing"

	gotesting "github.com/mitchellh/go-testing-interface"
	"github.com/vango-dev/vtl"
	"github.com/vango-dev/vtl/pkg/query"
	"github.com/vango-dev/vtl/pkg/vango"
	"github.com/vango-dev/vtl/pkg/vdom"
	"github.com/vango-dev/vtl/pkg/vtest"
)

// recorder captures failures instead of failing the enclosing test.
type recorder struct {
	gotesting.RuntimeT
	errs []string
}

func (r *recorder) Errorf(format string, args ...any) {
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
}

func render(t *testing.T, code func() any) *vtl.Result {
	t.Helper()
	return vtl.Render(code, vtl.Options{T: t})
}

func TestWrapperBuilder(t *testing.T) {
	theme := vango.CreateContext("light")
	user := vango.CreateContext("anonymous")

	w := vtest.Provide(vtest.Provide(vtest.NewWrapper(), theme, "dark"), user, "ada").
		With(func(children any) any { return vdom.Main(children) }).
		Build()

	r := vtl.Render(func() any {
		return vdom.P(theme.Use() + "/" + user.Use())
	}, vtl.Options{Wrapper: w, T: t})

	if got := r.AsFragment(); got != "<main><p>dark/ada</p></main>" {
		t.Errorf("AsFragment() = %q", got)
	}
}

func TestWrapperWith(t *testing.T) {
	ctx := vango.CreateContext(0)
	r := vtl.Render(func() any { return vdom.Span(ctx.Use()) }, vtl.Options{
		Wrapper: vtest.WrapperWith(ctx, 42),
		T:       t,
	})
	if got := r.AsFragment(); got != "<span>42</span>" {
		t.Errorf("AsFragment() = %q", got)
	}
}

func TestEmptyWrapper(t *testing.T) {
	r := vtl.Render(func() any { return vdom.Strong() }, vtl.Options{Wrapper: vtest.NewWrapper().Build(), T: t})
	if got := r.AsFragment(); got != "<strong></strong>" {
		t.Errorf("AsFragment() = %q", got)
	}
}

func TestRenderToString(t *testing.T) {
	got := vtest.RenderToString(func() any { return vdom.Div(vdom.Class("x"), "hi") })
	if got != `<div class="x">hi</div>` {
		t.Errorf("RenderToString() = %q", got)
	}
}

func TestExpectations(t *testing.T) {
	r := render(t, func() any {
		return vdom.Div(
			vdom.H1("Welcome Admin"),
			vdom.Button(vdom.AriaPressed(true), "Save"),
		)
	})
	c := r.Container

	tests := []struct {
		name     string
		check    func(rec *recorder)
		failures int
		mention  string
	}{
		{"text found", func(rec *recorder) { vtest.ExpectText(rec, c, "Welcome Admin") }, 0, ""},
		{"text missing", func(rec *recorder) { vtest.ExpectText(rec, c, "Goodbye") }, 1, "Q001"},
		{"no text", func(rec *recorder) { vtest.ExpectNoText(rec, c, "Error") }, 0, ""},
		{"unexpected text", func(rec *recorder) { vtest.ExpectNoText(rec, c, "welcome", query.Exact(false)) }, 1, "Welcome Admin"},
		{"role found", func(rec *recorder) { vtest.ExpectRole(rec, c, "button", query.Name("Save")) }, 0, ""},
		{"role missing", func(rec *recorder) { vtest.ExpectRole(rec, c, "link") }, 1, "link"},
		{"contains", func(rec *recorder) { vtest.ExpectContains(rec, c, "<h1>Welcome Admin</h1>") }, 0, ""},
		{"does not contain", func(rec *recorder) { vtest.ExpectContains(rec, c, "<h2>") }, 1, "<h2>"},
		{"not contains", func(rec *recorder) { vtest.ExpectNotContains(rec, c, "Login") }, 0, ""},
		{"unexpectedly contains", func(rec *recorder) { vtest.ExpectNotContains(rec, c, "Save") }, 1, "NOT contain"},
		{"attribute", func(rec *recorder) {
			vtest.ExpectAttribute(rec, vtest.ExpectRole(rec, c, "button"), "aria-pressed", "true")
		}, 0, ""},
		{"attribute value", func(rec *recorder) {
			vtest.ExpectAttribute(rec, vtest.ExpectRole(rec, c, "button"), "aria-pressed", "false")
		}, 1, `got "true"`},
		{"attribute missing", func(rec *recorder) {
			vtest.ExpectAttribute(rec, vtest.ExpectRole(rec, c, "button"), "title", "x")
		}, 1, "missing"},
		{"nil element", func(rec *recorder) { vtest.ExpectAttribute(rec, nil, "id", "x") }, 1, "nil element"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			tt.check(rec)
			if len(rec.errs) != tt.failures {
				t.Fatalf("got %d failures %v, want %d", len(rec.errs), rec.errs, tt.failures)
			}
			if tt.mention != "" && !strings.Contains(rec.errs[0], tt.mention) {
				t.Errorf("failure %q should mention %q", rec.errs[0], tt.mention)
			}
		})
	}
}
