// Package vtest provides assertion helpers and wrapper builders for tests
// that use vtl.
//
// # Quick Start
//
//	func TestGreeting(t *testing.T) {
//	    r := vtl.Render(Greeting, vtl.Options{
//	        Wrapper: vtest.WrapperWith(UserContext, &User{Name: "Ada"}),
//	        T:       t,
//	    })
//	    vtest.ExpectText(t, r.Container, "Hello, Ada")
//	    vtest.ExpectNoText(t, r.Container, "Sign in")
//	}
//
// # Wrapper Builder
//
// The builder stacks providers and arbitrary layers into one vtl.Wrapper.
// The first layer added is the outermost:
//
//	w := vtest.Provide(vtest.Provide(vtest.NewWrapper(), ThemeContext, "dark"), UserContext, user).
//	    With(func(children any) any { return vdom.Main(children) }).
//	    Build()
//
// # Assertions
//
// Assertions report through t.Errorf and print the container on failure:
//
//	vtest.ExpectRole(t, r.Container, "button", query.Name("Save"))
//	vtest.ExpectAttribute(t, input, "aria-invalid", "true")
//	vtest.ExpectContains(t, r.Container, `<li class="done">`)
package vtest
