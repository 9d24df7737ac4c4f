// Package vtl renders reactive components into a simulated DOM for tests
// and queries the result the way a user would.
//
// # Rendering
//
//	func TestCounter(t *testing.T) {
//	    r := vtl.Render(func() any { return Counter() }, vtl.Options{T: t})
//
//	    button, err := r.GetByRole("button")
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    vtl.Fire.Click(button)
//
//	    if _, err := r.GetByText("Count: 1"); err != nil {
//	        t.Fatal(err)
//	    }
//	}
//
// Render mounts into a fresh <div> appended to the document body unless
// Options.Container names an existing element. Options.Wrapper wraps the
// component, which is how context providers are supplied.
//
// # Hooks and effects
//
// RenderHook calls a hook inside an isolated reactive root and returns its
// result together with the root's owner. TestEffect runs a function that
// creates effects and settles a Promise when the function calls done, or
// when anything inside it panics.
//
// # Cleanup
//
// Every Render and RenderHook registers its disposer in a MountRegistry.
// Cleanup disposes all of them and removes the containers Render created.
// Passing Options.T, or calling Setup(t), registers Cleanup with t.Cleanup
// so tests never see each other's DOM. Set VTL_SKIP_AUTO_CLEANUP=true to
// turn that off.
//
// # Queries
//
// The query API of package query is re-exported here, so tests usually
// import only vtl.
package vtl
