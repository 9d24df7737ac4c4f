package vango

// Show renders fallback until when() is true, then children.
// The result is a dynamic child for vdom element factories.
//
//	vdom.Div(vango.Show(loggedIn.Get, "Welcome", "Please sign in"))
func Show(when func() bool, children any, fallback any) func() any {
	return func() any {
		if when() {
			return children
		}
		return fallback
	}
}

// For renders fn for each item returned by each. The list is re-rendered
// when a signal read by each changes; reads inside fn are not tracked by
// the list itself.
//
//	vdom.Ul(vango.For(todos.Get, func(t Todo, i int) any {
//	    return vdom.Li(t.Title)
//	}))
func For[T any](each func() []T, fn func(item T, index int) any) func() any {
	return func() any {
		items := each()
		return Untrack(func() any {
			out := make([]any, len(items))
			for i, item := range items {
				out[i] = fn(item, i)
			}
			return out
		})
	}
}
