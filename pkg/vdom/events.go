package vdom

// On attaches handler to the DOM event typ ("click", "keydown", ...).
// Handlers may be func(), func(*dom.Event), dom.Listener or func(any).
// The simulated DOM dispatches any event type, so helpers below exist only
// for the common ones.
func On(typ string, handler any) EventHandler {
	return EventHandler{Event: "on" + typ, Handler: handler}
}

// OnClick handles click.
func OnClick(handler any) EventHandler { return On("click", handler) }

// OnDblClick handles dblclick.
func OnDblClick(handler any) EventHandler { return On("dblclick", handler) }

// OnInput handles input.
func OnInput(handler any) EventHandler { return On("input", handler) }

// OnChange handles change.
func OnChange(handler any) EventHandler { return On("change", handler) }

// OnSubmit handles submit.
func OnSubmit(handler any) EventHandler { return On("submit", handler) }

// OnKeyDown handles keydown.
func OnKeyDown(handler any) EventHandler { return On("keydown", handler) }

// OnKeyUp handles keyup.
func OnKeyUp(handler any) EventHandler { return On("keyup", handler) }

// OnFocus handles focus. Focus does not bubble; use OnFocusIn on ancestors.
func OnFocus(handler any) EventHandler { return On("focus", handler) }

// OnBlur handles blur.
func OnBlur(handler any) EventHandler { return On("blur", handler) }

// OnFocusIn handles focusin.
func OnFocusIn(handler any) EventHandler { return On("focusin", handler) }

// OnMouseEnter handles mouseenter.
func OnMouseEnter(handler any) EventHandler { return On("mouseenter", handler) }

// OnMouseLeave handles mouseleave.
func OnMouseLeave(handler any) EventHandler { return On("mouseleave", handler) }
