package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vango-dev/vtl/pkg/dom"
	"github.com/vango-dev/vtl/pkg/vango"
	"golang.org/x/net/html"
)

// isBooleanAttr reports whether name is an HTML boolean attribute, present
// for true and absent for false.
func isBooleanAttr(name string) bool {
	switch name {
	case "allowfullscreen", "async", "autofocus", "autoplay", "checked",
		"controls", "default", "defer", "disabled", "formnovalidate", "hidden",
		"ismap", "itemscope", "loop", "multiple", "muted", "nomodule",
		"novalidate", "open", "playsinline", "readonly", "required",
		"reversed", "selected":
		return true
	}
	return false
}

// propAliases maps JSX-style prop names to attribute names.
var propAliases = map[string]string{
	"className": "class",
	"htmlFor":   "for",
}

// applyProps wires props onto a freshly created element in key order:
// refs get the node, on* handlers become listeners removed with the
// current owner, func values become render effects, everything else is
// written once.
func applyProps(el *html.Node, props map[string]any) {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, key := range keys {
		value := props[key]
		if key == "key" || strings.HasPrefix(key, "_") {
			continue
		}
		if alias, ok := propAliases[key]; ok {
			key = alias
		}

		switch {
		case key == "ref":
			bindRef(el, value)
		case key == "dangerouslySetInnerHTML":
			if raw, ok := value.(string); ok {
				if err := dom.SetInnerHTML(el, raw); err != nil {
					panic(err)
				}
			}
		case len(key) > 2 && strings.HasPrefix(key, "on") && listenerOf(value) != nil:
			vango.OnCleanup(dom.AddEventListener(el, strings.ToLower(key[2:]), listenerOf(value)))
		default:
			if get := getterOf(value); get != nil {
				name := key
				vango.CreateRenderEffect(func() vango.Cleanup {
					writeAttr(el, name, get())
					return nil
				})
				continue
			}
			writeAttr(el, key, value)
		}
	}
}

// bindRef hands el to a func(*html.Node) or a *vango.Ref[*html.Node].
func bindRef(el *html.Node, target any) {
	switch r := target.(type) {
	case func(*html.Node):
		r(el)
	case interface{ Set(*html.Node) }:
		r.Set(el)
	}
}

func listenerOf(value any) dom.Listener {
	switch h := value.(type) {
	case dom.Listener:
		return h
	case func(*dom.Event):
		return h
	case func():
		return func(*dom.Event) { h() }
	case func(any):
		return func(e *dom.Event) { h(e) }
	}
	return nil
}

// getterOf returns a reader for reactive attribute values.
func getterOf(value any) func() any {
	switch f := value.(type) {
	case func() any:
		return f
	case func() string:
		return func() any { return f() }
	case func() bool:
		return func() any { return f() }
	case func() int:
		return func() any { return f() }
	}
	return nil
}

// writeAttr sets or removes one attribute. nil removes it, booleans toggle
// boolean attributes and are spelled "true"/"false" elsewhere.
func writeAttr(el *html.Node, key string, value any) {
	if value == nil {
		dom.RemoveAttribute(el, key)
		return
	}
	if b, ok := value.(bool); ok && isBooleanAttr(key) {
		if !b {
			dom.RemoveAttribute(el, key)
			return
		}
		value = ""
	}
	dom.SetAttribute(el, key, fmt.Sprint(value))
}
