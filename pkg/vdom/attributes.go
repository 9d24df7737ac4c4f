package vdom

import (
	"strconv"
	"strings"
)

// Attribute sets an arbitrary attribute. A func() T value is re-evaluated
// by a render effect whenever the signals it reads change:
//
//	Attribute("aria-busy", func() bool { return loading.Get() })
func Attribute(key string, value any) Attr { return Attr{Key: key, Value: value} }

// Ref hands the created DOM node to target, which is a func(*html.Node) or
// anything with a Set(*html.Node) method such as *vango.Ref[*html.Node].
func Ref(target any) Attr { return Attribute("ref", target) }

// flag is a boolean attribute rendered as key="" when present.
func flag(key string) Attr { return Attribute(key, true) }

func ID(id string) Attr { return Attribute("id", id) }

// Class joins classes with a single space.
func Class(classes ...string) Attr { return Attribute("class", strings.Join(classes, " ")) }

// ClassIf yields the class only when cond holds. The zero Attr is skipped
// by the renderer.
func ClassIf(cond bool, class string) Attr {
	if !cond {
		return Attr{}
	}
	return Class(class)
}

// Data sets data-<key>.
func Data(key, value string) Attr { return Attribute("data-"+key, value) }

// TestID sets data-testid, the attribute the ByTestId queries read by
// default.
func TestID(id string) Attr { return Data("testid", id) }

func Role(role string) Attr { return Attribute("role", role) }

// Aria sets aria-<name>. Booleans render as "true" or "false" since ARIA
// states are tokens, not HTML boolean attributes.
func Aria(name string, value any) Attr {
	if b, ok := value.(bool); ok {
		value = strconv.FormatBool(b)
	}
	return Attribute("aria-"+name, value)
}

func AriaPressed(pressed bool) Attr { return Aria("pressed", pressed) }

func Name(name string) Attr   { return Attribute("name", name) }
func Value(value string) Attr { return Attribute("value", value) }
func Type(typ string) Attr    { return Attribute("type", typ) }
func For(id string) Attr      { return Attribute("for", id) }

func Hidden() Attr   { return flag("hidden") }
func Disabled() Attr { return flag("disabled") }
func Checked() Attr  { return flag("checked") }
func Open() Attr     { return flag("open") }
