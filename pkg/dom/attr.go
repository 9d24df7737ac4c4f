package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// GetAttribute returns the value of the named attribute.
func GetAttribute(n *html.Node, name string) (string, bool) {
	if n == nil || n.Type != html.ElementNode {
		return "", false
	}
	name = strings.ToLower(name)
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Attr returns the value of the named attribute, or "" when it is absent.
func Attr(n *html.Node, name string) string {
	v, _ := GetAttribute(n, name)
	return v
}

// HasAttribute reports whether the named attribute is present.
func HasAttribute(n *html.Node, name string) bool {
	_, ok := GetAttribute(n, name)
	return ok
}

// SetAttribute adds or replaces the named attribute.
func SetAttribute(n *html.Node, name, value string) {
	name = strings.ToLower(name)
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttribute deletes the named attribute.
func RemoveAttribute(n *html.Node, name string) {
	name = strings.ToLower(name)
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// IsTag reports whether n is an element with one of the given tag names.
func IsTag(n *html.Node, tags ...string) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	for _, t := range tags {
		if n.Data == t {
			return true
		}
	}
	return false
}

// Value returns the current value of a form control.
//
// Inputs keep their value in the value attribute, textareas in their text,
// and selects report the value of their selected options joined by ",".
func Value(n *html.Node) string {
	switch {
	case IsTag(n, "textarea"):
		return TextContent(n)
	case IsTag(n, "select"):
		return strings.Join(SelectedValues(n), ",")
	case IsTag(n, "option"):
		if v, ok := GetAttribute(n, "value"); ok {
			return v
		}
		return TextContent(n)
	default:
		return Attr(n, "value")
	}
}

// SetValue sets the current value of a form control.
func SetValue(n *html.Node, value string) {
	switch {
	case IsTag(n, "textarea"):
		SetTextContent(n, value)
	case IsTag(n, "select"):
		for _, opt := range Options(n) {
			SetSelected(opt, Value(opt) == value)
		}
	default:
		SetAttribute(n, "value", value)
	}
}

// Checked reports whether a checkbox or radio input is checked.
func Checked(n *html.Node) bool {
	return HasAttribute(n, "checked")
}

// SetChecked sets the checked state of an input.
func SetChecked(n *html.Node, checked bool) {
	setFlag(n, "checked", checked)
}

// SetSelected sets the selected state of an option.
func SetSelected(n *html.Node, selected bool) {
	setFlag(n, "selected", selected)
}

// Options returns the option elements of a select, in document order.
func Options(sel *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if IsTag(c, "option") {
				out = append(out, c)
			} else if c.Type == html.ElementNode {
				walk(c)
			}
		}
	}
	walk(sel)
	return out
}

// SelectedValues returns the values of the selected options of a select.
// A single-choice select without an explicit selection reports its first option.
func SelectedValues(sel *html.Node) []string {
	opts := Options(sel)
	var out []string
	for _, o := range opts {
		if HasAttribute(o, "selected") {
			out = append(out, Value(o))
		}
	}
	if len(out) == 0 && len(opts) > 0 && !HasAttribute(sel, "multiple") {
		out = append(out, Value(opts[0]))
	}
	return out
}

func setFlag(n *html.Node, name string, on bool) {
	if on {
		SetAttribute(n, name, "")
	} else {
		RemoveAttribute(n, name)
	}
}
