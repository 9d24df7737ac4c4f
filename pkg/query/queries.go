package query

import (
	"fmt"
	"strings"

	"github.com/vango-dev/vtl/pkg/dom"
	"golang.org/x/net/html"
)

// Built-in queries.
var (
	// Text matches the own text of elements. Submit and button inputs
	// match by value.
	Text Query = NewQuery("with the text", queryAllByText)

	// Role matches elements by explicit or implicit ARIA role.
	Role Query = roleQuery{}

	// TestId matches the configured test id attribute, data-testid by
	// default.
	TestId Query = testIDQuery{}

	// LabelText matches form controls by the text of their label.
	LabelText Query = NewQuery("with the label text", queryAllByLabelText)

	// PlaceholderText matches the placeholder attribute.
	PlaceholderText Query = NewQuery("with the placeholder text", attrQuery("placeholder"))

	// AltText matches the alt attribute of images, inputs and areas.
	AltText Query = NewQuery("with the alt text", queryAllByAltText)

	// Title matches the title attribute and SVG title elements.
	Title Query = NewQuery("with the title", queryAllByTitle)

	// DisplayValue matches the current value of inputs, selects and
	// textareas.
	DisplayValue Query = NewQuery("with the display value", queryAllByDisplayValue)
)

// DefaultQueries are the queries bound by GetQueriesForElement.
var DefaultQueries = map[string]Query{
	"Text":            Text,
	"Role":            Role,
	"TestId":          TestId,
	"LabelText":       LabelText,
	"PlaceholderText": PlaceholderText,
	"AltText":         AltText,
	"Title":           Title,
	"DisplayValue":    DisplayValue,
}

func queryAllByText(container *html.Node, m Matcher, o *Options) ([]*html.Node, error) {
	var ignore func(*html.Node) bool
	if o.Ignore != "" {
		sel, err := compile(o.Ignore)
		if err != nil {
			return nil, err
		}
		ignore = sel.Match
	}
	return filter(container, o, func(el *html.Node) bool {
		if ignore != nil && ignore(el) {
			return false
		}
		return matches(nodeText(el), el, m, o)
	})
}

// nodeText returns the text of the direct text children of el.
func nodeText(el *html.Node) string {
	if dom.IsTag(el, "input") {
		switch strings.ToLower(dom.Attr(el, "type")) {
		case "submit", "button", "reset":
			return dom.Value(el)
		}
	}
	var b strings.Builder
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

type testIDQuery struct{}

func (testIDQuery) QueryAll(container *html.Node, m Matcher, o *Options) ([]*html.Node, error) {
	return attrQuery(GetConfig().TestIDAttribute)(container, m, o)
}

func (testIDQuery) Description(m Matcher, o *Options) string {
	return fmt.Sprintf("by: [%s=%q]", GetConfig().TestIDAttribute, describeMatcher(m))
}

// attrQuery matches the value of the named attribute.
func attrQuery(name string) func(*html.Node, Matcher, *Options) ([]*html.Node, error) {
	return func(container *html.Node, m Matcher, o *Options) ([]*html.Node, error) {
		return filter(container, o, func(el *html.Node) bool {
			v, ok := dom.GetAttribute(el, name)
			return ok && matches(v, el, m, o)
		})
	}
}

func queryAllByAltText(container *html.Node, m Matcher, o *Options) ([]*html.Node, error) {
	return filter(container, o, func(el *html.Node) bool {
		if !dom.IsTag(el, "img", "input", "area") {
			return false
		}
		v, ok := dom.GetAttribute(el, "alt")
		return ok && matches(v, el, m, o)
	})
}

func queryAllByTitle(container *html.Node, m Matcher, o *Options) ([]*html.Node, error) {
	return filter(container, o, func(el *html.Node) bool {
		if v, ok := dom.GetAttribute(el, "title"); ok && matches(v, el, m, o) {
			return true
		}
		return dom.IsTag(el, "title") && el.Parent != nil && dom.IsTag(el.Parent, "svg") &&
			matches(dom.TextContent(el), el, m, o)
	})
}

func queryAllByDisplayValue(container *html.Node, m Matcher, o *Options) ([]*html.Node, error) {
	return filter(container, o, func(el *html.Node) bool {
		switch {
		case dom.IsTag(el, "select"):
			for _, opt := range selectedOptions(el) {
				if matches(dom.TextContent(opt), opt, m, o) {
					return true
				}
			}
			return false
		case dom.IsTag(el, "input", "textarea"):
			return matches(dom.Value(el), el, m, o)
		}
		return false
	})
}

// labelable elements can be associated with a label element.
var labelable = []string{"button", "input", "meter", "output", "progress", "select", "textarea"}

func queryAllByLabelText(container *html.Node, m Matcher, o *Options) ([]*html.Node, error) {
	return filter(container, o, func(el *html.Node) bool {
		for _, label := range labelsOf(el) {
			if matches(label, el, m, o) {
				return true
			}
		}
		return false
	})
}

// labelsOf returns every text that labels el: aria-labelledby targets,
// associated label elements and aria-label.
func labelsOf(el *html.Node) []string {
	var out []string
	root := rootOf(el)

	if ids, ok := dom.GetAttribute(el, "aria-labelledby"); ok {
		var parts []string
		for _, id := range strings.Fields(ids) {
			if ref := elementByID(root, id); ref != nil {
				parts = append(parts, dom.TextContent(ref))
			}
		}
		if len(parts) > 0 {
			out = append(out, strings.Join(parts, " "))
		}
	}

	if dom.IsTag(el, labelable...) && !isHiddenInput(el) {
		if id := dom.Attr(el, "id"); id != "" {
			for _, n := range dom.Elements(root) {
				if dom.IsTag(n, "label") && dom.Attr(n, "for") == id {
					out = append(out, dom.TextContent(n))
				}
			}
		}
		for p := el.Parent; p != nil; p = p.Parent {
			if dom.IsTag(p, "label") && !dom.HasAttribute(p, "for") {
				out = append(out, dom.TextContent(p))
			}
		}
	}

	if v, ok := dom.GetAttribute(el, "aria-label"); ok {
		out = append(out, v)
	}
	return out
}

func isHiddenInput(el *html.Node) bool {
	return dom.IsTag(el, "input") && strings.EqualFold(dom.Attr(el, "type"), "hidden")
}

// rootOf returns the topmost ancestor of n.
func rootOf(n *html.Node) *html.Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

func elementByID(root *html.Node, id string) *html.Node {
	for _, n := range dom.Elements(root) {
		if dom.Attr(n, "id") == id {
			return n
		}
	}
	return nil
}

// selectedOptions returns the options a select displays as chosen.
func selectedOptions(sel *html.Node) []*html.Node {
	opts := dom.Options(sel)
	var out []*html.Node
	for _, opt := range opts {
		if dom.HasAttribute(opt, "selected") {
			out = append(out, opt)
		}
	}
	if len(out) == 0 && len(opts) > 0 && !dom.HasAttribute(sel, "multiple") {
		out = opts[:1]
	}
	return out
}
