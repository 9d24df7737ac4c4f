package query

import (
	"fmt"
	"strings"

	"github.com/vango-dev/vtl/pkg/dom"
	"golang.org/x/net/html"
)

type roleQuery struct{}

// QueryAll matches elements whose role equals m, usually a role name. The
// Name option filters by accessible name.
func (roleQuery) QueryAll(container *html.Node, m Matcher, o *Options) ([]*html.Node, error) {
	return filter(container, o, func(el *html.Node) bool {
		if !roleMatches(el, m, o) {
			return false
		}
		if !o.Hidden && IsInaccessible(el) {
			return false
		}
		return o.Name == nil || matches(AccessibleName(el), el, o.Name, exactMatch)
	})
}

// exactMatch compares already normalized text as is.
var exactMatch = &Options{Exact: true, Normalizer: func(s string) string { return s }}

func (roleQuery) Description(m Matcher, o *Options) string {
	desc := fmt.Sprintf("with the role %q", describeMatcher(m))
	if o.Name != nil {
		desc += fmt.Sprintf(" and name %q", describeMatcher(o.Name))
	}
	return desc
}

// roleMatches compares the roles of el with m. Explicit role attributes
// may list fallbacks; the first one is used unless Exact is false.
func roleMatches(el *html.Node, m Matcher, o *Options) bool {
	if explicit, ok := dom.GetAttribute(el, "role"); ok && strings.TrimSpace(explicit) != "" {
		roles := strings.Fields(explicit)
		if o.Exact {
			roles = roles[:1]
		}
		for _, r := range roles {
			if matchRole(r, el, m) {
				return true
			}
		}
		return false
	}
	role := ImplicitRole(el)
	return role != "" && matchRole(role, el, m)
}

func matchRole(role string, el *html.Node, m Matcher) bool {
	switch m := m.(type) {
	case string:
		return strings.EqualFold(role, m)
	default:
		return matches(role, el, m, exactMatch)
	}
}

// ImplicitRole returns the ARIA role an element has without a role
// attribute, or "".
func ImplicitRole(el *html.Node) string {
	if el == nil || el.Type != html.ElementNode {
		return ""
	}
	switch el.Data {
	case "a", "area":
		if dom.HasAttribute(el, "href") {
			return "link"
		}
	case "article":
		return "article"
	case "aside":
		return "complementary"
	case "button":
		return "button"
	case "dd":
		return "definition"
	case "details":
		return "group"
	case "dialog":
		return "dialog"
	case "dt":
		return "term"
	case "fieldset":
		return "group"
	case "footer":
		if !inSection(el) {
			return "contentinfo"
		}
	case "form":
		return "form"
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return "heading"
	case "header":
		if !inSection(el) {
			return "banner"
		}
	case "hr":
		return "separator"
	case "img":
		if alt, ok := dom.GetAttribute(el, "alt"); ok && alt == "" {
			return "presentation"
		}
		return "img"
	case "input":
		return inputRole(el)
	case "li":
		return "listitem"
	case "main":
		return "main"
	case "nav":
		return "navigation"
	case "ol", "ul", "menu":
		return "list"
	case "optgroup":
		return "group"
	case "option":
		return "option"
	case "output":
		return "status"
	case "progress":
		return "progressbar"
	case "section":
		if dom.HasAttribute(el, "aria-label") || dom.HasAttribute(el, "aria-labelledby") {
			return "region"
		}
	case "select":
		if dom.HasAttribute(el, "multiple") {
			return "listbox"
		}
		if size := dom.Attr(el, "size"); size != "" && size != "0" && size != "1" {
			return "listbox"
		}
		return "combobox"
	case "summary":
		return "button"
	case "table":
		return "table"
	case "tbody", "thead", "tfoot":
		return "rowgroup"
	case "td":
		return "cell"
	case "textarea":
		return "textbox"
	case "th":
		return "columnheader"
	case "tr":
		return "row"
	}
	return ""
}

func inputRole(el *html.Node) string {
	switch strings.ToLower(dom.Attr(el, "type")) {
	case "button", "image", "reset", "submit":
		return "button"
	case "checkbox":
		return "checkbox"
	case "radio":
		return "radio"
	case "range":
		return "slider"
	case "number":
		return "spinbutton"
	case "search":
		if dom.HasAttribute(el, "list") {
			return "combobox"
		}
		return "searchbox"
	case "hidden", "color", "date", "datetime-local", "file", "month", "password", "time", "week":
		return ""
	default:
		if dom.HasAttribute(el, "list") {
			return "combobox"
		}
		return "textbox"
	}
}

// inSection reports whether el is inside a sectioning element, which
// strips the landmark role of header and footer.
func inSection(el *html.Node) bool {
	for p := el.Parent; p != nil; p = p.Parent {
		if dom.IsTag(p, "article", "aside", "main", "nav", "section") {
			return true
		}
	}
	return false
}

// IsInaccessible reports whether el or an ancestor is excluded from the
// accessibility tree: hidden, aria-hidden="true", or an inline style
// with display:none or visibility:hidden.
func IsInaccessible(el *html.Node) bool {
	for cur := el; cur != nil; cur = cur.Parent {
		if cur.Type != html.ElementNode {
			continue
		}
		if dom.HasAttribute(cur, "hidden") || dom.Attr(cur, "aria-hidden") == "true" {
			return true
		}
		style := strings.ReplaceAll(strings.ToLower(dom.Attr(cur, "style")), " ", "")
		if strings.Contains(style, "display:none") {
			return true
		}
		if cur == el && strings.Contains(style, "visibility:hidden") {
			return true
		}
	}
	return false
}

// nameFromContent lists roles whose accessible name comes from their
// content.
var nameFromContent = map[string]bool{
	"button": true, "cell": true, "checkbox": true, "columnheader": true,
	"heading": true, "link": true, "listitem": true, "menuitem": true,
	"option": true, "radio": true, "row": true, "switch": true, "tab": true,
	"term": true, "tooltip": true, "treeitem": true,
}

// AccessibleName computes a simplified accessible name for el:
// aria-labelledby, aria-label, associated labels, alt, content for roles
// named by their content, then title.
func AccessibleName(el *html.Node) string {
	norm := DefaultNormalizer(true, true)

	if ids, ok := dom.GetAttribute(el, "aria-labelledby"); ok {
		root := rootOf(el)
		var parts []string
		for _, id := range strings.Fields(ids) {
			if ref := elementByID(root, id); ref != nil {
				parts = append(parts, dom.TextContent(ref))
			}
		}
		if len(parts) > 0 {
			return norm(strings.Join(parts, " "))
		}
	}
	if v := dom.Attr(el, "aria-label"); strings.TrimSpace(v) != "" {
		return norm(v)
	}
	if dom.IsTag(el, labelable...) && !dom.IsTag(el, "button") {
		labels := labelsOf(el)
		if len(labels) > 0 {
			return norm(labels[0])
		}
	}
	if dom.IsTag(el, "input") {
		switch strings.ToLower(dom.Attr(el, "type")) {
		case "button", "submit", "reset":
			return norm(dom.Value(el))
		case "image":
			return norm(dom.Attr(el, "alt"))
		}
	}
	if dom.IsTag(el, "img", "area") {
		if alt := dom.Attr(el, "alt"); alt != "" {
			return norm(alt)
		}
	}
	role := dom.Attr(el, "role")
	if role == "" {
		role = ImplicitRole(el)
	}
	if f := strings.Fields(role); len(f) > 0 && nameFromContent[f[0]] {
		if text := norm(dom.TextContent(el)); text != "" {
			return text
		}
	}
	return norm(dom.Attr(el, "title"))
}
