package vdom

// IsVoidElement reports whether tag never has children.
func IsVoidElement(tag string) bool {
	switch tag {
	case "area", "base", "br", "col", "embed", "hr", "img", "input",
		"link", "meta", "param", "source", "track", "wbr":
		return true
	}
	return false
}

// CustomElement builds an element with any tag name. args may hold Attr,
// []Attr, EventHandler, nil, or anything Child accepts.
func CustomElement(tag string, args ...any) *VNode {
	el := &VNode{Kind: KindElement, Tag: tag, Props: Props{}}
	for _, arg := range args {
		switch a := arg.(type) {
		case nil:
		case Attr:
			el.setAttr(a)
		case []Attr:
			for _, at := range a {
				el.setAttr(at)
			}
		case EventHandler:
			el.Props[a.Event] = a.Handler
		default:
			if n := Child(a); n != nil {
				el.Children = append(el.Children, n)
			}
		}
	}
	return el
}

// setAttr records a. The key attribute sets VNode.Key and repeated classes
// are space-joined.
func (v *VNode) setAttr(a Attr) {
	switch a.Key {
	case "":
		return
	case "key":
		if s, ok := a.Value.(string); ok {
			v.Key = s
		}
		return
	case "class":
		prev, _ := v.Props["class"].(string)
		next, ok := a.Value.(string)
		if ok && prev != "" {
			a.Value = prev + " " + next
		}
	}
	v.Props[a.Key] = a.Value
}

func element(tag string) func(args ...any) *VNode {
	return func(args ...any) *VNode { return CustomElement(tag, args...) }
}

var (
	Html    = element("html")
	Body    = element("body")
	Header  = element("header")
	Footer  = element("footer")
	Main    = element("main")
	Nav     = element("nav")
	Section = element("section")
	Article = element("article")
	Aside   = element("aside")
	H1      = element("h1")
	H2      = element("h2")
	H3      = element("h3")
	H4      = element("h4")

	Div    = element("div")
	P      = element("p")
	Span   = element("span")
	Pre    = element("pre")
	Ul     = element("ul")
	Ol     = element("ol")
	Li     = element("li")
	Hr     = element("hr")
	Br     = element("br")
	A      = element("a")
	Strong = element("strong")
	Em     = element("em")
	Code   = element("code")

	Form     = element("form")
	Input    = element("input")
	Textarea = element("textarea")
	Select   = element("select")
	Option   = element("option")
	Button   = element("button")
	Label    = element("label")
	Fieldset = element("fieldset")
	Legend   = element("legend")
	Progress = element("progress")

	Table   = element("table")
	Thead   = element("thead")
	Tbody   = element("tbody")
	Tr      = element("tr")
	Th      = element("th")
	Td      = element("td")
	Caption = element("caption")

	Img     = element("img")
	Video   = element("video")
	Audio   = element("audio")
	Details = element("details")
	Summary = element("summary")
	Dialog  = element("dialog")
)
