package render

import (
	"github.com/vango-dev/vtl/pkg/vdom"
	"golang.org/x/net/html"
)

// ContentKind tells how a value is mounted.
type ContentKind uint8

const (
	// ContentEmpty renders nothing.
	ContentEmpty ContentKind = iota
	// ContentStatic is mounted once.
	ContentStatic
	// ContentDynamic is re-evaluated by a render effect.
	ContentDynamic
	// ContentNode is an existing DOM node, inserted as is.
	ContentNode
)

// String returns the name of the kind.
func (k ContentKind) String() string {
	switch k {
	case ContentEmpty:
		return "Empty"
	case ContentStatic:
		return "Static"
	case ContentDynamic:
		return "Dynamic"
	case ContentNode:
		return "Node"
	default:
		return "Unknown"
	}
}

// Content is a classified value. Exactly one of the fields matching Kind is set.
type Content struct {
	Kind  ContentKind
	VNode *vdom.VNode
	Fn    func() any
	Node  *html.Node
}

// Classify decides once how a value is mounted. It accepts whatever
// vdom.Child accepts plus *html.Node.
func Classify(value any) Content {
	if n, ok := value.(*html.Node); ok {
		if n == nil {
			return Content{Kind: ContentEmpty}
		}
		return Content{Kind: ContentNode, Node: n}
	}

	node := vdom.Child(value)
	switch {
	case node == nil:
		return Content{Kind: ContentEmpty}
	case node.Kind == vdom.KindDynamic:
		return Content{Kind: ContentDynamic, Fn: node.Dynamic}
	default:
		return Content{Kind: ContentStatic, VNode: node}
	}
}
