package vdom

import (
	"fmt"
	"strconv"
)

func Text(s string) *VNode { return &VNode{Kind: KindText, Text: s} }

func Textf(format string, args ...any) *VNode { return Text(fmt.Sprintf(format, args...)) }

// Raw inserts html without escaping it.
func Raw(html string) *VNode { return &VNode{Kind: KindRaw, Text: html} }

// Fragment groups children without an enclosing element. Children are
// converted with Child.
func Fragment(children ...any) *VNode {
	f := &VNode{Kind: KindFragment}
	for _, c := range children {
		if n := Child(c); n != nil {
			f.Children = append(f.Children, n)
		}
	}
	return f
}

// Child converts v to a node, or nil when v renders nothing (nil and bools).
//
// Nodes pass through. Slices become fragments, components become component
// nodes and func() any, func() *VNode or func() string become dynamic
// nodes. Anything else is printed as text.
func Child(v any) *VNode {
	switch c := v.(type) {
	case nil, bool:
		return nil
	case *VNode:
		return c
	case []*VNode:
		f := &VNode{Kind: KindFragment}
		for _, n := range c {
			if n != nil {
				f.Children = append(f.Children, n)
			}
		}
		return f
	case []any:
		return Fragment(c...)
	case Component:
		return Comp(c)
	case func() any:
		return Dynamic(c)
	case func() *VNode:
		return Dynamic(func() any { return c() })
	case func() string:
		return Dynamic(func() any { return c() })
	case string:
		return Text(c)
	case int:
		return Text(strconv.Itoa(c))
	case int64:
		return Text(strconv.FormatInt(c, 10))
	case float64:
		return Text(strconv.FormatFloat(c, 'f', -1, 64))
	case fmt.Stringer:
		return Text(c.String())
	}
	return Text(fmt.Sprint(v))
}

// If yields node when cond holds.
func If(cond bool, node *VNode) *VNode {
	if !cond {
		return nil
	}
	return node
}

func IfElse(cond bool, then, otherwise *VNode) *VNode {
	if cond {
		return then
	}
	return otherwise
}

// Range maps items through fn and drops nil results.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	var out []*VNode
	for i, item := range items {
		if n := fn(item, i); n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Key sets the node's key. It is not rendered as an attribute.
func Key(key any) Attr { return Attribute("key", fmt.Sprint(key)) }
