package dom

import (
	"fmt"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

var (
	selectorCacheMu sync.Mutex
	selectorCache   = map[string]cascadia.Selector{}
)

// Compile parses a CSS selector. Compiled selectors are cached.
func Compile(selector string) (cascadia.Selector, error) {
	selectorCacheMu.Lock()
	defer selectorCacheMu.Unlock()

	if sel, ok := selectorCache[selector]; ok {
		return sel, nil
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("dom: invalid selector %q: %w", selector, err)
	}
	selectorCache[selector] = sel
	return sel, nil
}

// Matches reports whether the element n matches selector.
func Matches(n *html.Node, selector string) (bool, error) {
	sel, err := Compile(selector)
	if err != nil {
		return false, err
	}
	return sel.Match(n), nil
}

// QuerySelector returns the first descendant of n matching selector.
func QuerySelector(n *html.Node, selector string) (*html.Node, error) {
	sel, err := Compile(selector)
	if err != nil {
		return nil, err
	}
	return cascadia.Query(n, sel), nil
}

// QuerySelectorAll returns the descendants of n matching selector, in
// document order.
func QuerySelectorAll(n *html.Node, selector string) ([]*html.Node, error) {
	sel, err := Compile(selector)
	if err != nil {
		return nil, err
	}
	return cascadia.QueryAll(n, sel), nil
}

// Closest returns n or its nearest ancestor matching selector.
func Closest(n *html.Node, selector string) (*html.Node, error) {
	sel, err := Compile(selector)
	if err != nil {
		return nil, err
	}
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Type == html.ElementNode && sel.Match(cur) {
			return cur, nil
		}
	}
	return nil, nil
}

// Elements returns n (when it is an element) followed by its element
// descendants, in document order.
func Elements(n *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.ElementNode {
			out = append(out, cur)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}
