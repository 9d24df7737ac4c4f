package query

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"github.com/vango-dev/vtl/internal/errors"
	"github.com/vango-dev/vtl/pkg/dom"
	"golang.org/x/net/html"
)

// Query locates elements under a container.
type Query interface {
	// QueryAll returns all matching elements under container, in document
	// order. The container itself is a candidate.
	QueryAll(container *html.Node, m Matcher, o *Options) ([]*html.Node, error)
	// Description completes "Unable to find an element " for error messages.
	Description(m Matcher, o *Options) string
}

// funcQuery adapts a function to Query.
type funcQuery struct {
	all  func(container *html.Node, m Matcher, o *Options) ([]*html.Node, error)
	desc string
}

func (q *funcQuery) QueryAll(container *html.Node, m Matcher, o *Options) ([]*html.Node, error) {
	return q.all(container, m, o)
}

func (q *funcQuery) Description(m Matcher, o *Options) string {
	return fmt.Sprintf("%s: %s", q.desc, describeMatcher(m))
}

// NewQuery builds a custom query. desc completes "Unable to find an
// element", e.g. "with the data-cy attribute".
func NewQuery(desc string, all func(container *html.Node, m Matcher, o *Options) ([]*html.Node, error)) Query {
	return &funcQuery{all: all, desc: desc}
}

// candidates returns the elements under container matching o.Selector.
func candidates(container *html.Node, o *Options) ([]*html.Node, error) {
	if container == nil {
		return nil, errors.New("Q006").
			WithDetail("queries need a container; got nil")
	}
	sel, err := compile(o.Selector)
	if err != nil {
		return nil, err
	}
	var out []*html.Node
	for _, el := range dom.Elements(container) {
		if sel.Match(el) {
			out = append(out, el)
		}
	}
	return out, nil
}

func compile(selector string) (cascadia.Selector, error) {
	sel, err := dom.Compile(selector)
	if err != nil {
		return nil, errors.New("Q005").
			WithDetail(fmt.Sprintf("%q is not a valid CSS selector", selector)).
			Wrap(err)
	}
	return sel, nil
}

// filter keeps the candidates for which match returns true.
func filter(container *html.Node, o *Options, match func(el *html.Node) bool) ([]*html.Node, error) {
	els, err := candidates(container, o)
	if err != nil {
		return nil, err
	}
	out := els[:0]
	for _, el := range els {
		if match(el) {
			out = append(out, el)
		}
	}
	return out, nil
}

// QueryAllBy runs q and returns every match, possibly none.
func QueryAllBy(q Query, container *html.Node, m Matcher, opts ...Option) ([]*html.Node, error) {
	return q.QueryAll(container, m, newOptions(opts))
}

// QueryBy returns the single match or nil. More than one match is an error.
func QueryBy(q Query, container *html.Node, m Matcher, opts ...Option) (*html.Node, error) {
	o := newOptions(opts)
	els, err := q.QueryAll(container, m, o)
	if err != nil {
		return nil, err
	}
	switch len(els) {
	case 0:
		return nil, nil
	case 1:
		return els[0], nil
	}
	return nil, multipleError(q, container, m, o)
}

// GetAllBy returns every match. No match is an error.
func GetAllBy(q Query, container *html.Node, m Matcher, opts ...Option) ([]*html.Node, error) {
	o := newOptions(opts)
	els, err := q.QueryAll(container, m, o)
	if err != nil {
		return nil, err
	}
	if len(els) == 0 {
		return nil, notFoundError(q, container, m, o)
	}
	return els, nil
}

// GetBy returns the single match. No match or several matches are errors.
func GetBy(q Query, container *html.Node, m Matcher, opts ...Option) (*html.Node, error) {
	o := newOptions(opts)
	els, err := q.QueryAll(container, m, o)
	if err != nil {
		return nil, err
	}
	switch len(els) {
	case 0:
		return nil, notFoundError(q, container, m, o)
	case 1:
		return els[0], nil
	}
	return nil, multipleError(q, container, m, o)
}

// FindAllBy retries GetAllBy until it succeeds or the timeout elapses.
func FindAllBy(q Query, container *html.Node, m Matcher, opts ...Option) ([]*html.Node, error) {
	o := newOptions(opts)
	var els []*html.Node
	err := waitFor(o, func() error {
		var err error
		els, err = GetAllBy(q, container, m, opts...)
		return err
	})
	return els, err
}

// FindBy retries GetBy until it succeeds or the timeout elapses.
func FindBy(q Query, container *html.Node, m Matcher, opts ...Option) (*html.Node, error) {
	o := newOptions(opts)
	var el *html.Node
	err := waitFor(o, func() error {
		var err error
		el, err = GetBy(q, container, m, opts...)
		return err
	})
	return el, err
}

func notFoundError(q Query, container *html.Node, m Matcher, o *Options) error {
	return errors.New("Q001").
		WithMessagef("Unable to find an element %s", q.Description(m, o)).
		WithDetail(PrettyDOM(container, 0, WithColors(false))).
		WithSuggestion("This could be because the text is broken up by multiple elements. " +
			"In this case, you can provide a function for your text matcher.")
}

func multipleError(q Query, container *html.Node, m Matcher, o *Options) error {
	return errors.New("Q002").
		WithMessagef("Found multiple elements %s", q.Description(m, o)).
		WithDetail(PrettyDOM(container, 0, WithColors(false))).
		WithSuggestion("Use one of the *AllBy variants if more than one match is expected.")
}
