package query

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Matcher is a string, a *regexp.Regexp or a MatchFunc.
type Matcher any

// MatchFunc decides whether the normalized text of el matches.
type MatchFunc func(text string, el *html.Node) bool

// Normalizer rewrites text before it is matched.
type Normalizer func(string) string

var whitespace = regexp.MustCompile(`\s+`)

// DefaultNormalizer trims the text and collapses runs of whitespace into
// a single space.
func DefaultNormalizer(trim, collapse bool) Normalizer {
	return func(s string) string {
		if trim {
			s = strings.TrimSpace(s)
		}
		if collapse {
			s = whitespace.ReplaceAllString(s, " ")
		}
		return s
	}
}

// matches applies m to text. A nil matcher matches nothing.
func matches(text string, el *html.Node, m Matcher, o *Options) bool {
	text = o.Normalizer(text)
	switch m := m.(type) {
	case string:
		if o.Exact {
			return text == m
		}
		return strings.Contains(strings.ToLower(text), strings.ToLower(m))
	case *regexp.Regexp:
		return m != nil && m.MatchString(text)
	case MatchFunc:
		return m(text, el)
	case func(string, *html.Node) bool:
		return m(text, el)
	}
	return false
}

// describeMatcher renders m for error messages.
func describeMatcher(m Matcher) string {
	switch m := m.(type) {
	case string:
		return m
	case *regexp.Regexp:
		return "/" + m.String() + "/"
	case nil:
		return "<nil>"
	case MatchFunc, func(string, *html.Node) bool:
		return "<function>"
	}
	return fmt.Sprint(m)
}
